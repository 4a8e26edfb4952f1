package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Designdill/nutri-manager-pro-81-sub001/services"
)

type ConsultationController struct {
	Consultations *services.ConsultationService
}

func NewConsultationController(cs *services.ConsultationService) *ConsultationController {
	return &ConsultationController{Consultations: cs}
}

func (cc *ConsultationController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.ConsultationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	consultation, err := cc.Consultations.Create(c.Request.Context(), uid, input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, consultation)
}

func (cc *ConsultationController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id := paramID(c)

	consultation, err := cc.Consultations.Get(c.Request.Context(), uid, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "consultation not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, consultation)
}
