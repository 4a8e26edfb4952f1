package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Designdill/nutri-manager-pro-81-sub001/services"
)

type AppointmentController struct {
	Appointments *services.AppointmentService
}

func NewAppointmentController(as *services.AppointmentService) *AppointmentController {
	return &AppointmentController{Appointments: as}
}

func (ac *AppointmentController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := ac.Appointments.Create(c.Request.Context(), uid, input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

func (ac *AppointmentController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			from = &t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			to = &t
		}
	}

	appointments, err := ac.Appointments.List(c.Request.Context(), uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (ac *AppointmentController) SetStatus(c *gin.Context) {
	uid := c.GetUint("userID")
	id := paramID(c)

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := ac.Appointments.SetStatus(c.Request.Context(), uid, id, input.Status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

func (ac *AppointmentController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id := paramID(c)

	err := ac.Appointments.Delete(c.Request.Context(), uid, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment deleted"})
}
