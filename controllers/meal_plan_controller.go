package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Designdill/nutri-manager-pro-81-sub001/services"
)

type MealPlanController struct {
	Plans *services.MealPlanService
}

func NewMealPlanController(ms *services.MealPlanService) *MealPlanController {
	return &MealPlanController{Plans: ms}
}

func (mc *MealPlanController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.MealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := mc.Plans.Create(c.Request.Context(), uid, input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (mc *MealPlanController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id := paramID(c)

	plan, err := mc.Plans.Get(c.Request.Context(), uid, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal plan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (mc *MealPlanController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id := paramID(c)

	var input services.MealPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := mc.Plans.Update(c.Request.Context(), uid, id, input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal plan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (mc *MealPlanController) Delete(c *gin.Context) {
	uid := c.GetUint("userID")
	id := paramID(c)

	err := mc.Plans.Delete(c.Request.Context(), uid, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal plan not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal plan deleted"})
}

func (mc *MealPlanController) ListByPatient(c *gin.Context) {
	uid := c.GetUint("userID")
	patientID, _ := strconv.ParseUint(c.Query("patient_id"), 10, 32)

	plans, err := mc.Plans.ListByPatient(c.Request.Context(), uid, uint(patientID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}
