package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Designdill/nutri-manager-pro-81-sub001/services"
)

type ShoppingListController struct {
	Lists *services.ShoppingListService
}

func NewShoppingListController(ss *services.ShoppingListService) *ShoppingListController {
	return &ShoppingListController{Lists: ss}
}

// Generate builds and persists a shopping list from a meal plan. Either
// meal_plan_id or patient_id (latest plan) must be supplied.
func (sc *ShoppingListController) Generate(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.GenerateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := sc.Lists.Generate(c.Request.Context(), uid, input)
	if errors.Is(err, services.ErrMealPlanNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (sc *ShoppingListController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	lists, err := sc.Lists.List(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, lists)
}

func (sc *ShoppingListController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id := paramID(c)

	list, err := sc.Lists.Get(c.Request.Context(), uid, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "shopping list not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}
