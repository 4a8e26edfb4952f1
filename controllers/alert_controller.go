package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Designdill/nutri-manager-pro-81-sub001/services"
)

type AlertController struct {
	Alerts *services.AlertService
}

func NewAlertController(as *services.AlertService) *AlertController {
	return &AlertController{Alerts: as}
}

// Run triggers the patient analysis for the authenticated nutritionist.
func (ac *AlertController) Run(c *gin.Context) {
	uid := c.GetUint("userID")

	summary, err := ac.Alerts.Run(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (ac *AlertController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	alerts, err := ac.Alerts.List(c.Request.Context(), uid, c.Query("unread") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (ac *AlertController) MarkRead(c *gin.Context) {
	ac.setFlag(c, ac.Alerts.MarkRead)
}

func (ac *AlertController) Dismiss(c *gin.Context) {
	ac.setFlag(c, ac.Alerts.Dismiss)
}

func (ac *AlertController) setFlag(c *gin.Context, fn func(ctx context.Context, userID, alertID uint) error) {
	uid := c.GetUint("userID")
	id := paramID(c)

	err := fn(c.Request.Context(), uid, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
