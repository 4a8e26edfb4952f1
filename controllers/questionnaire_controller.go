package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Designdill/nutri-manager-pro-81-sub001/services"
)

type QuestionnaireController struct {
	Questionnaires *services.QuestionnaireService
}

func NewQuestionnaireController(qs *services.QuestionnaireService) *QuestionnaireController {
	return &QuestionnaireController{Questionnaires: qs}
}

func (qc *QuestionnaireController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.QuestionnaireInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q, err := qc.Questionnaires.Create(c.Request.Context(), uid, input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, q)
}

func (qc *QuestionnaireController) ListByPatient(c *gin.Context) {
	uid := c.GetUint("userID")
	patientID, _ := strconv.ParseUint(c.Query("patient_id"), 10, 32)

	qs, err := qc.Questionnaires.ListByPatient(c.Request.Context(), uid, uint(patientID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, qs)
}

func (qc *QuestionnaireController) SubmitAnswers(c *gin.Context) {
	uid := c.GetUint("userID")
	id := paramID(c)

	var input struct {
		Answers string `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := qc.Questionnaires.SubmitAnswers(c.Request.Context(), uid, id, input.Answers)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "questionnaire not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "answered"})
}
