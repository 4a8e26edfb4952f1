package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Designdill/nutri-manager-pro-81-sub001/services"
	"github.com/Designdill/nutri-manager-pro-81-sub001/utils"
)

type PatientController struct {
	Patients      *services.PatientService
	Consultations *services.ConsultationService
}

func NewPatientController(ps *services.PatientService, cs *services.ConsultationService) *PatientController {
	return &PatientController{Patients: ps, Consultations: cs}
}

func (pc *PatientController) Create(c *gin.Context) {
	uid := c.GetUint("userID")

	var input services.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := pc.Patients.Create(c.Request.Context(), uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (pc *PatientController) List(c *gin.Context) {
	uid := c.GetUint("userID")

	patients, err := pc.Patients.List(c.Request.Context(), uid, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patients)
}

func (pc *PatientController) Get(c *gin.Context) {
	uid := c.GetUint("userID")
	id := paramID(c)

	patient, err := pc.Patients.Get(c.Request.Context(), uid, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"patient": patient}
	if bmi, err := utils.CalculateBMI(patient.HeightCm, patient.CurrentWeight); err == nil {
		resp["bmi"] = bmi
		resp["bmi_category"] = utils.BMICategory(bmi)
	}
	if patient.BirthDate != nil {
		resp["age"] = utils.CalculateAge(*patient.BirthDate)
	}
	c.JSON(http.StatusOK, resp)
}

func (pc *PatientController) Update(c *gin.Context) {
	uid := c.GetUint("userID")
	id := paramID(c)

	var input services.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := pc.Patients.Update(c.Request.Context(), uid, id, input)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (pc *PatientController) SetStatus(c *gin.Context) {
	uid := c.GetUint("userID")
	id := paramID(c)

	var input struct {
		Status string `json:"status" binding:"required,oneof=active inactive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := pc.Patients.SetStatus(c.Request.Context(), uid, id, input.Status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}

func (pc *PatientController) ListConsultations(c *gin.Context) {
	uid := c.GetUint("userID")
	id := paramID(c)

	consultations, err := pc.Consultations.ListByPatient(c.Request.Context(), uid, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, consultations)
}

// paramID reads the :id route parameter; 0 means unparsable and downstream
// lookups will miss, which surfaces as 404.
func paramID(c *gin.Context) uint {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id)
}
