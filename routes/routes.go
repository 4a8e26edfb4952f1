package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Designdill/nutri-manager-pro-81-sub001/config"
	"github.com/Designdill/nutri-manager-pro-81-sub001/controllers"
	"github.com/Designdill/nutri-manager-pro-81-sub001/middlewares"
	"github.com/Designdill/nutri-manager-pro-81-sub001/services"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	db := config.DB
	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(db)
	if err != nil {
		// Push delivery is optional; alerts still get stored and broadcast.
		logrus.WithError(err).Warn("push service unavailable")
		push = nil
	}

	patientSvc := services.NewPatientService(db)
	consultationSvc := services.NewConsultationService(db)
	mealPlanSvc := services.NewMealPlanService(db)
	appointmentSvc := services.NewAppointmentService(db)
	questionnaireSvc := services.NewQuestionnaireService(db)
	shoppingSvc := services.NewShoppingListService(db)
	alertSvc := services.NewAlertService(db, hub, push)

	patientCtl := controllers.NewPatientController(patientSvc, consultationSvc)
	consultationCtl := controllers.NewConsultationController(consultationSvc)
	mealPlanCtl := controllers.NewMealPlanController(mealPlanSvc)
	appointmentCtl := controllers.NewAppointmentController(appointmentSvc)
	questionnaireCtl := controllers.NewQuestionnaireController(questionnaireSvc)
	shoppingCtl := controllers.NewShoppingListController(shoppingSvc)
	alertCtl := controllers.NewAlertController(alertSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		patients := api.Group("/patients")
		{
			patients.POST("", patientCtl.Create)
			patients.GET("", patientCtl.List)
			patients.GET("/:id", patientCtl.Get)
			patients.PUT("/:id", patientCtl.Update)
			patients.PATCH("/:id/status", patientCtl.SetStatus)
			patients.GET("/:id/consultations", patientCtl.ListConsultations)
		}

		consultations := api.Group("/consultations")
		{
			consultations.POST("", consultationCtl.Create)
			consultations.GET("/:id", consultationCtl.Get)
		}

		mealPlans := api.Group("/meal-plans")
		{
			mealPlans.POST("", mealPlanCtl.Create)
			mealPlans.GET("", mealPlanCtl.ListByPatient)
			mealPlans.GET("/:id", mealPlanCtl.Get)
			mealPlans.PUT("/:id", mealPlanCtl.Update)
			mealPlans.DELETE("/:id", mealPlanCtl.Delete)
		}

		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentCtl.Create)
			appointments.GET("", appointmentCtl.List)
			appointments.PATCH("/:id/status", appointmentCtl.SetStatus)
			appointments.DELETE("/:id", appointmentCtl.Delete)
		}

		questionnaires := api.Group("/questionnaires")
		{
			questionnaires.POST("", questionnaireCtl.Create)
			questionnaires.GET("", questionnaireCtl.ListByPatient)
			questionnaires.PATCH("/:id/answers", questionnaireCtl.SubmitAnswers)
		}

		shopping := api.Group("/shopping-lists")
		{
			shopping.POST("/generate", shoppingCtl.Generate)
			shopping.GET("", shoppingCtl.List)
			shopping.GET("/:id", shoppingCtl.Get)
		}

		alerts := api.Group("/alerts")
		{
			alerts.POST("/run", alertCtl.Run)
			alerts.GET("", alertCtl.List)
			alerts.PATCH("/:id/read", alertCtl.MarkRead)
			alerts.PATCH("/:id/dismiss", alertCtl.Dismiss)
		}

		if push != nil {
			deviceCtl := controllers.NewDeviceController(push)
			api.POST("/devices/register", deviceCtl.Register)
		}

		api.GET("/ws", realtimeCtl.AlertsWS)
	}

	return r
}
