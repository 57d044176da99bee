package routes

import (
	"github.com/polmorales30/nexo.clinic-sub000/config"
	"github.com/polmorales30/nexo.clinic-sub000/controllers"
	"github.com/polmorales30/nexo.clinic-sub000/logger"
	"github.com/polmorales30/nexo.clinic-sub000/middlewares"
	"github.com/polmorales30/nexo.clinic-sub000/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Shared hubs/services wired once at boot
	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		logger.Warn("push service disabled", zap.Error(err))
		push = nil
	}
	services.InitNotifyDeps(config.DB, hub, push)

	rtCtrl := controllers.NewRealtimeController(hub)
	devCtrl := controllers.NewDeviceController(push)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Everything else requires a valid staff token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)

		api.POST("/patients", controllers.CreatePatient)
		api.GET("/patients/tenant/:tenantId", controllers.ListPatientsByTenant)
		api.GET("/patients/:id", controllers.GetPatient)
		api.PUT("/patients/:id", controllers.UpdatePatient)
		api.DELETE("/patients/:id", controllers.DeletePatient)
		api.POST("/patients/:id/photo", controllers.UploadPatientPhoto)

		api.POST("/appointments", controllers.CreateAppointment)
		api.GET("/appointments/tenant/:tenantId", controllers.ListAppointmentsByTenant)
		api.PUT("/appointments/:id", controllers.UpdateAppointment)
		api.PATCH("/appointments/:id/status", controllers.UpdateAppointmentStatus)
		api.DELETE("/appointments/:id", controllers.DeleteAppointment)

		api.POST("/diets", controllers.SaveDiet)
		api.GET("/diets/patient/:patientId", controllers.GetDietByPatient)
		api.GET("/diets/patient/:patientId/summary", controllers.GetDietSummary)
		api.POST("/diets/generate-ai/:patientId", controllers.GenerateAIDiet)

		api.GET("/food/search", controllers.SearchFoods)
		api.GET("/food/:id", controllers.GetFood)

		api.POST("/metrics", controllers.CreateMetric)
		api.GET("/metrics/patient/:patientId", controllers.ListMetricsByPatient)
		api.GET("/metrics/calculate/:patientId", controllers.CalculateMetrics)

		api.POST("/anamnesis", controllers.UpsertAnamnesis)
		api.GET("/anamnesis/patient/:patientId", controllers.GetAnamnesisByPatient)

		api.POST("/stripe/payment-intent", controllers.CreatePaymentIntent)
		api.POST("/stripe/subscription", controllers.CreateSubscription)

		api.POST("/devices/register", devCtrl.Register)
		api.POST("/devices/toggle", devCtrl.Toggle)

		api.GET("/ws/events", rtCtrl.EventsWS)
	}

	return r
}
