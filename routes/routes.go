package routes

import (
	"golang.org/x/time/rate"

	"github.com/gin-gonic/gin"

	"NavidentClinic/config"
	"NavidentClinic/controllers"
	"NavidentClinic/middlewares"
	"NavidentClinic/repositories"
	"NavidentClinic/services"
)

/*
* Routes wires repositories into services, services into controllers, and
* mounts everything under /api. Sign-in and sign-up are public; the rest of
* the surface sits behind the bearer token middleware.
 */
func Routes(r *gin.Engine, cfg *config.AppConfig) *services.AuthService {
	userRepo := repositories.NewUserRepository()
	patientRepo := repositories.NewPatientRepository()
	dentistRepo := repositories.NewDentistRepository()
	appointmentRepo := repositories.NewAppointmentRepository()
	prescriptionRepo := repositories.NewPrescriptionRepository()
	billRepo := repositories.NewBillRepository()
	insuranceRepo := repositories.NewInsuranceRepository()
	financeRepo := repositories.NewFinanceRepository()
	treatmentRepo := repositories.NewTreatmentRepository()

	authService := services.NewAuthService(userRepo)
	userService := services.NewUserService(userRepo)
	patientService := services.NewPatientService(patientRepo)
	dentistService := services.NewDentistService(dentistRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, patientRepo, dentistRepo)
	prescriptionService := services.NewPrescriptionService(prescriptionRepo, patientRepo, dentistRepo)
	billService := services.NewBillService(billRepo, patientRepo, dentistRepo)
	insuranceService := services.NewInsuranceService(insuranceRepo, patientRepo)
	financeService := services.NewFinanceService(financeRepo)
	treatmentService := services.NewTreatmentService(treatmentRepo)

	authController := controllers.NewAuthController(authService)

	api := r.Group("/api")
	api.Use(
		middlewares.RequestTimeout(cfg.RequestTimeout),
		middlewares.RateLimit(rate.Limit(50), 100),
	)

	//public
	authController.RegisterPublic(api)

	//private routes
	protected := api.Group("")
	protected.Use(middlewares.JWTAuth(userRepo))
	authController.RegisterProtected(protected)
	controllers.NewUserController(userService).Register(protected)
	controllers.NewPatientController(patientService).Register(protected)
	controllers.NewDentistController(dentistService).Register(protected)
	controllers.NewAppointmentController(appointmentService).Register(protected)
	controllers.NewPrescriptionController(prescriptionService).Register(protected)
	controllers.NewBillController(billService).Register(protected)
	controllers.NewInsuranceController(insuranceService).Register(protected)
	controllers.NewFinanceController(financeService).Register(protected)
	controllers.NewTreatmentController(treatmentService).Register(protected)

	return authService
}
