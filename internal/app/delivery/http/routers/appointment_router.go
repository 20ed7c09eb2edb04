package routers

import (
	"healthcare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/", appointmentController.FindAll)
	router.Get("/between", appointmentController.FindBetween)
	router.Get("/patient/{patient_id}", appointmentController.FindByPatientID)
	router.Get("/doctor/{doctor_id}", appointmentController.FindByDoctorID)
	router.Get("/{id}", appointmentController.FindByID)
	router.Put("/{id}", appointmentController.UpdateAppointment)
	router.Delete("/{id}", appointmentController.DeleteAppointment)
}
