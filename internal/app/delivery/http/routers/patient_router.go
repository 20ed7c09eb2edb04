package routers

import (
	"healthcare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Post("/", patientController.CreatePatient)
	router.Get("/", patientController.FindAll)
	router.Get("/age-above/{age}", patientController.FindByAgeGreaterThan)
	router.Get("/gender/{gender}", patientController.FindByGender)
	router.Get("/search-by-name", patientController.FindByNameContaining)
	router.Get("/{id}", patientController.FindByID)
	router.Put("/{id}", patientController.UpdatePatient)
	router.Delete("/{id}", patientController.DeletePatient)
}
