package routers

import (
	"healthcare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Post("/", doctorController.CreateDoctor)
	router.Get("/", doctorController.FindAll)
	router.Get("/specialization/{specialization}", doctorController.FindBySpecialization)
	router.Get("/experience-above/{years}", doctorController.FindByExperienceGreaterThan)
	router.Get("/search-by-name", doctorController.FindByNameContaining)
	router.Get("/{id}", doctorController.FindByID)
	router.Put("/{id}", doctorController.UpdateDoctor)
	router.Delete("/{id}", doctorController.DeleteDoctor)
}
