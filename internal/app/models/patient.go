package models

import (
	"healthcare-service/internal/pkg/dto/requests"
	"healthcare-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type Patient struct {
	ID          string `bson:"_id,omitempty"`
	Name        string `bson:"name"`
	Age         int    `bson:"age"`
	Gender      string `bson:"gender"`
	Email       string `bson:"email"`
	PhoneNumber string `bson:"phoneNumber"`
}

func NewPatientFromRequest(request *requests.Patient) *Patient {
	patient := &Patient{}
	patient.ApplyRequest(request)
	return patient
}

// ApplyRequest overwrites every mutable field. The id is left untouched.
func (p *Patient) ApplyRequest(request *requests.Patient) {
	p.Name = request.Name
	p.Age = request.Age
	p.Gender = request.Gender
	p.Email = request.Email
	p.PhoneNumber = request.PhoneNumber
}

func (p Patient) ConvertIntoResponse() responses.Patient {
	return responses.Patient{
		ID:          p.ID,
		Name:        p.Name,
		Age:         p.Age,
		Gender:      p.Gender,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
	}
}

func (p Patient) ConvertToBsonM() bson.M {
	return bson.M{
		"name":        p.Name,
		"age":         p.Age,
		"gender":      p.Gender,
		"email":       p.Email,
		"phoneNumber": p.PhoneNumber,
	}
}

func ConvertPatientsIntoResponse(patients []Patient) []responses.Patient {
	response := make([]responses.Patient, len(patients))
	for i, eachPatient := range patients {
		response[i] = eachPatient.ConvertIntoResponse()
	}
	return response
}
