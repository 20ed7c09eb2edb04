package models

import (
	"healthcare-service/internal/pkg/dto/requests"
	"healthcare-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type Doctor struct {
	ID                string `bson:"_id,omitempty"`
	Name              string `bson:"name"`
	Specialization    string `bson:"specialization"`
	YearsOfExperience int    `bson:"yearsOfExperience"`
	Email             string `bson:"email"`
	PhoneNumber       string `bson:"phoneNumber"`
}

func NewDoctorFromRequest(request *requests.Doctor) *Doctor {
	doctor := &Doctor{}
	doctor.ApplyRequest(request)
	return doctor
}

// ApplyRequest overwrites every mutable field. The id is left untouched.
func (d *Doctor) ApplyRequest(request *requests.Doctor) {
	d.Name = request.Name
	d.Specialization = request.Specialization
	if request.YearsOfExperience != nil {
		d.YearsOfExperience = *request.YearsOfExperience
	}
	d.Email = request.Email
	d.PhoneNumber = request.PhoneNumber
}

func (d Doctor) ConvertIntoResponse() responses.Doctor {
	return responses.Doctor{
		ID:                d.ID,
		Name:              d.Name,
		Specialization:    d.Specialization,
		YearsOfExperience: d.YearsOfExperience,
		Email:             d.Email,
		PhoneNumber:       d.PhoneNumber,
	}
}

func (d Doctor) ConvertToBsonM() bson.M {
	return bson.M{
		"name":              d.Name,
		"specialization":    d.Specialization,
		"yearsOfExperience": d.YearsOfExperience,
		"email":             d.Email,
		"phoneNumber":       d.PhoneNumber,
	}
}

func ConvertDoctorsIntoResponse(doctors []Doctor) []responses.Doctor {
	response := make([]responses.Doctor, len(doctors))
	for i, eachDoctor := range doctors {
		response[i] = eachDoctor.ConvertIntoResponse()
	}
	return response
}
