package utils

import (
	"healthcare-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeDoctorRequest(input *requests.Doctor) {
	input.Name = strings.TrimSpace(input.Name)
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.Email = strings.TrimSpace(input.Email)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
}

func SanitizePatientRequest(input *requests.Patient) {
	input.Name = strings.TrimSpace(input.Name)
	input.Gender = strings.TrimSpace(input.Gender)
	input.Email = strings.TrimSpace(input.Email)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
}

func SanitizeAppointmentRequest(input *requests.Appointment) {
	input.DateTime = strings.TrimSpace(input.DateTime)
	input.Reason = strings.TrimSpace(input.Reason)
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.DoctorID = strings.TrimSpace(input.DoctorID)
}
