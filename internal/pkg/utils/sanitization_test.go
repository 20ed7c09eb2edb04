package utils

import (
	"healthcare-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDoctorRequest(t *testing.T) {
	years := 3
	request := &requests.Doctor{
		Name:              "  Alice Smith ",
		Specialization:    "\tCardiology\n",
		YearsOfExperience: &years,
		Email:             " alice@clinic.test ",
		PhoneNumber:       " 5551234567",
	}

	SanitizeDoctorRequest(request)

	assert.Equal(t, "Alice Smith", request.Name)
	assert.Equal(t, "Cardiology", request.Specialization)
	assert.Equal(t, "alice@clinic.test", request.Email)
	assert.Equal(t, "5551234567", request.PhoneNumber)
	assert.Equal(t, 3, *request.YearsOfExperience)
}

func TestSanitizePatientRequest(t *testing.T) {
	request := &requests.Patient{
		Name:        " Jane Doe ",
		Age:         30,
		Gender:      " Female",
		Email:       "jane@x.com  ",
		PhoneNumber: "  1234567890  ",
	}

	SanitizePatientRequest(request)

	assert.Equal(t, "Jane Doe", request.Name)
	assert.Equal(t, "Female", request.Gender)
	assert.Equal(t, "jane@x.com", request.Email)
	assert.Equal(t, "1234567890", request.PhoneNumber)
}

func TestSanitizeAppointmentRequest(t *testing.T) {
	request := &requests.Appointment{
		DateTime:  " 2024-05-01T09:30:00Z ",
		Reason:    " Checkup ",
		PatientID: " p1 ",
		DoctorID:  " d1 ",
	}

	SanitizeAppointmentRequest(request)

	assert.Equal(t, "2024-05-01T09:30:00Z", request.DateTime)
	assert.Equal(t, "Checkup", request.Reason)
	assert.Equal(t, "p1", request.PatientID)
	assert.Equal(t, "d1", request.DoctorID)
}
