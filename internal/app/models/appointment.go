package models

import (
	"healthcare-service/internal/pkg/dto/requests"
	"healthcare-service/internal/pkg/dto/responses"
	"healthcare-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Appointment references a patient and a doctor by id only; neither is checked to exist.
type Appointment struct {
	ID        string    `bson:"_id,omitempty"`
	DateTime  time.Time `bson:"dateTime"`
	Reason    string    `bson:"reason"`
	PatientID string    `bson:"patientId"`
	DoctorID  string    `bson:"doctorId"`
}

func NewAppointmentFromRequest(request *requests.Appointment) (*Appointment, error) {
	appointment := &Appointment{}
	err := appointment.ApplyRequest(request)
	if err != nil {
		return nil, err
	}
	return appointment, nil
}

// ApplyRequest overwrites every mutable field. The id is left untouched.
func (a *Appointment) ApplyRequest(request *requests.Appointment) error {
	dateTime, err := utils.ParseDateTime(request.DateTime)
	if err != nil {
		return err
	}
	// mongo stores milliseconds in UTC
	a.DateTime = dateTime.UTC().Truncate(time.Millisecond)
	a.Reason = request.Reason
	a.PatientID = request.PatientID
	a.DoctorID = request.DoctorID
	return nil
}

func (a Appointment) ConvertIntoResponse() responses.Appointment {
	return responses.Appointment{
		ID:        a.ID,
		DateTime:  a.DateTime,
		Reason:    a.Reason,
		PatientID: a.PatientID,
		DoctorID:  a.DoctorID,
	}
}

func (a Appointment) ConvertToBsonM() bson.M {
	return bson.M{
		"dateTime":  a.DateTime,
		"reason":    a.Reason,
		"patientId": a.PatientID,
		"doctorId":  a.DoctorID,
	}
}

func ConvertAppointmentsIntoResponse(appointments []Appointment) []responses.Appointment {
	response := make([]responses.Appointment, len(appointments))
	for i, eachAppointment := range appointments {
		response[i] = eachAppointment.ConvertIntoResponse()
	}
	return response
}
