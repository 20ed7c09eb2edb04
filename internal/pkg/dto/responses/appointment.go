package responses

import "time"

type Appointment struct {
	ID        string    `json:"id"`
	DateTime  time.Time `json:"dateTime"`
	Reason    string    `json:"reason"`
	PatientID string    `json:"patientId"`
	DoctorID  string    `json:"doctorId"`
}
