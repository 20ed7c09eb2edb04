package requests

type Appointment struct {
	DateTime  string `json:"dateTime" validate:"required,date_time"`
	Reason    string `json:"reason" validate:"required"`
	PatientID string `json:"patientId" validate:"required"`
	DoctorID  string `json:"doctorId" validate:"required"`
}
