package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
)

const (
	CreateDoctorSuccessMessage  = "doctor created successfully"
	GetDoctorsSuccessMessage    = "get doctors successfully"
	GetDoctorSuccessMessage     = "get doctor successfully"
	UpdateDoctorSuccessMessage  = "doctor updated successfully"
	DeleteDoctorSuccessMessage  = "doctor deleted successfully"
	SearchDoctorsSuccessMessage = "search doctors successfully"

	CreatePatientSuccessMessage  = "patient created successfully"
	GetPatientsSuccessMessage    = "get patients successfully"
	GetPatientSuccessMessage     = "get patient successfully"
	UpdatePatientSuccessMessage  = "patient updated successfully"
	DeletePatientSuccessMessage  = "patient deleted successfully"
	SearchPatientsSuccessMessage = "search patients successfully"

	CreateAppointmentSuccessMessage  = "appointment created successfully"
	GetAppointmentsSuccessMessage    = "get appointments successfully"
	GetAppointmentSuccessMessage     = "get appointment successfully"
	UpdateAppointmentSuccessMessage  = "appointment updated successfully"
	DeleteAppointmentSuccessMessage  = "appointment deleted successfully"
	SearchAppointmentsSuccessMessage = "search appointments successfully"

	HealthySuccessMessage = "service is healthy"
)
