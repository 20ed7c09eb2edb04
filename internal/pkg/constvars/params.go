package constvars

const (
	URLParamID             = "id"
	URLParamSpecialization = "specialization"
	URLParamYears          = "years"
	URLParamAge            = "age"
	URLParamGender         = "gender"
	URLParamPatientID      = "patient_id"
	URLParamDoctorID       = "doctor_id"
)

const (
	URLQueryParamKeyword = "keyword"
	URLQueryParamStart   = "start"
	URLQueryParamEnd     = "end"
	URLQueryParamFrom    = "from"
	URLQueryParamUntil   = "until"
)
