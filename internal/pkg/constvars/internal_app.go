package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HCS_"
)

const (
	ResourceDoctors      = "doctors"
	ResourcePatients     = "patients"
	ResourceAppointments = "appointments"
)

const (
	MongoCollectionDoctors      = "doctors"
	MongoCollectionPatients     = "patients"
	MongoCollectionAppointments = "appointments"
)

// Redis keys for cached entities, formatted with the entity id.
const (
	RedisKeyDoctorFormat      = "doctor:%s"
	RedisKeyPatientFormat     = "patient:%s"
	RedisKeyAppointmentFormat = "appointment:%s"
)

const (
	EventDoctorCreated      = "doctor.created"
	EventDoctorUpdated      = "doctor.updated"
	EventDoctorDeleted      = "doctor.deleted"
	EventPatientCreated     = "patient.created"
	EventPatientUpdated     = "patient.updated"
	EventPatientDeleted     = "patient.deleted"
	EventAppointmentCreated = "appointment.created"
	EventAppointmentUpdated = "appointment.updated"
	EventAppointmentDeleted = "appointment.deleted"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	// LayoutLocalDateTime is accepted for appointment times sent without a zone.
	LayoutLocalDateTime = "2006-01-02T15:04:05"
)

// Entity names used in client facing messages.
const (
	EntityDoctor      = "Doctor"
	EntityPatient     = "Patient"
	EntityAppointment = "Appointment"
)

const (
	HealthComponentMongoDB = "mongodb"
	HealthComponentRedis   = "redis"
)
