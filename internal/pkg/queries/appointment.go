package queries

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

const (
	FieldPatientID = "patientId"
	FieldDoctorID  = "doctorId"
)

func AppointmentsByPatientID(patientID string) bson.M {
	return bson.M{FieldPatientID: patientID}
}

func AppointmentsByDoctorID(doctorID string) bson.M {
	return bson.M{FieldDoctorID: doctorID}
}

// AppointmentsBetween is inclusive on both ends.
func AppointmentsBetween(start, end time.Time) bson.M {
	return bson.M{FieldDateTime: bson.M{"$gte": start, "$lte": end}}
}

func AppointmentsByDoctorFrom(doctorID string, from time.Time) bson.M {
	return bson.M{
		FieldDoctorID: doctorID,
		FieldDateTime: bson.M{"$gte": from},
	}
}

func AppointmentsByPatientUntil(patientID string, until time.Time) bson.M {
	return bson.M{
		FieldPatientID: patientID,
		FieldDateTime:  bson.M{"$lte": until},
	}
}
