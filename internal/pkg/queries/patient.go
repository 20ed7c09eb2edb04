package queries

import "go.mongodb.org/mongo-driver/bson"

const (
	FieldAge    = "age"
	FieldGender = "gender"
)

func PatientsByAgeGreaterThan(age int) bson.M {
	return bson.M{FieldAge: bson.M{"$gt": age}}
}

func PatientsByGender(gender string) bson.M {
	return bson.M{FieldGender: equalsIgnoreCase(gender)}
}
