package queries

import "go.mongodb.org/mongo-driver/bson"

const (
	FieldSpecialization    = "specialization"
	FieldYearsOfExperience = "yearsOfExperience"
)

func DoctorsBySpecialization(specialization string) bson.M {
	return bson.M{FieldSpecialization: equalsIgnoreCase(specialization)}
}

func DoctorsByExperienceGreaterThan(years int) bson.M {
	return bson.M{FieldYearsOfExperience: bson.M{"$gt": years}}
}
