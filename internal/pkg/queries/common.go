// Package queries builds the mongo filters behind every named lookup.
package queries

import (
	"regexp"

	"healthcare-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FieldID       = "_id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldDateTime = "dateTime"
)

// All matches every document of a collection.
func All() bson.M {
	return bson.M{}
}

// ByObjectID returns false when id is not a valid object id; such an id can never be stored.
func ByObjectID(id string) (bson.M, bool) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false
	}
	return bson.M{FieldID: objectID}, true
}

// ByNameContaining matches names containing keyword, ignoring case. The keyword is
// matched literally.
func ByNameContaining(keyword string) bson.M {
	return bson.M{FieldName: containsIgnoreCase(keyword)}
}

func ByEmail(email string) bson.M {
	return bson.M{FieldEmail: email}
}

func containsIgnoreCase(value string) primitive.Regex {
	return primitive.Regex{
		Pattern: regexp.QuoteMeta(value),
		Options: constvars.RegexCaseInsensitiveOption,
	}
}

func equalsIgnoreCase(value string) primitive.Regex {
	return primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(value) + "$",
		Options: constvars.RegexCaseInsensitiveOption,
	}
}
