package queries

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// compile turns a mongo regex into the equivalent Go regexp so tests can check what it matches.
func compile(t *testing.T, value interface{}) *regexp.Regexp {
	t.Helper()
	pattern, ok := value.(primitive.Regex)
	require.True(t, ok, "filter value should be a regex")
	assert.Equal(t, "i", pattern.Options)
	return regexp.MustCompile("(?" + pattern.Options + ")" + pattern.Pattern)
}

func TestByNameContaining(t *testing.T) {
	t.Run("Case Insensitive Substring", func(t *testing.T) {
		re := compile(t, ByNameContaining("smith")[FieldName])
		assert.True(t, re.MatchString("Alice Smith"))

		re = compile(t, ByNameContaining("SMITH")[FieldName])
		assert.True(t, re.MatchString("Alice Smith"))

		re = compile(t, ByNameContaining("lice sm")[FieldName])
		assert.True(t, re.MatchString("Alice Smith"))
	})

	t.Run("Non Matching Keyword", func(t *testing.T) {
		re := compile(t, ByNameContaining("bob")[FieldName])
		assert.False(t, re.MatchString("Alice Smith"))
	})

	t.Run("Metacharacters Are Literal", func(t *testing.T) {
		re := compile(t, ByNameContaining(".*")[FieldName])
		assert.False(t, re.MatchString("Alice Smith"))
		assert.True(t, re.MatchString("Weird .* Name"))

		re = compile(t, ByNameContaining("Dr. (Jr)")[FieldName])
		assert.True(t, re.MatchString("dr. (jr) House"))
		assert.False(t, re.MatchString("Drx Jr House"))
	})
}

func TestDoctorsBySpecialization(t *testing.T) {
	re := compile(t, DoctorsBySpecialization("cardiology")[FieldSpecialization])

	assert.True(t, re.MatchString("Cardiology"))
	assert.True(t, re.MatchString("CARDIOLOGY"))
	assert.False(t, re.MatchString("Pediatric Cardiology"), "specialization must match exactly")
	assert.False(t, re.MatchString("Cardiology II"), "specialization must match exactly")
}

func TestPatientsByGender(t *testing.T) {
	re := compile(t, PatientsByGender("female")[FieldGender])

	assert.True(t, re.MatchString("Female"))
	assert.False(t, re.MatchString("Male"))
	assert.False(t, re.MatchString("Female "))
}

func TestThresholdFiltersAreStrict(t *testing.T) {
	assert.Equal(t, bson.M{FieldYearsOfExperience: bson.M{"$gt": 5}}, DoctorsByExperienceGreaterThan(5))
	assert.Equal(t, bson.M{FieldAge: bson.M{"$gt": 30}}, PatientsByAgeGreaterThan(30))
}

func TestByObjectID(t *testing.T) {
	t.Run("Valid Hex", func(t *testing.T) {
		objectID := primitive.NewObjectID()
		filter, ok := ByObjectID(objectID.Hex())

		require.True(t, ok)
		assert.Equal(t, bson.M{FieldID: objectID}, filter)
	})

	t.Run("Malformed Id", func(t *testing.T) {
		filter, ok := ByObjectID("not-an-object-id")

		assert.False(t, ok)
		assert.Nil(t, filter)
	})
}

func TestAppointmentFilters(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	assert.Equal(t, bson.M{FieldPatientID: "p1"}, AppointmentsByPatientID("p1"))
	assert.Equal(t, bson.M{FieldDoctorID: "d1"}, AppointmentsByDoctorID("d1"))
	assert.Equal(t,
		bson.M{FieldDateTime: bson.M{"$gte": start, "$lte": end}},
		AppointmentsBetween(start, end),
	)
	assert.Equal(t,
		bson.M{FieldDoctorID: "d1", FieldDateTime: bson.M{"$gte": start}},
		AppointmentsByDoctorFrom("d1", start),
	)
	assert.Equal(t,
		bson.M{FieldPatientID: "p1", FieldDateTime: bson.M{"$lte": end}},
		AppointmentsByPatientUntil("p1", end),
	)
}
