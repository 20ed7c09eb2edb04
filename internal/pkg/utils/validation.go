package utils

import (
	"healthcare-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate            *validator.Validate
	rePhoneNumberDigits = regexp.MustCompile(constvars.RegexPhoneNumberDigits)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)
	validate.RegisterValidation("phone_digits", validatePhoneDigits)
	validate.RegisterValidation("date_time", validateDateTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePhoneDigits(fl validator.FieldLevel) bool {
	return rePhoneNumberDigits.MatchString(fl.Field().String())
}

func validateDateTime(fl validator.FieldLevel) bool {
	_, err := ParseDateTime(fl.Field().String())
	return err == nil
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}
