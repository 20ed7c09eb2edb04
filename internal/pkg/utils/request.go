package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// DecodeJSONBody decodes the request body into dst. Keys dst does not declare,
// such as the id echoed back from a read, are ignored.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func ParseIntParam(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, errors.New("parameter is missing")
	}
	return strconv.Atoi(value)
}

func ParseRequiredString(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errors.New("parameter is missing")
	}
	return value, nil
}

func ParseDateTimeParam(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("parameter is missing")
	}
	parsed, err := ParseDateTime(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date time %q: %w", value, err)
	}
	return parsed, nil
}
