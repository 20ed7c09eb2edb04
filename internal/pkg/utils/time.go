package utils

import (
	"healthcare-service/internal/pkg/constvars"
	"time"
)

// ParseDateTime accepts RFC3339 or a zone-less local date time in time.Local.
func ParseDateTime(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return parsed, nil
	}
	return time.ParseInLocation(constvars.LayoutLocalDateTime, value, time.Local)
}
