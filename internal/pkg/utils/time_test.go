package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	t.Run("RFC3339 Keeps Offset", func(t *testing.T) {
		parsed, err := ParseDateTime("2024-05-01T09:30:00+07:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 1, 2, 30, 0, 0, time.UTC), parsed.UTC())
	})

	t.Run("Local Layout Uses Local Zone", func(t *testing.T) {
		parsed, err := ParseDateTime("2024-05-01T09:30:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local), parsed)
	})

	t.Run("Garbage Fails", func(t *testing.T) {
		_, err := ParseDateTime("01/05/2024")
		assert.Error(t, err)
	})
}

func TestParseParams(t *testing.T) {
	value, err := ParseIntParam(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, value)

	_, err = ParseIntParam("twelve")
	assert.Error(t, err)

	_, err = ParseIntParam("")
	assert.Error(t, err)

	keyword, err := ParseRequiredString("  smith ")
	require.NoError(t, err)
	assert.Equal(t, "smith", keyword)

	_, err = ParseRequiredString("   ")
	assert.Error(t, err)

	_, err = ParseDateTimeParam("")
	assert.Error(t, err)

	_, err = ParseDateTimeParam("yesterday")
	assert.Error(t, err)
}
