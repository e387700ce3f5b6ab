// file: internals/helpers/parse_test.go
package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateYYYYMMDD(t *testing.T) {
	got, err := ParseDateYYYYMMDD(" 2026-03-10 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDateYYYYMMDD("10-03-2026")
	assert.Error(t, err)
}

func TestParseClockHHMM(t *testing.T) {
	got, err := ParseClockHHMM("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", got)

	for _, bad := range []string{"9:30", "24:00", "09:60", "morning", ""} {
		_, err := ParseClockHHMM(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
