// file: internals/helpers/parse.go
package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// ParseDateYYYYMMDD parses "2006-01-02" into a UTC midnight time.Time so
// date equality holds across the date columns.
func ParseDateYYYYMMDD(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t.UTC(), nil
}

// ParseClockHHMM validates a zero-padded "HH:MM" wall-clock string. Times are
// stored as strings; zero-padding keeps lexicographic comparison correct.
func ParseClockHHMM(s string) (string, error) {
	s = strings.TrimSpace(s)
	// length check because time.Parse accepts unpadded hours ("9:30")
	if len(s) != 5 {
		return "", fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return "", fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	return s, nil
}
