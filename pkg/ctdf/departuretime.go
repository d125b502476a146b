package ctdf

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DepartureTimeFormat is the 24 hour HH:MM layout trains are registered with
const DepartureTimeFormat = "15:04"

var ErrInvalidDepartureTime = errors.New("invalid departure time")

// ParseDepartureTime returns the time of day on the zero date
func ParseDepartureTime(value string) (time.Time, error) {
	departureTime, err := time.Parse(DepartureTimeFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected HH:MM", ErrInvalidDepartureTime, value)
	}

	return departureTime, nil
}

func FormatDepartureTime(departureTime time.Time) string {
	return departureTime.Format(DepartureTimeFormat)
}
