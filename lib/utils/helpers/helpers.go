package helpers

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "invalid date value: %s", value)
	}
	return d, nil
}

func FormatDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(dateLayout)
}

// FormatDateUS renders MM/DD/YYYY as shown on the exported document.
func FormatDateUS(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format("01/02/2006")
}

// CalendarDaysBetween returns the absolute day difference rounded up.
func CalendarDaysBetween(from, to time.Time) int {
	diff := to.Sub(from)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}
