package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpers(t *testing.T) {
	t.Run(`ParseDate check`, func(t *testing.T) {
		d, err := ParseDate("2024-02-29")
		require.Nil(t, err)
		require.Equal(t, 2024, d.Year())
		require.Equal(t, time.February, d.Month())
		require.Equal(t, 29, d.Day())

		_, err = ParseDate("02/29/2024")
		require.NotNil(t, err)
	})

	t.Run(`FormatDateUS check`, func(t *testing.T) {
		d := time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC)
		require.Equal(t, "03/07/2024", FormatDateUS(d))
		require.Equal(t, "", FormatDateUS(time.Time{}))
	})

	t.Run(`CalendarDaysBetween rounds up`, func(t *testing.T) {
		from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
		require.Equal(t, 3, CalendarDaysBetween(from, to))

		// partial day counts as a full one
		to = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)
		require.Equal(t, 4, CalendarDaysBetween(from, to))

		// order does not matter
		require.Equal(t, 4, CalendarDaysBetween(to, from))
		require.Equal(t, 0, CalendarDaysBetween(from, from))
	})
}
