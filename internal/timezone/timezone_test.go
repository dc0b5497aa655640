package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "Europe/Madrid", Location("Europe/Madrid").String())
}

func TestToday_UsesClockZone(t *testing.T) {
	cr := Location("America/Costa_Rica")
	// 03:00 UTC on the 2nd is still the evening of the 1st in Costa Rica.
	clock := FixedClock{At: time.Date(2026, 3, 2, 3, 0, 0, 0, time.UTC), Loc: cr}

	today := Today(clock)
	assert.Equal(t, "2026-03-01", FormatDate(today))
	assert.Equal(t, cr, today.Location())
}

func TestParseDate(t *testing.T) {
	t.Run("PlainDate_Parsed", func(t *testing.T) {
		d, err := ParseDate("2026-05-10", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("DateTime_TimeDropped", func(t *testing.T) {
		d, err := ParseDate("2026-05-10T14:30:00", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "2026-05-10", FormatDate(d))
	})

	t.Run("Garbage_Error", func(t *testing.T) {
		_, err := ParseDate("10/05/2026", time.UTC)
		assert.Error(t, err)
	})
}

func TestParseTimeOfDay(t *testing.T) {
	for in, want := range map[string]string{"09:30": "09:30", "09:30:00": "09:30", "23:59:59": "23:59"} {
		got, err := ParseTimeOfDay(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"", "25:00", "9h30", "09:60"} {
		_, err := ParseTimeOfDay(in)
		assert.Error(t, err, in)
	}
}
