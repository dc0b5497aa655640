package timezone

import "time"

const DefaultTimezone = "America/Costa_Rica"

const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Clock answers "now" and "today" in the salon's zone.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type systemClock struct {
	loc *time.Location
}

func NewClock(tz string) Clock {
	return systemClock{loc: Location(tz)}
}

func (c systemClock) Now() time.Time           { return time.Now().In(c.loc) }
func (c systemClock) Location() *time.Location { return c.loc }

// FixedClock always reports the same instant. Used by tests and tooling.
type FixedClock struct {
	At  time.Time
	Loc *time.Location
}

func (c FixedClock) Now() time.Time {
	return c.At.In(c.Location())
}

func (c FixedClock) Location() *time.Location {
	if c.Loc == nil {
		return time.UTC
	}
	return c.Loc
}

// Today is the calendar date of now, at midnight in the clock's zone.
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}

func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate accepts YYYY-MM-DD and the YYYY-MM-DDTHH:MM:SS form older
// clients send; the time part is discarded.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if len(s) > len(DateLayout) && s[len(DateLayout)] == 'T' {
		s = s[:len(DateLayout)]
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

// ParseTimeOfDay accepts HH:MM or HH:MM:SS and returns the normalized HH:MM.
func ParseTimeOfDay(s string) (string, error) {
	layout := "15:04"
	if len(s) == len("15:04:05") {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return "", err
	}
	return t.Format("15:04"), nil
}
