package model

import (
	"time"
)

// TimeOfDay is an offset from midnight with second resolution.
//
// It is not bounded by a day, values above 24h or below zero are kept as is.
// Hour, Minute, Second and Format report the wall clock wrapped into a single day,
// so -1h reads as 23:00.
type TimeOfDay time.Duration

const fullDay = 24 * time.Hour

func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second)
}

// ParseTimeOfDay parses s with a time.Parse layout and keeps only the clock part.
//
// Example: ParseTimeOfDay("15:04", "09:30")
func ParseTimeOfDay(layout, s string) (TimeOfDay, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, err
	}

	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second()), nil
}

// clock wraps t into [0, 24h).
func (t TimeOfDay) clock() time.Duration {
	c := time.Duration(t) % fullDay
	if c < 0 {
		c += fullDay
	}

	return c
}

func (t TimeOfDay) Hour() int {
	return int(t.clock() / time.Hour)
}

func (t TimeOfDay) Minute() int {
	return int(t.clock()/time.Minute) % 60
}

func (t TimeOfDay) Second() int {
	return int(t.clock()/time.Second) % 60
}

// On places the time of day on the calendar date of d, in d's location.
//
// The offset is applied to the wall clock, so 10:00 stays 10:00 on days
// when the location changes its UTC offset. Values outside a day roll over
// into the neighbouring dates.
func (t TimeOfDay) On(d time.Time) time.Time {
	y, m, dd := d.Date()
	secs := time.Duration(t) / time.Second
	nsec := time.Duration(t) % time.Second
	return time.Date(y, m, dd, 0, 0, int(secs), int(nsec), d.Location())
}

func (t TimeOfDay) Format(layout string) string {
	return TimeOfDay(t.clock()).On(time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)).Format(layout)
}

func (t TimeOfDay) String() string {
	return t.Format("15:04:05")
}
