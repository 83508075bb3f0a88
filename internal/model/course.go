package model

import (
	"slices"
	"time"
)

// Course is a single catalog entry.
//
// Only the code is fixed at construction, everything else is freely mutable.
// Nothing is validated: meeting days may repeat and StartTime may be after EndTime.
type Course struct {
	code string

	Title      string
	Instructor string

	// StartTime and EndTime are the daily meeting window.
	StartTime TimeOfDay
	EndTime   TimeOfDay

	// days keeps the insertion order and duplicates.
	days []time.Weekday
}

func NewCourse(code string) *Course {
	return &Course{
		code: code,
		days: make([]time.Weekday, 0),
	}
}

func (c *Course) Code() string {
	return c.code
}

// AddDay appends the day to the meeting days, even if it is already there.
func (c *Course) AddDay(day time.Weekday) {
	c.days = append(c.days, day)
}

// RemoveDay removes the first occurrence of the day.
// Removing a day the course does not meet on does nothing.
func (c *Course) RemoveDay(day time.Weekday) {
	i := slices.Index(c.days, day)
	if i == -1 {
		return
	}

	c.days = slices.Delete(c.days, i, i+1)
}

func (c *Course) MeetsOn(day time.Weekday) bool {
	return slices.Contains(c.days, day)
}

// Days returns a copy of the meeting days in insertion order.
func (c *Course) Days() []time.Weekday {
	return slices.Clone(c.days)
}

// SetDays replaces the meeting days.
func (c *Course) SetDays(days ...time.Weekday) {
	c.days = append(make([]time.Weekday, 0, len(days)), days...)
}

// Duration is EndTime - StartTime, negative when the window is inverted.
func (c *Course) Duration() time.Duration {
	return time.Duration(c.EndTime - c.StartTime)
}
