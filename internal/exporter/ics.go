package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"course-catalog/cmd/config"
	"course-catalog/internal/model"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

const (
	icsUTCLayout   = "20060102T150405Z"
	icsLocalLayout = "20060102T150405"
)

// GenerateICS writes one weekly recurring event per course to w and returns
// the number of events written.
//
// Each series starts on the first meeting day on or after from and runs for
// cfg.TermWeeks weeks. Courses without meeting days are left out.
func GenerateICS(courses []*model.Course, from time.Time, cfg *config.Exporter, w io.Writer) (int, error) {
	loc, err := time.LoadLocation(cfg.Location)
	if err != nil {
		return 0, fmt.Errorf("could not load timezone: %w", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(cfg.ProductID)

	from = dateIn(from, loc)
	until := from.AddDate(0, 0, 7*cfg.TermWeeks).Add(-time.Second)
	now := time.Now()
	exported := 0

	for _, c := range courses {
		days := weekdaysOf(c)
		if len(days) == 0 {
			continue
		}

		first := firstOccurrence(from, days)

		event := cal.AddEvent(EventUID(c.Code()))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		setLocalTime(event, ics.ComponentPropertyDtStart, c.StartTime.On(first))
		setLocalTime(event, ics.ComponentPropertyDtEnd, c.EndTime.On(first))
		event.SetSummary(strings.TrimSpace(c.Code() + " " + c.Title))
		if c.Instructor != "" {
			event.SetDescription("Instructor: " + c.Instructor)
		}
		event.AddProperty(ics.ComponentPropertyRrule, weeklyRule(days, until))
		exported++
	}

	return exported, cal.SerializeTo(w)
}

// EventUID is stable for a course code, so re-importing an export updates
// the existing events instead of duplicating them.
func EventUID(code string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("course:"+code)).String()
}

// setLocalTime writes t as a wall clock time with a TZID, so BYDAY and DST
// transitions are resolved in t's location. UTC is written in the Z form.
func setLocalTime(event *ics.VEvent, property ics.ComponentProperty, t time.Time) {
	if t.Location() == time.UTC {
		event.SetProperty(property, t.Format(icsUTCLayout))
		return
	}

	event.SetProperty(property, t.Format(icsLocalLayout), ics.WithTZID(t.Location().String()))
}

// weekdaysOf returns the distinct meeting days in week order.
func weekdaysOf(c *model.Course) []time.Weekday {
	var days []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if c.MeetsOn(d) {
			days = append(days, d)
		}
	}

	return days
}

func firstOccurrence(from time.Time, days []time.Weekday) time.Time {
	minOffset := 7
	for _, d := range days {
		offset := (int(d) - int(from.Weekday()) + 7) % 7
		minOffset = min(minOffset, offset)
	}

	return from.AddDate(0, 0, minOffset)
}

func weeklyRule(days []time.Weekday, until time.Time) string {
	byDay := make([]string, 0, len(days))
	for _, d := range days {
		byDay = append(byDay, strings.ToUpper(d.String()[:2]))
	}

	return fmt.Sprintf(
		"FREQ=WEEKLY;BYDAY=%s;UNTIL=%s",
		strings.Join(byDay, ","),
		until.UTC().Format(icsUTCLayout),
	)
}

// dateIn keeps the calendar date of t and moves it to midnight in loc.
func dateIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
