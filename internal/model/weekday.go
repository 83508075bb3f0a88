package model

import (
	"errors"
	"strings"
	"time"

	"course-catalog/internal/apierror"

	"golang.org/x/text/cases"
)

var weekdaysByName = func() map[string]time.Weekday {
	names := make(map[string]time.Weekday, 14)
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := cases.Fold().String(d.String())
		names[full] = d
		names[full[:3]] = d
	}

	return names
}()

// ParseWeekday accepts a full ("Monday") or short ("Mon") english weekday name
// in any letter case.
func ParseWeekday(s string) (time.Weekday, error) {
	d, ok := weekdaysByName[cases.Fold().String(strings.TrimSpace(s))]
	if !ok {
		return 0, errors.New(apierror.ErrUnknownWeekday)
	}

	return d, nil
}

// ShortWeekday returns the three letter name of the day, e.g. "Wed".
func ShortWeekday(d time.Weekday) string {
	return d.String()[:3]
}
