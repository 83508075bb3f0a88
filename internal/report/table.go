package report

import (
	"io"
	"strings"

	"course-catalog/internal/model"

	"github.com/olekukonko/tablewriter"
)

var header = []string{"Code", "Title", "Instructor", "Days", "Start", "End"}

// RenderCourses writes the courses as a text table, one row per course
// in the given order.
func RenderCourses(w io.Writer, courses []*model.Course, timeFormat string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)

	for _, c := range courses {
		table.Append(Row(c, timeFormat))
	}

	table.Render()
}

func Row(c *model.Course, timeFormat string) []string {
	return []string{
		c.Code(),
		c.Title,
		c.Instructor,
		Days(c),
		c.StartTime.Format(timeFormat),
		c.EndTime.Format(timeFormat),
	}
}

// Days lists meeting days in insertion order, duplicates included.
func Days(c *model.Course) string {
	days := c.Days()

	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, model.ShortWeekday(d))
	}

	return strings.Join(names, ", ")
}
