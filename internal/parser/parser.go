package parser

import (
	"bufio"
	"strings"

	"course-catalog/cmd/config"
	"course-catalog/internal/apierror"
	"course-catalog/internal/catalog"
	"course-catalog/internal/model"
)

const courseFieldsCount = 6

type Parser interface {

	// ReadCourses reads all courses until the end of the input.
	// A course with an already seen code replaces the previous one.
	ReadCourses() (*catalog.CourseCollection, error)
}

type FileParser struct {
	scanner   *bufio.Scanner
	cfg       *config.Parser
	rowNumber int
}

func NewFileParser(scanner *bufio.Scanner, cfg *config.Parser) *FileParser {
	return &FileParser{
		scanner: scanner,
		cfg:     cfg,
	}
}

func (p *FileParser) ReadCourses() (*catalog.CourseCollection, error) {
	courses := catalog.NewCourseCollection()

	for p.scanWithRowNumber() {
		line := strings.TrimSpace(p.scanner.Text())
		if p.skip(line) {
			continue
		}

		course, err := p.readCourse(line, apierror.NotEmpty)
		if err != nil {
			return nil, err
		}

		courses.Add(course)
	}

	if err := p.scanner.Err(); err != nil {
		return nil, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   err.Error(),
			BaseErr:   err,
		}
	}

	return courses, nil
}

func (p *FileParser) scanWithRowNumber() bool {
	p.rowNumber++
	return p.scanner.Scan()
}

func (p *FileParser) skip(line string) bool {
	return line == "" || (p.cfg.CommentPrefix != "" && strings.HasPrefix(line, p.cfg.CommentPrefix))
}

func (p *FileParser) readCourse(line string, validateCode apierror.ValidationFn[string]) (*model.Course, error) {
	fields := strings.Split(line, p.cfg.FieldSeparator)
	if len(fields) != courseFieldsCount {
		return nil, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrCourseInvalidFormat,
		}
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	code, title, instructor, daysStr, startStr, endStr := fields[0], fields[1], fields[2], fields[3], fields[4], fields[5]

	if e := validateCode(code); e != nil {
		return nil, &apierror.ValidationError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrCodeNotSpecified,
		}
	}

	start, err := model.ParseTimeOfDay(p.cfg.TimeFormat, startStr)
	if err != nil {
		return nil, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrFailedToParseStartTime,
			BaseErr:   err,
		}
	}

	end, err := model.ParseTimeOfDay(p.cfg.TimeFormat, endStr)
	if err != nil {
		return nil, &apierror.ParseError{
			RowNumber: p.rowNumber,
			UserMsg:   apierror.ErrFailedToParseEndTime,
			BaseErr:   err,
		}
	}

	course := model.NewCourse(code)
	course.Title = title
	course.Instructor = instructor
	course.StartTime = start
	course.EndTime = end

	if err = p.readDays(course, daysStr); err != nil {
		return nil, err
	}

	return course, nil
}

func (p *FileParser) readDays(course *model.Course, s string) error {
	if s == "" {
		return nil
	}

	for _, name := range strings.Split(s, p.cfg.DaysSeparator) {
		day, err := model.ParseWeekday(name)
		if err != nil {
			return &apierror.ValidationError{
				RowNumber: p.rowNumber,
				UserMsg:   err.Error(),
			}
		}

		course.AddDay(day)
	}

	return nil
}
