package catalog

import (
	"time"

	"course-catalog/internal/apierror"
	"course-catalog/internal/model"
	"course-catalog/internal/storage"
)

// CourseCollection indexes courses by code.
//
// It owns the courses it stores and is not safe for concurrent use,
// callers sharing a collection between goroutines must lock around it.
type CourseCollection struct {
	courses storage.Storage[string, *model.Course]
}

func NewCourseCollection() *CourseCollection {
	return &CourseCollection{
		courses: storage.NewInMemoryStorage[string, *model.Course](),
	}
}

// Get returns the course stored under code.
// A missing code is reported as *apierror.NotFoundError, never as a nil course.
func (c *CourseCollection) Get(code string) (*model.Course, error) {
	course, ok := c.courses.Get(code)
	if !ok {
		return nil, &apierror.NotFoundError{Code: code}
	}

	return course, nil
}

// Set stores the course under the given code.
//
// The key is the argument, not course.Code(): a course may be filed under
// a code other than its own. Use Add to key by the course's own code.
func (c *CourseCollection) Set(code string, course *model.Course) {
	c.courses.Set(code, course)
}

// Add stores the course under its own code, replacing any course already there.
func (c *CourseCollection) Add(course *model.Course) {
	c.courses.Set(course.Code(), course)
}

// Remove deletes the course stored under code, if any.
func (c *CourseCollection) Remove(code string) {
	c.courses.Delete(code)
}

func (c *CourseCollection) Len() int {
	return c.courses.Len()
}

// Codes returns the stored keys in ascending order.
func (c *CourseCollection) Codes() []string {
	return c.courses.Keys()
}

// Courses returns the stored courses ordered by key.
func (c *CourseCollection) Courses() []*model.Course {
	pairs := c.courses.GetAll()

	courses := make([]*model.Course, 0, len(pairs))
	for _, pair := range pairs {
		courses = append(courses, pair.Value)
	}

	return courses
}

// MeetingOn returns the courses that meet on the day, ordered by key.
func (c *CourseCollection) MeetingOn(day time.Weekday) []*model.Course {
	var courses []*model.Course
	for _, course := range c.Courses() {
		if course.MeetsOn(day) {
			courses = append(courses, course)
		}
	}

	return courses
}
