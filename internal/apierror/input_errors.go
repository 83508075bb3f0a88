package apierror

const (
	ErrCourseInvalidFormat = "course must be in format: <code>;<title>;<instructor>;<days>;<start>;<end>"
	ErrCodeNotSpecified    = "course code is not specified"

	ErrUnknownWeekday         = "unknown weekday"
	ErrFailedToParseStartTime = "failed to parse start time"
	ErrFailedToParseEndTime   = "failed to parse end time"

	ErrValueMustNotBeEmpty = "value must not be empty"
)
