package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/dhuffy9/SemesterSync/internal/course"
)

// Validation failures for add/edit drafts.
var (
	// ErrEmptyDaySelection means the draft selected no weekdays.
	ErrEmptyDaySelection = errors.New("please select at least one day")
	// ErrInvalidTimeRange means the draft's end time is not after its start.
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	// ErrLastSchedule means the sole remaining schedule cannot be closed.
	ErrLastSchedule = errors.New("cannot close the last schedule")
)

// ConflictError reports that a candidate entry overlaps an existing one.
// SharedDays holds only the weekdays present in both the candidate's and
// the conflicting entry's selections.
type ConflictError struct {
	Conflicting course.Entry
	SharedDays  []time.Weekday
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("schedule conflict with %s: %s on %s",
		e.Conflicting.CourseNumber, e.Conflicting.Title, course.DayNames(e.SharedDays))
}

// NotFoundError reports a lookup by id that matched nothing.
type NotFoundError struct {
	Kind string // "entry" or "schedule"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}
