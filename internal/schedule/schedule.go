package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/dhuffy9/SemesterSync/internal/course"
)

// Schedule is one independent weekly course calendar: an ordered set of
// entries plus the dates its week view and mini-calendar are showing.
// TotalCredits is derived and recomputed by every mutation; nothing else
// may write it.
type Schedule struct {
	ID           string
	DisplayName  string
	WeekCursor   time.Time // the displayed week contains this date
	MonthCursor  time.Time // the mini-calendar shows this date's month
	Entries      []course.Entry
	TotalCredits int
}

// Draft carries user-submitted entry fields before validation. A Draft
// has no ID; AddEntry assigns one and UpdateEntry reuses the target's.
type Draft struct {
	CourseNumber string
	Title        string
	Instructor   string
	Credits      int
	Days         []time.Weekday
	Time         course.TimeRange
	Color        string
}

// New creates an empty schedule cursored on the given date.
func New(name string, on time.Time) *Schedule {
	return &Schedule{
		ID:          uuid.NewString(),
		DisplayName: name,
		WeekCursor:  on,
		MonthCursor: on,
	}
}

// FindConflict returns the first entry that shares a weekday with the
// candidate and overlaps it in time, or nil if none does. An entry whose
// id equals excludeID is skipped, so an edit never conflicts with the
// entry's own prior version. Pass "" when adding.
func FindConflict(candidate course.Entry, s *Schedule, excludeID string) *ConflictError {
	for i := range s.Entries {
		existing := &s.Entries[i]
		if excludeID != "" && existing.ID == excludeID {
			continue
		}
		shared := candidate.SharedDays(*existing)
		if len(shared) == 0 {
			continue
		}
		if candidate.Time.Overlaps(existing.Time) {
			return &ConflictError{Conflicting: *existing, SharedDays: shared}
		}
	}
	return nil
}

func (d Draft) validate() error {
	if len(course.NormalizeDays(d.Days)) == 0 {
		return ErrEmptyDaySelection
	}
	if !d.Time.Valid() {
		return ErrInvalidTimeRange
	}
	return nil
}

func (d Draft) entry(id string) course.Entry {
	color := d.Color
	if color == "" {
		color = course.DefaultColor
	}
	return course.Entry{
		ID:           id,
		CourseNumber: d.CourseNumber,
		Title:        d.Title,
		Instructor:   d.Instructor,
		Credits:      d.Credits,
		Days:         course.NormalizeDays(d.Days),
		Time:         d.Time,
		Color:        color,
	}
}

// AddEntry validates the draft, checks it against every existing entry,
// and on success appends it with a fresh id. A rejected draft leaves the
// schedule untouched.
func (s *Schedule) AddEntry(draft Draft) (course.Entry, error) {
	if err := draft.validate(); err != nil {
		return course.Entry{}, err
	}
	entry := draft.entry(uuid.NewString())
	if conflict := FindConflict(entry, s, ""); conflict != nil {
		return course.Entry{}, conflict
	}
	s.Entries = append(s.Entries, entry)
	s.recomputeCredits()
	return entry, nil
}

// UpdateEntry replaces the entry with the given id in place, keeping its
// position in the list. The entry being edited is excluded from the
// conflict check so it never collides with itself.
func (s *Schedule) UpdateEntry(id string, draft Draft) (course.Entry, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return course.Entry{}, &NotFoundError{Kind: "entry", ID: id}
	}
	if err := draft.validate(); err != nil {
		return course.Entry{}, err
	}
	entry := draft.entry(id)
	if conflict := FindConflict(entry, s, id); conflict != nil {
		return course.Entry{}, conflict
	}
	s.Entries[idx] = entry
	s.recomputeCredits()
	return entry, nil
}

// RemoveEntry deletes the entry with the given id.
func (s *Schedule) RemoveEntry(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return &NotFoundError{Kind: "entry", ID: id}
	}
	s.Entries = append(s.Entries[:idx], s.Entries[idx+1:]...)
	s.recomputeCredits()
	return nil
}

// Entry returns the entry with the given id, if present.
func (s *Schedule) Entry(id string) (course.Entry, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return course.Entry{}, false
	}
	return s.Entries[idx], true
}

func (s *Schedule) indexOf(id string) int {
	for i := range s.Entries {
		if s.Entries[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Schedule) recomputeCredits() {
	total := 0
	for i := range s.Entries {
		total += s.Entries[i].Credits
	}
	s.TotalCredits = total
}
