package schedule

import (
	"fmt"
	"time"
)

// Workspace is the full set of schedules plus which one is active. It is
// the unit of persistence: the store serializes it after every mutation.
type Workspace struct {
	Schedules []*Schedule
	ActiveID  string
}

// NewWorkspace builds a first-run workspace holding one default schedule.
func NewWorkspace(on time.Time) *Workspace {
	s := New("Schedule 1", on)
	return &Workspace{
		Schedules: []*Schedule{s},
		ActiveID:  s.ID,
	}
}

// Active returns the active schedule, falling back to the first one if
// the active id somehow references nothing.
func (w *Workspace) Active() *Schedule {
	for _, s := range w.Schedules {
		if s.ID == w.ActiveID {
			return s
		}
	}
	return w.Schedules[0]
}

// Schedule returns the schedule with the given id, if present.
func (w *Workspace) Schedule(id string) (*Schedule, bool) {
	for _, s := range w.Schedules {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// CreateSchedule appends a new empty schedule and makes it active. An
// empty name gets the next sequential default, "Schedule N".
func (w *Workspace) CreateSchedule(name string, on time.Time) *Schedule {
	if name == "" {
		name = fmt.Sprintf("Schedule %d", len(w.Schedules)+1)
	}
	s := New(name, on)
	w.Schedules = append(w.Schedules, s)
	w.ActiveID = s.ID
	return s
}

// CloseSchedule removes the schedule with the given id. Closing the sole
// remaining schedule is refused. If the active schedule is closed, the
// first remaining one becomes active. Default-named schedules are
// renumbered so the tab row reads "Schedule 1..N" again.
func (w *Workspace) CloseSchedule(id string) error {
	if len(w.Schedules) <= 1 {
		return ErrLastSchedule
	}
	idx := -1
	for i, s := range w.Schedules {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &NotFoundError{Kind: "schedule", ID: id}
	}
	w.Schedules = append(w.Schedules[:idx], w.Schedules[idx+1:]...)
	if w.ActiveID == id {
		w.ActiveID = w.Schedules[0].ID
	}
	w.renumber()
	return nil
}

// SetActive switches the active schedule.
func (w *Workspace) SetActive(id string) error {
	if _, ok := w.Schedule(id); !ok {
		return &NotFoundError{Kind: "schedule", ID: id}
	}
	w.ActiveID = id
	return nil
}

const defaultNamePattern = "Schedule %d"

// renumber restores the "Schedule 1..N" sequence on default-named tabs.
// Only names that are exactly a default name are touched; anything the
// user typed stays as is.
func (w *Workspace) renumber() {
	for i, s := range w.Schedules {
		var n int
		if _, err := fmt.Sscanf(s.DisplayName, defaultNamePattern, &n); err != nil {
			continue
		}
		if s.DisplayName != fmt.Sprintf(defaultNamePattern, n) {
			continue
		}
		s.DisplayName = fmt.Sprintf(defaultNamePattern, i+1)
	}
}
