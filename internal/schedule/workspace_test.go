package schedule

import (
	"errors"
	"testing"
	"time"
)

var day = time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)

func TestNewWorkspace(t *testing.T) {
	w := NewWorkspace(day)
	if len(w.Schedules) != 1 {
		t.Fatalf("schedules = %d, want 1", len(w.Schedules))
	}
	if w.Schedules[0].DisplayName != "Schedule 1" {
		t.Errorf("name = %q, want Schedule 1", w.Schedules[0].DisplayName)
	}
	if w.Active() != w.Schedules[0] {
		t.Error("default schedule must be active")
	}
}

func TestCreateSchedule_SequentialNames(t *testing.T) {
	w := NewWorkspace(day)
	s2 := w.CreateSchedule("", day)
	s3 := w.CreateSchedule("", day)
	if s2.DisplayName != "Schedule 2" || s3.DisplayName != "Schedule 3" {
		t.Errorf("names = %q, %q", s2.DisplayName, s3.DisplayName)
	}
	if w.ActiveID != s3.ID {
		t.Error("newest schedule must become active")
	}

	named := w.CreateSchedule("Fall Plan", day)
	if named.DisplayName != "Fall Plan" {
		t.Errorf("explicit name ignored: %q", named.DisplayName)
	}
}

func TestCloseSchedule_Last(t *testing.T) {
	w := NewWorkspace(day)
	err := w.CloseSchedule(w.Schedules[0].ID)
	if !errors.Is(err, ErrLastSchedule) {
		t.Fatalf("err = %v, want ErrLastSchedule", err)
	}
	if len(w.Schedules) != 1 {
		t.Fatalf("schedules = %d, want 1", len(w.Schedules))
	}
}

func TestCloseSchedule_PromotesFirstRemaining(t *testing.T) {
	w := NewWorkspace(day)
	s2 := w.CreateSchedule("", day)
	if w.ActiveID != s2.ID {
		t.Fatal("setup: s2 should be active")
	}
	if err := w.CloseSchedule(s2.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	if w.ActiveID != w.Schedules[0].ID {
		t.Error("closing the active schedule must activate the first remaining")
	}
}

func TestCloseSchedule_Renumbers(t *testing.T) {
	w := NewWorkspace(day)
	w.CreateSchedule("", day)
	w.CreateSchedule("", day)
	if err := w.CloseSchedule(w.Schedules[1].ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	if w.Schedules[0].DisplayName != "Schedule 1" || w.Schedules[1].DisplayName != "Schedule 2" {
		t.Errorf("names after close = %q, %q", w.Schedules[0].DisplayName, w.Schedules[1].DisplayName)
	}
}

func TestCloseSchedule_KeepsUserNames(t *testing.T) {
	w := NewWorkspace(day)
	w.CreateSchedule("Schedule 2 Fall", day)
	w.CreateSchedule("", day)
	if err := w.CloseSchedule(w.Schedules[2].ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	if got := w.Schedules[1].DisplayName; got != "Schedule 2 Fall" {
		t.Errorf("user-named tab renamed to %q", got)
	}
}

func TestSetActive(t *testing.T) {
	w := NewWorkspace(day)
	s2 := w.CreateSchedule("", day)
	if err := w.SetActive(w.Schedules[0].ID); err != nil {
		t.Fatalf("set active: %v", err)
	}
	if w.Active().ID == s2.ID {
		t.Error("active schedule not switched")
	}

	var nf *NotFoundError
	if err := w.SetActive("missing"); !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestCursorNavigation(t *testing.T) {
	s := New("Schedule 1", day)
	s.NavigateWeek(1)
	if got := s.WeekCursor; !got.Equal(day.AddDate(0, 0, 7)) {
		t.Errorf("week cursor = %v, want +7d", got)
	}

	// Month overflow follows date normalization.
	s.MonthCursor = time.Date(2026, 1, 31, 0, 0, 0, 0, time.Local)
	s.NavigateMonth(1)
	if s.MonthCursor.Month() != time.March || s.MonthCursor.Day() != 3 {
		t.Errorf("Jan 31 +1 month = %v, want Mar 3", s.MonthCursor)
	}

	picked := time.Date(2026, 9, 15, 0, 0, 0, 0, time.Local)
	s.SelectDate(picked)
	if !s.WeekCursor.Equal(picked) || !s.MonthCursor.Equal(picked) {
		t.Error("SelectDate must move both cursors")
	}

	s.GoToToday(day)
	if !s.WeekCursor.Equal(day) || !s.MonthCursor.Equal(day) {
		t.Error("GoToToday must reset both cursors")
	}
}
