package store

import (
	"fmt"
	"time"

	"github.com/dhuffy9/SemesterSync/internal/course"
	"github.com/dhuffy9/SemesterSync/internal/schedule"
)

// Dates round-trip as plain calendar dates; the cursors never carry a
// meaningful time of day.
const dateFormat = "2006-01-02"

type entryDoc struct {
	ID           string `json:"id"`
	CourseNumber string `json:"course_number"`
	Title        string `json:"title"`
	Instructor   string `json:"instructor"`
	Credits      int    `json:"credits"`
	Days         []int  `json:"days"`
	StartMinutes int    `json:"start_minutes"`
	EndMinutes   int    `json:"end_minutes"`
	Color        string `json:"color"`
}

type scheduleDoc struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"display_name"`
	WeekCursor  string     `json:"week_cursor"`
	MonthCursor string     `json:"month_cursor"`
	Entries     []entryDoc `json:"entries"`
}

type workspaceDoc struct {
	Schedules []scheduleDoc `json:"schedules"`
	ActiveID  string        `json:"active_id"`
}

func encodeWorkspace(w *schedule.Workspace) workspaceDoc {
	doc := workspaceDoc{ActiveID: w.ActiveID}
	for _, s := range w.Schedules {
		sd := scheduleDoc{
			ID:          s.ID,
			DisplayName: s.DisplayName,
			WeekCursor:  s.WeekCursor.Format(dateFormat),
			MonthCursor: s.MonthCursor.Format(dateFormat),
		}
		for _, e := range s.Entries {
			ed := entryDoc{
				ID:           e.ID,
				CourseNumber: e.CourseNumber,
				Title:        e.Title,
				Instructor:   e.Instructor,
				Credits:      e.Credits,
				StartMinutes: int(e.Time.Start),
				EndMinutes:   int(e.Time.End),
				Color:        e.Color,
			}
			for _, d := range e.Days {
				ed.Days = append(ed.Days, int(d))
			}
			sd.Entries = append(sd.Entries, ed)
		}
		doc.Schedules = append(doc.Schedules, sd)
	}
	return doc
}

func (doc workspaceDoc) decode() (*schedule.Workspace, error) {
	if len(doc.Schedules) == 0 {
		return nil, fmt.Errorf("saved workspace has no schedules")
	}

	w := &schedule.Workspace{ActiveID: doc.ActiveID}
	for _, sd := range doc.Schedules {
		week, err := time.ParseInLocation(dateFormat, sd.WeekCursor, time.Local)
		if err != nil {
			return nil, fmt.Errorf("schedule %s week cursor: %w", sd.ID, err)
		}
		month, err := time.ParseInLocation(dateFormat, sd.MonthCursor, time.Local)
		if err != nil {
			return nil, fmt.Errorf("schedule %s month cursor: %w", sd.ID, err)
		}
		s := &schedule.Schedule{
			ID:          sd.ID,
			DisplayName: sd.DisplayName,
			WeekCursor:  week,
			MonthCursor: month,
		}
		total := 0
		for _, ed := range sd.Entries {
			var days []time.Weekday
			for _, d := range ed.Days {
				if d < 0 || d > 6 {
					return nil, fmt.Errorf("entry %s: weekday %d out of range", ed.ID, d)
				}
				days = append(days, time.Weekday(d))
			}
			e := course.Entry{
				ID:           ed.ID,
				CourseNumber: ed.CourseNumber,
				Title:        ed.Title,
				Instructor:   ed.Instructor,
				Credits:      ed.Credits,
				Days:         course.NormalizeDays(days),
				Time: course.TimeRange{
					Start: course.TimeOfDay(ed.StartMinutes),
					End:   course.TimeOfDay(ed.EndMinutes),
				},
				Color: ed.Color,
			}
			if len(e.Days) == 0 {
				return nil, fmt.Errorf("entry %s: no meeting days", ed.ID)
			}
			if !e.Time.Valid() {
				return nil, fmt.Errorf("entry %s: invalid time range %d..%d", ed.ID, ed.StartMinutes, ed.EndMinutes)
			}
			s.Entries = append(s.Entries, e)
			total += e.Credits
		}
		// TotalCredits is derived state; recompute instead of trusting
		// the stored value.
		s.TotalCredits = total
		w.Schedules = append(w.Schedules, s)
	}

	if _, ok := w.Schedule(w.ActiveID); !ok {
		w.ActiveID = w.Schedules[0].ID
	}
	return w, nil
}
