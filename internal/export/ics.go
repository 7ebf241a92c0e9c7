// Package export writes a schedule out as an iCalendar file so it can be
// imported into an external calendar. Each course becomes one weekly
// recurring VEVENT anchored on its first meeting day of the displayed
// week.
package export

import (
	"fmt"
	"os"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/dhuffy9/SemesterSync/internal/course"
	"github.com/dhuffy9/SemesterSync/internal/layout"
	"github.com/dhuffy9/SemesterSync/internal/schedule"
)

var byDayCodes = map[time.Weekday]string{
	time.Sunday:    "SU",
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
}

// Calendar serializes the schedule's entries as an iCalendar document.
func Calendar(s *schedule.Schedule) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//SemesterSync//EN")

	weekStart := layout.WeekStart(s.WeekCursor)
	for _, entry := range s.Entries {
		if len(entry.Days) == 0 || !entry.Time.Valid() {
			return "", fmt.Errorf("entry %s has no usable meeting time", entry.ID)
		}
		ev := cal.AddEvent(entry.ID + "@semestersync")
		ev.SetCreatedTime(time.Now())
		ev.SetDtStampTime(time.Now())
		ev.SetSummary(fmt.Sprintf("%s: %s", entry.CourseNumber, entry.Title))
		if entry.Instructor != "" {
			ev.SetDescription("Instructor: " + entry.Instructor)
		}

		anchor := firstMeeting(weekStart, entry)
		ev.SetStartAt(at(anchor, entry.Time.Start))
		ev.SetEndAt(at(anchor, entry.Time.End))
		ev.AddRrule("FREQ=WEEKLY;BYDAY=" + byDayRule(entry.Days))
	}
	return cal.Serialize(), nil
}

// WriteFile writes the schedule's iCalendar document to the given path.
func WriteFile(s *schedule.Schedule, path string) error {
	doc, err := Calendar(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write ics file: %w", err)
	}
	return nil
}

// firstMeeting returns the date of the entry's earliest weekday within
// the week starting at weekStart (a Sunday).
func firstMeeting(weekStart time.Time, entry course.Entry) time.Time {
	first := entry.Days[0]
	for _, d := range entry.Days[1:] {
		if d < first {
			first = d
		}
	}
	return weekStart.AddDate(0, 0, int(first))
}

func at(date time.Time, t course.TimeOfDay) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

func byDayRule(days []time.Weekday) string {
	rule := ""
	for i, d := range days {
		if i > 0 {
			rule += ","
		}
		rule += byDayCodes[d]
	}
	return rule
}
