package course

import (
	"sort"
	"time"
)

// DefaultColor is applied to entries whose draft carries no color tag.
const DefaultColor = "#4285F4"

// Entry is one scheduled, recurring weekly class block. An Entry belongs
// to exactly one schedule and keeps its ID across edits.
type Entry struct {
	ID           string
	CourseNumber string
	Title        string
	Instructor   string
	Credits      int
	Days         []time.Weekday
	Time         TimeRange
	Color        string
}

// OccursOn reports whether the entry meets on the given weekday.
func (e Entry) OccursOn(day time.Weekday) bool {
	for _, d := range e.Days {
		if d == day {
			return true
		}
	}
	return false
}

// SharedDays returns the weekdays this entry has in common with other,
// ordered Sunday first.
func (e Entry) SharedDays(other Entry) []time.Weekday {
	var shared []time.Weekday
	for _, d := range e.Days {
		if other.OccursOn(d) {
			shared = append(shared, d)
		}
	}
	sort.Slice(shared, func(i, j int) bool { return shared[i] < shared[j] })
	return shared
}

// NormalizeDays collapses duplicate weekdays and orders them Sunday first.
func NormalizeDays(days []time.Weekday) []time.Weekday {
	seen := make(map[time.Weekday]bool, len(days))
	var out []time.Weekday
	for _, d := range days {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DayNames renders weekdays as full names joined by ", ", e.g.
// "Monday, Wednesday".
func DayNames(days []time.Weekday) string {
	out := ""
	for i, d := range days {
		if i > 0 {
			out += ", "
		}
		out += d.String()
	}
	return out
}
