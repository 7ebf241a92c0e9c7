package catalog

import (
	"reflect"
	"testing"
	"time"

	"github.com/dhuffy9/SemesterSync/internal/course"
)

func TestParseMeeting(t *testing.T) {
	cases := []struct {
		in       string
		wantDays []time.Weekday
		start    string
		end      string
	}{
		{"MWF 9:30 AM - 10:45 AM", []time.Weekday{time.Monday, time.Wednesday, time.Friday}, "9:30", "10:45"},
		{"TR 2:00 PM - 3:15 PM", []time.Weekday{time.Tuesday, time.Thursday}, "14:00", "15:15"},
		{"U 8:00 AM - 9:00 AM", []time.Weekday{time.Sunday}, "8:00", "9:00"},
		{"S 10:00:00 AM - 11:50:00 AM", []time.Weekday{time.Saturday}, "10:00", "11:50"},
		{"mwf 9:30 am - 10:45 am", []time.Weekday{time.Monday, time.Wednesday, time.Friday}, "9:30", "10:45"},
		{"Lecture MW 1:00 PM - 2:15 PM Room 204", []time.Weekday{time.Monday, time.Wednesday}, "13:00", "14:15"},
	}
	for _, c := range cases {
		m, ok := ParseMeeting(c.in)
		if !ok {
			t.Errorf("ParseMeeting(%q) failed", c.in)
			continue
		}
		if !reflect.DeepEqual(m.Days, c.wantDays) {
			t.Errorf("ParseMeeting(%q) days = %v, want %v", c.in, m.Days, c.wantDays)
		}
		start, _ := course.ParseClock(c.start)
		end, _ := course.ParseClock(c.end)
		if m.Time.Start != start || m.Time.End != end {
			t.Errorf("ParseMeeting(%q) time = %v, want %s-%s", c.in, m.Time, c.start, c.end)
		}
	}
}

func TestParseMeeting_Unparseable(t *testing.T) {
	for _, in := range []string{
		"",
		"Online - asynchronous",
		"Schedule TBD",
		"MWF", // days without times
	} {
		if _, ok := ParseMeeting(in); ok {
			t.Errorf("ParseMeeting(%q) should fail", in)
		}
	}
}

func TestParseMeeting_ReversedTimesRejected(t *testing.T) {
	if _, ok := ParseMeeting("MW 3:00 PM - 2:00 PM"); ok {
		t.Error("reversed range should not produce a meeting")
	}
}
