package catalog

import (
	"regexp"
	"time"

	"github.com/dhuffy9/SemesterSync/internal/course"
)

// Meeting is the structured part of a catalog schedule description.
type Meeting struct {
	Days []time.Weekday
	Time course.TimeRange
}

// dayLetters is the catalog's weekday encoding; R is Thursday and U is
// Sunday, S is Saturday.
var dayLetters = map[byte]time.Weekday{
	'M': time.Monday,
	'T': time.Tuesday,
	'W': time.Wednesday,
	'R': time.Thursday,
	'F': time.Friday,
	'S': time.Saturday,
	'U': time.Sunday,
}

var meetingPattern = regexp.MustCompile(`(?i)([MTWRFSU]+)\s+(\d+:\d+(?::\d+)?\s*[AP]M)\s*-\s*(\d+:\d+(?::\d+)?\s*[AP]M)`)

// ParseMeeting extracts a weekday set and time range from a free-text
// schedule description of the shape "MWF 9:30 AM - 10:45 AM". The second
// return is false when the text does not parse; callers must then treat
// the description as opaque and require manual entry.
func ParseMeeting(text string) (Meeting, bool) {
	m := meetingPattern.FindStringSubmatch(text)
	if m == nil {
		return Meeting{}, false
	}

	var days []time.Weekday
	for i := 0; i < len(m[1]); i++ {
		letter := m[1][i]
		if letter >= 'a' && letter <= 'z' {
			letter -= 'a' - 'A'
		}
		if d, ok := dayLetters[letter]; ok {
			days = append(days, d)
		}
	}
	days = course.NormalizeDays(days)
	if len(days) == 0 {
		return Meeting{}, false
	}

	start, err := course.ParseClock(m[2])
	if err != nil {
		return Meeting{}, false
	}
	end, err := course.ParseClock(m[3])
	if err != nil {
		return Meeting{}, false
	}
	tr := course.TimeRange{Start: start, End: end}
	if !tr.Valid() {
		return Meeting{}, false
	}
	return Meeting{Days: days, Time: tr}, true
}
