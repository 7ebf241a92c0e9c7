package course

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned when a clock string has no
// recognizable digits:colon pattern.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// TimeOfDay is a clock time expressed as minutes since midnight (0-1439).
type TimeOfDay int

const minutesPerDay = 24 * 60

var clockPattern = regexp.MustCompile(`(\d{1,2}):(\d{2})(?::\d{2})?\s*([AaPp][Mm])?`)

// ParseClock parses "H:MM" or "HH:MM", with an optional seconds component
// and an optional 12-hour "AM"/"PM" suffix as seen in catalog strings.
func ParseClock(text string) (TimeOfDay, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}
	minute, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}

	switch strings.ToUpper(m[3]) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, text)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// Hour returns the hour component (0-23).
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component (0-59).
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Valid reports whether t falls within a single day.
func (t TimeOfDay) Valid() bool { return t >= 0 && t < minutesPerDay }

// String renders the time in 24-hour "HH:MM" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Format12h renders the time as "H:MM AM/PM". Hours 0 and 12 both
// display as 12.
func (t TimeOfDay) Format12h() string {
	period := "AM"
	if t.Hour() >= 12 {
		period = "PM"
	}
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), period)
}

// TimeRange is a start/end clock pair within one day. Ranges are
// half-open: the end minute itself is not occupied.
type TimeRange struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Valid reports whether the range has positive duration and both ends
// fall within a single day.
func (r TimeRange) Valid() bool {
	return r.Start.Valid() && r.End.Valid() && r.Start < r.End
}

// Minutes returns the duration of the range in minutes.
func (r TimeRange) Minutes() int { return int(r.End - r.Start) }

// Overlaps reports whether two ranges share any minute. Back-to-back
// ranges (one ends exactly when the other starts) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// String renders the range as "H:MM AM - H:MM PM" for display.
func (r TimeRange) String() string {
	return r.Start.Format12h() + " - " + r.End.Format12h()
}
