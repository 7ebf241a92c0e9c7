// Package catalog consumes the read-only course-catalog endpoint and
// turns its rows into entry drafts. Missing fields get sentinel defaults
// instead of failing; the user still reviews and submits every draft.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dhuffy9/SemesterSync/internal/schedule"
)

// TBD is the sentinel shown for catalog fields the feed left blank.
const TBD = "TBD"

// Course is one catalog row.
type Course struct {
	Number       string
	Title        string
	Instructor   string
	ScheduleText string
	AvailSeats   int
	Credits      int
}

// Draft converts the catalog row into an entry draft. When the schedule
// text parses, days and times are pre-filled; otherwise they stay empty
// and the user fills them in by hand.
func (c Course) Draft() schedule.Draft {
	d := schedule.Draft{
		CourseNumber: c.Number,
		Title:        c.Title,
		Instructor:   c.Instructor,
		Credits:      c.Credits,
	}
	if meeting, ok := ParseMeeting(c.ScheduleText); ok {
		d.Days = meeting.Days
		d.Time = meeting.Time
	}
	return d
}

// Matches reports whether the row's course number or title contains the
// search term, case-insensitively.
func (c Course) Matches(term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(c.Number), term) ||
		strings.Contains(strings.ToLower(c.Title), term)
}

// rawCourse mirrors the feed's record keys, including the stray colon in
// "Avail Seats:". Numeric columns arrive as JSON numbers but may be null.
type rawCourse struct {
	Course      string       `json:"Course"`
	CourseTitle string       `json:"Course Title"`
	Instructor  *string      `json:"Instructor"`
	Schedule    *string      `json:"Schedule"`
	AvailSeats  *json.Number `json:"Avail Seats:"`
	Credits     *json.Number `json:"Credits"`
}

func (r rawCourse) course() Course {
	c := Course{
		Number:     r.Course,
		Title:      r.CourseTitle,
		Instructor: TBD,
	}
	if r.Instructor != nil && *r.Instructor != "" {
		c.Instructor = *r.Instructor
	}
	if r.Schedule != nil {
		c.ScheduleText = *r.Schedule
	}
	if r.AvailSeats != nil {
		if n, err := r.AvailSeats.Int64(); err == nil {
			c.AvailSeats = int(n)
		}
	}
	if r.Credits != nil {
		if f, err := r.Credits.Float64(); err == nil && f > 0 {
			c.Credits = int(f)
		}
	}
	return c
}

// Client queries the /api/classes endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given endpoint URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether a catalog endpoint is configured.
func (c *Client) Enabled() bool { return c != nil && c.baseURL != "" }

// Search fetches the catalog and filters it by the search term. The feed
// returns the full list; matching happens client-side, as the original
// endpoint offers no query parameter.
func (c *Client) Search(ctx context.Context, term string) ([]Course, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var raws []rawCourse
	if err := json.NewDecoder(resp.Body).Decode(&raws); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	var matches []Course
	for _, r := range raws {
		course := r.course()
		if course.Matches(term) {
			matches = append(matches, course)
		}
	}
	return matches, nil
}
