package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testFeed = `[
	{"Course":"CSC 124","Course Title":"Data Structures","Instructor":"Huffman",
	 "Schedule":"MW 9:30 AM - 10:45 AM","Avail Seats:":12,"Credits":3},
	{"Course":"ART 100","Course Title":"Intro to Drawing","Instructor":null,
	 "Schedule":null,"Avail Seats:":null,"Credits":null},
	{"Course":"CSC 235","Course Title":"Operating Systems","Instructor":"Reyes",
	 "Schedule":"TR 1:00 PM - 2:15 PM","Avail Seats:":4,"Credits":4}
]`

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestSearch_FiltersByNumberOrTitle(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testFeed))
	})

	got, err := c.Search(context.Background(), "csc")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("results = %d, want 2", len(got))
	}

	got, err = c.Search(context.Background(), "drawing")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Number != "ART 100" {
		t.Fatalf("results = %+v, want ART 100", got)
	}
}

func TestSearch_SentinelDefaults(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testFeed))
	})
	got, err := c.Search(context.Background(), "art")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if got[0].Instructor != TBD {
		t.Errorf("missing instructor = %q, want %q", got[0].Instructor, TBD)
	}
	if got[0].Credits != 0 || got[0].AvailSeats != 0 {
		t.Errorf("missing numerics should default to zero: %+v", got[0])
	}
}

func TestSearch_ErrorStatus(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	if _, err := c.Search(context.Background(), "csc"); err == nil {
		t.Fatal("non-200 response must be an error")
	}
}

func TestSearch_ContextCancel(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("[]"))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Search(ctx, "csc"); err == nil {
		t.Fatal("cancelled context must abort the lookup")
	}
}

func TestCourseDraft(t *testing.T) {
	c := Course{
		Number:       "CSC 124",
		Title:        "Data Structures",
		Instructor:   "Huffman",
		Credits:      3,
		ScheduleText: "MW 9:30 AM - 10:45 AM",
	}
	d := c.Draft()
	if d.CourseNumber != "CSC 124" || d.Credits != 3 {
		t.Fatalf("draft = %+v", d)
	}
	if len(d.Days) != 2 {
		t.Fatalf("draft days = %v, want Monday+Wednesday", d.Days)
	}
	if d.Time.Start.String() != "09:30" || d.Time.End.String() != "10:45" {
		t.Fatalf("draft time = %v", d.Time)
	}
}

func TestCourseDraft_UnparseableSchedule(t *testing.T) {
	c := Course{Number: "PE 101", ScheduleText: "Schedule TBD"}
	d := c.Draft()
	// Manual entry required: no days, zero time range.
	if len(d.Days) != 0 {
		t.Fatalf("days = %v, want none", d.Days)
	}
	if d.Time.Valid() {
		t.Fatal("unparseable schedule must leave the time range empty")
	}
}

func TestEnabled(t *testing.T) {
	if NewClient("").Enabled() {
		t.Error("empty URL should disable the catalog")
	}
	if !NewClient("http://localhost:5000/api/classes").Enabled() {
		t.Error("configured URL should enable the catalog")
	}
}
