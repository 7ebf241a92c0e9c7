// Package layout turns schedule state into descriptive geometry for the
// week grid and the mini-calendar. Everything here is a pure function of
// its inputs; rendering and mutation live elsewhere.
package layout

import (
	"fmt"
	"time"

	"github.com/dhuffy9/SemesterSync/internal/course"
	"github.com/dhuffy9/SemesterSync/internal/schedule"
)

// Config fixes the daily display window and the vertical scale. The
// values are configuration, not engine assumptions.
type Config struct {
	DayStartHour   int     // first displayed hour, e.g. 8
	DayEndHour     int     // hour the window ends on, e.g. 22
	PixelsPerHour  float64 // vertical scale
	MinBlockHeight float64 // short entries are stretched to stay visible
}

// DefaultConfig mirrors the 8am-10pm window at 60px per hour.
func DefaultConfig() Config {
	return Config{
		DayStartHour:   8,
		DayEndHour:     22,
		PixelsPerHour:  60,
		MinBlockHeight: 28,
	}
}

// GridHeight returns the total height of a day column.
func (c Config) GridHeight() float64 {
	return float64(c.DayEndHour-c.DayStartHour) * c.PixelsPerHour
}

// LayoutError reports an entry whose stored time range cannot be placed
// on the grid. It can only arise from data injected outside the mutation
// operations, which reject such ranges up front.
type LayoutError struct {
	EntryID string
	Reason  string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("layout entry %s: %s", e.EntryID, e.Reason)
}

// Block is one positioned visual rectangle. An entry meeting on several
// days produces one block per day. Top and Height are display geometry
// only; conflict detection always works on the entry's true time range.
type Block struct {
	EntryID      string
	CourseNumber string
	Title        string
	Instructor   string
	Color        string
	Time         course.TimeRange
	Top          float64
	Height       float64
}

// DayColumn describes one of the seven columns of the week view.
type DayColumn struct {
	Date    time.Time
	Weekday time.Weekday
	IsToday bool
	Blocks  []Block
}

// WeekLayout is the full geometry of one displayed week.
type WeekLayout struct {
	WeekStart time.Time
	Days      [7]DayColumn
}

// WeekStart returns the Sunday on or before the given date, truncated to
// midnight in the date's location.
func WeekStart(d time.Time) time.Time {
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// Week lays out the schedule's current week: seven day columns, each
// holding a block for every entry meeting on that weekday. Overlapping
// blocks in one column are emitted as-is; the conflict detector prevents
// them for interactively-built schedules.
func Week(s *schedule.Schedule, cfg Config, now time.Time) (WeekLayout, error) {
	start := WeekStart(s.WeekCursor)
	wl := WeekLayout{WeekStart: start}

	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		wl.Days[i] = DayColumn{
			Date:    date,
			Weekday: date.Weekday(),
			IsToday: sameDate(date, now),
		}
	}

	for _, entry := range s.Entries {
		if !entry.Time.Valid() {
			return WeekLayout{}, &LayoutError{
				EntryID: entry.ID,
				Reason:  fmt.Sprintf("invalid time range %d-%d", entry.Time.Start, entry.Time.End),
			}
		}
		block := Block{
			EntryID:      entry.ID,
			CourseNumber: entry.CourseNumber,
			Title:        entry.Title,
			Instructor:   entry.Instructor,
			Color:        entry.Color,
			Time:         entry.Time,
			Top:          (float64(entry.Time.Start)/60 - float64(cfg.DayStartHour)) * cfg.PixelsPerHour,
			Height:       float64(entry.Time.Minutes()) / 60 * cfg.PixelsPerHour,
		}
		if block.Height < cfg.MinBlockHeight {
			block.Height = cfg.MinBlockHeight
		}
		for i := range wl.Days {
			if entry.OccursOn(wl.Days[i].Weekday) {
				wl.Days[i].Blocks = append(wl.Days[i].Blocks, block)
			}
		}
	}
	return wl, nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
