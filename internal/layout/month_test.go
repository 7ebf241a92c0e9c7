package layout

import (
	"testing"
	"time"
)

func TestMonth_CellCount(t *testing.T) {
	// August 2026 has 31 days and starts on a Saturday (index 6).
	cursor := time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local)
	ml := Month(cursor, cursor, cursor)

	if ml.LeadingBlanks != 6 {
		t.Errorf("leading blanks = %d, want 6", ml.LeadingBlanks)
	}
	if len(ml.Cells) != 31 {
		t.Errorf("cells = %d, want 31", len(ml.Cells))
	}
	if ml.LeadingBlanks+len(ml.Cells) != 37 {
		t.Errorf("total cells = %d, want 37", ml.LeadingBlanks+len(ml.Cells))
	}
}

func TestMonth_February(t *testing.T) {
	cursor := time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local)
	ml := Month(cursor, cursor, cursor)
	if len(ml.Cells) != 28 {
		t.Errorf("Feb 2026 cells = %d, want 28", len(ml.Cells))
	}

	leap := time.Date(2028, 2, 1, 0, 0, 0, 0, time.Local)
	if got := Month(leap, leap, leap); len(got.Cells) != 29 {
		t.Errorf("Feb 2028 cells = %d, want 29", len(got.Cells))
	}
}

func TestMonth_Flags(t *testing.T) {
	cursor := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	selected := time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)
	ml := Month(cursor, selected, now)

	for _, cell := range ml.Cells {
		wantToday := cell.Day == 31
		wantSelected := cell.Day == 15
		if cell.IsToday != wantToday {
			t.Errorf("day %d IsToday = %v", cell.Day, cell.IsToday)
		}
		if cell.IsSelected != wantSelected {
			t.Errorf("day %d IsSelected = %v", cell.Day, cell.IsSelected)
		}
	}
}

func TestMonth_FlagsRequireSameMonth(t *testing.T) {
	cursor := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	// Today and selection fall in other months; no cell may be flagged.
	selected := time.Date(2026, 7, 15, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	ml := Month(cursor, selected, now)
	for _, cell := range ml.Cells {
		if cell.IsToday || cell.IsSelected {
			t.Fatalf("day %d should carry no flags", cell.Day)
		}
	}
}
