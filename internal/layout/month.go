package layout

import "time"

// MonthCell is one day of the mini-calendar.
type MonthCell struct {
	Day        int
	IsToday    bool
	IsSelected bool
}

// MonthLayout is a month laid out for the mini-calendar: the weekday
// offset of day 1 as leading blank cells, then one cell per day.
type MonthLayout struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Cells         []MonthCell
}

// Month lays out the month containing cursor. The cell matching selected
// is flagged, as is the real current date when it falls in this month.
func Month(cursor, selected, now time.Time) MonthLayout {
	year, month, _ := cursor.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, cursor.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	ml := MonthLayout{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Cells:         make([]MonthCell, daysInMonth),
	}

	ny, nm, nd := now.Date()
	sy, sm, sd := selected.Date()
	for day := 1; day <= daysInMonth; day++ {
		ml.Cells[day-1] = MonthCell{
			Day:        day,
			IsToday:    year == ny && month == nm && day == nd,
			IsSelected: year == sy && month == sm && day == sd,
		}
	}
	return ml
}
