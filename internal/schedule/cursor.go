package schedule

import "time"

// NavigateWeek moves the week view by whole weeks in either direction.
func (s *Schedule) NavigateWeek(weeks int) {
	s.WeekCursor = s.WeekCursor.AddDate(0, 0, 7*weeks)
}

// NavigateMonth moves the mini-calendar by whole months. Day-of-month
// overflow follows time.AddDate's normalization, so advancing from
// Jan 31 lands in early March rather than failing.
func (s *Schedule) NavigateMonth(months int) {
	s.MonthCursor = s.MonthCursor.AddDate(0, months, 0)
}

// SelectDate points both cursors at the given date: the mini-calendar
// highlights it and the week view jumps to its week.
func (s *Schedule) SelectDate(d time.Time) {
	s.MonthCursor = d
	s.WeekCursor = d
}

// GoToToday resets both cursors to the given "now".
func (s *Schedule) GoToToday(now time.Time) {
	s.WeekCursor = now
	s.MonthCursor = now
}
