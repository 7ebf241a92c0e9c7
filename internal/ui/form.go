package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dhuffy9/SemesterSync/internal/catalog"
	"github.com/dhuffy9/SemesterSync/internal/course"
	"github.com/dhuffy9/SemesterSync/internal/schedule"
)

// Form field order. The search box is only active when a catalog
// endpoint is configured.
const (
	fieldSearch = iota
	fieldCourseNum
	fieldTitle
	fieldInstructor
	fieldCredits
	fieldColor
	fieldStart
	fieldEnd
	fieldDays
	fieldCount
)

var formDays = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

type searchDebounceMsg struct{ token int }

type searchResultsMsg struct {
	token   int
	results []catalog.Course
	err     error
}

// courseForm is the add/edit surface. editID is empty when adding.
type courseForm struct {
	editID string

	inputs    map[int]textinput.Model
	start     timeInput
	end       timeInput
	days      [7]bool
	dayCursor int
	focus     int

	// Catalog search state. token identifies the newest request; results
	// arriving under an older token are stale and dropped.
	token        int
	searching    bool
	results      []catalog.Course
	resultCursor int

	errText string
}

func newCourseForm() courseForm {
	mk := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		return ti
	}
	inputs := map[int]textinput.Model{
		fieldSearch:     mk("Search catalog...", 64),
		fieldCourseNum:  mk("CSC 124", 16),
		fieldTitle:      mk("Course title...", 128),
		fieldInstructor: mk("Instructor...", 64),
		fieldCredits:    mk("0", 2),
		fieldColor:      mk(course.DefaultColor, 16),
	}
	return courseForm{
		inputs: inputs,
		start:  newTimeInput(),
		end:    newTimeInput(),
	}
}

func (f *courseForm) populate(e course.Entry) {
	f.editID = e.ID
	f.setInput(fieldCourseNum, e.CourseNumber)
	f.setInput(fieldTitle, e.Title)
	f.setInput(fieldInstructor, e.Instructor)
	f.setInput(fieldCredits, strconv.Itoa(e.Credits))
	f.setInput(fieldColor, e.Color)
	f.start.SetValue(e.Time.Start)
	f.end.SetValue(e.Time.End)
	f.days = [7]bool{}
	for _, d := range e.Days {
		f.days[int(d)] = true
	}
}

func (f *courseForm) applyCatalog(c catalog.Course) {
	f.setInput(fieldCourseNum, c.Number)
	f.setInput(fieldTitle, c.Title)
	f.setInput(fieldInstructor, c.Instructor)
	if c.Credits > 0 {
		f.setInput(fieldCredits, strconv.Itoa(c.Credits))
	}
	f.days = [7]bool{}
	f.start.Reset()
	f.end.Reset()
	if meeting, ok := catalog.ParseMeeting(c.ScheduleText); ok {
		for _, d := range meeting.Days {
			f.days[int(d)] = true
		}
		f.start.SetValue(meeting.Time.Start)
		f.end.SetValue(meeting.Time.End)
	}
	f.results = nil
	f.resultCursor = 0
}

func (f *courseForm) setInput(field int, value string) {
	ti := f.inputs[field]
	ti.SetValue(value)
	f.inputs[field] = ti
}

func (f *courseForm) value(field int) string {
	return strings.TrimSpace(f.inputs[field].Value())
}

// draft assembles the submitted fields. Day and time-range validation is
// the schedule's job; the form only rejects text that does not parse at
// all.
func (f *courseForm) draft() (schedule.Draft, error) {
	d := schedule.Draft{
		CourseNumber: f.value(fieldCourseNum),
		Title:        f.value(fieldTitle),
		Instructor:   f.value(fieldInstructor),
		Color:        f.value(fieldColor),
	}
	if v := f.value(fieldCredits); v != "" {
		credits, err := strconv.Atoi(v)
		if err != nil || credits < 0 {
			return schedule.Draft{}, fmt.Errorf("credits must be a non-negative number")
		}
		d.Credits = credits
	}
	start, err := f.start.Value()
	if err != nil {
		return schedule.Draft{}, fmt.Errorf("start time: %w", err)
	}
	end, err := f.end.Value()
	if err != nil {
		return schedule.Draft{}, fmt.Errorf("end time: %w", err)
	}
	d.Time = course.TimeRange{Start: start, End: end}
	for i, on := range f.days {
		if on {
			d.Days = append(d.Days, time.Weekday(i))
		}
	}
	return d, nil
}

func (f *courseForm) focusCmd() tea.Cmd {
	for i, ti := range f.inputs {
		ti.Blur()
		f.inputs[i] = ti
	}
	f.start.Blur()
	f.end.Blur()

	switch f.focus {
	case fieldStart:
		return f.start.Focus()
	case fieldEnd:
		return f.end.Focus()
	case fieldDays:
		return nil
	default:
		ti := f.inputs[f.focus]
		cmd := ti.Focus()
		f.inputs[f.focus] = ti
		return cmd
	}
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDebounceMsg:
		// Only the newest keystroke's timer may fire a lookup.
		if msg.token != m.form.token {
			return m, nil
		}
		term := m.form.value(fieldSearch)
		if len(term) < m.catalogCfg.MinQueryLen {
			m.form.results = nil
			return m, nil
		}
		m.form.searching = true
		return m, m.searchCatalog(m.form.token, term)

	case searchResultsMsg:
		if msg.token != m.form.token {
			// A newer request is in flight; this result is stale.
			return m, nil
		}
		m.form.searching = false
		if msg.err != nil {
			m.form.errText = "search failed: " + msg.err.Error()
			return m, nil
		}
		m.form.results = msg.results
		m.form.resultCursor = 0
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.state = stateWeek
			return m, nil
		case "enter":
			if m.form.focus == fieldSearch && len(m.form.results) > 0 {
				m.form.applyCatalog(m.form.results[m.form.resultCursor])
				m.form.focus = fieldCourseNum
				return m, m.form.focusCmd()
			}
			return m.submitForm()
		case "up":
			if m.form.focus > 0 {
				m.form.focus--
				if m.form.focus == fieldSearch && !m.catalogOn() {
					m.form.focus = fieldCourseNum
				}
				return m, m.form.focusCmd()
			}
			return m, nil
		case "down":
			if m.form.focus < fieldCount-1 {
				m.form.focus++
				return m, m.form.focusCmd()
			}
			return m, nil
		case "ctrl+n":
			if len(m.form.results) > 0 {
				m.form.resultCursor = (m.form.resultCursor + 1) % len(m.form.results)
			}
			return m, nil
		case "ctrl+p":
			if len(m.form.results) > 0 {
				m.form.resultCursor = (m.form.resultCursor + len(m.form.results) - 1) % len(m.form.results)
			}
			return m, nil
		}

		if m.form.focus == fieldDays {
			switch msg.String() {
			case "left", "h":
				if m.form.dayCursor > 0 {
					m.form.dayCursor--
				}
				return m, nil
			case "right", "l":
				if m.form.dayCursor < 6 {
					m.form.dayCursor++
				}
				return m, nil
			case " ", "x":
				m.form.days[m.form.dayCursor] = !m.form.days[m.form.dayCursor]
				return m, nil
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case fieldStart:
		m.form.start, cmd = m.form.start.Update(msg)
	case fieldEnd:
		m.form.end, cmd = m.form.end.Update(msg)
	default:
		ti := m.form.inputs[m.form.focus]
		before := ti.Value()
		ti, cmd = ti.Update(msg)
		m.form.inputs[m.form.focus] = ti

		if m.form.focus == fieldSearch && ti.Value() != before && m.catalogOn() {
			m.form.token++
			debounce := m.debounce()
			return m, tea.Batch(cmd, debounceTick(m.form.token, debounce))
		}
	}
	return m, cmd
}

func debounceTick(token int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return searchDebounceMsg{token: token}
	})
}

func (m Model) debounce() time.Duration {
	return time.Duration(m.catalogCfg.DebounceMS) * time.Millisecond
}

func (m Model) catalogOn() bool {
	return m.catalog.Enabled()
}

func (m Model) searchCatalog(token int, term string) tea.Cmd {
	client := m.catalog
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		results, err := client.Search(ctx, term)
		return searchResultsMsg{token: token, results: results, err: err}
	}
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	draft, err := m.form.draft()
	if err != nil {
		m.form.errText = err.Error()
		return m, nil
	}

	active := m.ws.Active()
	if m.form.editID != "" {
		_, err = active.UpdateEntry(m.form.editID, draft)
	} else {
		_, err = active.AddEntry(draft)
	}
	if err != nil {
		// Validation and conflict failures leave the schedule untouched;
		// show them inline and keep the form open for correction.
		m.form.errText = err.Error()
		return m, nil
	}

	m.state = stateWeek
	m.persist()
	return m, nil
}

func (m Model) renderForm() string {
	f := &m.form
	title := "Add Course"
	if f.editID != "" {
		title = "Edit Course"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if m.catalogOn() {
		b.WriteString(labelStyle.Render("Search     "))
		b.WriteString(f.inputs[fieldSearch].View())
		b.WriteString("\n")
		if f.searching {
			b.WriteString(statusStyle.Render("  searching..."))
			b.WriteString("\n")
		}
		for i, r := range f.results {
			cursor := "  "
			if i == f.resultCursor {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s: %s", cursor, r.Number, r.Title)
			detail := fmt.Sprintf("  %s • %s • %d seats", r.Instructor, r.ScheduleText, r.AvailSeats)
			b.WriteString(line + "\n" + statusStyle.Render(detail) + "\n")
		}
		b.WriteString("\n")
	}

	rows := []struct {
		label string
		field int
	}{
		{"Course #   ", fieldCourseNum},
		{"Title      ", fieldTitle},
		{"Instructor ", fieldInstructor},
		{"Credits    ", fieldCredits},
		{"Color      ", fieldColor},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(f.inputs[row.field].View())
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("Start      "))
	b.WriteString(f.start.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("End        "))
	b.WriteString(f.end.View())
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Days       "))
	for i, d := range formDays {
		cell := " " + d.String()[:2] + " "
		style := dayOffStyle
		if f.days[i] {
			style = dayOnStyle
		}
		if f.focus == fieldDays && f.dayCursor == i {
			style = style.Underline(true)
		}
		b.WriteString(style.Render(cell))
	}
	b.WriteString("\n\n")

	if f.errText != "" {
		b.WriteString(errorStyle.Render(f.errText))
		b.WriteString("\n\n")
	}
	b.WriteString(statusStyle.Render("↑/↓: field • space: toggle day • enter: save • esc: cancel"))
	return appStyle.Render(b.String())
}
