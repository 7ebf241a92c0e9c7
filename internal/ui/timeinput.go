package ui

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dhuffy9/SemesterSync/internal/course"
)

// timeInput is a two-field HH:MM editor.
type timeInput struct {
	fields [2]textinput.Model // 0:HH, 1:MM
	focus  int
}

func newTimeInput() timeInput {
	placeholders := [2]string{"HH", "MM"}

	var fields [2]textinput.Model
	for i := 0; i < 2; i++ {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 2
		ti.Width = 4
		ti.Validate = func(s string) error {
			for _, r := range s {
				if !unicode.IsDigit(r) {
					return fmt.Errorf("digits only")
				}
			}
			return nil
		}
		fields[i] = ti
	}

	return timeInput{fields: fields}
}

func (d *timeInput) Focus() tea.Cmd {
	d.focus = 0
	d.fields[1].Blur()
	return d.fields[0].Focus()
}

func (d *timeInput) Blur() {
	for i := range d.fields {
		d.fields[i].Blur()
	}
}

func (d *timeInput) SetValue(t course.TimeOfDay) {
	d.fields[0].SetValue(fmt.Sprintf("%02d", t.Hour()))
	d.fields[1].SetValue(fmt.Sprintf("%02d", t.Minute()))
}

func (d *timeInput) Reset() {
	d.fields[0].SetValue("")
	d.fields[1].SetValue("")
}

func (d *timeInput) IsEmpty() bool {
	return d.fields[0].Value() == "" && d.fields[1].Value() == ""
}

// Value parses the two fields into a clock time. An empty minute field
// counts as ":00".
func (d *timeInput) Value() (course.TimeOfDay, error) {
	hh := strings.TrimSpace(d.fields[0].Value())
	mm := strings.TrimSpace(d.fields[1].Value())

	if hh == "" {
		return 0, fmt.Errorf("hour is required")
	}
	if mm == "" {
		mm = "00"
	}

	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("invalid hour: %s", hh)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("invalid minute: %s", mm)
	}
	t := course.TimeOfDay(hour*60 + minute)
	if hour > 23 || minute > 59 || !t.Valid() {
		return 0, fmt.Errorf("invalid time: %s:%s", hh, mm)
	}
	return t, nil
}

func (d *timeInput) focusField(idx int) tea.Cmd {
	d.focus = idx
	var cmds []tea.Cmd
	for i := range d.fields {
		if i == idx {
			cmds = append(cmds, d.fields[i].Focus())
		} else {
			d.fields[i].Blur()
		}
	}
	return tea.Batch(cmds...)
}

func (d timeInput) Update(msg tea.Msg) (timeInput, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "right", ":":
			if d.focus < 1 {
				cmd := d.focusField(d.focus + 1)
				return d, cmd
			}
			return d, nil
		case "shift+tab", "left":
			if d.focus > 0 {
				cmd := d.focusField(d.focus - 1)
				return d, cmd
			}
			return d, nil
		}
	}

	var cmd tea.Cmd
	d.fields[d.focus], cmd = d.fields[d.focus].Update(msg)
	return d, cmd
}

func (d timeInput) View() string {
	return d.fields[0].View() + ":" + d.fields[1].View()
}
