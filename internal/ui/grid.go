package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dhuffy9/SemesterSync/internal/layout"
)

const (
	colWidth    = 16
	rowsPerHour = 2 // one terminal row per half hour
)

// rowOf converts engine pixel geometry to terminal rows, so the grid and
// any other renderer share one source of vertical truth.
func rowOf(px float64, cfg layout.Config) int {
	return int(px / cfg.PixelsPerHour * rowsPerHour)
}

// renderWeek draws the seven day columns with hour labels on the left.
func (m Model) renderWeek(wl layout.WeekLayout, cfg layout.Config) string {
	totalRows := (cfg.DayEndHour - cfg.DayStartHour) * rowsPerHour

	gutter := m.renderHourGutter(cfg, totalRows)
	cols := make([]string, 0, 8)
	cols = append(cols, gutter)
	for i := range wl.Days {
		cols = append(cols, m.renderDayColumn(wl.Days[i], cfg, totalRows))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func (m Model) renderHourGutter(cfg layout.Config, totalRows int) string {
	lines := make([]string, totalRows+1)
	lines[0] = strings.Repeat(" ", 9)
	for row := 0; row < totalRows; row++ {
		label := strings.Repeat(" ", 9)
		if row%rowsPerHour == 0 {
			hour := cfg.DayStartHour + row/rowsPerHour
			label = fmt.Sprintf("%8s ", clockLabel(hour))
		}
		lines[row+1] = label
	}
	return gutterStyle.Render(strings.Join(lines, "\n"))
}

func clockLabel(hour int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d %s", h, period)
}

func (m Model) renderDayColumn(day layout.DayColumn, cfg layout.Config, totalRows int) string {
	header := fmt.Sprintf("%s %d", day.Weekday.String()[:3], day.Date.Day())
	headerStyle := dayHeaderStyle
	if day.IsToday {
		headerStyle = todayHeaderStyle
	}

	// Paint blocks over an empty column, later list entries win on
	// out-of-band overlap.
	cells := make([]string, totalRows)
	for _, block := range day.Blocks {
		top := rowOf(block.Top, cfg)
		height := rowOf(block.Height, cfg)
		if height < 1 {
			height = 1
		}
		style := blockStyle(block.Color)
		for r := top; r < top+height && r < totalRows; r++ {
			if r < 0 {
				continue
			}
			text := strings.Repeat(" ", colWidth-2)
			switch r - top {
			case 0:
				text = truncate(block.CourseNumber, colWidth-2)
			case 1:
				text = truncate(block.Title, colWidth-2)
			case 2:
				text = truncate(block.Time.Start.Format12h(), colWidth-2)
			}
			cells[r] = style.Width(colWidth - 1).Render(text)
		}
	}

	lines := make([]string, totalRows+1)
	lines[0] = headerStyle.Width(colWidth).Render(header)
	for r := 0; r < totalRows; r++ {
		if cells[r] != "" {
			lines[r+1] = cells[r]
			continue
		}
		fill := strings.Repeat(" ", colWidth-1)
		if r%rowsPerHour == 0 {
			lines[r+1] = hourLineStyle.Render(strings.Repeat("╌", colWidth-1))
		} else {
			lines[r+1] = fill
		}
	}
	return strings.Join(lines, "\n")
}

// truncate fits s into width terminal cells, never splitting a rune and
// accounting for double-width characters.
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return runewidth.FillRight(s, width)
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
