package ui

import (
	"fmt"
	"strings"

	"github.com/dhuffy9/SemesterSync/internal/layout"
)

// renderMiniCalendar draws the month grid with today and the selected
// day highlighted.
func renderMiniCalendar(ml layout.MonthLayout) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %d", ml.Month, ml.Year)))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(" Su Mo Tu We Th Fr Sa"))
	b.WriteString("\n")

	col := 0
	for i := 0; i < ml.LeadingBlanks; i++ {
		b.WriteString("   ")
		col++
	}
	for _, cell := range ml.Cells {
		label := fmt.Sprintf("%3d", cell.Day)
		switch {
		case cell.IsToday:
			label = todayHeaderStyle.Render(label)
		case cell.IsSelected:
			label = selectedDayStyle.Render(label)
		}
		b.WriteString(label)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	return b.String()
}
