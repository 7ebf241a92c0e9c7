package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dhuffy9/SemesterSync/internal/catalog"
	"github.com/dhuffy9/SemesterSync/internal/config"
	"github.com/dhuffy9/SemesterSync/internal/course"
	"github.com/dhuffy9/SemesterSync/internal/export"
	"github.com/dhuffy9/SemesterSync/internal/layout"
	"github.com/dhuffy9/SemesterSync/internal/schedule"
	"github.com/dhuffy9/SemesterSync/internal/store"
)

type appState int

const (
	stateWeek appState = iota
	stateForm
	stateConfirmDelete
)

var (
	appStyle         = lipgloss.NewStyle().Padding(1, 2)
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	confirmStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	gutterStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	dayHeaderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true).Align(lipgloss.Center)
	todayHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true).Align(lipgloss.Center)
	selectedDayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	hourLineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	tabStyle         = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTabStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("170")).Bold(true).Underline(true)
	dayOnStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	dayOffStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sidePaneStyle    = lipgloss.NewStyle().
				Padding(0, 2).
				BorderLeft(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("241"))
)

func blockStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color("231"))
}

type keyMap struct {
	PrevWeek  key.Binding
	NextWeek  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	Today     key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	NewTab    key.Binding
	CloseTab  key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Copy      key.Binding
	Export    key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		PrevWeek:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev week")),
		NextWeek:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "next month")),
		PrevDay:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "select prev day")),
		NextDay:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "select next day")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		NextTab:   key.NewBinding(key.WithKeys("]", "tab"), key.WithHelp("]", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("[", "shift+tab"), key.WithHelp("[", "prev tab")),
		NewTab:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new tab")),
		CloseTab:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "close tab")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add course")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit course")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete course")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy list")),
		Export:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export ics")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the top-level Bubble Tea model for the SemesterSync TUI.
type Model struct {
	state appState

	ws         *schedule.Workspace
	store      *store.WorkspaceStore
	catalog    *catalog.Client
	layoutCfg  layout.Config
	catalogCfg config.CatalogConfig

	form     courseForm
	keys     keyMap
	selected int // cursor into the active schedule's class list

	now    func() time.Time
	err    error
	status string
	width  int
	height int
}

// NewModel creates the TUI model over an already-loaded workspace.
func NewModel(ws *schedule.Workspace, st *store.WorkspaceStore, cfg *config.Config) Model {
	return Model{
		state:      stateWeek,
		ws:         ws,
		store:      st,
		catalog:    catalog.NewClient(cfg.Catalog.URL),
		layoutCfg:  cfg.LayoutSettings(),
		catalogCfg: cfg.Catalog,
		form:       newCourseForm(),
		keys:       newKeyMap(),
		now:        time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// persist saves the workspace after a mutation. Write failures never
// roll back the in-memory change; they are logged and shown as status.
func (m *Model) persist() {
	if err := m.store.Save(m.ws); err != nil {
		log.Printf("save workspace: %v", err)
		m.status = "warning: could not save changes"
	}
}

func (m *Model) clampSelection() {
	entries := m.ws.Active().Entries
	if m.selected >= len(entries) {
		m.selected = len(entries) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	switch m.state {
	case stateWeek:
		return m.updateWeek(msg)
	case stateForm:
		return m.updateForm(msg)
	case stateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}
	return m, nil
}

func (m Model) updateWeek(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.status = ""
	m.err = nil
	active := m.ws.Active()

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.PrevWeek):
		active.NavigateWeek(-1)
	case key.Matches(keyMsg, m.keys.NextWeek):
		active.NavigateWeek(1)
	case key.Matches(keyMsg, m.keys.PrevMonth):
		active.NavigateMonth(-1)
	case key.Matches(keyMsg, m.keys.NextMonth):
		active.NavigateMonth(1)
	case key.Matches(keyMsg, m.keys.PrevDay):
		active.SelectDate(active.MonthCursor.AddDate(0, 0, -1))
	case key.Matches(keyMsg, m.keys.NextDay):
		active.SelectDate(active.MonthCursor.AddDate(0, 0, 1))
	case key.Matches(keyMsg, m.keys.Today):
		active.GoToToday(m.now())

	case key.Matches(keyMsg, m.keys.NextTab):
		m.switchTab(1)
		m.persist()
	case key.Matches(keyMsg, m.keys.PrevTab):
		m.switchTab(-1)
		m.persist()
	case key.Matches(keyMsg, m.keys.NewTab):
		m.ws.CreateSchedule("", m.now())
		m.selected = 0
		m.persist()
	case key.Matches(keyMsg, m.keys.CloseTab):
		if err := m.ws.CloseSchedule(active.ID); err != nil {
			m.err = err
		} else {
			m.selected = 0
			m.persist()
		}

	case key.Matches(keyMsg, m.keys.Add):
		m.form = newCourseForm()
		m.form.focus = fieldCourseNum
		if m.catalogOn() {
			m.form.focus = fieldSearch
		}
		m.state = stateForm
		return m, m.form.focusCmd()

	case key.Matches(keyMsg, m.keys.Edit):
		if len(active.Entries) > 0 {
			m.clampSelection()
			m.form = newCourseForm()
			m.form.populate(active.Entries[m.selected])
			m.form.focus = fieldCourseNum
			m.state = stateForm
			return m, m.form.focusCmd()
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if len(active.Entries) > 0 {
			m.clampSelection()
			m.state = stateConfirmDelete
		}

	case key.Matches(keyMsg, m.keys.Copy):
		if err := clipboard.WriteAll(classListText(active)); err != nil {
			m.err = fmt.Errorf("copy to clipboard: %w", err)
		} else {
			m.status = "class list copied"
		}

	case key.Matches(keyMsg, m.keys.Export):
		path := exportPath(active)
		if err := export.WriteFile(active, path); err != nil {
			m.err = err
		} else {
			m.status = "exported " + path
		}

	default:
		switch keyMsg.String() {
		case "j", "down":
			if m.selected < len(active.Entries)-1 {
				m.selected++
			}
		case "k", "up":
			if m.selected > 0 {
				m.selected--
			}
		}
	}
	return m, nil
}

func (m *Model) switchTab(direction int) {
	idx := 0
	for i, s := range m.ws.Schedules {
		if s.ID == m.ws.ActiveID {
			idx = i
			break
		}
	}
	n := len(m.ws.Schedules)
	next := m.ws.Schedules[(idx+direction+n)%n]
	if err := m.ws.SetActive(next.ID); err == nil {
		m.selected = 0
	}
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y":
		active := m.ws.Active()
		m.clampSelection()
		if len(active.Entries) > 0 {
			if err := active.RemoveEntry(active.Entries[m.selected].ID); err != nil {
				m.err = err
			} else {
				m.persist()
			}
		}
		m.clampSelection()
		m.state = stateWeek
	case "n", "esc":
		m.state = stateWeek
	}
	return m, nil
}

func classListText(s *schedule.Schedule) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d credits)\n", s.DisplayName, s.TotalCredits)
	for _, e := range s.Entries {
		fmt.Fprintf(&b, "%s: %s - %s %s\n",
			e.CourseNumber, e.Title, shortDays(e), e.Time.String())
	}
	return b.String()
}

func shortDays(e course.Entry) string {
	letters := []string{"U", "M", "T", "W", "R", "F", "S"}
	out := ""
	for i := 0; i < 7; i++ {
		if e.OccursOn(time.Weekday(i)) {
			out += letters[i]
		}
	}
	return out
}

func exportPath(s *schedule.Schedule) string {
	name := strings.ToLower(strings.ReplaceAll(s.DisplayName, " ", "-"))
	if name == "" {
		name = "schedule"
	}
	return name + ".ics"
}

func (m Model) View() string {
	switch m.state {
	case stateForm:
		return m.renderForm()
	case stateConfirmDelete:
		active := m.ws.Active()
		m.clampSelection()
		target := ""
		if len(active.Entries) > 0 {
			e := active.Entries[m.selected]
			target = fmt.Sprintf("%s: %s", e.CourseNumber, e.Title)
		}
		return appStyle.Render(
			confirmStyle.Render("Delete Course?") + "\n\n" +
				"  " + target + "\n\n" +
				statusStyle.Render("y: delete • n/esc: cancel"),
		)
	default:
		return m.renderWeekScreen()
	}
}

func (m Model) renderWeekScreen() string {
	active := m.ws.Active()
	now := m.now()

	wl, err := layout.Week(active, m.layoutCfg, now)
	if err != nil {
		return appStyle.Render(errorStyle.Render("Error: " + err.Error()))
	}

	header := titleStyle.Render("SemesterSync") + "  " +
		statusStyle.Render(wl.WeekStart.Format("January 2006"))

	var tabs []string
	for _, s := range m.ws.Schedules {
		style := tabStyle
		if s.ID == m.ws.ActiveID {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(s.DisplayName))
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	grid := m.renderWeek(wl, m.layoutCfg)
	side := sidePaneStyle.Render(m.renderSidePane(active, now))
	content := lipgloss.JoinHorizontal(lipgloss.Top, grid, side)

	footer := statusStyle.Render("a: add • e: edit • d: delete • n/w: tabs • ←/→: week • t: today • x: export • q: quit")
	if m.status != "" {
		footer = statusStyle.Render(m.status) + "\n" + footer
	}
	if m.err != nil {
		footer = errorStyle.Render("Error: "+m.err.Error()) + "\n" + footer
	}

	return appStyle.Render(header + "\n" + tabBar + "\n\n" + content + "\n\n" + footer)
}

func (m Model) renderSidePane(active *schedule.Schedule, now time.Time) string {
	var b strings.Builder

	b.WriteString(renderMiniCalendar(layout.Month(active.MonthCursor, active.MonthCursor, now)))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Classes"))
	b.WriteString("\n")
	if len(active.Entries) == 0 {
		b.WriteString(statusStyle.Render("(no classes yet)"))
		b.WriteString("\n")
	}
	for i, e := range active.Entries {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render("●")
		b.WriteString(fmt.Sprintf("%s%s %s: %s\n", cursor, dot, e.CourseNumber, e.Title))
		b.WriteString(statusStyle.Render(fmt.Sprintf("     %s %s", shortDays(e), e.Time.String())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Total credits: "))
	b.WriteString(fmt.Sprintf("%d", active.TotalCredits))
	return b.String()
}
