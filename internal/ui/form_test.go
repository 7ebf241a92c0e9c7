package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dhuffy9/SemesterSync/internal/catalog"
	"github.com/dhuffy9/SemesterSync/internal/config"
	"github.com/dhuffy9/SemesterSync/internal/schedule"
)

func formModel(t *testing.T) Model {
	t.Helper()
	day := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)
	return Model{
		state:      stateForm,
		ws:         schedule.NewWorkspace(day),
		catalog:    catalog.NewClient("http://127.0.0.1:0"),
		catalogCfg: config.CatalogConfig{DebounceMS: 300, MinQueryLen: 2},
		form:       newCourseForm(),
		keys:       newKeyMap(),
		now:        func() time.Time { return day },
	}
}

func asModel(t *testing.T, tm tea.Model) Model {
	t.Helper()
	m, ok := tm.(Model)
	if !ok {
		t.Fatalf("update returned %T", tm)
	}
	return m
}

func TestUpdateForm_DropsStaleResults(t *testing.T) {
	m := formModel(t)
	kept := []catalog.Course{{Number: "CSC 124", Title: "Data Structures"}}
	m.form.token = 2
	m.form.results = kept
	m.form.searching = true

	next, _ := m.updateForm(searchResultsMsg{
		token:   1,
		results: []catalog.Course{{Number: "HIS 101", Title: "World History"}},
	})

	got := asModel(t, next)
	if len(got.form.results) != 1 || got.form.results[0].Number != "CSC 124" {
		t.Errorf("stale results replaced the current ones: %+v", got.form.results)
	}
	if !got.form.searching {
		t.Error("a stale result must not clear the in-flight marker")
	}
}

func TestUpdateForm_AcceptsCurrentResults(t *testing.T) {
	m := formModel(t)
	m.form.token = 3
	m.form.searching = true
	m.form.resultCursor = 5

	fresh := []catalog.Course{{Number: "HIS 101", Title: "World History"}}
	next, _ := m.updateForm(searchResultsMsg{token: 3, results: fresh})

	got := asModel(t, next)
	if len(got.form.results) != 1 || got.form.results[0].Number != "HIS 101" {
		t.Errorf("results = %+v, want the fresh set", got.form.results)
	}
	if got.form.searching {
		t.Error("searching must clear once the current result lands")
	}
	if got.form.resultCursor != 0 {
		t.Errorf("result cursor = %d, want reset to 0", got.form.resultCursor)
	}
}

func TestUpdateForm_StaleDebounceIssuesNoLookup(t *testing.T) {
	m := formModel(t)
	m.form.token = 2
	m.form.setInput(fieldSearch, "history")

	next, cmd := m.updateForm(searchDebounceMsg{token: 1})

	if cmd != nil {
		t.Error("a superseded timer must not start a lookup")
	}
	if asModel(t, next).form.searching {
		t.Error("a superseded timer must not mark a search in flight")
	}
}

func TestUpdateForm_DebounceBelowMinQuery(t *testing.T) {
	m := formModel(t)
	m.form.token = 1
	m.form.setInput(fieldSearch, "h")
	m.form.results = []catalog.Course{{Number: "HIS 101"}}

	next, cmd := m.updateForm(searchDebounceMsg{token: 1})

	if cmd != nil {
		t.Error("a too-short term must not start a lookup")
	}
	if asModel(t, next).form.results != nil {
		t.Error("a too-short term must clear previous results")
	}
}

func TestUpdateForm_DebounceStartsLookup(t *testing.T) {
	m := formModel(t)
	m.form.token = 1
	m.form.setInput(fieldSearch, "history")

	next, cmd := m.updateForm(searchDebounceMsg{token: 1})

	if cmd == nil {
		t.Fatal("the newest timer with a long enough term must start a lookup")
	}
	if !asModel(t, next).form.searching {
		t.Error("starting a lookup must mark a search in flight")
	}
}

func TestUpdateForm_SearchKeystrokeBumpsToken(t *testing.T) {
	m := formModel(t)
	m.form.focus = fieldSearch
	m.form.focusCmd()

	next, cmd := m.updateForm(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})

	got := asModel(t, next)
	if got.form.token != 1 {
		t.Errorf("token = %d, want 1 after the first keystroke", got.form.token)
	}
	if cmd == nil {
		t.Error("a search edit must schedule a debounce timer")
	}

	next, _ = got.updateForm(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if asModel(t, next).form.token != 2 {
		t.Error("each edit must supersede the previous request token")
	}
}
