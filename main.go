package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dhuffy9/SemesterSync/internal/config"
	"github.com/dhuffy9/SemesterSync/internal/store"
	"github.com/dhuffy9/SemesterSync/internal/ui"
)

func main() {
	cfgPath := os.Getenv("SEMESTERSYNC_CONFIG")
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving config path: %v\n", err)
			os.Exit(1)
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so operational logging goes to a file
	// when requested and is discarded otherwise.
	if logPath := os.Getenv("SEMESTERSYNC_LOG"); logPath != "" {
		f, err := tea.LogToFile(logPath, "semestersync")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	st, err := store.NewWorkspaceStore(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	// Corrupt or missing saved state falls back to a fresh workspace
	// instead of failing startup.
	ws, err := st.LoadOrDefault(time.Now())
	if err != nil {
		log.Printf("restore workspace: %v", err)
	}

	p := tea.NewProgram(ui.NewModel(ws, st, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
