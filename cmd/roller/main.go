package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"roller/internal/rng"
	"roller/internal/telemetry"
	"roller/internal/ui"
)

func main() {
	ctx := context.Background()

	// A TUI owns the terminal, so logs go to a file or nowhere.
	log := zerolog.Nop()
	if path := os.Getenv("ROLLER_LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log = zerolog.New(f).With().Timestamp().Logger()
	}

	model := ui.NewAppModel(rng.Source{}, log)

	exporter, err := telemetry.New(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: %v\n", err)
		os.Exit(1)
	}
	exporter.Observe(model.ViewModel())

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := exporter.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("telemetry shutdown")
	}
}
