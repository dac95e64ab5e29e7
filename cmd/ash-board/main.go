package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ashub/ash/internal/board"
	"github.com/ashub/ash/pkg/ash/client"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	apiURL := os.Getenv("ASH_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:5000"
	}

	name := os.Getenv("ASH_NAME")
	if name == "" {
		name = os.Getenv("USER")
	}
	if name == "" {
		return fmt.Errorf("set ASH_NAME to the name you join groups under")
	}

	c := client.New(apiURL)
	p := tea.NewProgram(board.New(c, name, os.Getenv("ASH_EMAIL")), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
