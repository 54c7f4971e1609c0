// cmd/todo-tui/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/choimj77/team-todo-api/internal/client"
	"github.com/choimj77/team-todo-api/internal/tui"
)

func main() {
	apiURL := flag.String("api", "http://localhost:3000", "base URL of the team todo API")
	code := flag.String("code", "", "join code to load on startup")
	flag.Parse()

	api := client.New(*apiURL)

	p := tea.NewProgram(tui.New(api, *code), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
