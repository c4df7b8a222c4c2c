package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"fitbook/internal/cli"
	"fitbook/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.App, ctx.Verifier), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
