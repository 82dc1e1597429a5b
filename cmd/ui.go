package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/lepinkainen/squish/types"
	"github.com/lepinkainen/squish/ui"
)

type UICmd struct {
	LogFile string `help:"Debug log destination when --debug is set" default:"squish.log"`
}

func (cmd *UICmd) Run(appCtx *types.AppContext) error {
	// The TUI owns the terminal, so logs go to a file in debug mode and
	// nowhere otherwise.
	restore := log.StandardLogger().Out
	if log.IsLevelEnabled(log.DebugLevel) {
		file, err := os.OpenFile(cmd.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer file.Close()
		log.SetOutput(file)
	} else {
		log.SetOutput(io.Discard)
	}
	defer log.SetOutput(restore)

	model := ui.NewModel(appCtx.VersionOrDefault())
	program := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	// The alternate screen is gone at this point, so print the last
	// result where it survives, like a plain command would.
	if m, ok := finalModel.(ui.Model); ok {
		if result := m.LastResult(); result != "" {
			fmt.Println(result)
		}
	}

	return nil
}
