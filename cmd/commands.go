package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ramanasai/glassnotes/internal/db"
	"github.com/ramanasai/glassnotes/internal/logging"
	"github.com/ramanasai/glassnotes/internal/ui"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Voice command reloading demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := db.AppDataDir()
		if err != nil {
			return err
		}
		log, err := logging.NewFile(cfg.Log, dataDir)
		if err != nil {
			return err
		}
		defer log.Close()

		theme := ui.ThemeByName(cfg.Theme)
		m := ui.NewCommandsModel(thresholds(cfg.Gesture), &theme, log.Logger)
		_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(cmd.Context())).Run()
		return err
	},
}
