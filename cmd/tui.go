package cmd

import (
	"errors"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ramanasai/glassnotes/internal/capture"
	"github.com/ramanasai/glassnotes/internal/config"
	"github.com/ramanasai/glassnotes/internal/db"
	"github.com/ramanasai/glassnotes/internal/gesture"
	"github.com/ramanasai/glassnotes/internal/logging"
	"github.com/ramanasai/glassnotes/internal/notes"
	"github.com/ramanasai/glassnotes/internal/notify"
	"github.com/ramanasai/glassnotes/internal/schedule"
	"github.com/ramanasai/glassnotes/internal/ui"
)

// tuiCmd launches the notes pager.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Page through notes with swipes and voice commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dataDir, err := db.AppDataDir()
		if err != nil {
			return err
		}
		log, err := logging.NewFile(cfg.Log, dataDir)
		if err != nil {
			return err
		}
		defer log.Close()

		store, dbh, path, err := openStore(log.Logger)
		if err != nil {
			return err
		}
		defer dbh.Close()

		worker := notes.NewWorker(ctx, store, log.Logger)
		defer worker.Close()

		go func() {
			if err := notes.WatchDatabase(ctx, path, store, log.Logger); err != nil && !errors.Is(err, ctx.Err()) {
				log.Warn().Err(err).Msg("database watcher stopped")
			}
		}()

		if cfg.Reminder.Enabled && os.Getenv("GLASSNOTES_NO_REMINDER") != "1" {
			go schedule.RunConfigured(ctx, cfg, func() {
				now := time.Now().In(cfg.Location())
				midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
				count, err := db.CountSince(dbh, midnight)
				if err != nil {
					log.Warn().Err(err).Msg("count today's notes")
				}
				if err := notify.Reminder(count); err != nil {
					log.Warn().Err(err).Msg("reminder")
				}
			})
		}

		theme := ui.ThemeByName(cfg.Theme)
		model := ui.NewNotesModel(ctx, ui.NotesDeps{
			Store:      store,
			Worker:     worker,
			Recognizer: recognizer(cfg.Capture),
			Thresholds: thresholds(cfg.Gesture),
			Notifier:   notifier(),
			Theme:      &theme,
			Log:        log.Logger,
		})
		defer model.Close()

		log.Info().Str("db", path).Str("capture", cfg.Capture.Mode).Msg("pager started")
		p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
		_, err = p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	},
}

func recognizer(c config.CaptureConfig) capture.Recognizer {
	if c.Mode != config.CaptureModeCommand {
		return nil
	}
	return capture.Command{Argv: c.Command, Timeout: c.Timeout}
}

func thresholds(g config.GestureConfig) gesture.Thresholds {
	return gesture.Thresholds{
		TouchSlop:     g.TouchSlop,
		SwipeDistance: g.SwipeDistance,
		SwipeVelocity: g.SwipeVelocity,
	}
}
