package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ramanasai/glassnotes/internal/config"
	"github.com/ramanasai/glassnotes/internal/db"
	"github.com/ramanasai/glassnotes/internal/logging"
	"github.com/ramanasai/glassnotes/internal/notes"
	"github.com/ramanasai/glassnotes/internal/notify"
)

var (
	configPath string
	dbPath     string
	logLevel   string

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:           "glassnotes",
	Short:         "Voice notes you page through with swipes",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if dbPath != "" {
			c.DBPath = dbPath
		}
		if logLevel != "" {
			c.Log.Level = logLevel
		}
		cfg = c
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return tuiCmd.RunE(cmd, args)
	},
}

func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/glassnotes/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "notes database (default ~/.local/share/glassnotes/notes.db)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug|info|warn|error")

	// Add commands; other files define these vars
	rootCmd.AddCommand(addCmd, listCmd, editCmd, deleteCmd, tuiCmd, commandsCmd, versionCmd)
}

// cliLogger logs to w for short-lived commands.
func cliLogger(w io.Writer) (*logging.Logger, error) {
	return logging.New(cfg.Log, w)
}

func databasePath() (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return db.DefaultPath()
}

// openStore opens the configured database behind a note store.
func openStore(log zerolog.Logger) (*notes.Store, *sql.DB, string, error) {
	path, err := databasePath()
	if err != nil {
		return nil, nil, "", err
	}
	dbh, err := db.Open(path)
	if err != nil {
		return nil, nil, "", err
	}
	return notes.NewStore(notes.NewSQLRepository(dbh), notes.WithLogger(log)), dbh, path, nil
}

func notifier() *notify.Notifier { return notify.New(cfg.Notify.Enabled) }

func noteID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid note ID %q", s)
	}
	return id, nil
}
