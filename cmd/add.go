package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/glassnotes/internal/capture"
)

var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a note",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := cliLogger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer log.Close()

		text, err := capture.Normalize(strings.Join(args, " "))
		if err != nil {
			return err
		}
		store, dbh, _, err := openStore(log.Logger)
		if err != nil {
			return err
		}
		defer dbh.Close()

		n, err := store.Insert(cmd.Context(), text, text)
		if err != nil {
			return err
		}
		if err := notifier().NoteSaved(n.Title, true); err != nil {
			log.Warn().Err(err).Msg("desktop notification")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Note %d added.\n", n.ID)
		return nil
	},
}
