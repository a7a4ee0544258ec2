package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ramanasai/glassnotes/internal/capture"
	"github.com/ramanasai/glassnotes/internal/notes"
)

var editCmd = &cobra.Command{
	Use:   "edit [note-id] [text]",
	Short: "Replace the text of an existing note",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := noteID(args[0])
		if err != nil {
			return err
		}
		text, err := capture.Normalize(strings.Join(args[1:], " "))
		if err != nil {
			return fmt.Errorf("nothing to update: %w", err)
		}

		log, err := cliLogger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer log.Close()
		store, dbh, _, err := openStore(log.Logger)
		if err != nil {
			return err
		}
		defer dbh.Close()

		err = store.Update(cmd.Context(), id, text, text)
		if errors.Is(err, notes.ErrNotFound) {
			return fmt.Errorf("note with ID %d not found", id)
		}
		if err != nil {
			return fmt.Errorf("error updating note: %w", err)
		}
		if err := notifier().NoteSaved(text, false); err != nil {
			log.Warn().Err(err).Msg("desktop notification")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Note %d updated successfully.\n", id)
		return nil
	},
}
