package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/glassnotes/internal/notes"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [note-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a note permanently",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := noteID(args[0])
		if err != nil {
			return err
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

		err = store.Delete(cmd.Context(), id)
		if errors.Is(err, notes.ErrNotFound) {
			return fmt.Errorf("note with ID %d not found", id)
		}
		if err != nil {
			return err
		}
		if err := notifier().NoteDeleted(id); err != nil {
			log.Warn().Err(err).Msg("desktop notification")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Note %d deleted.\n", id)
		return nil
	},
}
