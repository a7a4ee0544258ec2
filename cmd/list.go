package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/glassnotes/internal/render"
)

var (
	limit   int
	format  string
	noColor bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, oldest first",
	Long: `Examples:
	glassnotes list                       # every note
	glassnotes list --limit 5             # the five newest
	glassnotes list --format json         # for scripts`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := render.ParseFormat(format)
		if err != nil {
			return err
		}
		rc := render.DefaultConfig()
		rc.Format = f
		if noColor {
			rc.Color = false
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

		list, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		if limit > 0 && len(list) > limit {
			list = list[len(list)-limit:]
		}
		out, err := render.New(rc).Notes(list)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	listCmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the newest N notes (0 for all)")
	listCmd.Flags().StringVarP(&format, "format", "f", "default", "Output format: default|table|json|csv|compact|quiet")
	listCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colors")
}
