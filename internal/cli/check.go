package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate every language document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			rt, err := wire(ctx, app.Config, app.Logger)
			if err != nil {
				return err
			}
			defer rt.Close(ctx)

			rep, err := rt.site.Check(ctx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, lang := range rep.Languages {
				fmt.Fprintf(w, "%s: %d projects\n", lang, len(rep.Projects[lang]))
			}
			for _, is := range rep.Issues {
				fmt.Fprintf(w, "  %s\n", is)
			}
			if rep.OK() {
				fmt.Fprintln(w, "ok")
			}
			return rep.Err()
		},
	}
}
