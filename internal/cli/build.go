package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panampa98/portfolio/internal/site"
	"github.com/panampa98/portfolio/ui"
)

func newBuildCmd(app *App) *cobra.Command {
	var (
		out         string
		langs       []string
		publish     bool
		prefix      string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the site as static per-language trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			rt, err := wire(ctx, app.Config, app.Logger)
			if err != nil {
				return err
			}
			defer rt.Close(ctx)

			opts := site.ExportOptions{Assets: ui.Static(), Concurrency: concurrency}
			for _, l := range langs {
				code, ok := rt.langs.Lookup(l)
				if !ok {
					return fmt.Errorf("unsupported language %q (supported: %v)", l, rt.langs.Strings())
				}
				opts.Languages = append(opts.Languages, code)
			}

			var target site.Target = site.DirTarget(out)
			dest := out
			if publish {
				if rt.bucket == nil {
					return errors.New("--publish requires STORAGE_BUCKET")
				}
				target = site.BucketTarget{Bucket: rt.bucket, Prefix: prefix}
				dest = "bucket " + app.Config.Storage.Bucket
			}

			res, err := rt.site.Export(ctx, target, opts)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "exported %d files to %s\n", len(res.Files), dest)
			for _, name := range res.Fallbacks {
				fmt.Fprintf(w, "fallback: %s rendered in %s\n", name, rt.langs.Default())
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "dist", "output directory")
	f.StringSliceVar(&langs, "lang", nil, "languages to export (default all)")
	f.BoolVar(&publish, "publish", false, "upload to the configured bucket instead of --out")
	f.StringVar(&prefix, "prefix", "", "object key prefix when publishing")
	f.IntVar(&concurrency, "concurrency", 0, "parallel page renders (default GOMAXPROCS)")
	return cmd
}

