package ui

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/edulearn/internal/course"
	"github.com/javiermolinar/edulearn/internal/tui/view"
)

func (a *App) listCmd() *cobra.Command {
	var (
		opts   PrintOpts
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the course catalog",
		Long: `Fetch the course catalog once and print it.

Uses the same endpoint as the catalog view. A failed fetch exits with a
non-zero status; it is never retried.`,
		Example: `  edulearn list
  edulearn list --verbose
  edulearn list --endpoint=http://localhost:5000/api/courses --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.applyOverrides(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			courses, size, err := a.catalogClient().Fetch(cmd.Context())

			// Failures are reported once by main as "error: ...".
			switch s := course.Resolve(courses, err).(type) {
			case course.Failed:
				return fmt.Errorf("loading courses from %s: %w", a.config.Catalog.Endpoint, err)
			case course.Loaded:
				if asJSON {
					enc := json.NewEncoder(out)
					enc.SetIndent("", "  ")
					return enc.Encode(s.Courses)
				}
				if len(s.Courses) == 0 {
					fmt.Fprintln(out, view.EmptyText)
					return nil
				}
				fmt.Fprintf(out, "%s\n\n", formatHeader(view.CatalogHeading))
				PrintCourses(out, s.Courses, opts)
				PrintSummary(out, len(s.Courses), size)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show full descriptions")
	cmd.Flags().BoolVar(&opts.ShowIDs, "ids", false, "Show course IDs")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Output width (defaults to terminal width)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalog as JSON")

	return cmd
}
