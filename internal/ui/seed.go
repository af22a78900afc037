package ui

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/edulearn/internal/course"
	"github.com/javiermolinar/edulearn/internal/tui/view"
)

//go:embed sample/courses.json
var sampleCatalog []byte

// catalogWriter replaces the stored catalog.
type catalogWriter interface {
	ReplaceCourses(ctx context.Context, courses []course.Course) error
}

func (a *App) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [courses.json]",
		Short: "Load courses into the local course store",
		Long: `Replace the courses served by "edulearn serve" with the contents of a
JSON file. The file must hold an array of objects with id, title,
description and instructor fields. Courses without an id get a random
UUID. Without a file, a built-in sample catalog is loaded.`,
		Example: `  edulearn seed
  edulearn seed ./courses.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data := sampleCatalog
			source := "sample catalog"
			if len(args) == 1 {
				path, err := resolvePath(args[0])
				if err != nil {
					return err
				}
				data, err = os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				source = path
			}

			if err := a.ensureStore(); err != nil {
				return err
			}

			n, err := seedCourses(cmd.Context(), a.store, data)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %s from %s into %s\n",
				view.FormatCount(n), source, a.config.Storage.DBPath)
			return nil
		},
	}
}

// seedCourses decodes data and replaces the stored catalog with it, in order.
func seedCourses(ctx context.Context, dest catalogWriter, data []byte) (int, error) {
	courses, err := course.Decode(data)
	if err != nil {
		return 0, err
	}

	for i := range courses {
		if courses[i].ID == "" {
			courses[i].ID = course.ID(uuid.NewString())
		}
	}

	if err := dest.ReplaceCourses(ctx, courses); err != nil {
		return 0, fmt.Errorf("storing courses: %w", err)
	}
	return len(courses), nil
}
