package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/edulearn/internal/course"
)

func TestListCourses_EmptyStore(t *testing.T) {
	repo := newTestRepo(t)

	courses, err := repo.ListCourses(context.Background())
	if err != nil {
		t.Fatalf("ListCourses failed: %v", err)
	}
	if courses == nil {
		t.Fatal("expected non-nil empty slice")
	}
	if len(courses) != 0 {
		t.Errorf("got %d courses, want 0", len(courses))
	}
}

func TestReplaceCourses_PreservesOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	input := []course.Course{
		{ID: "z", Title: "Zig", Description: "Systems", Instructor: "A. Kelley"},
		{ID: "a", Title: "Ada", Description: "Safety", Instructor: "J. Ichbiah"},
		{ID: "m", Title: "ML", Description: "", Instructor: ""},
	}
	if err := repo.ReplaceCourses(ctx, input); err != nil {
		t.Fatalf("ReplaceCourses failed: %v", err)
	}

	got, err := repo.ListCourses(ctx)
	if err != nil {
		t.Fatalf("ListCourses failed: %v", err)
	}
	if len(got) != len(input) {
		t.Fatalf("got %d courses, want %d", len(got), len(input))
	}
	for i := range input {
		if got[i] != input[i] {
			t.Errorf("course %d = %#v, want %#v", i, got[i], input[i])
		}
	}
}

func TestReplaceCourses_ReplacesExisting(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.ReplaceCourses(ctx, []course.Course{{ID: "1"}, {ID: "2"}}); err != nil {
		t.Fatalf("first ReplaceCourses failed: %v", err)
	}
	if err := repo.ReplaceCourses(ctx, []course.Course{{ID: "3", Title: "Only"}}); err != nil {
		t.Fatalf("second ReplaceCourses failed: %v", err)
	}

	n, err := repo.CountCourses(ctx)
	if err != nil {
		t.Fatalf("CountCourses failed: %v", err)
	}
	if n != 1 {
		t.Errorf("got %d courses, want 1", n)
	}
}

func TestReplaceCourses_Errors(t *testing.T) {
	tests := []struct {
		name    string
		courses []course.Course
		wantErr error
	}{
		{
			name:    "duplicate id",
			courses: []course.Course{{ID: "1"}, {ID: "1"}},
			wantErr: ErrDuplicateID,
		},
		{
			name:    "missing id",
			courses: []course.Course{{ID: "1"}, {Title: "No id"}},
			wantErr: ErrMissingID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo(t)
			ctx := context.Background()

			if err := repo.ReplaceCourses(ctx, []course.Course{{ID: "keep"}}); err != nil {
				t.Fatalf("seeding failed: %v", err)
			}

			err := repo.ReplaceCourses(ctx, tt.courses)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}

			// Existing catalog stays intact on failure
			got, err := repo.ListCourses(ctx)
			if err != nil {
				t.Fatalf("ListCourses failed: %v", err)
			}
			if len(got) != 1 || got[0].ID != "keep" {
				t.Errorf("catalog changed after failed replace: %#v", got)
			}
		})
	}
}

func TestNew_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.db")
	ctx := context.Background()

	repo, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := repo.ReplaceCourses(ctx, []course.Course{{ID: "1", Title: "Persisted"}}); err != nil {
		t.Fatalf("ReplaceCourses failed: %v", err)
	}
	_ = repo.Close()

	reopened, err := New(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = reopened.Close() }()

	got, err := reopened.ListCourses(ctx)
	if err != nil {
		t.Fatalf("ListCourses failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Persisted" {
		t.Errorf("unexpected courses after reopen: %#v", got)
	}
}

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}
