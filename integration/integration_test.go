package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/edulearn/internal/config"
	"github.com/javiermolinar/edulearn/internal/course"
	"github.com/javiermolinar/edulearn/internal/courseapi"
	"github.com/javiermolinar/edulearn/internal/db"
	"github.com/javiermolinar/edulearn/internal/server"
	"github.com/javiermolinar/edulearn/internal/tui"
	"github.com/javiermolinar/edulearn/internal/tui/commands"
	"github.com/javiermolinar/edulearn/internal/tui/view"
)

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	repo, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// serveRepo starts the course service over repo and returns a client for it.
func serveRepo(t *testing.T, repo *db.SQLite) *courseapi.Client {
	t.Helper()
	srv := httptest.NewServer(server.NewRouter(repo, nil))
	t.Cleanup(srv.Close)
	return courseapi.New(srv.URL + server.CoursesPath)
}

func seed(t *testing.T, repo *db.SQLite, courses ...course.Course) {
	t.Helper()
	if err := repo.ReplaceCourses(context.Background(), courses); err != nil {
		t.Fatalf("failed to seed courses: %v", err)
	}
}

func plainOutput(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

// activate starts the model against client and feeds back the fetch result.
func activate(t *testing.T, client *courseapi.Client, width, height int) tui.Model {
	t.Helper()
	cfg := config.Default()
	cfg.Catalog.Endpoint = client.Endpoint()

	m := tui.New(client, cfg, tui.WithYear(2026))
	m = step(t, m, tea.WindowSizeMsg{Width: width, Height: height})

	m, cmd := m.Activate()
	t.Cleanup(m.Deactivate)
	if _, ok := m.State().(course.Loading); !ok {
		t.Fatalf("state after activation = %T, want Loading", m.State())
	}

	for _, msg := range collect(cmd) {
		switch msg.(type) {
		case commands.CoursesLoadedMsg, commands.FetchFailedMsg:
			m = step(t, m, msg)
		}
	}
	return m
}

func step(t *testing.T, m tui.Model, msg tea.Msg) tui.Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(tui.Model)
	if !ok {
		t.Fatalf("Update returned %T, want tui.Model", next)
	}
	return out
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestCatalogFromStore(t *testing.T) {
	plainOutput(t)
	repo := openRepo(t)
	seed(t, repo,
		course.Course{ID: "1", Title: "Go Basics", Description: "Learn Go", Instructor: "Ann"},
		course.Course{ID: "2", Title: "Rust Intro", Description: "Learn Rust", Instructor: "Bo"},
	)

	m := activate(t, serveRepo(t, repo), 120, 40)

	loaded, ok := m.State().(course.Loaded)
	if !ok {
		t.Fatalf("state = %T, want Loaded", m.State())
	}
	if len(loaded.Courses) != 2 || loaded.Courses[0].Title != "Go Basics" {
		t.Fatalf("courses = %+v", loaded.Courses)
	}

	out := m.View()
	for _, want := range []string{
		view.CatalogHeading,
		"Go Basics",
		"Rust Intro",
		"Instructor: Ann",
		"Instructor: Bo",
		"View Course",
		"© 2026 EduLearn Platform. All rights reserved.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Index(out, "Go Basics") > strings.Index(out, "Rust Intro") {
		t.Error("courses rendered out of catalog order")
	}
}

func TestEmptyStoreShowsEmptyMessage(t *testing.T) {
	plainOutput(t)
	repo := openRepo(t)

	m := activate(t, serveRepo(t, repo), 100, 30)

	loaded, ok := m.State().(course.Loaded)
	if !ok {
		t.Fatalf("state = %T, want Loaded", m.State())
	}
	if len(loaded.Courses) != 0 {
		t.Fatalf("courses = %d, want 0", len(loaded.Courses))
	}

	out := m.View()
	if !strings.Contains(out, view.EmptyText) {
		t.Fatalf("view missing empty message:\n%s", out)
	}
	if strings.Contains(out, view.CatalogHeading) {
		t.Fatal("empty catalog should not render the heading")
	}
}

func TestServerErrorShowsStatus(t *testing.T) {
	plainOutput(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	m := activate(t, courseapi.New(srv.URL), 100, 30)

	failed, ok := m.State().(course.Failed)
	if !ok {
		t.Fatalf("state = %T, want Failed", m.State())
	}
	if failed.Message != "HTTP error! status: 500" {
		t.Fatalf("message = %q", failed.Message)
	}
	if out := m.View(); !strings.Contains(out, "Error: HTTP error! status: 500") {
		t.Fatalf("view missing error text:\n%s", out)
	}
}

func TestUnreachableServiceFails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL + server.CoursesPath
	srv.Close()

	m := activate(t, courseapi.New(endpoint), 100, 30)

	failed, ok := m.State().(course.Failed)
	if !ok {
		t.Fatalf("state = %T, want Failed", m.State())
	}
	if failed.Message == "" {
		t.Fatal("failure message should not be empty")
	}
}

func TestReseedIsVisibleOnNextActivation(t *testing.T) {
	plainOutput(t)
	repo := openRepo(t)
	seed(t, repo, course.Course{ID: "a", Title: "First Edition", Instructor: "Ann"})
	client := serveRepo(t, repo)

	m := activate(t, client, 100, 30)
	if !strings.Contains(m.View(), "First Edition") {
		t.Fatal("first activation should show the seeded course")
	}

	seed(t, repo, course.Course{ID: "b", Title: "Second Edition", Instructor: "Bo"})
	m.Deactivate()

	m = activate(t, client, 100, 30)
	out := m.View()
	if !strings.Contains(out, "Second Edition") || strings.Contains(out, "First Edition") {
		t.Fatalf("second activation should show only the reseeded catalog:\n%s", out)
	}
}
