package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/edulearn/internal/course"
	"github.com/javiermolinar/edulearn/internal/courseapi"
	"github.com/javiermolinar/edulearn/internal/db"
)

type stubLister struct {
	courses []course.Course
	err     error
}

func (s stubLister) ListCourses(context.Context) ([]course.Course, error) {
	return s.courses, s.err
}

func TestListCourses_EmptyCatalogIsArray(t *testing.T) {
	srv := httptest.NewServer(NewRouter(stubLister{}, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + CoursesPath)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want application/json", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if strings.TrimSpace(string(body)) != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestListCourses_SourceError(t *testing.T) {
	srv := httptest.NewServer(NewRouter(stubLister{err: errors.New("disk gone")}, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + CoursesPath)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}

func TestRouter_RejectsPost(t *testing.T) {
	srv := httptest.NewServer(NewRouter(stubLister{}, nil))
	defer srv.Close()

	resp, err := http.Post(srv.URL+CoursesPath, "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(NewRouter(stubLister{}, nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if strings.TrimSpace(string(body)) != "OK" {
		t.Errorf("body = %q, want OK", body)
	}
}

func TestRoundTrip_StoreToClient(t *testing.T) {
	store, err := db.New(filepath.Join(t.TempDir(), "courses.db"))
	if err != nil {
		t.Fatalf("db.New failed: %v", err)
	}
	defer func() { _ = store.Close() }()

	want := []course.Course{
		{ID: "1", Title: "Intro to Rust", Description: "...", Instructor: "A. Turing"},
		{ID: "2", Title: "Go in Practice", Description: "Channels", Instructor: "G. Hopper"},
	}
	if err := store.ReplaceCourses(context.Background(), want); err != nil {
		t.Fatalf("ReplaceCourses failed: %v", err)
	}

	srv := httptest.NewServer(NewRouter(store, nil))
	defer srv.Close()

	got, err := courseapi.New(srv.URL + CoursesPath).ListCourses(context.Background())
	if err != nil {
		t.Fatalf("ListCourses failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d courses, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("course %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, "127.0.0.1:0", stubLister{}, nil)
	}()

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Serve returned %v, want nil", err)
	}
}
