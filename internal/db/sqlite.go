// Package db provides SQLite storage for the demo course-listing service.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/edulearn/internal/course"
)

// ErrDuplicateID is returned when a batch contains the same course ID twice.
var ErrDuplicateID = errors.New("duplicate course id")

// ErrMissingID is returned when a course without an ID is stored.
var ErrMissingID = errors.New("course id is empty")

// SQLite stores catalog courses in insertion order.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite store and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// ListCourses returns all courses in catalog order.
func (s *SQLite) ListCourses(ctx context.Context) ([]course.Course, error) {
	query := `
		SELECT id, title, description, instructor
		FROM courses
		ORDER BY position
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	courses := []course.Course{}
	for rows.Next() {
		var (
			c  course.Course
			id string
		)
		if err := rows.Scan(&id, &c.Title, &c.Description, &c.Instructor); err != nil {
			return nil, fmt.Errorf("scanning course: %w", err)
		}
		c.ID = course.ID(id)
		courses = append(courses, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}

	return courses, nil
}

// CountCourses returns the number of stored courses.
func (s *SQLite) CountCourses(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting courses: %w", err)
	}
	return n, nil
}

// ReplaceCourses atomically replaces the catalog with courses, keeping their order.
func (s *SQLite) ReplaceCourses(ctx context.Context, courses []course.Course) error {
	if err := checkBatchIDs(courses); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM courses`); err != nil {
		return fmt.Errorf("clearing courses: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO courses (id, title, description, instructor, position)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, c := range courses {
		if _, err := stmt.ExecContext(ctx, c.ID.String(), c.Title, c.Description, c.Instructor, i); err != nil {
			return fmt.Errorf("inserting course %q: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// checkBatchIDs rejects empty and repeated IDs within one batch.
func checkBatchIDs(courses []course.Course) error {
	seen := make(map[course.ID]bool, len(courses))
	for i, c := range courses {
		if c.ID == "" {
			return fmt.Errorf("course #%d: %w", i+1, ErrMissingID)
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}

var _ course.Lister = (*SQLite)(nil)
