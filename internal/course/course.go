// Package course defines the catalog domain: course records, the load state
// that drives the catalog view, and the failure taxonomy of a catalog fetch.
package course

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Course is one catalog entry as returned by the course-listing service.
// Values are never validated or trimmed; a long Description is kept intact
// and only clamped at render time.
type Course struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Instructor  string `json:"instructor"`
}

// ID is an opaque course identifier. The service may send it as a JSON
// string or number; numbers keep their literal text.
type ID string

// UnmarshalJSON accepts string, number and null identifiers.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("course id must be a string or number, got %s", data)
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier text.
func (id ID) String() string {
	return string(id)
}

// Lister fetches the ordered course sequence from a catalog source.
type Lister interface {
	ListCourses(ctx context.Context) ([]Course, error)
}

// Decode parses a response body as an ordered sequence of courses.
// The body must be a JSON array; an empty array is valid.
func Decode(body []byte) ([]Course, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &ParseError{Err: fmt.Errorf("expected a JSON array, got %s", describeBody(trimmed))}
	}

	var courses []Course
	if err := json.Unmarshal(trimmed, &courses); err != nil {
		return nil, &ParseError{Err: err}
	}
	if courses == nil {
		courses = []Course{}
	}
	return courses, nil
}

func describeBody(b []byte) string {
	if len(b) == 0 {
		return "an empty body"
	}
	s := string(b)
	if len(s) > 32 {
		s = s[:32] + "..."
	}
	return fmt.Sprintf("%q", strings.TrimSpace(s))
}
