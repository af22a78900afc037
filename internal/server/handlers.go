package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/javiermolinar/edulearn/internal/course"
)

type handlers struct {
	src course.Lister
	log *slog.Logger
}

func (h *handlers) health(w http.ResponseWriter, _ *http.Request) {
	if _, err := fmt.Fprintln(w, "OK"); err != nil {
		h.log.Warn("health.write_failed", "error", err)
	}
}

// listCourses writes the full catalog as a JSON array. An empty catalog is "[]".
func (h *handlers) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.src.ListCourses(r.Context())
	if err != nil {
		h.log.Error("courses.list_failed", "error", err)
		http.Error(w, "failed to list courses", http.StatusInternalServerError)
		return
	}
	if courses == nil {
		courses = []course.Course{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(courses); err != nil {
		h.log.Warn("courses.encode_failed", "error", err)
	}
}
