package view

import "github.com/javiermolinar/edulearn/internal/course"

// CardCache memoizes rendered cards keyed by course ID. An entry is reused
// only when the course value and geometry are unchanged, so repeated or
// edited records never show stale output. A nil cache renders directly.
type CardCache struct {
	entries map[cardKey]cardEntry
}

type cardKey struct {
	id        course.ID
	width     int
	minHeight int
}

type cardEntry struct {
	course course.Course
	out    string
}

// NewCardCache creates an empty cache.
func NewCardCache() *CardCache {
	return &CardCache{entries: make(map[cardKey]cardEntry)}
}

// Render returns the cached card for c or renders and stores it.
func (cc *CardCache) Render(c course.Course, opts CardOptions) string {
	if cc == nil {
		return RenderCard(c, opts)
	}
	key := cardKey{id: c.ID, width: opts.Width, minHeight: opts.MinHeight}
	if e, ok := cc.entries[key]; ok && e.course == c {
		return e.out
	}
	out := RenderCard(c, opts)
	cc.entries[key] = cardEntry{course: c, out: out}
	return out
}

// Reset drops all entries. Call it when the catalog, width or styles change.
func (cc *CardCache) Reset() {
	if cc == nil {
		return
	}
	clear(cc.entries)
}

// Len returns the number of cached cards.
func (cc *CardCache) Len() int {
	if cc == nil {
		return 0
	}
	return len(cc.entries)
}
