package core

import "strings"

const defaultHistoryMax = 100

// History stores submitted command lines with a recall cursor.
// The cursor ranges over [0, Len()]; Len() means "past the newest entry".
type History struct {
	entries []string
	max     int
	cursor  int
}

// NewHistory returns a history that keeps at most max entries.
func NewHistory(max int) *History {
	if max <= 0 {
		max = defaultHistoryMax
	}
	return &History{max: max}
}

// Append records entry and moves the cursor past the end. Blank entries are ignored.
func (h *History) Append(entry string) bool {
	if h == nil {
		return false
	}
	if strings.TrimSpace(entry) == "" {
		return false
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
	h.cursor = len(h.entries)
	return true
}

// Up moves the cursor one entry back, stopping at the oldest, and returns
// that entry. It reports false when the history is empty.
func (h *History) Up() (string, bool) {
	if h == nil || len(h.entries) == 0 {
		return "", false
	}
	h.cursor--
	if h.cursor < 0 {
		h.cursor = 0
	}
	return h.entries[h.cursor], true
}

// Down moves the cursor one entry forward. Moving past the newest entry
// returns an empty line. It reports false when the history is empty.
func (h *History) Down() (string, bool) {
	if h == nil || len(h.entries) == 0 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = len(h.entries)
		return "", true
	}
	return h.entries[h.cursor], true
}

// Cursor returns the recall position.
func (h *History) Cursor() int {
	if h == nil {
		return 0
	}
	return h.cursor
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}

// Entries returns a copy of the stored entries, oldest first.
func (h *History) Entries() []string {
	if h == nil {
		return nil
	}
	return append([]string(nil), h.entries...)
}
