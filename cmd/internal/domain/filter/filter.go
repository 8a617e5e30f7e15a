// Package filter holds the note query contract shared by every listing
// surface: which notes match a search and in what order they come back.
package filter

import (
	"cmp"
	"slices"
	"strings"

	"stickynotes/cmd/internal/domain/entity"
)

// Scope selects notes by archival state.
type Scope int

const (
	// ScopeActive matches only non-archived notes. It is the zero value, so a
	// Filter that does not mention a scope never leaks archived notes.
	ScopeActive Scope = iota
	ScopeArchived
	ScopeAll
)

// Filter is a conjunction of predicates. Empty string fields match
// everything.
type Filter struct {
	Scope    Scope
	Search   string
	Category entity.Category
	Priority entity.Priority
}

// Matches reports whether a note satisfies every predicate of f.
func (f *Filter) Matches(note *entity.Note) bool {
	switch f.Scope {
	case ScopeActive:
		if note.IsArchived {
			return false
		}
	case ScopeArchived:
		if !note.IsArchived {
			return false
		}
	}

	if f.Category != "" && note.Category != f.Category {
		return false
	}

	if f.Priority != "" && note.Priority != f.Priority {
		return false
	}

	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(note.Title), q) &&
			!strings.Contains(strings.ToLower(note.Content), q) {
			return false
		}
	}
	return true
}

// Apply returns the notes matching f, most recently updated first. Notes
// with equal updated_at keep insertion order (ascending id), whatever order
// they arrived in. The input slice is not modified.
func Apply(notes []*entity.Note, f *Filter) []*entity.Note {
	out := make([]*entity.Note, 0, len(notes))
	for _, n := range notes {
		if f.Matches(n) {
			out = append(out, n)
		}
	}

	slices.SortStableFunc(out, func(a, b *entity.Note) int {
		return cmp.Or(
			cmp.Compare(b.UpdatedAt, a.UpdatedAt),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return out
}
