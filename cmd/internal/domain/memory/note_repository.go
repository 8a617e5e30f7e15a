// Package memory provides an in-process note store used by the tests and
// selected by DATABASE_PATH=memory.
package memory

import (
	"context"
	"sync"

	"stickynotes/cmd/internal/domain/entity"
	"stickynotes/cmd/internal/domain/filter"
)

// NoteRepository keeps notes in insertion order. Callers always receive
// copies, so mutating a returned note never touches the stored one.
type NoteRepository struct {
	mu     sync.Mutex
	nextID int
	notes  []*entity.Note
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{nextID: 1}
}

func (r *NoteRepository) Insert(_ context.Context, note *entity.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note.ID = r.nextID
	r.nextID++
	r.notes = append(r.notes, note.Clone())
	return nil
}

func (r *NoteRepository) FindByID(_ context.Context, id int) (*entity.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		return r.notes[i].Clone(), nil
	}
	return nil, nil
}

func (r *NoteRepository) FindAll(_ context.Context, f *filter.Filter) ([]*entity.Note, error) {
	r.mu.Lock()
	snapshot := make([]*entity.Note, len(r.notes))
	for i, n := range r.notes {
		snapshot[i] = n.Clone()
	}
	r.mu.Unlock()

	return filter.Apply(snapshot, f), nil
}

// Update replaces the stored note. Updating a note that no longer exists is
// a no-op, matching an UPDATE that affects zero rows.
func (r *NoteRepository) Update(_ context.Context, note *entity.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(note.ID); i >= 0 {
		r.notes[i] = note.Clone()
	}
	return nil
}

func (r *NoteRepository) Delete(_ context.Context, note *entity.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(note.ID); i >= 0 {
		r.notes = append(r.notes[:i], r.notes[i+1:]...)
	}
	return nil
}

func (r *NoteRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.notes)), nil
}

func (r *NoteRepository) indexOf(id int) int {
	for i, n := range r.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
