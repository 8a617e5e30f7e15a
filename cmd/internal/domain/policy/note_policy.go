package policy

import (
	"stickynotes/cmd/internal/domain/entity"
	"stickynotes/cmd/internal/utils/apierror"
)

// NotePolicy encapsulates the archival rules for note manipulation.
// It returns apierror.ErrorResponse directly for seamless integration with handlers.
//
// An archived note behaves as if it did not exist for every operation
// except the archive toggle, which is the only way back to the active state.
type NotePolicy struct{}

func NewNotePolicy() *NotePolicy {
	return &NotePolicy{}
}

func (p *NotePolicy) CanSee(note *entity.Note) apierror.ErrorResponse {
	if note == nil || note.IsArchived {
		return apierror.NotFoundError
	}
	return nil
}

func (p *NotePolicy) CanUpdate(note *entity.Note) apierror.ErrorResponse {
	return p.CanSee(note)
}

func (p *NotePolicy) CanDelete(note *entity.Note) apierror.ErrorResponse {
	return p.CanSee(note)
}

func (p *NotePolicy) CanToggleArchive(note *entity.Note) apierror.ErrorResponse {
	if note == nil {
		return apierror.NotFoundError
	}
	return nil
}
