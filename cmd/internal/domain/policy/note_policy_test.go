package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stickynotes/cmd/internal/domain/entity"
	"stickynotes/cmd/internal/utils/apierror"
)

func TestNotePolicy(t *testing.T) {
	p := NewNotePolicy()
	active := &entity.Note{ID: 1}
	archived := &entity.Note{ID: 2, IsArchived: true}

	tests := []struct {
		name  string
		check func(*entity.Note) apierror.ErrorResponse
		note  *entity.Note
		want  apierror.ErrorResponse
	}{
		{"see active", p.CanSee, active, nil},
		{"see archived", p.CanSee, archived, apierror.NotFoundError},
		{"see missing", p.CanSee, nil, apierror.NotFoundError},
		{"update active", p.CanUpdate, active, nil},
		{"update archived", p.CanUpdate, archived, apierror.NotFoundError},
		{"delete active", p.CanDelete, active, nil},
		{"delete archived", p.CanDelete, archived, apierror.NotFoundError},
		{"toggle active", p.CanToggleArchive, active, nil},
		{"toggle archived", p.CanToggleArchive, archived, nil},
		{"toggle missing", p.CanToggleArchive, nil, apierror.NotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.check(tt.note)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
