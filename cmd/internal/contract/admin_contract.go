package contract

type AdminNoteSearchRequest struct {
	NoteSearchRequest
	IsArchived string `query:"is_archived" validate:"omitempty,oneof=true false"`
}

type SetArchivedRequest struct {
	IsArchived *bool `json:"is_archived" validate:"required"`
}

type SnapshotResponse struct {
	Key       string `json:"key"`
	NoteCount int    `json:"note_count"`
	CreatedAt string `json:"created_at"`
}

// Snapshot is the document written to object storage by an export.
type Snapshot struct {
	ExportedAt string          `json:"exported_at"`
	Notes      []*NoteResponse `json:"notes"`
}
