package service

import (
	"context"
	"encoding/json"
	"stickynotes/cmd/internal/contract"
	"stickynotes/cmd/internal/domain/filter"
	"stickynotes/cmd/internal/infrastructure/aws/storage"
	"stickynotes/cmd/internal/infrastructure/metrics"
	"stickynotes/cmd/internal/utils"
	"stickynotes/cmd/internal/utils/apierror"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// AdminService backs the superuser surface. It sees every note, archived
// ones included.
type AdminService struct {
	Notes *DefaultNoteService

	// S3 is nil when no bucket is configured; exports are then refused.
	S3 storage.S3Client
}

func NewAdminService(notes *DefaultNoteService, s3 storage.S3Client) *AdminService {
	return &AdminService{
		Notes: notes,
		S3:    s3,
	}
}

func (a *AdminService) ListNotes(ctx context.Context, req *contract.AdminNoteSearchRequest) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	f, apierr := a.Notes.searchFilter(&req.NoteSearchRequest)
	if apierr != nil {
		return nil, apierr
	}
	if valerr := a.Notes.Validate.Struct(req); valerr != nil {
		return nil, validationError(valerr)
	}

	switch req.IsArchived {
	case "true":
		f.Scope = filter.ScopeArchived
	case "false":
		f.Scope = filter.ScopeActive
	default:
		f.Scope = filter.ScopeAll
	}

	notes, err := a.Notes.NoteRepo.FindAll(ctx, f)
	if err != nil {
		log.Errorf("failed to fetch notes for admin: %v", err)
		return nil, apierror.InternalServerError
	}
	return toNoteResponses(notes), nil
}

// SetArchived sets the archived flag directly. UpdatedAt only moves when the
// flag actually changes.
func (a *AdminService) SetArchived(ctx context.Context, noteId int, req *contract.SetArchivedRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	if valerr := a.Notes.Validate.Struct(req); valerr != nil {
		return nil, validationError(valerr)
	}

	note, apierr := a.Notes.findNote(ctx, noteId, a.Notes.Policy.CanToggleArchive)
	if apierr != nil {
		return nil, apierr
	}

	if note.IsArchived == *req.IsArchived {
		return toNoteResponse(note), nil
	}

	note.IsArchived = *req.IsArchived
	a.Notes.touch(note)
	if err := a.Notes.NoteRepo.Update(ctx, note); err != nil {
		log.Errorf("failed to set archived on note %d: %v", noteId, err)
		return nil, apierror.InternalServerError
	}

	a.Notes.Metrics.Observe(metrics.OperationArchive, metrics.StatusSuccess)
	return toNoteResponse(note), nil
}

// ExportSnapshot writes every note, archived ones included, as a single JSON
// document to object storage.
func (a *AdminService) ExportSnapshot(ctx context.Context) (*contract.SnapshotResponse, apierror.ErrorResponse) {
	if a.S3 == nil {
		return nil, apierror.ExportUnavailableError
	}

	notes, err := a.Notes.NoteRepo.FindAll(ctx, &filter.Filter{Scope: filter.ScopeAll})
	if err != nil {
		log.Errorf("failed to fetch notes for export: %v", err)
		a.Notes.Metrics.Observe(metrics.OperationExport, metrics.StatusError)
		return nil, apierror.InternalServerError
	}

	createdAt := utils.FormatEpoch(a.Notes.Now())
	body, err := json.Marshal(&contract.Snapshot{
		ExportedAt: createdAt,
		Notes:      toNoteResponses(notes),
	})
	if err != nil {
		log.Errorf("failed to encode snapshot: %v", err)
		a.Notes.Metrics.Observe(metrics.OperationExport, metrics.StatusError)
		return nil, apierror.InternalServerError
	}

	key, err := a.S3.UploadFile(ctx, body, snapshotKey())
	if err != nil {
		log.Errorf("failed to upload snapshot: %v", err)
		a.Notes.Metrics.Observe(metrics.OperationExport, metrics.StatusError)
		return nil, apierror.InternalServerError
	}

	log.Infof("exported %d notes to %s", len(notes), key)
	a.Notes.Metrics.Observe(metrics.OperationExport, metrics.StatusSuccess)
	return &contract.SnapshotResponse{
		Key:       key,
		NoteCount: len(notes),
		CreatedAt: createdAt,
	}, nil
}

func snapshotKey() string {
	return storage.PathExports + uuid.NewString() + ".json"
}
