package service

import (
	"context"
	"stickynotes/cmd/internal/contract"
	"stickynotes/cmd/internal/domain/entity"
	"stickynotes/cmd/internal/domain/filter"
	"stickynotes/cmd/internal/domain/policy"
	"stickynotes/cmd/internal/infrastructure/metrics"
	"stickynotes/cmd/internal/utils"
	"stickynotes/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// NoteRepository is the storage the note operations depend on. FindByID
// returns nil, nil for an unknown id.
type NoteRepository interface {
	Insert(ctx context.Context, note *entity.Note) error
	FindByID(ctx context.Context, id int) (*entity.Note, error)
	FindAll(ctx context.Context, f *filter.Filter) ([]*entity.Note, error)
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, note *entity.Note) error
}

type DefaultNoteService struct {
	NoteRepo NoteRepository
	Policy   *policy.NotePolicy
	Validate *validator.Validate
	Metrics  *metrics.NoteMetrics

	// Now returns the current time in Unix milliseconds.
	Now func() int64
}

func NewNoteService(
	noteRepo NoteRepository,
	validate *validator.Validate,
	m *metrics.NoteMetrics,
) *DefaultNoteService {
	return &DefaultNoteService{
		NoteRepo: noteRepo,
		Policy:   policy.NewNotePolicy(),
		Validate: validate,
		Metrics:  m,
		Now:      utils.NowUTC,
	}
}

// ListNotes serves both the listing and the search surfaces. Archived notes
// are never returned.
func (n *DefaultNoteService) ListNotes(ctx context.Context, req *contract.NoteSearchRequest) ([]*contract.NoteResponse, apierror.ErrorResponse) {
	f, apierr := n.searchFilter(req)
	if apierr != nil {
		n.Metrics.Observe(metrics.OperationList, metrics.StatusInvalid)
		return nil, apierr
	}

	notes, err := n.NoteRepo.FindAll(ctx, f)
	if err != nil {
		log.Errorf("failed to fetch notes: %v", err)
		n.Metrics.Observe(metrics.OperationList, metrics.StatusError)
		return nil, apierror.InternalServerError
	}

	n.Metrics.Observe(metrics.OperationList, metrics.StatusSuccess)
	n.Metrics.ObserveListSize(len(notes))
	return toNoteResponses(notes), nil
}

func (n *DefaultNoteService) GetNote(ctx context.Context, noteId int) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, apierr := n.findNote(ctx, noteId, n.Policy.CanSee)
	if apierr != nil {
		n.observeFailure(metrics.OperationGet, apierr)
		return nil, apierr
	}

	n.Metrics.Observe(metrics.OperationGet, metrics.StatusSuccess)
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) CreateNote(ctx context.Context, req *contract.CreateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		n.Metrics.Observe(metrics.OperationCreate, metrics.StatusInvalid)
		return nil, validationError(valerr)
	}

	note := &entity.Note{
		Title:    req.Title,
		Content:  req.Content,
		Category: categoryOrDefault(req.Category),
		Priority: priorityOrDefault(req.Priority),
	}
	note.CreatedAt = n.touch(note)

	if err := n.NoteRepo.Insert(ctx, note); err != nil {
		log.Errorf("failed to save note: %v", err)
		n.Metrics.Observe(metrics.OperationCreate, metrics.StatusError)
		return nil, apierror.InternalServerError
	}

	log.Debugf("created note %d", note.ID)
	n.Metrics.Observe(metrics.OperationCreate, metrics.StatusSuccess)
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) UpdateNote(ctx context.Context, noteId int, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, apierr := n.findNote(ctx, noteId, n.Policy.CanUpdate)
	if apierr != nil {
		n.observeFailure(metrics.OperationUpdate, apierr)
		return nil, apierr
	}

	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		n.Metrics.Observe(metrics.OperationUpdate, metrics.StatusInvalid)
		return nil, validationError(valerr)
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Category != nil {
		note.Category = entity.Category(*req.Category)
	}
	if req.Priority != nil {
		note.Priority = entity.Priority(*req.Priority)
	}

	n.touch(note)
	if err := n.NoteRepo.Update(ctx, note); err != nil {
		log.Errorf("failed to update note %d: %v", noteId, err)
		n.Metrics.Observe(metrics.OperationUpdate, metrics.StatusError)
		return nil, apierror.InternalServerError
	}

	n.Metrics.Observe(metrics.OperationUpdate, metrics.StatusSuccess)
	return toNoteResponse(note), nil
}

func (n *DefaultNoteService) DeleteNote(ctx context.Context, noteId int) apierror.ErrorResponse {
	note, apierr := n.findNote(ctx, noteId, n.Policy.CanDelete)
	if apierr != nil {
		n.observeFailure(metrics.OperationDelete, apierr)
		return apierr
	}

	if err := n.NoteRepo.Delete(ctx, note); err != nil {
		log.Errorf("failed to delete note %d: %v", noteId, err)
		n.Metrics.Observe(metrics.OperationDelete, metrics.StatusError)
		return apierror.InternalServerError
	}

	log.Debugf("deleted note %d", noteId)
	n.Metrics.Observe(metrics.OperationDelete, metrics.StatusSuccess)
	return nil
}

// ToggleArchive flips the archived flag. Unlike every other operation it
// accepts archived notes, since it is the only way to restore them.
func (n *DefaultNoteService) ToggleArchive(ctx context.Context, noteId int) (*contract.NoteResponse, apierror.ErrorResponse) {
	note, apierr := n.findNote(ctx, noteId, n.Policy.CanToggleArchive)
	if apierr != nil {
		n.observeFailure(metrics.OperationArchive, apierr)
		return nil, apierr
	}

	note.IsArchived = !note.IsArchived
	n.touch(note)

	if err := n.NoteRepo.Update(ctx, note); err != nil {
		log.Errorf("failed to toggle archive on note %d: %v", noteId, err)
		n.Metrics.Observe(metrics.OperationArchive, metrics.StatusError)
		return nil, apierror.InternalServerError
	}

	n.Metrics.Observe(metrics.OperationArchive, metrics.StatusSuccess)
	return toNoteResponse(note), nil
}

// findNote loads a note and runs it through check, which decides whether
// the note is in scope for the calling operation.
func (n *DefaultNoteService) findNote(ctx context.Context, noteId int, check func(*entity.Note) apierror.ErrorResponse) (*entity.Note, apierror.ErrorResponse) {
	note, err := n.NoteRepo.FindByID(ctx, noteId)
	if err != nil {
		log.Errorf("failed to fetch note %d: %v", noteId, err)
		return nil, apierror.InternalServerError
	}

	if apierr := check(note); apierr != nil {
		return nil, apierr
	}
	return note, nil
}

// touch refreshes UpdatedAt and returns the new value. The value always
// moves forward, even when the clock has not ticked since the last write.
func (n *DefaultNoteService) touch(note *entity.Note) int64 {
	now := n.Now()
	if now <= note.UpdatedAt {
		now = note.UpdatedAt + 1
	}
	note.UpdatedAt = now
	return now
}

func (n *DefaultNoteService) searchFilter(req *contract.NoteSearchRequest) (*filter.Filter, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := n.Validate.Struct(req); valerr != nil {
		return nil, validationError(valerr)
	}

	return &filter.Filter{
		Scope:    filter.ScopeActive,
		Search:   req.SearchQuery,
		Category: entity.Category(req.CategoryFilter),
		Priority: entity.Priority(req.PriorityFilter),
	}, nil
}

func (n *DefaultNoteService) observeFailure(operation string, apierr apierror.ErrorResponse) {
	status := metrics.StatusError
	if apierr == apierror.NotFoundError {
		status = metrics.StatusNotFound
	}
	n.Metrics.Observe(operation, status)
}

// validationError maps a validator failure to a field-level response. Any
// other error coming out of the validator is a programming error.
func validationError(err error) apierror.ErrorResponse {
	if serr := apierror.FromValidationError(err); serr != nil {
		return serr
	}
	log.Errorf("unexpected validation failure: %v", err)
	return apierror.InternalServerError
}

func categoryOrDefault(raw string) entity.Category {
	if raw == "" {
		return entity.DefaultCategory
	}
	return entity.Category(raw)
}

func priorityOrDefault(raw string) entity.Priority {
	if raw == "" {
		return entity.DefaultPriority
	}
	return entity.Priority(raw)
}

func toNoteResponses(notes []*entity.Note) []*contract.NoteResponse {
	resp := make([]*contract.NoteResponse, len(notes))
	for i, note := range notes {
		resp[i] = toNoteResponse(note)
	}
	return resp
}

func toNoteResponse(note *entity.Note) *contract.NoteResponse {
	return &contract.NoteResponse{
		ID:            note.ID,
		Title:         note.Title,
		Content:       note.Content,
		Category:      string(note.Category),
		CategoryLabel: note.Category.Label(),
		CategoryClass: note.Category.CSSClass(),
		Priority:      string(note.Priority),
		PriorityLabel: note.Priority.Label(),
		PriorityClass: note.Priority.CSSClass(),
		IsArchived:    note.IsArchived,
		CreatedAt:     utils.FormatEpoch(note.CreatedAt),
		UpdatedAt:     utils.FormatEpoch(note.UpdatedAt),
	}
}
