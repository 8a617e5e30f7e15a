package handler

import (
	"context"
	"net/http"
	"stickynotes/cmd/internal/contract"
	"stickynotes/cmd/internal/domain/entity"
	"stickynotes/cmd/internal/utils"
	"stickynotes/cmd/internal/utils/apierror"
	"strconv"

	"github.com/labstack/echo/v4"
)

type NoteService interface {
	ListNotes(ctx context.Context, req *contract.NoteSearchRequest) ([]*contract.NoteResponse, apierror.ErrorResponse)
	GetNote(ctx context.Context, noteId int) (*contract.NoteResponse, apierror.ErrorResponse)
	CreateNote(ctx context.Context, req *contract.CreateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	UpdateNote(ctx context.Context, noteId int, req *contract.UpdateNoteRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	DeleteNote(ctx context.Context, noteId int) apierror.ErrorResponse
	ToggleArchive(ctx context.Context, noteId int) (*contract.NoteResponse, apierror.ErrorResponse)
}

type DefaultNoteRoute struct {
	NoteService NoteService
	PageSize    int
}

func NewNoteDefault(noteService NoteService, pageSize int) *DefaultNoteRoute {
	return &DefaultNoteRoute{
		NoteService: noteService,
		PageSize:    pageSize,
	}
}

// GetNotes lists active notes, most recently updated first. It also serves
// /api/notes/search, the two only differ by path.
func (n *DefaultNoteRoute) GetNotes(c echo.Context) error {
	var req contract.NoteSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	notes, apierr := n.NoteService.ListNotes(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := toListResponse(utils.Paginate(notes, pageParam(c), n.PageSize))
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) SearchNotes(c echo.Context) error {
	return n.GetNotes(c)
}

func (n *DefaultNoteRoute) GetChoices(c echo.Context) error {
	resp := contract.ChoicesResponse{
		Categories: make([]contract.Choice, len(entity.Categories)),
		Priorities: make([]contract.Choice, len(entity.Priorities)),
	}
	for i, cat := range entity.Categories {
		resp.Categories[i] = contract.Choice{Value: string(cat), Label: cat.Label()}
	}
	for i, prio := range entity.Priorities {
		resp.Priorities[i] = contract.Choice{Value: string(prio), Label: prio.Label()}
	}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) GetNote(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	note, apierr := n.NoteService.GetNote(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

// CreateNote accepts both JSON and form-encoded bodies.
func (n *DefaultNoteRoute) CreateNote(c echo.Context) error {
	var req contract.CreateNoteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.NoteService.CreateNote(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := contract.NoteMessageResponse{Message: "Note created successfully!", Note: note}
	return c.JSON(http.StatusCreated, &resp)
}

func (n *DefaultNoteRoute) UpdateNote(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.UpdateNoteRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := n.NoteService.UpdateNote(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := contract.NoteMessageResponse{Message: "Note updated successfully!", Note: note}
	return c.JSON(http.StatusOK, &resp)
}

func (n *DefaultNoteRoute) DeleteNote(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	serr := n.NoteService.DeleteNote(c.Request().Context(), id)
	if serr != nil {
		return c.JSON(serr.Code(), serr)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Note deleted successfully!"})
}

func (n *DefaultNoteRoute) ToggleArchive(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	note, apierr := n.NoteService.ToggleArchive(c.Request().Context(), id)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	action := "not archived"
	if note.IsArchived {
		action = "archived"
	}
	resp := contract.NoteMessageResponse{Message: "Note " + action + " successfully!", Note: note}
	return c.JSON(http.StatusOK, &resp)
}

// pageParam reads the 1-based page number. Anything that is not a positive
// integer means the first page.
func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func toListResponse(p utils.Page[*contract.NoteResponse]) contract.NoteListResponse {
	return contract.NoteListResponse{
		Notes:      p.Items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}
