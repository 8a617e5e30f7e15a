package handler

import (
	"context"
	"net/http"
	"stickynotes/cmd/internal/contract"
	"stickynotes/cmd/internal/utils"
	"stickynotes/cmd/internal/utils/apierror"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type AdminService interface {
	ListNotes(ctx context.Context, req *contract.AdminNoteSearchRequest) ([]*contract.NoteResponse, apierror.ErrorResponse)
	SetArchived(ctx context.Context, noteId int, req *contract.SetArchivedRequest) (*contract.NoteResponse, apierror.ErrorResponse)
	ExportSnapshot(ctx context.Context) (*contract.SnapshotResponse, apierror.ErrorResponse)
}

// DefaultAdminRoute serves /api/admin. Every handler expects the admin
// middleware to have run first.
type DefaultAdminRoute struct {
	AdminService AdminService
	PageSize     int
}

func NewAdminDefault(adminService AdminService, pageSize int) *DefaultAdminRoute {
	return &DefaultAdminRoute{
		AdminService: adminService,
		PageSize:     pageSize,
	}
}

func (a *DefaultAdminRoute) ListNotes(c echo.Context) error {
	var req contract.AdminNoteSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	notes, apierr := a.AdminService.ListNotes(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := toListResponse(utils.Paginate(notes, pageParam(c), a.PageSize))
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAdminRoute) SetArchived(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, apierror.NewInvalidParamTypeError("id", "int"))
	}

	var req contract.SetArchivedRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	note, apierr := a.AdminService.SetArchived(c.Request().Context(), id, &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, note)
}

func (a *DefaultAdminRoute) ExportSnapshot(c echo.Context) error {
	admin, cerr := utils.GetAdminFromContext(c)
	if cerr != nil {
		return c.JSON(cerr.Code(), cerr)
	}

	snapshot, apierr := a.AdminService.ExportSnapshot(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	log.Infof("snapshot %s requested by %s", snapshot.Key, admin.Sub)
	return c.JSON(http.StatusCreated, snapshot)
}
