package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stickynotes/cmd/internal/contract"
	"stickynotes/cmd/internal/utils/apierror"
)

type recordingS3 struct {
	uploads map[string][]byte
	err     error
}

func (r *recordingS3) UploadFile(_ context.Context, data []byte, key string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.uploads == nil {
		r.uploads = map[string][]byte{}
	}
	r.uploads[key] = data
	return key, nil
}

func adminTitles(t *testing.T, a *AdminService, req contract.AdminNoteSearchRequest) []string {
	t.Helper()
	notes, apierr := a.ListNotes(context.Background(), &req)
	require.Nil(t, apierr)

	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Title
	}
	return out
}

func TestAdminListNotes(t *testing.T) {
	svc, _, clock := setupNoteService(t)
	admin := NewAdminService(svc, nil)
	ctx := context.Background()

	mustCreate(t, svc, "Test Note", "x", "personal", "high")
	clock.Advance(1)
	work := mustCreate(t, svc, "Work Note", "x", "work", "high")
	clock.Advance(1)
	_, apierr := svc.ToggleArchive(ctx, work.ID)
	require.Nil(t, apierr)

	assert.Equal(t, []string{"Work Note", "Test Note"}, adminTitles(t, admin, contract.AdminNoteSearchRequest{}))
	assert.Equal(t, []string{"Work Note"}, adminTitles(t, admin, contract.AdminNoteSearchRequest{IsArchived: "true"}))
	assert.Equal(t, []string{"Test Note"}, adminTitles(t, admin, contract.AdminNoteSearchRequest{IsArchived: " false "}))
	assert.Equal(t, []string{"Work Note"}, adminTitles(t, admin, contract.AdminNoteSearchRequest{
		NoteSearchRequest: contract.NoteSearchRequest{CategoryFilter: "work"},
	}))

	_, apierr = admin.ListNotes(ctx, &contract.AdminNoteSearchRequest{IsArchived: "maybe"})
	requireFieldError(t, apierr, "is_archived")
}

func TestAdminSetArchived(t *testing.T) {
	svc, repo, clock := setupNoteService(t)
	admin := NewAdminService(svc, nil)
	ctx := context.Background()

	created := mustCreate(t, svc, "a", "b", "", "")
	before := stored(t, repo, created.ID)

	// Setting the current value is a no-op.
	_, apierr := admin.SetArchived(ctx, created.ID, &contract.SetArchivedRequest{IsArchived: ptr(false)})
	require.Nil(t, apierr)
	assert.Equal(t, before.UpdatedAt, stored(t, repo, created.ID).UpdatedAt)

	clock.Advance(3)
	resp, apierr := admin.SetArchived(ctx, created.ID, &contract.SetArchivedRequest{IsArchived: ptr(true)})
	require.Nil(t, apierr)
	assert.True(t, resp.IsArchived)
	assert.Greater(t, stored(t, repo, created.ID).UpdatedAt, before.UpdatedAt)

	// Archived notes are still reachable from the admin surface.
	resp, apierr = admin.SetArchived(ctx, created.ID, &contract.SetArchivedRequest{IsArchived: ptr(false)})
	require.Nil(t, apierr)
	assert.False(t, resp.IsArchived)

	_, apierr = admin.SetArchived(ctx, created.ID, &contract.SetArchivedRequest{})
	requireFieldError(t, apierr, "is_archived")

	_, apierr = admin.SetArchived(ctx, 999, &contract.SetArchivedRequest{IsArchived: ptr(true)})
	assert.Equal(t, apierror.NotFoundError, apierr)
}

func TestAdminExportSnapshot(t *testing.T) {
	svc, _, _ := setupNoteService(t)
	s3 := &recordingS3{}
	admin := NewAdminService(svc, s3)
	ctx := context.Background()

	active := mustCreate(t, svc, "active", "x", "", "")
	archived := mustCreate(t, svc, "archived", "x", "", "")
	_, apierr := svc.ToggleArchive(ctx, archived.ID)
	require.Nil(t, apierr)

	resp, apierr := admin.ExportSnapshot(ctx)
	require.Nil(t, apierr)
	assert.Equal(t, 2, resp.NoteCount)
	assert.True(t, strings.HasPrefix(resp.Key, "exports/"))
	assert.True(t, strings.HasSuffix(resp.Key, ".json"))

	var snap contract.Snapshot
	require.NoError(t, json.Unmarshal(s3.uploads[resp.Key], &snap))
	assert.Equal(t, resp.CreatedAt, snap.ExportedAt)
	require.Len(t, snap.Notes, 2)

	ids := []int{snap.Notes[0].ID, snap.Notes[1].ID}
	assert.ElementsMatch(t, []int{active.ID, archived.ID}, ids)
}

func TestAdminExportSnapshotFailures(t *testing.T) {
	svc, _, _ := setupNoteService(t)

	_, apierr := NewAdminService(svc, nil).ExportSnapshot(context.Background())
	assert.Equal(t, apierror.ExportUnavailableError, apierr)

	_, apierr = NewAdminService(svc, &recordingS3{err: errors.New("denied")}).ExportSnapshot(context.Background())
	assert.Equal(t, apierror.InternalServerError, apierr)
}
