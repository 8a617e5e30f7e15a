package jobs

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"stickynotes/cmd/internal/contract"
	"stickynotes/cmd/internal/utils/apierror"
)

type countingService struct {
	calls atomic.Int32
	fail  bool
}

func (c *countingService) ExportSnapshot(context.Context) (*contract.SnapshotResponse, apierror.ErrorResponse) {
	c.calls.Add(1)
	if c.fail {
		return nil, apierror.InternalServerError
	}
	return &contract.SnapshotResponse{Key: "exports/x.json", NoteCount: 1}, nil
}

func TestSnapshotExporterRunsUntilCancelled(t *testing.T) {
	svc := &countingService{}
	exporter := NewSnapshotExporter(svc, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		exporter.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return svc.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("exporter did not stop after cancel")
	}
}

func TestSnapshotExporterSurvivesFailures(t *testing.T) {
	svc := &countingService{fail: true}
	exporter := NewSnapshotExporter(svc, time.Hour)

	assert.NotPanics(t, func() { exporter.export(context.Background()) })
	assert.Equal(t, int32(1), svc.calls.Load())
}
