package jobs

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"
	"stickynotes/cmd/internal/contract"
	"stickynotes/cmd/internal/utils/apierror"
)

type SnapshotService interface {
	ExportSnapshot(ctx context.Context) (*contract.SnapshotResponse, apierror.ErrorResponse)
}

// SnapshotExporter periodically writes a snapshot of every note to object
// storage. It never mutates notes.
type SnapshotExporter struct {
	service  SnapshotService
	interval time.Duration
}

func NewSnapshotExporter(service SnapshotService, interval time.Duration) *SnapshotExporter {
	return &SnapshotExporter{
		service:  service,
		interval: interval,
	}
}

func (s *SnapshotExporter) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Infof("Snapshot exporter cron started, interval %s", s.interval)

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping snapshot exporter...")
			return
		case <-ticker.C:
			s.export(ctx)
		}
	}
}

func (s *SnapshotExporter) export(ctx context.Context) {
	resp, apierr := s.service.ExportSnapshot(ctx)
	if apierr != nil {
		log.Errorf("Exporter: snapshot failed with status %d", apierr.Code())
		return
	}

	log.Debugf("Exporter: wrote %d notes to %s", resp.NoteCount, resp.Key)
}
