package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"stickynotes/cmd/internal/config"
	"stickynotes/cmd/internal/domain/memory"
	"stickynotes/cmd/internal/domain/sqlite"
	"stickynotes/cmd/internal/domain/sqlite/repository"
	"stickynotes/cmd/internal/http/handler"
	authmw "stickynotes/cmd/internal/http/middleware"
	"stickynotes/cmd/internal/infrastructure/aws/storage"
	"stickynotes/cmd/internal/infrastructure/metrics"
	"stickynotes/cmd/internal/service"
	"stickynotes/cmd/internal/service/jobs"
	"stickynotes/cmd/internal/utils/validators"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type noteStore interface {
	service.NoteRepository
	Count(ctx context.Context) (int64, error)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("unable to load config: %v", err)
	}
	log.SetLevel(cfg.Level())

	noteRepo, err := openStore(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("unable to open note store: %v", err)
	}
	if count, err := noteRepo.Count(ctx); err == nil {
		log.Infof("note store ready at %s with %d notes", cfg.DatabasePath, count)
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	noteMetrics, err := metrics.NewNoteMetrics(registry)
	if err != nil {
		log.Fatalf("unable to register metrics: %v", err)
	}

	// S3 is optional, exports are refused without a bucket
	var s3Client storage.S3Client
	if cfg.ExportsEnabled() {
		s3Client, err = storage.NewStorageClient(ctx, cfg.S3Region, cfg.S3Bucket, cfg.S3Endpoint)
		if err != nil {
			log.Fatalf("unable to create S3 client: %v", err)
		}
	}

	// Services
	noteService := service.NewNoteService(noteRepo, validators.New(), noteMetrics)
	adminService := service.NewAdminService(noteService, s3Client)

	if cfg.ExportInterval > 0 && s3Client != nil {
		go jobs.NewSnapshotExporter(adminService, cfg.ExportInterval).Start(ctx)
	}

	// Handlers
	noteRoutes := handler.NewNoteDefault(noteService, cfg.PageSize)
	adminRoutes := handler.NewAdminDefault(adminService, cfg.AdminPageSize)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/api/notes")
	})

	// Notes
	e.GET("/api/notes", noteRoutes.GetNotes)
	e.GET("/api/notes/search", noteRoutes.SearchNotes)
	e.GET("/api/notes/choices", noteRoutes.GetChoices)
	e.POST("/api/notes", noteRoutes.CreateNote)
	e.GET("/api/notes/:id", noteRoutes.GetNote)
	e.PATCH("/api/notes/:id", noteRoutes.UpdateNote)
	e.DELETE("/api/notes/:id", noteRoutes.DeleteNote)
	e.POST("/api/notes/:id/archive", noteRoutes.ToggleArchive)

	// Admin
	if cfg.AdminEnabled() {
		admin := e.Group("/api/admin", authmw.NewAdminMiddleware(&authmw.AdminMiddlewareConfig{
			Secret: []byte(cfg.AdminTokenSecret),
		}))
		admin.GET("/notes", adminRoutes.ListNotes)
		admin.PATCH("/notes/:id", adminRoutes.SetArchived)
		admin.POST("/exports", adminRoutes.ExportSnapshot)
	} else {
		log.Warn("ADMIN_TOKEN_SECRET is not set, admin routes are disabled")
	}

	e.GET("/metrics", echo.WrapHandler(noteMetrics.Handler()))

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	go func() {
		if err := e.Start(cfg.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("graceful shutdown failed: %v", err)
	}
}

// openStore picks the in-process store for DATABASE_PATH=memory and SQLite
// for anything else.
func openStore(path string) (noteStore, error) {
	if path == "memory" {
		return memory.NewNoteRepository(), nil
	}

	db, err := sqlite.Init(path)
	if err != nil {
		return nil, err
	}
	return repository.NewNoteRepository(db), nil
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
