package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"careerhub/internal/ats"
	"careerhub/internal/builder"
	"careerhub/internal/contact"
	"careerhub/internal/generatedresumes"
	"careerhub/internal/jobs"
	"careerhub/internal/messages"
	"careerhub/internal/postings"
	"careerhub/internal/remote"
	"careerhub/internal/resume"
	"careerhub/internal/review"
	"careerhub/internal/services/health"
	"careerhub/internal/session"
	"careerhub/internal/shared/config"
	"careerhub/internal/shared/metrics"
	"careerhub/internal/shared/server"
	"careerhub/internal/shared/storage/db"
	"careerhub/internal/shared/storage/object"
	localstore "careerhub/internal/shared/storage/object/local"
	s3store "careerhub/internal/shared/storage/object/s3"
	"careerhub/internal/shared/telemetry"
)

// Web holds the dependencies of the visitor-facing service.
type Web struct {
	Config     config.Config
	Router     *gin.Engine
	Remote     *remote.Client
	Jobs       *jobs.Service
	Workspaces *session.Store[*builder.Workspace]
	Flows      *session.Store[*ats.Flow]
}

// Sweep drops idle sessions until ctx is done.
func (w *Web) Sweep(ctx context.Context, interval time.Duration) {
	go w.Flows.Run(ctx, interval)
	w.Workspaces.Run(ctx, interval)
}

// BuildWeb wires the builder, jobs, ATS and contact features against the remote API.
func BuildWeb(cfg config.Config) (*Web, error) {
	client := remote.NewClient(cfg.RemoteBaseURL, cfg.RemoteTimeout)

	workspaces := session.NewStore(cfg.SessionIdleTTL,
		func(string) *builder.Workspace { return builder.NewWorkspace(resume.New()) },
		session.WithEvict(func(id string, w *builder.Workspace) {
			w.Close()
			telemetry.Debug("session.evicted", map[string]any{"session_id": id, "kind": "builder"})
		}),
		session.WithInUse(func(w *builder.Workspace) bool { return w.Subscribers() > 0 }),
	)
	flows := session.NewStore(cfg.SessionIdleTTL,
		func(string) *ats.Flow { return ats.NewFlow(cfg.ATSAnalyzeDelay) },
	)

	jobsSvc := jobs.NewService(remote.JobsAdapter{API: client}, cfg.JobsCacheTTL)

	web := &Web{
		Config:     cfg,
		Remote:     client,
		Jobs:       jobsSvc,
		Workspaces: workspaces,
		Flows:      flows,
	}
	web.Router = server.NewRouter(server.RouterDeps{
		Config: cfg,
		Health: health.NewService("web", nil),
		Handlers: []server.RouteRegistrar{
			builder.NewHandler(workspaces, remote.ReviewAdapter{API: client}, remote.DownloadAdapter{API: client}),
			jobs.NewHandler(jobsSvc, cfg.SearchDebounce),
			ats.NewHandler(flows),
			contact.NewHandler(remote.ContactAdapter{API: client}),
		},
		Middleware: []gin.HandlerFunc{trackActiveSessions(workspaces)},
	})
	return web, nil
}

// trackActiveSessions refreshes the active session gauge after every request.
func trackActiveSessions(store *session.Store[*builder.Workspace]) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.SetActiveSessions(store.Len())
	}
}

// API holds the dependencies of the reference remote API.
type API struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	Store            object.ObjectStore
	Postings         postings.Repo
	GeneratedResumes *generatedresumes.Service
	Messages         messages.Repo
	Reviewer         review.Reviewer
}

// Close releases the database pool, if any.
func (a *API) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

// BuildAPI wires the reference API: repositories, object storage and the reviewer.
func BuildAPI(ctx context.Context, cfg config.Config) (*API, error) {
	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	reviewer, err := buildReviewer(cfg)
	if err != nil {
		return nil, err
	}

	app := &API{
		Config:   cfg,
		DB:       sqlDB,
		Store:    store,
		Reviewer: reviewer,
	}

	var generatedRepo generatedresumes.Repo
	if sqlDB != nil {
		app.Postings = &postings.PGRepo{DB: sqlDB}
		app.Messages = &messages.PGRepo{DB: sqlDB}
		generatedRepo = &generatedresumes.PGRepo{DB: sqlDB}
	} else {
		app.Postings = postings.NewMemoryRepo(jobs.MockJobs())
		app.Messages = messages.NewMemoryRepo()
		generatedRepo = generatedresumes.NewMemoryRepo()
	}
	app.GeneratedResumes = &generatedresumes.Service{Repo: generatedRepo, Store: store}

	var pinger health.Pinger
	if sqlDB != nil {
		pinger = sqlDB
	}
	app.Router = server.NewAPIRouter(server.RouterDeps{
		Config: cfg,
		Health: health.NewService("api", pinger),
		Handlers: []server.RouteRegistrar{
			postings.NewHandler(app.Postings),
			review.NewHandler(reviewer),
			generatedresumes.NewHandler(app.GeneratedResumes),
			messages.NewHandler(app.Messages),
		},
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if cfg.IsDevLike() {
			telemetry.Info("bootstrap.memory_repositories", map[string]any{"reason": "database_url empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("database_url is required in env %q", cfg.Env)
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if cfg.IsDevLike() {
			telemetry.Warn("bootstrap.memory_repositories", map[string]any{"reason": "connect failed", "error": err})
			return nil, nil
		}
		return nil, err
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildReviewer(cfg config.Config) (review.Reviewer, error) {
	if cfg.LLMProvider != "openai" {
		return review.RulesReviewer{}, nil
	}
	if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
		telemetry.Warn("bootstrap.reviewer_fallback", map[string]any{"reason": "OPENAI_API_KEY not set"})
		return review.RulesReviewer{}, nil
	}
	return review.NewOpenAIReviewer(cfg.OpenAIAPIKey, cfg.LLMModel, "")
}
