package api

import (
	"encoding/json"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/api/handlers"
	mw "github.com/BruinGrowly/LJPW-Physics-sub001/internal/api/middleware"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/buildconfig"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/cache"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/config"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/service"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the router and background services for lifecycle management.
type App struct {
	Router     *chi.Mux
	Reclassify *service.ReclassifyService
	Ranking    *service.RankingService

	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewApp wires stores, services and handlers. rdb may be nil, which
// disables the ranking cache.
func NewApp(db *pgxpool.Pool, rdb *redis.Client, logger *zap.Logger) *App {
	// Stores
	profileStore := store.NewProfileStore(db)
	subjectStore := store.NewSubjectStore(db)
	assessmentStore := store.NewAssessmentStore(db)

	var rankingCache *cache.RankingCache
	if rdb != nil {
		rankingCache = cache.NewRankingCache(rdb)
	}

	// Services
	profileSvc := service.NewProfileService(profileStore)
	subjectSvc := service.NewSubjectService(subjectStore, profileStore)
	scoreSvc := service.NewScoreService(profileStore, logger)
	assessmentSvc := service.NewAssessmentService(assessmentStore, subjectStore, profileStore, logger)
	trajectorySvc := service.NewTrajectoryService(assessmentStore, subjectStore, logger)
	estimateSvc := service.NewEstimateService(assessmentSvc, logger)
	reclassifySvc := service.NewReclassifyService(assessmentStore, logger)
	rankingSvc := service.NewRankingService(assessmentStore, rankingCache, logger)
	reclassifySvc.SetInterval(config.ReclassifyInterval())
	rankingSvc.SetInterval(config.RankingInterval())

	// Handlers
	scoreHandler := handlers.NewScoreHandler(scoreSvc)
	profileHandler := handlers.NewProfileHandler(profileSvc)
	subjectHandler := handlers.NewSubjectHandler(subjectSvc)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentSvc)
	trajectoryHandler := handlers.NewTrajectoryHandler(trajectorySvc)
	estimateHandler := handlers.NewEstimateHandler(estimateSvc)
	simulateHandler := handlers.NewSimulateHandler()
	calibrationHandler := handlers.NewCalibrationHandler()
	rankingHandler := handlers.NewRankingHandler(rankingSvc)

	r := chi.NewRouter()

	app := &App{
		Router:     r,
		Reclassify: reclassifySvc,
		Ranking:    rankingSvc,
		startTime:  time.Now(),
	}

	metricsCollector := mw.NewMetricsCollector(&app.requestCount, &app.errorCount)

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metricsCollector.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	// Health (no auth)
	r.Get("/health", healthHandler(db))

	// Metrics (no auth)
	r.Get("/metrics", app.metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		// Read-only reference data and stateless computations
		r.Post("/score", scoreHandler.Evaluate)
		r.Post("/simulate", simulateHandler.Simulate)
		r.Get("/calibration", calibrationHandler.List)
		r.Post("/calibration/{key}/validate", calibrationHandler.Validate)
		r.Get("/presets", calibrationHandler.Presets)
		r.Post("/estimate", estimateHandler.Estimate)
		r.Get("/rankings", rankingHandler.Top)
		r.Get("/rankings/{id}", rankingHandler.Rank)

		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", profileHandler.List)
			r.Get("/{id}", profileHandler.GetByID)
			r.Group(func(r chi.Router) {
				r.Use(mw.APIKeyAuth(config.APIKey()))
				r.Post("/", profileHandler.Create)
				r.Put("/{id}", profileHandler.Update)
			})
		})

		r.Route("/subjects", func(r chi.Router) {
			r.Get("/", subjectHandler.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", subjectHandler.GetByID)
				r.Get("/assessments", assessmentHandler.ListBySubject)
				r.Get("/trajectory", trajectoryHandler.Get)
			})
			r.Group(func(r chi.Router) {
				r.Use(mw.APIKeyAuth(config.APIKey()))
				r.Post("/", subjectHandler.Create)
			})
		})

		r.Route("/assessments", func(r chi.Router) {
			r.Get("/{id}", assessmentHandler.GetByID)
			r.Post("/similar", assessmentHandler.FindSimilar)
			r.Group(func(r chi.Router) {
				r.Use(mw.APIKeyAuth(config.APIKey()))
				r.Post("/", assessmentHandler.Create)
			})
		})
	})

	return app
}

// NewRouter returns just the chi.Mux for callers that manage their own
// lifecycle.
func NewRouter(db *pgxpool.Pool, rdb *redis.Client, logger *zap.Logger) *chi.Mux {
	return NewApp(db, rdb, logger).Router
}

func healthHandler(db *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "version": buildconfig.Version()})
	}
}

func (app *App) metricsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var memStats runtime.MemStats
		runtime.ReadMemStats(&memStats)

		uptime := time.Since(app.startTime)

		response := map[string]any{
			"uptime_seconds": uptime.Seconds(),
			"uptime_human":   uptime.Round(time.Second).String(),
			"request_count":  app.requestCount.Load(),
			"error_count":    app.errorCount.Load(),
			"goroutines":     runtime.NumGoroutine(),
			"memory": map[string]any{
				"alloc_mb":       float64(memStats.Alloc) / 1024 / 1024,
				"total_alloc_mb": float64(memStats.TotalAlloc) / 1024 / 1024,
				"sys_mb":         float64(memStats.Sys) / 1024 / 1024,
				"num_gc":         memStats.NumGC,
			},
			"go_version": runtime.Version(),
			"version":    buildconfig.Version(),
			"commit":     buildconfig.Commit(),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(response)
	}
}

// Ensure stores satisfy interfaces at compile time.
var (
	_ domain.ProfileStore    = (*store.ProfileStore)(nil)
	_ domain.SubjectStore    = (*store.SubjectStore)(nil)
	_ domain.AssessmentStore = (*store.AssessmentStore)(nil)
)
