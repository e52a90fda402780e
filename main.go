package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"club-elections/internal/config"
	"club-elections/internal/handler"
	"club-elections/internal/middleware"
	"club-elections/internal/repository"
	"club-elections/internal/service"
	"club-elections/pkg/database"
	"club-elections/pkg/logger"
	"club-elections/pkg/redis"
)

// Resources holds all resources that need cleanup.
type Resources struct {
	db          *database.PostgresDB
	redisClient *redis.Client
	server      *http.Server
	log         *logger.Logger
	mu          sync.Mutex
	closed      bool
}

// Cleanup gracefully closes all resources.
func (r *Resources) Cleanup(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	var errs []error

	r.log.Info("Starting graceful shutdown...")

	// Stop accepting new requests before tearing down dependencies.
	if r.server != nil {
		if err := r.server.Shutdown(ctx); err != nil {
			r.log.WithError(err).Error("Failed to shutdown HTTP server")
			errs = append(errs, fmt.Errorf("HTTP server shutdown: %w", err))
		} else {
			r.log.Info("HTTP server shutdown complete")
		}
	}

	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			r.log.WithError(err).Error("Failed to close Redis connection")
			errs = append(errs, fmt.Errorf("Redis close: %w", err))
		} else {
			r.log.Info("Redis connection closed")
		}
	}

	if r.db != nil {
		r.db.Close()
		r.log.Info("Database connection pool closed")
	}

	if len(errs) > 0 {
		return fmt.Errorf("cleanup completed with %d errors: %v", len(errs), errs)
	}

	r.log.Info("Graceful shutdown completed successfully")
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	log.WithFields(map[string]interface{}{
		"port":        cfg.Port,
		"log_level":   cfg.LogLevel,
		"environment": cfg.Environment,
	}).Info("Starting club-elections server")

	ctx := context.Background()
	db, err := database.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	// Redis is optional; without it every read goes straight to Postgres.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.NewClient(cfg.RedisURL, cfg.Environment)
		if err != nil {
			log.WithError(err).Warn("Failed to connect to Redis, proceeding without caching")
			redisClient = nil
		}
	} else {
		log.Info("Redis URL not configured, proceeding without caching")
	}

	// Repositories
	termRepo := repository.NewTermRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	electionRepo := repository.NewElectionRepository(db)
	nominationRepo := repository.NewNominationRepository(db)
	ballotRepo := repository.NewBallotRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	winnerRepo := repository.NewWinnerRepository(db)

	// Services
	cacheService := service.NewCacheService(redisClient, log.Logger)
	electionService := service.NewElectionService(termRepo, positionRepo, electionRepo, log.Logger)
	nominationService := service.NewNominationService(nominationRepo, log.Logger)
	ballotService := service.NewBallotService(electionRepo, nominationRepo, ballotRepo, winnerRepo, log.Logger, time.Now)
	votingService := service.NewVotingService(voteRepo, ballotRepo, cacheService, log.Logger, time.Now)
	winnerService := service.NewWinnerService(ballotRepo, winnerRepo, log.Logger)

	router := setupRouter(cfg, log, db, electionService, nominationService, ballotService, votingService, winnerService)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   60 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	resources := &Resources{
		db:          db,
		redisClient: redisClient,
		server:      server,
		log:         log,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	defer func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := resources.Cleanup(cleanupCtx); err != nil {
			log.WithError(err).Error("Cleanup completed with errors")
		}
	}()

	serverErrChan := make(chan error, 1)
	go func() {
		log.Info("Server starting on port " + cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Server error occurred")
			serverErrChan <- err
		}
	}()

	select {
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Received shutdown signal")
	case err := <-serverErrChan:
		log.WithError(err).Error("Server failed, initiating shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	if err := resources.Cleanup(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown completed with errors")
		os.Exit(1)
	}

	log.Info("Application shutdown complete")
}

// setupRouter configures and returns the HTTP router.
func setupRouter(
	cfg *config.Config,
	log *logger.Logger,
	db *database.PostgresDB,
	electionService *service.ElectionService,
	nominationService *service.NominationService,
	ballotService *service.BallotService,
	votingService *service.VotingService,
	winnerService *service.WinnerService,
) *chi.Mux {
	r := chi.NewRouter()

	corsConfig := &middleware.CORSConfig{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           86400,
	}

	r.Use(middleware.CORS(corsConfig, log))
	r.Use(middleware.RequestID(log))
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Compress(5))
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	healthHandler := handler.NewHealthHandler(db, log)
	electionHandler := handler.NewElectionHandler(electionService, log)
	nominationHandler := handler.NewNominationHandler(nominationService, log)
	ballotHandler := handler.NewBallotHandler(ballotService, log)
	votingHandler := handler.NewVotingHandler(votingService, log)
	winnerHandler := handler.NewWinnerHandler(winnerService, log)

	r.Get("/health", healthHandler.Check)

	r.Route("/elections", func(r chi.Router) {
		// Election administration
		r.Post("/", electionHandler.CreateElection)
		r.Get("/", electionHandler.ListElections)

		r.Post("/terms", electionHandler.CreateTerm)
		r.Get("/terms", electionHandler.ListTerms)
		r.Delete("/terms/{termID}", electionHandler.DeleteTerm)

		r.Post("/positions", electionHandler.CreatePosition)
		r.Get("/positions", electionHandler.ListPositions)
		r.Delete("/positions/{positionID}", electionHandler.DeletePosition)

		// Nominations
		r.Post("/nominations", nominationHandler.Submit)
		r.Put("/nominations/{nominationID}/accept", nominationHandler.Respond)
		r.Get("/nominations/member/{memberID}", nominationHandler.ListPendingForMember)
		r.Get("/nominations/election/{electionID}", nominationHandler.ListForElection)

		// Ballots and voting
		r.Post("/elections/{electionID}/generate-ballots", ballotHandler.Generate)
		r.Get("/elections/{electionID}/winners", winnerHandler.ListForElection)
		r.Get("/ballots/member/{memberID}", ballotHandler.ListForMember)
		r.Get("/ballots/{ballotID}", ballotHandler.GetDetail)
		r.Get("/ballots/{ballotID}/results", votingHandler.GetResults)
		r.Post("/ballots/{ballotID}/declare-winner", winnerHandler.Declare)
		r.Post("/votes", votingHandler.CastVote)

		// Election by id last so fixed segments above take precedence
		r.Get("/{electionID}", electionHandler.GetElection)
		r.Delete("/{electionID}", electionHandler.DeleteElection)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"type":"not_found","message":"endpoint not found"}}`))
	})

	log.Info("Router configured successfully")
	return r
}
