package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"sciquest-service/internal/app"
	"sciquest-service/internal/config"
	"sciquest-service/internal/infra/memory"
	"sciquest-service/internal/infra/postgres"
	rediscache "sciquest-service/internal/infra/redis"
	"sciquest-service/internal/seed"
	transport "sciquest-service/internal/transport/http"
	"sciquest-service/internal/transport/http/auth"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the catalog server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var (
		experimentStore app.ExperimentStore
		quizStore       app.QuizStore
		progressStore   app.ProgressStore
		curriculumStore app.CurriculumStore
	)
	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
		pool, err := postgres.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
		defer pool.Close()

		store := postgres.NewStore(pool)
		experimentStore, quizStore, progressStore, curriculumStore = store, store, store, store
	} else {
		// No database configured: run on the seeded in-memory catalog.
		store := memory.NewStore()
		if err := seed.Apply(ctx, store); err != nil {
			return err
		}
		experimentStore, quizStore, progressStore, curriculumStore = store, store, store, store
	}

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cacheTTL := config.TTLDuration(cfg.Cache.TTL, 10*time.Minute)
		quizStore = rediscache.NewQuizCache(client, quizStore, cacheTTL)
	}

	authSvc := auth.NewService(cfg.Auth.Secret, config.TTLDuration(cfg.Auth.TTL, 24*time.Hour))

	handlers := transport.NewHandlers(
		app.NewCatalogService(experimentStore),
		app.NewQuizService(quizStore),
		app.NewProgressService(progressStore),
		app.NewCurriculumService(curriculumStore),
	)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      transport.NewRouter(handlers, authSvc),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting sciquest service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
