package main

import (
	"log"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/vaidy-in/dealdesk/internal/config"
	"github.com/vaidy-in/dealdesk/internal/domain"
	"github.com/vaidy-in/dealdesk/internal/http"
	"github.com/vaidy-in/dealdesk/internal/http/middleware"
	"github.com/vaidy-in/dealdesk/internal/observability"
	redisstore "github.com/vaidy-in/dealdesk/internal/store/redis"
)

func main() {
	container := buildContainer()

	err := container.Invoke(func(server *http.Server) {
		if err := server.Start(); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
}

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}
	// Force logger initialization; nothing else depends on it directly.
	if err := container.Invoke(func(_ *zap.Logger) {}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	if err := container.Provide(func() domain.EventPublisher {
		return observability.NewEventBus(slog.Default())
	}); err != nil {
		log.Fatalf("Failed to provide event bus: %v", err)
	}

	// Scenario Store (optional, disabled when no Redis address is configured)
	if err := container.Provide(func(cfg *config.RedisConfig) domain.ScenarioStore {
		if cfg.Addr == "" {
			return nil
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})

		return redisstore.NewScenarioStore(client, cfg.KeyPrefix)
	}); err != nil {
		log.Fatalf("Failed to provide scenario store: %v", err)
	}

	// Domain Services
	if err := container.Provide(domain.NewEstimatorService); err != nil {
		log.Fatalf("Failed to provide estimator service: %v", err)
	}

	// HTTP Layer
	if err := container.Provide(middleware.BuildMiddlewareChain); err != nil {
		log.Fatalf("Failed to provide middleware chain: %v", err)
	}
	if err := container.Provide(http.NewHandler); err != nil {
		log.Fatalf("Failed to provide HTTP handler: %v", err)
	}
	if err := container.Provide(http.NewServer); err != nil {
		log.Fatalf("Failed to provide HTTP server: %v", err)
	}

	return container
}
