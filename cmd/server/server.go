package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	apiv1alpha1 "github.com/KirkDiggler/roll-api/internal/handlers/api/v1alpha1"
	"github.com/KirkDiggler/roll-api/internal/host"
	"github.com/KirkDiggler/roll-api/internal/host/chatws"
	"github.com/KirkDiggler/roll-api/internal/host/htmlrender"
	"github.com/KirkDiggler/roll-api/internal/orchestrators/itemroll"
	"github.com/KirkDiggler/roll-api/internal/redis"
	"github.com/KirkDiggler/roll-api/internal/repositories/actors"
	"github.com/KirkDiggler/roll-api/internal/repositories/items"
	"github.com/KirkDiggler/roll-api/internal/settings"
)

// serverConfig is parsed from the process environment
type serverConfig struct {
	Port          int           `env:"PORT" envDefault:"8080"`
	RedisEndpoint string        `env:"REDIS_ENDPOINT" envDefault:"localhost:6379"`
	ShutdownGrace time.Duration `env:"SHUTDOWN_GRACE" envDefault:"30s"`
}

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the roll API HTTP server with the websocket chat feed attached.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 0, "HTTP server port (overrides PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	if serverPort > 0 {
		cfg.Port = serverPort
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	redisClient, err := redis.NewClient(cfg.RedisEndpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	itemRepo, err := items.NewRedisRepository(&items.Config{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create item repository: %w", err)
	}
	actorRepo, err := actors.NewRedisRepository(&actors.Config{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create actor repository: %w", err)
	}

	settingsSrc := settings.NewEnvStore()
	snap, err := settingsSrc.Capture(ctx)
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}

	renderer, err := htmlrender.New(snap.CritString)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	hub := chatws.NewHub()

	rollService, err := itemroll.NewOrchestrator(&itemroll.Config{
		ItemRepo:    itemRepo,
		ActorRepo:   actorRepo,
		Roller:      dice.DefaultRoller,
		SettingsSrc: settingsSrc,
		Renderer:    renderer,
		Chat:        hub,
		Prompter:    &host.AutoPrompter{},
		EventBus:    events.NewBus(),
		ItemDeleter: &repoItemDeleter{repo: itemRepo},
	})
	if err != nil {
		return fmt.Errorf("failed to create roll service: %w", err)
	}

	rollHandler, err := apiv1alpha1.NewRollHandler(&apiv1alpha1.RollHandlerConfig{
		RollService: rollService,
	})
	if err != nil {
		return fmt.Errorf("failed to create roll handler: %w", err)
	}

	router := mux.NewRouter()
	rollHandler.Register(router)
	router.HandleFunc("/ws", hub.ServeWS)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown timeout exceeded, forcing close")
			return srv.Close()
		}
		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

// repoItemDeleter deletes destroyed items through the item repository
type repoItemDeleter struct {
	repo items.Repository
}

func (d *repoItemDeleter) DeleteItem(ctx context.Context, itemID string) error {
	_, err := d.repo.Delete(ctx, items.DeleteInput{ID: itemID})
	return err
}
