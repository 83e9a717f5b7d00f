// @title       Omni Notify API
// @version     1.0
// @description Queues notifications and delivers them through the Omni messaging gateway.
// @BasePath    /
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oggyb/omni-notify/internal/cache/redis"
	"github.com/oggyb/omni-notify/internal/config"
	"github.com/oggyb/omni-notify/internal/db/gormdb"
	"github.com/oggyb/omni-notify/internal/handler"
	"github.com/oggyb/omni-notify/internal/omni"
	notifRepo "github.com/oggyb/omni-notify/internal/repository/gorm/notification"
	routes "github.com/oggyb/omni-notify/internal/router"
	"github.com/oggyb/omni-notify/internal/scheduler"
	"github.com/oggyb/omni-notify/internal/server"
	"github.com/oggyb/omni-notify/internal/service"
)

func main() {
	rootCtx := context.Background()

	// Load configuration from environment/.env, then project settings.
	cfg := config.New()
	if cfg.ProjectSettingsPath != "" {
		ps, err := config.LoadProjectSettings(cfg.ProjectSettingsPath)
		if err != nil {
			log.Fatalf("failed to load project settings: %v", err)
		}
		cfg.ApplyProjectSettings(ps)
	}
	if err := cfg.Omni.Validate(); err != nil {
		log.Fatalf("invalid omni configuration: %v", err)
	}

	// Init cache.
	cache := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err := cache.Ping(rootCtx); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer cache.Close()

	// Init DB.
	db, err := gormdb.New(cfg.PostgresDSN(), gormdb.Options{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
		LogLevel:        cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatalf("failed to connect db: %v", err)
	}
	defer db.Close()

	repo := notifRepo.NewRepository(db)
	if err := repo.Migrate(rootCtx); err != nil {
		log.Fatalf("failed to migrate notifications table: %v", err)
	}

	// Init gateway client. Reachability is only logged; the gateway may come up later.
	gateway := omni.NewClient(cfg.Omni.Host, cfg.Omni.APIKey, omni.WithTimeout(cfg.Omni.Timeout))
	if cfg.Omni.Enabled {
		probeGateway(rootCtx, gateway)
	} else {
		log.Println("[Main] Omni notifications disabled (OMNI_ENABLED=false).")
	}

	// Services
	notifSvc := service.NewNotificationService(
		repo,
		gateway,
		cache,
		service.Defaults{
			Enabled:       cfg.Omni.Enabled,
			Instance:      cfg.Omni.Instance,
			Recipient:     cfg.Omni.Recipient,
			RecipientType: cfg.Omni.RecipientType,
		},
		cfg.Worker.BatchSize,
		cfg.Worker.MaxWorkers,
		cfg.Worker.PerMessageTimeout,
	)
	instanceSvc := service.NewInstanceService(gateway, cache, cfg.Omni.CacheTTL)

	cron := scheduler.NewSchedulerService(
		notifSvc,
		cfg.Scheduler.Interval,
		cfg.Scheduler.BatchTimeout,
	)

	deps := routes.AppDeps{
		Home: handler.NewHomeHandler(map[string]handler.Pinger{
			"database": db,
			"redis":    cache,
		}),
		Notification: handler.NewNotificationHandler(notifSvc, cron),
		Instance:     handler.NewInstanceHandler(instanceSvc),
	}

	addr := fmt.Sprintf("%s:%s", cfg.API.Host, cfg.API.Port)
	srv := server.New(addr, deps)

	ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("HTTP server listening on %s", addr)

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	if cfg.Omni.Enabled {
		if err := cron.Start(); err != nil {
			log.Fatalf("scheduler start error: %v", err)
		}
		log.Println("[Main] Scheduler started.")
	}

	<-ctx.Done()
	log.Println("[Main] Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("[Main] Stopping scheduler...")
	if err := cron.Stop(); err != nil {
		log.Printf("[Main] Scheduler did not stop cleanly: %v", err)
	} else {
		log.Println("[Main] Scheduler stopped.")
	}

	log.Println("[Main] Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Main] HTTP server graceful shutdown failed: %v", err)
	} else {
		log.Println("[Main] HTTP server stopped.")
	}

	log.Println("[Main] Shutdown complete.")
}

// probeGateway logs which instances the gateway reports at startup.
func probeGateway(ctx context.Context, gw omni.Gateway) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	instances, err := gw.ListInstances(ctx)
	if err != nil {
		log.Printf("[Main] Omni gateway probe failed (%s): %v", omni.KindOf(err), err)
		return
	}

	healthy := 0
	for _, in := range instances {
		if in.IsHealthy {
			healthy++
		}
	}
	log.Printf("[Main] Omni gateway reachable: %d instances, %d healthy.", len(instances), healthy)
}
