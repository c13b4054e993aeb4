package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpHandler "hdwallet-settlement/internal/adapter/http/handler"
	pgStorage "hdwallet-settlement/internal/adapter/storage/postgres"
	redisStorage "hdwallet-settlement/internal/adapter/storage/redis"
	"hdwallet-settlement/internal/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd(configPath *string) *cobra.Command {
	var noScheduler bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the periodic invoice sweep",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, *configPath, !noScheduler)
		},
	}
	cmd.Flags().BoolVar(&noScheduler, "no-scheduler", false, "serve the API without running periodic sweeps")
	return cmd
}

func serve(ctx context.Context, cfgPath string, withScheduler bool) error {
	a, err := newApp(ctx, cfgPath)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.cfg
	log := a.log
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting HD wallet settlement")

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletMgr:      a.wallets,
		InvoiceSvc:     a.invoices,
		Checker:        a.checker,
		TokenSvc:       a.tokenSvc,
		RateLimitStore: redisStorage.NewRateLimitStore(a.rdb),
		HealthCheckers: a.health,
		Metrics:        a.metrics,
		Logger:         log,
	})

	var sched *scheduler.Scheduler
	if withScheduler {
		sched, err = scheduler.New(cfg.Checker.Schedule, a.checker, cfg.Checker.LockTTL, log)
		if err != nil {
			return err
		}
		sched.Start()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if sched != nil {
		sched.Stop(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
	return nil
}

func sweepCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Check every open invoice once and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			sched, err := scheduler.New(a.cfg.Checker.Schedule, a.checker, a.cfg.Checker.LockTTL, a.log)
			if err != nil {
				return err
			}
			start := time.Now()
			active, err := sched.RunOnce(ctx)
			if err != nil {
				return fmt.Errorf("sweep: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sweep finished in %s, %d invoices still open\n",
				time.Since(start).Round(time.Millisecond), active)
			return nil
		},
	}
}

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Apply or inspect the database schema",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}

			ctx := cmd.Context()
			a, err := openDatabase(ctx, *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			return pgStorage.Migrate(ctx, a.pool, command, a.log)
		},
	}
}
