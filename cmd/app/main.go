package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"go.uber.org/zap"

	"maintsvc/internal/app/bootstrap"
	"maintsvc/internal/app/config"
	httpapi "maintsvc/internal/app/http"
	"maintsvc/internal/app/http/handler"
	"maintsvc/internal/domain/asset"
	"maintsvc/internal/domain/authz"
	"maintsvc/internal/domain/events"
	"maintsvc/internal/domain/request"
	"maintsvc/internal/domain/stats"
	"maintsvc/internal/domain/user"
	"maintsvc/internal/infrastructure/db/pg"
	"maintsvc/internal/infrastructure/logging"
	"maintsvc/internal/infrastructure/notify"
	"maintsvc/internal/infrastructure/schedule"
	"maintsvc/internal/observer"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logging.NewLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("db open error", zap.Error(err))
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("db ping error", zap.Error(err))
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("goose dialect error", zap.Error(err))
	}
	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatal("goose up error", zap.Error(err))
	}

	uow := pg.NewTxManager(db)

	userRepo := pg.NewUserRepository(db)
	assetRepo := pg.NewAssetRepository(db)
	requestRepo := pg.NewRequestRepository(db)
	statsRepo := pg.NewStatsRepository(db)

	registry := events.NewRegistry(log)
	obs := bootstrap.Observers{
		Audit:       observer.NewAudit(log),
		Metrics:     observer.NewMetrics(),
		AssetStatus: observer.NewAssetStatus(assetRepo),
		Notify:      observer.NewNotification(notify.NewLogSender(log)),
	}
	bootstrap.Wire(registry, obs)

	userSvc := user.NewService(uow, userRepo, registry)
	assetSvc := asset.NewService(uow, assetRepo, registry)
	requestSvc := request.NewService(uow, requestRepo, userRepo, registry)
	statsSvc := stats.NewService(statsRepo)

	reporter := schedule.NewReporter(obs.Metrics, log)
	if err := reporter.Start(cfg.MetricsReportCron); err != nil {
		log.Fatal("metrics reporter error", zap.Error(err))
	}
	defer reporter.Stop()

	policy := authz.NewPolicy()
	h := handler.New(userSvc, assetSvc, requestSvc, statsSvc, obs.Metrics, policy, log)
	router := httpapi.NewRouter(h, log)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}
