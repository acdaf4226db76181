package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Abdulwakil1/Creatorverse/config"
	"github.com/Abdulwakil1/Creatorverse/global"
	"github.com/Abdulwakil1/Creatorverse/repositories"
	"github.com/Abdulwakil1/Creatorverse/routes"
	"github.com/Abdulwakil1/Creatorverse/services"
	"github.com/Abdulwakil1/Creatorverse/utils/redislog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 1) config.yaml + .env + APP_* env vars
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := config.NewLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("boot",
		zap.String("app", cfg.AppName),
		zap.String("version", global.AppVersion),
		zap.String("env", cfg.Env),
		zap.String("port", cfg.HTTPPort),
		zap.String("db_driver", cfg.DBDriver),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2) infrastructure
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("database init failed", zap.Error(err))
	}

	rdb, err := config.InitRedis(ctx, cfg)
	if err != nil {
		log.Fatal("redis init failed", zap.Error(err))
	}
	if rdb == nil {
		log.Warn("redis disabled; audit log off")
	} else {
		defer func() { _ = rdb.Close() }()
	}

	// 3) audit trail in a capped Redis list
	audit := redislog.New(rdb, cfg.AuditLogKey, cfg.AuditLogMax, cfg.AuditRetention())
	audit.Info(ctx, "app boot", map[string]string{"env": cfg.Env, "port": cfg.HTTPPort})

	// 4) repositories and services
	repo := repositories.NewCreatorRepository(db)
	svc := services.NewCreatorService(repo, log, audit)

	// 5) gin engine and routes
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		log.Fatal("trusted proxies", zap.Error(err))
	}
	routes.Setup(r, svc, log)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http server start", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			audit.Error(context.Background(), "http server error", map[string]string{"err": err.Error()})
			log.Fatal("http server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
}
