// @title        EcoMarket API
// @version      1.0
// @description  EcoMarket 的註冊、登入與商品 API
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecomarket/internal/cache"
	"ecomarket/internal/config"
	"ecomarket/internal/database"
	"ecomarket/internal/logger"
	"ecomarket/internal/router"
	"ecomarket/internal/service"
	"ecomarket/internal/view"
	"ecomarket/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	_ "ecomarket/docs" // 引入 swag 產出的 docs
)

const (
	shutdownTimeout = 10 * time.Second
	auditQueueSize  = 64
)

var (
	loadConfig      = config.Load
	newLogger       = logger.New
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newWorkerPool   = worker.NewPool
	newRenderer     = view.New
	startServer     = serve
	exitFunc        = os.Exit
)

// serve 啟動 echo，ctx 結束時在 shutdownTimeout 內完成正在處理的請求
func serve(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(addr) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定錯誤: %w", err)
	}

	log, err := newLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("logger 建立失敗: %w", err)
	}

	hasher, err := service.NewPasswordHasher(cfg.Auth.PasswordHasher)
	if err != nil {
		return err
	}

	renderer, err := newRenderer()
	if err != nil {
		return fmt.Errorf("template 載入失敗: %w", err)
	}

	db, err := newPgxPool(ctx, cfg.DB.URL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %w", err)
	}
	defer rdb.Close()

	if err := runMigrationsFn(cfg.DB.URL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %w", err)
	}

	// defer 依相反順序執行：worker pool 先停，再關 redis 與 DB
	wp := newWorkerPool(cfg.Worker.Count, auditQueueSize, worker.WithPanicHandler(func(v any) {
		log.WithField("panic", v).Error("worker task panicked")
	}))
	defer wp.Stop()

	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.HTTP.Debug
	e.Renderer = renderer
	e.Use(middleware.RequestID())
	e.Use(logger.Middleware(log))
	e.Use(middleware.Recover())

	router.Setup(e, router.Deps{
		DB:                  db,
		Cache:               rdb,
		Hasher:              hasher,
		Sessions:            service.NewSessionManager(rdb, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL),
		Catalog:             service.NewProductCatalog(db, rdb, cfg.Catalog.CacheTTL, log),
		Audit:               service.NewAuditRecorder(wp, db, log),
		CookieSecure:        cfg.Auth.CookieSecure,
		AdminRequireSession: cfg.Auth.AdminRequireSession,
	})

	log.WithFields(logrus.Fields{
		"addr":   cfg.HTTP.Addr,
		"hasher": cfg.Auth.PasswordHasher,
	}).Info("server starting")
	if err := startServer(ctx, e, cfg.HTTP.Addr); err != nil {
		return fmt.Errorf("server 錯誤: %w", err)
	}
	log.Info("server stopped")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logrus.WithError(err).Error("service exited")
		exitFunc(1)
	}
}
