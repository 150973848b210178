package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/dcurrasv25/filmbox-backend/internal/config"
	"github.com/dcurrasv25/filmbox-backend/internal/handler"
	"github.com/dcurrasv25/filmbox-backend/internal/logger"
	"github.com/dcurrasv25/filmbox-backend/internal/repository"
	"github.com/dcurrasv25/filmbox-backend/internal/router"
	"github.com/dcurrasv25/filmbox-backend/internal/service"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger level comes from config, so fall back to the default one here
		logger.Get(logger.InfoLevel).Fatalf("load config: %v", err)
	}

	log := logger.Get(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	db, err := repository.InitDB(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatalw("database unavailable", "err", err)
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	repos := repository.NewRepositories(db)
	services := service.NewService(repos, cfg.DefaultAvatar)

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	h := handler.NewHandler(services, cfg.DefaultAvatar, log)
	r := router.New(h, log)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infow("server started", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Infow("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Errorw("server stopped with error", "err", err)
		return
	}
	log.Infow("server exited")
}
