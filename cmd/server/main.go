package main // Entry point package

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zphs-kuchanpally/ai-buddy/internal/config"
	"github.com/zphs-kuchanpally/ai-buddy/internal/database"
	"github.com/zphs-kuchanpally/ai-buddy/internal/handler"
	"github.com/zphs-kuchanpally/ai-buddy/internal/queue"
	"github.com/zphs-kuchanpally/ai-buddy/internal/router"
	"github.com/zphs-kuchanpally/ai-buddy/internal/tutor"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName, cfg.ConnectTimeout)
	switch {
	case errors.Is(err, database.ErrNotConfigured):
		log.Printf("database: DATABASE_URL not set, /test will report it missing")
	case err != nil:
		log.Printf("database: connect failed, continuing without it: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis: unavailable, rate limiting and caching disabled")
	}

	var events handler.EventPublisher
	var publisher *queue.Publisher
	if cfg.Events.Enabled {
		publisher = queue.NewPublisher(cfg.Events.URL, cfg.Events.Queue)
		events = publisher
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.EchoLogLevel())
	router.Setup(e)
	router.RegisterRoutes(e, router.Deps{
		Tutor:      handler.NewTutorHandler(tutor.New(nil), events, cfg.Events.PublishTimeout),
		Diagnostic: handler.NewDiagnosticHandler(db, cfg.CheckTimeout),
		Redis:      rdb,
		RateLimit:  config.LoadRateLimitConfig(),
		Cache:      config.LoadCacheConfig(),
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	if db != nil {
		if err := db.Close(shutdownCtx); err != nil {
			log.Printf("database close: %v", err)
		}
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if publisher != nil {
		_ = publisher.Close()
	}
}
