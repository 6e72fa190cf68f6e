package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	"digital-canvas/cmd/api/clients/contentclient"
	"digital-canvas/cmd/api/router"
	"digital-canvas/cmd/api/services"
	"digital-canvas/config"
	"digital-canvas/feed"
	"digital-canvas/internal/logger"
)

// Options are process-level settings. Everything else lives in config.yaml / .env.
type Options struct {
	Port      string `long:"port" env:"PORT" description:"HTTP server port (overrides server.port)"`
	ConfigDir string `long:"config-dir" env:"CONFIG_DIR" description:"Directory containing .env and config.yaml"`
}

// @title           Digital Canvas Feed API
// @version         1.0
// @description     Cached content feed for the Digital Canvas site
// @BasePath        /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	opts, ok := parseOptions()
	if !ok {
		return
	}

	basePath := opts.ConfigDir
	if basePath == "" {
		basePath = config.GetBasePath()
	}
	if err := config.InitAppFrom(basePath); err != nil {
		logger.ErrorWithFields("failed to load configuration", logger.Fields{"error": err.Error(), "config_dir": basePath})
		os.Exit(1)
	}
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	port := cfg.Server.Port
	if opts.Port != "" {
		port = opts.Port
	}

	if !cfg.ContentAPI.Configured() {
		logger.WarnWithFields("content api not configured, serving bundled feed only", logger.Fields{
			"missing": "CONTENT_API_BASE_URL / CONTENT_API_KEY",
		})
	}

	feedSvc, err := newFeedService(cfg)
	if err != nil {
		logger.ErrorWithFields("failed to build feed service", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      router.New(cfg, feedSvc),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.InfoWithFields("starting http server", logger.Fields{
			"port":          port,
			"cache_ttl":     cfg.Feed.CacheTTL().String(),
			"admin_enabled": cfg.Server.AdminAPIKey != "",
		})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.InfoWithFields("received signal", logger.Fields{"signal": s.String()})
	case err := <-serverErr:
		logger.ErrorWithFields("http server error", logger.Fields{"error": err.Error()})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithFields("http server shutdown error", logger.Fields{"error": err.Error()})
		return
	}
	logger.InfoWithFields("http server stopped", nil)
}

func parseOptions() (Options, bool) {
	var opts Options
	if _, err := flags.NewParser(&opts, flags.Default).Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return opts, false
		}
		os.Exit(2)
	}
	return opts, true
}

// newFeedService wires the live gateway (content API + TTL cache) in front of
// the bundled dataset.
func newFeedService(cfg config.AppConfig) (*services.FeedService, error) {
	client := contentclient.New(contentclient.Options{
		BaseURL: cfg.ContentAPI.BaseURL,
		APIKey:  cfg.ContentAPI.APIKey,
		Origin:  cfg.ContentAPI.Origin,
		Table:   cfg.ContentAPI.Table,
		Timeout: cfg.ContentAPI.Timeout(),
	})
	live := feed.NewGateway(services.NewLiveSource(client), feed.NewCache(cfg.Feed.CacheTTL()))

	static, err := feed.NewStaticSource()
	if err != nil {
		return nil, err
	}
	bundled := feed.NewGateway(static, feed.NewCache(0))

	return services.NewFeedService(live, bundled), nil
}
