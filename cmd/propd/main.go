package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"propd/internal/config"
	"propd/internal/httpapi"
	"propd/internal/store"
)

func main() {
	// Flags with environment variable defaults
	defaultAddr := ":8080"
	if v := os.Getenv("PROPD_ADDR"); v != "" {
		defaultAddr = v
	}
	defaultConfig := os.Getenv("PROPD_CONFIG")
	addr := flag.String("addr", defaultAddr, "HTTP listen address, e.g. :8080")
	cfgPath := flag.String("config", defaultConfig, "Optional config file (.yaml/.json/.toml)")
	logLevel := flag.String("log-level", os.Getenv("PROPD_LOG_LEVEL"), "Log level: debug|info|warn|error")
	flag.Parse()

	var cfg config.Config
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}
	// Flags win over config file values.
	if *addr != defaultAddr || cfg.Addr == "" {
		cfg.Addr = *addr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		zl = zl.Level(lvl)
	}
	httpapi.SetLogger(zl)
	httpapi.SetLogLevel(cfg.LogLevel)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetWatchBuffer(cfg.WatchBuffer)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins,
		[]string{http.MethodGet, http.MethodPut, http.MethodOptions},
		[]string{"Content-Type"})

	st := store.NewWithConfig(store.Config{Seed: cfg.State, Logger: &zl})

	// Cancelable base context so shutdown ends /watch streams.
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	mux := httpapi.NewMux(st) // registers /state, /watch, /status, /healthz, /readyz, /metrics
	srv := &http.Server{Addr: cfg.Addr, Handler: mux}

	go func() {
		zl.Info().Str("addr", cfg.Addr).Int("keys", len(cfg.State)).Msg("propd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error().Err(err).Msg("graceful shutdown error")
	}
}
