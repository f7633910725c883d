package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"sealbox/internal/relay"
)

func main() {
	// .env is optional; flags and config file take over from here.
	_ = godotenv.Load()

	configPath := flag.String("config", envOr("RELAY_CONFIG", "relay.yaml"), "path to YAML config")
	flag.Parse()

	log := logrus.New()

	cfg, err := relay.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Fatal("unknown log level")
	}
	log.SetLevel(level)

	storeCfg := cfg.StoreConfig()
	storeCfg.Logger = log
	store := relay.NewStore(storeCfg)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           relay.NewServer(store, relay.WithLogger(log)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.WithField("addr", cfg.ListenAddr).Info("relay listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("serve")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("shutdown")
	}
	store.Close()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
