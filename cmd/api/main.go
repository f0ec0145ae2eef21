package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"adopciones/internal/adapters/storage/postgres"
	"adopciones/internal/config"
	"adopciones/internal/platform/logger"
	"adopciones/internal/router"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	var db *sql.DB
	if dsn := cfg.DSN(); dsn != "" {
		opened, err := postgres.Open(dsn)
		if err != nil {
			log.Error("no se pudo conectar a la base de datos", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		db = opened
		defer db.Close()
	} else {
		log.Warn("sin base de datos configurada, usando repos en memoria", nil)
	}

	r, err := router.NewRouter(router.Options{Cfg: cfg, Log: log, DB: db})
	if err != nil {
		log.Error("no se pudo armar el router", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Env})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
