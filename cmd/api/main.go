package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/Diegogmorales/Biblioteca-digital/internal/catalog"
	"github.com/Diegogmorales/Biblioteca-digital/internal/config"
)

func main() {
	cfg := config.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db := mustOpenDB(log, cfg.DBPath)
	defer db.Close()

	repo := catalog.NewSQLiteRepo(db)
	service := catalog.NewService(repo)
	handler := catalog.NewHTTPHandler(service, log)

	ready := func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(cfg, log, handler, ready),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("starting server", zap.String("addr", cfg.Addr), zap.String("db", cfg.DBPath))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server error", zap.Error(err))
	}
}

func mustOpenDB(log *zap.Logger, path string) *sql.DB {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		log.Fatal("cannot open database", zap.String("path", path), zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		log.Fatal("cannot ping database", zap.String("path", path), zap.Error(err))
	}

	log.Info("database connection OK", zap.String("path", path))
	return db
}
