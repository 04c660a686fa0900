// Command seed rebuilds the catalog store from the CSV seed file. It runs
// offline, before the API starts, and either loads the whole file or leaves
// the store as it was.
package main

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/Diegogmorales/Biblioteca-digital/internal/config"
	"github.com/Diegogmorales/Biblioteca-digital/internal/seed"
)

func main() {
	cfg := config.Load()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_foreign_keys=on")
	if err != nil {
		log.Fatal("cannot open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer db.Close()

	books, err := seed.LoadFile(context.Background(), db, cfg.CSVPath)
	if err != nil {
		log.Fatal("seed failed", zap.String("csv", cfg.CSVPath), zap.Error(err))
	}

	log.Info("seed complete",
		zap.String("csv", cfg.CSVPath),
		zap.String("db", cfg.DBPath),
		zap.Int("books", books),
	)
}
