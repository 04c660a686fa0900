// Package seed rebuilds the catalog store from a CSV file. The CSV uses
// 1-based fila/columna; the store keeps them 0-based. The whole load runs
// in a single transaction: either the full catalog lands or nothing does.
package seed

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Columns the seed file must provide, in any order.
var requiredColumns = []string{"fila", "columna", "genero", "titulo", "autor"}

var schema = []string{
	`DROP TABLE IF EXISTS Libros`,
	`DROP TABLE IF EXISTS Cubiculos`,
	`DROP TABLE IF EXISTS Generos`,
	`CREATE TABLE Generos (
		id_genero INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE Cubiculos (
		id_cubiculo INTEGER PRIMARY KEY AUTOINCREMENT,
		fila INTEGER NOT NULL,
		columna INTEGER NOT NULL,
		id_genero_fk INTEGER,
		FOREIGN KEY (id_genero_fk) REFERENCES Generos(id_genero),
		UNIQUE(fila, columna)
	)`,
	`CREATE TABLE Libros (
		id_libro INTEGER PRIMARY KEY AUTOINCREMENT,
		titulo TEXT NOT NULL,
		autor TEXT,
		id_cubiculo_fk INTEGER NOT NULL,
		posicion INTEGER,
		FOREIGN KEY (id_cubiculo_fk) REFERENCES Cubiculos(id_cubiculo)
	)`,
}

// Load drops and recreates the three catalog tables and fills them from the
// CSV in r. Returns the number of books loaded. Any error rolls the whole
// load back, leaving whatever was committed before untouched.
func Load(ctx context.Context, db *sql.DB, r io.Reader) (int, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read csv header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return 0, fmt.Errorf("seed csv is missing column %q", name)
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return 0, fmt.Errorf("create schema: %w", err)
		}
	}

	genreIDs := map[string]int64{}
	cubicleIDs := map[string]int64{}
	positions := map[string]int{}

	books := 0
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return 0, fmt.Errorf("read csv line %d: %w", line, err)
		}

		genre := strings.TrimSpace(record[cols["genero"]])
		genreID, ok := genreIDs[genre]
		if !ok {
			res, err := tx.ExecContext(ctx, "INSERT INTO Generos (nombre) VALUES (?)", genre)
			if err != nil {
				return 0, fmt.Errorf("insert genre %q (line %d): %w", genre, line, err)
			}
			if genreID, err = res.LastInsertId(); err != nil {
				return 0, fmt.Errorf("genre id (line %d): %w", line, err)
			}
			genreIDs[genre] = genreID
		}

		row, err := parseCoord(record[cols["fila"]])
		if err != nil {
			return 0, fmt.Errorf("line %d: fila: %w", line, err)
		}
		column, err := parseCoord(record[cols["columna"]])
		if err != nil {
			return 0, fmt.Errorf("line %d: columna: %w", line, err)
		}
		key := fmt.Sprintf("%d-%d", row, column)

		cubicleID, ok := cubicleIDs[key]
		if !ok {
			// First row for this coordinate decides the cubicle's genre.
			res, err := tx.ExecContext(ctx,
				"INSERT INTO Cubiculos (fila, columna, id_genero_fk) VALUES (?, ?, ?)",
				row, column, genreID)
			if err != nil {
				return 0, fmt.Errorf("insert cubicle %s (line %d): %w", key, line, err)
			}
			if cubicleID, err = res.LastInsertId(); err != nil {
				return 0, fmt.Errorf("cubicle id (line %d): %w", line, err)
			}
			cubicleIDs[key] = cubicleID
			positions[key] = 0
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO Libros (titulo, autor, id_cubiculo_fk, posicion) VALUES (?, ?, ?, ?)",
			strings.TrimSpace(record[cols["titulo"]]),
			strings.TrimSpace(record[cols["autor"]]),
			cubicleID, positions[key])
		if err != nil {
			return 0, fmt.Errorf("insert book (line %d): %w", line, err)
		}
		positions[key]++
		books++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}
	return books, nil
}

// LoadFile is Load for a CSV on disk.
func LoadFile(ctx context.Context, db *sql.DB, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed csv: %w", err)
	}
	defer f.Close()
	return Load(ctx, db, f)
}

// parseCoord converts a 1-based file coordinate to its 0-based store value.
func parseCoord(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if v < 1 {
		return 0, fmt.Errorf("coordinate %d out of range", v)
	}
	return v - 1, nil
}
