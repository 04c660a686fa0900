package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
)

// SQLiteRepo stores the catalog in the three-table sqlite schema
// (Generos, Cubiculos, Libros) built by the seeder.
type SQLiteRepo struct {
	db *sql.DB
	qb squirrel.StatementBuilderType
}

// NewSQLiteRepo creates a repository on top of an open sqlite handle.
func NewSQLiteRepo(db *sql.DB) *SQLiteRepo {
	return &SQLiteRepo{
		db: db,
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

func (r *SQLiteRepo) ListShelf(ctx context.Context) ([]ShelfRow, error) {
	query, args, err := r.qb.
		Select("l.id_libro", "c.fila", "c.columna", "g.nombre", "l.titulo", "l.autor").
		From("Libros l").
		Join("Cubiculos c ON l.id_cubiculo_fk = c.id_cubiculo").
		Join("Generos g ON c.id_genero_fk = g.id_genero").
		OrderBy("c.fila", "c.columna", "l.posicion").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build shelf query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list shelf: %w", err)
	}
	defer rows.Close()

	var out []ShelfRow
	for rows.Next() {
		var row ShelfRow
		if err := rows.Scan(&row.BookID, &row.Row, &row.Column, &row.Genre, &row.Titulo, &row.Autor); err != nil {
			return nil, fmt.Errorf("scan shelf row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// AddBook runs the cubicle lookup, the position computation and the insert
// in one transaction, so concurrent adds to the same cubicle cannot end up
// sharing a position.
func (r *SQLiteRepo) AddBook(ctx context.Context, row, column int, titulo, autor string) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin add book: %w", err)
	}
	defer tx.Rollback()

	query, args, err := r.qb.
		Select("id_cubiculo").
		From("Cubiculos").
		Where(squirrel.Eq{"fila": row, "columna": column}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build cubicle lookup: %w", err)
	}
	var cubicleID int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&cubicleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrCubicleNotFound
		}
		return 0, fmt.Errorf("lookup cubicle (%d,%d): %w", row, column, err)
	}

	query, args, err = r.qb.
		Select("COALESCE(MAX(posicion) + 1, 0)").
		From("Libros").
		Where(squirrel.Eq{"id_cubiculo_fk": cubicleID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build position query: %w", err)
	}
	var position int
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&position); err != nil {
		return 0, fmt.Errorf("next position for cubicle %d: %w", cubicleID, err)
	}

	query, args, err = r.qb.
		Insert("Libros").
		Columns("titulo", "autor", "id_cubiculo_fk", "posicion").
		Values(titulo, autor, cubicleID, position).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build book insert: %w", err)
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert book: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("book insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit add book: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepo) DeleteBook(ctx context.Context, id int64) error {
	query, args, err := r.qb.
		Delete("Libros").
		Where(squirrel.Eq{"id_libro": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build book delete: %w", err)
	}
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}
	return nil
}
