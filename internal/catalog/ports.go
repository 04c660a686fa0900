package catalog

import (
	"context"
)

// Repository defines the contract for catalog storage.
type Repository interface {
	// ListShelf returns the full join of books, cubicles and genres,
	// ordered by (fila, columna, posicion).
	ListShelf(ctx context.Context) ([]ShelfRow, error)
	// AddBook inserts a book at the next position of the cubicle at the
	// given 0-based coordinate. Returns ErrCubicleNotFound if no cubicle
	// exists there.
	AddBook(ctx context.Context, row, column int, titulo, autor string) (int64, error)
	// DeleteBook removes a book by id. Returns ErrBookNotFound if no row
	// matched.
	DeleteBook(ctx context.Context, id int64) error
}
