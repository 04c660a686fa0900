package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrCubicleNotFound is returned when no cubicle exists at the requested coordinate.
	ErrCubicleNotFound = errors.New("cubicle not found")
	// ErrBookNotFound is returned when a delete targets a book id that does not exist.
	ErrBookNotFound = errors.New("book not found")
	// ErrInvalidCubicleKey is returned when a cubicle key is not "row-column".
	ErrInvalidCubicleKey = errors.New("invalid cubicle key")
)

// Book is a single catalog entry as exposed by the API.
type Book struct {
	ID     int64  `json:"id_libro"`
	Titulo string `json:"titulo"`
	Autor  string `json:"autor"`
}

// ShelfRow is one row of the Libros×Cubiculos×Generos join, ordered by
// (fila, columna, posicion). Row and Column are 0-based.
type ShelfRow struct {
	BookID int64
	Row    int
	Column int
	Genre  string
	Titulo string
	Autor  string
}

// CubicleKey formats a 0-based coordinate as the external "row-column" key.
func CubicleKey(row, column int) string {
	return fmt.Sprintf("%d-%d", row, column)
}

// ParseCubicleKey parses an external "row-column" key into its 0-based
// coordinate. Both parts must be non-negative integers.
func ParseCubicleKey(key string) (row, column int, err error) {
	parts := strings.Split(key, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidCubicleKey, key)
	}
	row, err = strconv.Atoi(parts[0])
	if err != nil || row < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidCubicleKey, key)
	}
	column, err = strconv.Atoi(parts[1])
	if err != nil || column < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidCubicleKey, key)
	}
	return row, column, nil
}
