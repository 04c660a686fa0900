package catalog

// CubicleGroup is one cubicle's slice of the grouped catalog response.
type CubicleGroup struct {
	Genero string `json:"genero"`
	Libros []Book `json:"libros"`
}

// Group folds the flat shelf rows into a mapping keyed by cubicle key.
// Rows must already be ordered by (fila, columna, posicion); books keep
// that order within their cubicle. Cubicles with no books never appear.
func Group(rows []ShelfRow) map[string]CubicleGroup {
	out := make(map[string]CubicleGroup, len(rows))
	for _, row := range rows {
		key := CubicleKey(row.Row, row.Column)
		group, ok := out[key]
		if !ok {
			group = CubicleGroup{Genero: row.Genre}
		}
		group.Libros = append(group.Libros, Book{
			ID:     row.BookID,
			Titulo: row.Titulo,
			Autor:  row.Autor,
		})
		out[key] = group
	}
	return out
}
