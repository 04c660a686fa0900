package catalog

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/samber/lo"
)

// ExportFilename is the fixed attachment name for the CSV download.
const ExportFilename = "biblioteca.csv"

// CSVHeader is the column order of the exported file. It matches the seed
// file format, so an export can be fed back to the seeder.
var CSVHeader = []string{"fila", "columna", "genero", "titulo", "autor"}

// WriteCSV writes the flat catalog to w, one row per book, with fila and
// columna converted back to the 1-based convention of the seed file.
func WriteCSV(w io.Writer, rows []ShelfRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	records := lo.Map(rows, func(r ShelfRow, _ int) []string {
		return []string{
			strconv.Itoa(r.Row + 1),
			strconv.Itoa(r.Column + 1),
			r.Genre,
			r.Titulo,
			r.Autor,
		}
	})
	return cw.WriteAll(records)
}
