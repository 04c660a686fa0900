package catalog

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	rows := []ShelfRow{
		{BookID: 1, Row: 0, Column: 0, Genre: "Fantasía", Titulo: "El Hobbit", Autor: "J.R.R. Tolkien"},
		{BookID: 2, Row: 2, Column: 3, Genre: "Historia", Titulo: "Vidas, \"ensayos\"", Autor: ""},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, CSVHeader, records[0])
	// fila/columna converted back to the 1-based file convention
	assert.Equal(t, []string{"1", "1", "Fantasía", "El Hobbit", "J.R.R. Tolkien"}, records[1])
	assert.Equal(t, []string{"3", "4", "Historia", "Vidas, \"ensayos\"", ""}, records[2])
}

func TestWriteCSVEmptyCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "fila,columna,genero,titulo,autor\n", buf.String())
}
