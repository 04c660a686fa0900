package catalog

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Diegogmorales/Biblioteca-digital/internal/seed"
)

const testSeedCSV = `fila,columna,genero,titulo,autor
1,1,Fantasía,El Hobbit,J.R.R. Tolkien
1,1,Fantasía,La Comunidad del Anillo,J.R.R. Tolkien
1,2,Ciencia Ficción,Dune,Frank Herbert
3,4,Historia,SPQR,Mary Beard
3,4,Historia,Rubicón,Tom Holland
`

func setupRepo(t *testing.T) (*SQLiteRepo, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// a single conn keeps the in-memory database alive and shared
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = seed.Load(context.Background(), db, strings.NewReader(testSeedCSV))
	require.NoError(t, err)

	return NewSQLiteRepo(db), db
}

func TestSQLiteRepo_ListShelf(t *testing.T) {
	repo, _ := setupRepo(t)

	rows, err := repo.ListShelf(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 5)

	// ordered by (fila, columna, posicion); coordinates stored 0-based
	assert.Equal(t, "El Hobbit", rows[0].Titulo)
	assert.Equal(t, 0, rows[0].Row)
	assert.Equal(t, 0, rows[0].Column)
	assert.Equal(t, "La Comunidad del Anillo", rows[1].Titulo)
	assert.Equal(t, "Dune", rows[2].Titulo)
	assert.Equal(t, 1, rows[2].Column)
	assert.Equal(t, "SPQR", rows[3].Titulo)
	assert.Equal(t, 2, rows[3].Row)
	assert.Equal(t, 3, rows[3].Column)
	assert.Equal(t, "Rubicón", rows[4].Titulo)
	assert.Equal(t, "Historia", rows[4].Genre)
}

func TestSQLiteRepo_AddBook(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	t.Run("appends at next position", func(t *testing.T) {
		id, err := repo.AddBook(ctx, 0, 0, "El Silmarillion", "J.R.R. Tolkien")
		require.NoError(t, err)

		var position int
		require.NoError(t, db.QueryRow("SELECT posicion FROM Libros WHERE id_libro = ?", id).Scan(&position))
		assert.Equal(t, 2, position)

		rows, err := repo.ListShelf(ctx)
		require.NoError(t, err)
		assert.Equal(t, "El Silmarillion", rows[2].Titulo)
	})

	t.Run("first book of a cubicle gets position 0", func(t *testing.T) {
		// (0,1) loses its only book, then receives a new one
		var id int64
		require.NoError(t, db.QueryRow("SELECT id_libro FROM Libros WHERE titulo = 'Dune'").Scan(&id))
		require.NoError(t, repo.DeleteBook(ctx, id))

		newID, err := repo.AddBook(ctx, 0, 1, "Fundación", "Isaac Asimov")
		require.NoError(t, err)

		var position int
		require.NoError(t, db.QueryRow("SELECT posicion FROM Libros WHERE id_libro = ?", newID).Scan(&position))
		assert.Equal(t, 0, position)
	})

	t.Run("unknown cubicle", func(t *testing.T) {
		_, err := repo.AddBook(ctx, 9, 9, "Nadie", "")
		require.ErrorIs(t, err, ErrCubicleNotFound)

		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM Libros WHERE titulo = 'Nadie'").Scan(&count))
		assert.Zero(t, count)
	})
}

func TestSQLiteRepo_DeleteBook(t *testing.T) {
	repo, db := setupRepo(t)
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		require.ErrorIs(t, repo.DeleteBook(ctx, 999999), ErrBookNotFound)
	})

	t.Run("leaves sibling positions untouched", func(t *testing.T) {
		var id int64
		require.NoError(t, db.QueryRow("SELECT id_libro FROM Libros WHERE titulo = 'El Hobbit'").Scan(&id))
		require.NoError(t, repo.DeleteBook(ctx, id))

		rows, err := repo.ListShelf(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 4)

		// the sibling keeps position 1, the gap at 0 stays
		var position int
		require.NoError(t, db.QueryRow("SELECT posicion FROM Libros WHERE titulo = 'La Comunidad del Anillo'").Scan(&position))
		assert.Equal(t, 1, position)
	})
}
