package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_AppliesSchemaIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "notes.db")

	dbh, err := Open(path)
	require.NoError(t, err)
	_, err = dbh.Exec(`INSERT INTO notes(title, body, created_at) VALUES('a','a','1/1/24, 9:00 AM')`)
	require.NoError(t, err)
	require.NoError(t, dbh.Close())

	dbh, err = Open(path)
	require.NoError(t, err)
	defer dbh.Close()

	var n int
	require.NoError(t, dbh.QueryRow(`SELECT count(1) FROM notes`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestCountSince(t *testing.T) {
	dbh, err := Open(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	defer dbh.Close()

	_, err = dbh.Exec(`INSERT INTO notes(title, body, created_at, ts) VALUES('old','old','x','2000-01-01T00:00:00.000Z')`)
	require.NoError(t, err)
	_, err = dbh.Exec(`INSERT INTO notes(title, body, created_at) VALUES('new','new','x')`)
	require.NoError(t, err)

	n, err := CountSince(dbh, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
