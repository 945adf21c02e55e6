package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenInMemoryUsesOneConnection(t *testing.T) {
	database, err := Open(context.Background(), InMemory)
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`CREATE TABLE probe (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM probe`).Scan(&count))
	assert.Equal(t, 0, count)
	assert.Equal(t, 1, database.Stats().MaxOpenConnections)
}

func TestOpenEnablesForeignKeys(t *testing.T) {
	database, err := Open(context.Background(), filepath.Join(t.TempDir(), "carcost.db"))
	require.NoError(t, err)
	defer database.Close()

	var enabled int
	require.NoError(t, database.QueryRow(`PRAGMA foreign_keys`).Scan(&enabled))
	assert.Equal(t, 1, enabled)
}
