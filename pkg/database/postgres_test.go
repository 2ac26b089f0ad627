package database

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db",
		Port:     "5432",
		User:     "shop",
		Password: "secret",
		DBName:   "storefront",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=db port=5432 user=shop password=secret dbname=storefront sslmode=disable", cfg.DSN())
}

func TestOpenGormAndClose(t *testing.T) {
	db, err := OpenGorm(sqlite.Open(filepath.Join(t.TempDir(), "open.db")))
	require.NoError(t, err)
	require.NoError(t, db.Exec("SELECT 1").Error)
	assert.NoError(t, Close(db))
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 25, orDefault(0, 25))
	assert.Equal(t, 10, orDefault(10, 25))
}
