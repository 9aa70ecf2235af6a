package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potluckhq/potluck/internal/shared/config"
)

func TestOpen_SQLiteEnablesForeignKeys(t *testing.T) {
	gdb, err := Open(&config.DatabaseConfig{Driver: "sqlite", Database: ":memory:"})
	require.NoError(t, err)

	var enabled int
	require.NoError(t, gdb.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}

func TestOpen_SQLiteForeignKeysOnFreshConnections(t *testing.T) {
	gdb, err := Open(&config.DatabaseConfig{Driver: "sqlite", Database: filepath.Join(t.TempDir(), "potluck.db")})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	// no idle pool: every query dials a new connection
	sqlDB.SetMaxIdleConns(0)
	for i := 0; i < 3; i++ {
		var enabled int
		require.NoError(t, gdb.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
		assert.Equal(t, 1, enabled)
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestInitGetClose(t *testing.T) {
	require.NoError(t, Init(&config.DatabaseConfig{Driver: "sqlite", Database: ":memory:"}))
	assert.NotNil(t, Get())
	assert.NoError(t, Close())
}
