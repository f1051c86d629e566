package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_SQLiteSkipsPostgresDDL(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	// sqlite has no btree_gist or EXCLUDE; Migrate must not attempt them.
	require.NoError(t, Migrate(db))

	var n int64
	err = db.Raw(`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'bookings'`).Scan(&n).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}
