package repository

import (
	"testing"

	"consultdesk/internal/database"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, dsn string) *gorm.DB {
	t.Helper()

	log := zerolog.Nop()
	db, err := database.Connect(dsn, &log)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, Models()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
