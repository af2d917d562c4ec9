package database

import (
	"log/slog"
	"testing"

	"pamps/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable(&models.User{}))
	assert.True(t, db.Migrator().HasTable(&models.Post{}))
	assert.True(t, db.Migrator().HasColumn(&models.Post{}, "parent_id"))
	assert.True(t, db.Migrator().HasColumn(&models.Post{}, "user_id"))

	// Migrate must be idempotent
	require.NoError(t, Migrate(db))
}

func TestCustomGormLogger_LogMode(t *testing.T) {
	base := &CustomGormLogger{
		logger: slog.Default(),
		Config: logger.Config{LogLevel: logger.Warn},
	}

	elevated := base.LogMode(logger.Info)

	custom, ok := elevated.(*CustomGormLogger)
	require.True(t, ok)
	assert.Equal(t, logger.Info, custom.Config.LogLevel)
	// The original logger keeps its level
	assert.Equal(t, logger.Warn, base.Config.LogLevel)
}
