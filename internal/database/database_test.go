package database_test

import (
	"context"
	"testing"

	"farmconnect/internal/database"
	"farmconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func TestOpenAndMigrate(t *testing.T) {
	db, err := database.Open("sqlite", "file:dbtest?mode=memory&cache=shared", zap.NewNop())
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, database.Migrate(db))

	for _, model := range []interface{}{&models.User{}, &models.Produce{}, &models.Order{}} {
		assert.True(t, db.Migrator().HasTable(model))
	}
	assert.True(t, db.Migrator().HasIndex(&models.User{}, "Email"))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := database.Open("oracle", "", zap.NewNop())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestLogger_SkipsMissingRowsButReportsErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	db, err := database.Open("sqlite", "file:dblogtest?mode=memory&cache=shared", zap.New(core))
	require.NoError(t, err)
	defer database.Close(db)
	require.NoError(t, database.Migrate(db))

	var user models.User
	err = db.WithContext(context.Background()).First(&user, "id = ?", "missing").Error
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Zero(t, logs.Len())

	err = db.Table("no_such_table").Count(new(int64)).Error
	require.Error(t, err)
	assert.NotZero(t, logs.FilterLoggerName("gorm").Len())
}
