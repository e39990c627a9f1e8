// file: internals/databases/database_test.go
package database

import (
	"testing"

	assignmentModel "pabrikku_backend/internals/features/workforce/assignments/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMigrateAll(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, MigrateAll(db))

	// pagar terakhir invariant (worker, hari, shift) harus ikut terpasang
	require.True(t, db.Migrator().HasIndex(&assignmentModel.AssignmentModel{}, "uq_assignments_worker_date_shift"))
	require.True(t, db.Migrator().HasTable("assignments"))
	require.True(t, db.Migrator().HasTable("workers"))
	require.True(t, db.Migrator().HasTable("users"))
	require.True(t, db.Migrator().HasTable("notifications"))

	// boot kedua: AutoMigrate harus idempoten
	require.NoError(t, MigrateAll(db))
}
