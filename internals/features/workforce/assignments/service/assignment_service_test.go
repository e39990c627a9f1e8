// file: internals/features/workforce/assignments/service/assignment_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	lineModel "pabrikku_backend/internals/features/production/lines/model"
	assignmentModel "pabrikku_backend/internals/features/workforce/assignments/model"
	workerModel "pabrikku_backend/internals/features/workforce/workers/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&workerModel.WorkerModel{},
		&lineModel.ProductionLineModel{},
		&assignmentModel.AssignmentModel{},
	))
	return db
}

func seedWorker(t *testing.T, db *gorm.DB, name, cin string) workerModel.WorkerModel {
	t.Helper()
	w := workerModel.WorkerModel{
		WorkerName: name,
		WorkerCIN:  cin,
		WorkerRole: workerModel.WorkerRoleOperator,
	}
	require.NoError(t, db.Create(&w).Error)
	return w
}

func seedLine(t *testing.T, db *gorm.DB, name string, active bool) lineModel.ProductionLineModel {
	t.Helper()
	l := lineModel.ProductionLineModel{
		ProductionLineName:     name,
		ProductionLineLocation: "Hall 1",
		ProductionLineCapacity: 10,
		ProductionLineIsActive: active,
	}
	require.NoError(t, db.Create(&l).Error)
	return l
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAssignmentCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("sukses membuat assignment", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAssignmentService(db)
		w := seedWorker(t, db, "Budi", "W-0001")
		l := seedLine(t, db, "Line A", true)

		got, err := svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: l.ProductionLineID,
			Position:         "welder",
			Date:             day(2024, 2, 10),
			Shift:            assignmentModel.ShiftMorning,
		})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, got.AssignmentID)
		require.Equal(t, "welder", got.AssignmentPosition)
		require.Equal(t, day(2024, 2, 10), got.AssignmentDate.UTC())
	})

	t.Run("worker tidak ditemukan", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAssignmentService(db)
		l := seedLine(t, db, "Line A", true)

		_, err := svc.Create(ctx, CreateInput{
			WorkerID:         uuid.New(),
			ProductionLineID: l.ProductionLineID,
			Position:         "welder",
			Date:             day(2024, 2, 10),
			Shift:            assignmentModel.ShiftMorning,
		})
		require.ErrorIs(t, err, ErrWorkerNotFound)
	})

	t.Run("production line tidak ditemukan", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAssignmentService(db)
		w := seedWorker(t, db, "Budi", "W-0001")

		_, err := svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: uuid.New(),
			Position:         "welder",
			Date:             day(2024, 2, 10),
			Shift:            assignmentModel.ShiftMorning,
		})
		require.ErrorIs(t, err, ErrProductionLineNotFound)
	})

	t.Run("production line nonaktif", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAssignmentService(db)
		w := seedWorker(t, db, "Budi", "W-0001")
		l := seedLine(t, db, "Line C", false)

		_, err := svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: l.ProductionLineID,
			Position:         "welder",
			Date:             day(2024, 2, 10),
			Shift:            assignmentModel.ShiftMorning,
		})
		require.ErrorIs(t, err, ErrProductionLineInactive)
	})

	t.Run("konflik hari dan shift sama", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAssignmentService(db)
		w := seedWorker(t, db, "Budi", "W-0001")
		la := seedLine(t, db, "Line A", true)
		lb := seedLine(t, db, "Line B", true)

		first, err := svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: la.ProductionLineID,
			Position:         "welder",
			Date:             day(2024, 2, 10),
			Shift:            assignmentModel.ShiftMorning,
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: lb.ProductionLineID,
			Position:         "packer",
			Date:             day(2024, 2, 10),
			Shift:            assignmentModel.ShiftMorning,
		})
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		require.Equal(t, first.AssignmentID, conflict.AssignmentID)
		require.Equal(t, "Line A", conflict.ProductionLineName)
		require.Equal(t,
			"Worker is already assigned to Line A on 2024-02-10 for morning shift",
			conflict.Error())
	})

	t.Run("shift berbeda di hari sama boleh", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAssignmentService(db)
		w := seedWorker(t, db, "Budi", "W-0001")
		l := seedLine(t, db, "Line A", true)

		for _, shift := range []assignmentModel.AssignmentShift{
			assignmentModel.ShiftMorning,
			assignmentModel.ShiftAfternoon,
			assignmentModel.ShiftNight,
		} {
			_, err := svc.Create(ctx, CreateInput{
				WorkerID:         w.WorkerID,
				ProductionLineID: l.ProductionLineID,
				Position:         "welder",
				Date:             day(2024, 2, 10),
				Shift:            shift,
			})
			require.NoError(t, err)
		}
	})

	t.Run("jam berbeda di hari sama tetap konflik", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAssignmentService(db)
		w := seedWorker(t, db, "Budi", "W-0001")
		l := seedLine(t, db, "Line A", true)

		_, err := svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: l.ProductionLineID,
			Position:         "welder",
			Date:             time.Date(2024, 2, 10, 8, 30, 0, 0, time.UTC),
			Shift:            assignmentModel.ShiftMorning,
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: l.ProductionLineID,
			Position:         "packer",
			Date:             time.Date(2024, 2, 10, 17, 45, 0, 0, time.UTC),
			Shift:            assignmentModel.ShiftMorning,
		})
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
	})
}

func TestAssignmentUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("assignment tidak ditemukan", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAssignmentService(db)

		_, err := svc.Update(ctx, uuid.New(), UpdateInput{})
		require.ErrorIs(t, err, ErrAssignmentNotFound)
	})

	t.Run("update position saja tidak memicu cek konflik", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAssignmentService(db)
		w := seedWorker(t, db, "Budi", "W-0001")
		l := seedLine(t, db, "Line A", true)

		a, err := svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: l.ProductionLineID,
			Position:         "welder",
			Date:             day(2024, 2, 10),
			Shift:            assignmentModel.ShiftMorning,
		})
		require.NoError(t, err)

		pos := "inspector"
		updated, err := svc.Update(ctx, a.AssignmentID, UpdateInput{Position: &pos})
		require.NoError(t, err)
		require.Equal(t, "inspector", updated.AssignmentPosition)
		require.Equal(t, assignmentModel.ShiftMorning, updated.AssignmentShift)
	})

	t.Run("pindah shift ke slot terisi menabrak", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAssignmentService(db)
		w := seedWorker(t, db, "Budi", "W-0001")
		l := seedLine(t, db, "Line A", true)

		_, err := svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: l.ProductionLineID,
			Position:         "welder",
			Date:             day(2024, 2, 10),
			Shift:            assignmentModel.ShiftMorning,
		})
		require.NoError(t, err)

		b, err := svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: l.ProductionLineID,
			Position:         "welder",
			Date:             day(2024, 2, 10),
			Shift:            assignmentModel.ShiftNight,
		})
		require.NoError(t, err)

		shift := assignmentModel.ShiftMorning
		_, err = svc.Update(ctx, b.AssignmentID, UpdateInput{Shift: &shift})
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("update shift ke nilai sama tidak menabrak diri sendiri", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAssignmentService(db)
		w := seedWorker(t, db, "Budi", "W-0001")
		l := seedLine(t, db, "Line A", true)

		a, err := svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: l.ProductionLineID,
			Position:         "welder",
			Date:             day(2024, 2, 10),
			Shift:            assignmentModel.ShiftMorning,
		})
		require.NoError(t, err)

		shift := assignmentModel.ShiftMorning
		_, err = svc.Update(ctx, a.AssignmentID, UpdateInput{Shift: &shift})
		require.NoError(t, err)
	})

	t.Run("field absen diambil dari record tersimpan", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAssignmentService(db)
		w := seedWorker(t, db, "Budi", "W-0001")
		l := seedLine(t, db, "Line A", true)

		_, err := svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: l.ProductionLineID,
			Position:         "welder",
			Date:             day(2024, 2, 10),
			Shift:            assignmentModel.ShiftMorning,
		})
		require.NoError(t, err)

		b, err := svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: l.ProductionLineID,
			Position:         "welder",
			Date:             day(2024, 2, 11),
			Shift:            assignmentModel.ShiftMorning,
		})
		require.NoError(t, err)

		// hanya kirim date; shift lama (morning) ikut dipakai untuk cek
		newDate := day(2024, 2, 10)
		_, err = svc.Update(ctx, b.AssignmentID, UpdateInput{Date: &newDate})
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
	})

	t.Run("line nonaktif ditolak saat update", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewAssignmentService(db)
		w := seedWorker(t, db, "Budi", "W-0001")
		la := seedLine(t, db, "Line A", true)
		lc := seedLine(t, db, "Line C", false)

		a, err := svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: la.ProductionLineID,
			Position:         "welder",
			Date:             day(2024, 2, 10),
			Shift:            assignmentModel.ShiftMorning,
		})
		require.NoError(t, err)

		_, err = svc.Update(ctx, a.AssignmentID, UpdateInput{ProductionLineID: &lc.ProductionLineID})
		require.ErrorIs(t, err, ErrProductionLineInactive)
	})
}

// Jalur duplicate-key (kalah race dari pagar unique index) harus tetap
// menghasilkan deskriptor konflik yang informatif, bukan ConflictError kosong.
func TestResolveDuplicateDescriptor(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewAssignmentService(db)
	w := seedWorker(t, db, "Budi", "W-0001")
	l := seedLine(t, db, "Line A", true)

	winner, err := svc.Create(ctx, CreateInput{
		WorkerID:         w.WorkerID,
		ProductionLineID: l.ProductionLineID,
		Position:         "welder",
		Date:             day(2024, 2, 10),
		Shift:            assignmentModel.ShiftMorning,
	})
	require.NoError(t, err)

	t.Run("pemenang ditemukan: deskriptor lengkap", func(t *testing.T) {
		cf := svc.resolveDuplicate(ctx, w.WorkerID, day(2024, 2, 10), assignmentModel.ShiftMorning, nil)
		require.NotNil(t, cf)
		require.Equal(t, winner.AssignmentID, cf.AssignmentID)
		require.Equal(t, "Line A", cf.ProductionLineName)
		require.Equal(t,
			"Worker is already assigned to Line A on 2024-02-10 for morning shift",
			cf.Error())
	})

	t.Run("exclude id sendiri saat update", func(t *testing.T) {
		other, err := svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: l.ProductionLineID,
			Position:         "packer",
			Date:             day(2024, 2, 10),
			Shift:            assignmentModel.ShiftNight,
		})
		require.NoError(t, err)

		cf := svc.resolveDuplicate(ctx, w.WorkerID, day(2024, 2, 10), assignmentModel.ShiftMorning, &other.AssignmentID)
		require.NotNil(t, cf)
		require.Equal(t, winner.AssignmentID, cf.AssignmentID)
	})

	t.Run("fallback tetap membawa hari dan shift", func(t *testing.T) {
		cf := svc.resolveDuplicate(ctx, w.WorkerID, day(2024, 2, 11), assignmentModel.ShiftNight, nil)
		require.NotNil(t, cf)
		require.Contains(t, cf.Error(), "2024-02-11")
		require.Contains(t, cf.Error(), "night")
		require.NotContains(t, cf.Error(), "0001-01-01")
	})
}

func TestAssignmentDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewAssignmentService(db)
	w := seedWorker(t, db, "Budi", "W-0001")
	l := seedLine(t, db, "Line A", true)

	a, err := svc.Create(ctx, CreateInput{
		WorkerID:         w.WorkerID,
		ProductionLineID: l.ProductionLineID,
		Position:         "welder",
		Date:             day(2024, 2, 10),
		Shift:            assignmentModel.ShiftMorning,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, a.AssignmentID))
	require.ErrorIs(t, svc.Delete(ctx, a.AssignmentID), ErrAssignmentNotFound)

	// slot bisa dipakai lagi setelah dihapus
	_, err = svc.Create(ctx, CreateInput{
		WorkerID:         w.WorkerID,
		ProductionLineID: l.ProductionLineID,
		Position:         "packer",
		Date:             day(2024, 2, 10),
		Shift:            assignmentModel.ShiftMorning,
	})
	require.NoError(t, err)
}
