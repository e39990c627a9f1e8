// file: internals/features/workforce/assignments/service/assignment_query_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	assignmentModel "pabrikku_backend/internals/features/workforce/assignments/model"
	helper "pabrikku_backend/internals/helpers"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestAssignmentList(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewAssignmentService(db)
	w1 := seedWorker(t, db, "Budi", "W-0001")
	w2 := seedWorker(t, db, "Sari", "W-0002")
	la := seedLine(t, db, "Line A", true)
	lb := seedLine(t, db, "Line B", true)

	// 25 assignment untuk w1: 1..25 Maret, shift morning
	for d := 1; d <= 25; d++ {
		_, err := svc.Create(ctx, CreateInput{
			WorkerID:         w1.WorkerID,
			ProductionLineID: la.ProductionLineID,
			Position:         "welder",
			Date:             day(2024, 3, d),
			Shift:            assignmentModel.ShiftMorning,
		})
		require.NoError(t, err)
	}
	// 3 untuk w2 di Line B, shift night
	for d := 1; d <= 3; d++ {
		_, err := svc.Create(ctx, CreateInput{
			WorkerID:         w2.WorkerID,
			ProductionLineID: lb.ProductionLineID,
			Position:         "quality inspector",
			Date:             day(2024, 3, d),
			Shift:            assignmentModel.ShiftNight,
		})
		require.NoError(t, err)
	}

	t.Run("paginasi halaman pertama dan terakhir", func(t *testing.T) {
		rows, total, err := svc.List(ctx, ListFilter{}, 10, 0)
		require.NoError(t, err)
		require.EqualValues(t, 28, total)
		require.Len(t, rows, 10)

		rows, total, err = svc.List(ctx, ListFilter{}, 10, 20)
		require.NoError(t, err)
		require.EqualValues(t, 28, total)
		require.Len(t, rows, 8)
	})

	t.Run("urutan tanggal menurun dan relasi ter-preload", func(t *testing.T) {
		rows, _, err := svc.List(ctx, ListFilter{}, 5, 0)
		require.NoError(t, err)
		require.Len(t, rows, 5)
		for i := 1; i < len(rows); i++ {
			require.False(t, rows[i].AssignmentDate.After(rows[i-1].AssignmentDate))
		}
		require.NotNil(t, rows[0].AssignmentWorker)
		require.NotNil(t, rows[0].AssignmentProductionLine)
	})

	t.Run("filter worker", func(t *testing.T) {
		rows, total, err := svc.List(ctx, ListFilter{WorkerID: &w2.WorkerID}, 50, 0)
		require.NoError(t, err)
		require.EqualValues(t, 3, total)
		for _, r := range rows {
			require.Equal(t, w2.WorkerID, r.AssignmentWorkerID)
		}
	})

	t.Run("filter shift", func(t *testing.T) {
		shift := assignmentModel.ShiftNight
		_, total, err := svc.List(ctx, ListFilter{Shift: &shift}, 50, 0)
		require.NoError(t, err)
		require.EqualValues(t, 3, total)
	})

	t.Run("filter rentang tanggal inklusif", func(t *testing.T) {
		start := day(2024, 3, 10)
		end := day(2024, 3, 12)
		rows, total, err := svc.List(ctx, ListFilter{StartDate: &start, EndDate: &end, WorkerID: &w1.WorkerID}, 50, 0)
		require.NoError(t, err)
		require.EqualValues(t, 3, total) // 10, 11, 12
		require.Len(t, rows, 3)
	})

	t.Run("filter position case-insensitive substring", func(t *testing.T) {
		_, total, err := svc.List(ctx, ListFilter{Position: "INSPECT"}, 50, 0)
		require.NoError(t, err)
		require.EqualValues(t, 3, total)
	})

	t.Run("filter line", func(t *testing.T) {
		_, total, err := svc.List(ctx, ListFilter{ProductionLineID: &lb.ProductionLineID}, 50, 0)
		require.NoError(t, err)
		require.EqualValues(t, 3, total)
	})
}

func TestAssignmentCalendar(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewAssignmentService(db)
	w := seedWorker(t, db, "Budi", "W-0001")
	l := seedLine(t, db, "Line A", true)

	mk := func(d time.Time, shift assignmentModel.AssignmentShift) {
		t.Helper()
		_, err := svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: l.ProductionLineID,
			Position:         "welder",
			Date:             d,
			Shift:            shift,
		})
		require.NoError(t, err)
	}

	mk(day(2024, 2, 1), assignmentModel.ShiftMorning)
	mk(day(2024, 2, 1), assignmentModel.ShiftNight)
	mk(day(2024, 2, 29), assignmentModel.ShiftMorning) // tahun kabisat
	mk(day(2024, 1, 31), assignmentModel.ShiftMorning) // di luar bulan
	mk(day(2024, 3, 1), assignmentModel.ShiftMorning)  // di luar bulan

	t.Run("hanya bulan diminta, termasuk 29 Februari", func(t *testing.T) {
		rows, summary, err := svc.Calendar(ctx, 2024, 2, CalendarFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, 3, summary.TotalAssignments)
		require.Equal(t, 2, summary.DaysWithAssignments)
		require.Equal(t, day(2024, 2, 1), rows[0].AssignmentDate.UTC())
		require.Equal(t, day(2024, 2, 29), rows[2].AssignmentDate.UTC())
	})

	t.Run("bulan kosong", func(t *testing.T) {
		rows, summary, err := svc.Calendar(ctx, 2024, 6, CalendarFilter{})
		require.NoError(t, err)
		require.Empty(t, rows)
		require.Equal(t, 0, summary.TotalAssignments)
		require.Equal(t, 0, summary.DaysWithAssignments)
	})

	t.Run("bulan di luar rentang ditolak", func(t *testing.T) {
		_, _, err := svc.Calendar(ctx, 2024, 13, CalendarFilter{})
		require.Error(t, err)
	})

	t.Run("filter worker hanya menyisakan assignment worker itu", func(t *testing.T) {
		w2 := seedWorker(t, db, "Sari", "W-0002")
		_, err := svc.Create(ctx, CreateInput{
			WorkerID:         w2.WorkerID,
			ProductionLineID: l.ProductionLineID,
			Position:         "packer",
			Date:             day(2024, 2, 11),
			Shift:            assignmentModel.ShiftMorning,
		})
		require.NoError(t, err)

		rows, summary, err := svc.Calendar(ctx, 2024, 2, CalendarFilter{WorkerID: &w.WorkerID})
		require.NoError(t, err)
		require.Len(t, rows, 3)
		require.Equal(t, 2, summary.DaysWithAssignments)
		for _, r := range rows {
			require.Equal(t, w.WorkerID, r.AssignmentWorkerID)
		}

		rows, summary, err = svc.Calendar(ctx, 2024, 2, CalendarFilter{WorkerID: &w2.WorkerID})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, 1, summary.TotalAssignments)
		require.Equal(t, day(2024, 2, 11), rows[0].AssignmentDate.UTC())
	})

	t.Run("filter production line", func(t *testing.T) {
		lb := seedLine(t, db, "Line B", true)
		_, err := svc.Create(ctx, CreateInput{
			WorkerID:         w.WorkerID,
			ProductionLineID: lb.ProductionLineID,
			Position:         "welder",
			Date:             day(2024, 2, 12),
			Shift:            assignmentModel.ShiftMorning,
		})
		require.NoError(t, err)

		rows, _, err := svc.Calendar(ctx, 2024, 2, CalendarFilter{ProductionLineID: &lb.ProductionLineID})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, lb.ProductionLineID, rows[0].AssignmentProductionLineID)
	})
}

func TestAssignmentConflictReport(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewAssignmentService(db)
	w := seedWorker(t, db, "Budi", "W-0001")
	la := seedLine(t, db, "Line A", true)
	lb := seedLine(t, db, "Line B", true)

	// lepas pagar unique index supaya bisa menanam data ganda ala hasil
	// migrasi / tulisan langsung ke DB
	require.NoError(t, db.Exec("DROP INDEX uq_assignments_worker_date_shift").Error)

	mkRaw := func(lineID uuid.UUID, pos string, d time.Time, shift assignmentModel.AssignmentShift) {
		t.Helper()
		a := assignmentModel.AssignmentModel{
			AssignmentWorkerID:         w.WorkerID,
			AssignmentProductionLineID: lineID,
			AssignmentPosition:         pos,
			AssignmentDate:             d,
			AssignmentShift:            shift,
		}
		require.NoError(t, db.Create(&a).Error)
	}

	mkRaw(la.ProductionLineID, "welder", day(2024, 2, 10), assignmentModel.ShiftMorning)
	mkRaw(lb.ProductionLineID, "packer", day(2024, 2, 10), assignmentModel.ShiftMorning)
	mkRaw(la.ProductionLineID, "welder", day(2024, 2, 10), assignmentModel.ShiftMorning)
	mkRaw(la.ProductionLineID, "welder", day(2024, 2, 10), assignmentModel.ShiftNight) // tunggal, bukan konflik

	feb1 := day(2024, 2, 1)
	feb29 := day(2024, 2, 29)

	t.Run("hanya kelompok dengan dua atau lebih", func(t *testing.T) {
		groups, err := svc.ConflictReport(ctx, &feb1, &feb29)
		require.NoError(t, err)
		require.Len(t, groups, 1)

		g := groups[0]
		require.Equal(t, w.WorkerID, g.WorkerID)
		require.Equal(t, "Budi", g.WorkerName)
		require.Equal(t, "2024-02-10", g.Date)
		require.Equal(t, assignmentModel.ShiftMorning, g.Shift)
		require.Len(t, g.Assignments, 3)
	})

	t.Run("rentang tanggal memangkas kelompok", func(t *testing.T) {
		start := day(2024, 2, 11)
		groups, err := svc.ConflictReport(ctx, &start, nil)
		require.NoError(t, err)
		require.Empty(t, groups)
	})

	t.Run("tanpa rentang default bulan berjalan", func(t *testing.T) {
		// duplikat lama (2024-02-10) di luar bulan berjalan: tidak ikut
		groups, err := svc.ConflictReport(ctx, nil, nil)
		require.NoError(t, err)
		require.Empty(t, groups)

		// duplikat di bulan berjalan ikut tanpa rentang eksplisit
		today := helper.AtStartOfDay(time.Now().UTC())
		mkRaw(la.ProductionLineID, "welder", today, assignmentModel.ShiftAfternoon)
		mkRaw(lb.ProductionLineID, "packer", today, assignmentModel.ShiftAfternoon)

		groups, err = svc.ConflictReport(ctx, nil, nil)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		require.Equal(t, helper.FormatDateYMD(today), groups[0].Date)
		require.Len(t, groups[0].Assignments, 2)
	})

	t.Run("kosong saat tidak ada duplikat", func(t *testing.T) {
		db2 := newTestDB(t)
		svc2 := NewAssignmentService(db2)
		w2 := seedWorker(t, db2, "Sari", "W-0002")
		l2 := seedLine(t, db2, "Line A", true)
		_, err := svc2.Create(ctx, CreateInput{
			WorkerID:         w2.WorkerID,
			ProductionLineID: l2.ProductionLineID,
			Position:         "welder",
			Date:             day(2024, 2, 10),
			Shift:            assignmentModel.ShiftMorning,
		})
		require.NoError(t, err)

		start := day(2024, 1, 1)
		end := day(2024, 12, 31)
		groups, err := svc2.ConflictReport(ctx, &start, &end)
		require.NoError(t, err)
		require.Empty(t, groups)
	})

	t.Run("lookup nama worker gagal diteruskan sebagai error", func(t *testing.T) {
		require.NoError(t, db.Exec("DROP TABLE workers").Error)
		_, err := svc.ConflictReport(ctx, &feb1, &feb29)
		require.Error(t, err)
	})
}
