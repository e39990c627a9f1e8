// file: internals/features/workforce/performance/controller/performance_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	lineModel "pabrikku_backend/internals/features/production/lines/model"
	perfModel "pabrikku_backend/internals/features/workforce/performance/model"
	perfRoute "pabrikku_backend/internals/features/workforce/performance/route"
	workerModel "pabrikku_backend/internals/features/workforce/workers/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type env struct {
	app *fiber.App
	db  *gorm.DB
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&workerModel.WorkerModel{},
		&lineModel.ProductionLineModel{},
		&perfModel.PerformanceRecordModel{},
	))

	app := fiber.New()
	api := app.Group("/api")
	perfRoute.PerformanceRoutes(api, db)
	return &env{app: app, db: db}
}

func (e *env) seedWorker(t *testing.T, name, cin string) workerModel.WorkerModel {
	t.Helper()
	w := workerModel.WorkerModel{WorkerName: name, WorkerCIN: cin, WorkerRole: workerModel.WorkerRoleOperator}
	require.NoError(t, e.db.Create(&w).Error)
	return w
}

func (e *env) request(t *testing.T, method, target string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}

func (e *env) createRecord(t *testing.T, w workerModel.WorkerModel, date string, units, defects int, hours float64) {
	t.Helper()
	resp, _ := e.request(t, fiber.MethodPost, "/api/performance", fiber.Map{
		"worker_id":      w.WorkerID,
		"date":           date,
		"units_produced": units,
		"defects":        defects,
		"hours_worked":   hours,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestPerformanceStats(t *testing.T) {
	e := newEnv(t)
	budi := e.seedWorker(t, "Budi", "W-0001")
	sari := e.seedWorker(t, "Sari", "W-0002")

	e.createRecord(t, budi, "2024-03-01", 100, 5, 8)
	e.createRecord(t, budi, "2024-03-02", 100, 5, 8)
	e.createRecord(t, sari, "2024-03-01", 90, 0, 6)

	t.Run("agregasi per worker diurut total units menurun", func(t *testing.T) {
		resp, body := e.request(t, fiber.MethodGet, "/api/performance/stats", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		stats := body["data"].(map[string]any)["stats"].([]any)
		require.Len(t, stats, 2)

		first := stats[0].(map[string]any)
		require.Equal(t, "Budi", first["worker_name"])
		require.EqualValues(t, 2, first["total_records"])
		require.EqualValues(t, 200, first["total_units"])
		require.EqualValues(t, 10, first["total_defects"])
		require.EqualValues(t, 16, first["total_hours"])
		require.InDelta(t, 100.0, first["avg_units_per_day"].(float64), 1e-9)
		require.InDelta(t, 0.05, first["defect_rate"].(float64), 1e-9)
		require.InDelta(t, 12.5, first["units_per_hour"].(float64), 1e-9)

		second := stats[1].(map[string]any)
		require.Equal(t, "Sari", second["worker_name"])
		require.InDelta(t, 0.0, second["defect_rate"].(float64), 1e-9)
	})

	t.Run("filter rentang tanggal", func(t *testing.T) {
		resp, body := e.request(t, fiber.MethodGet, "/api/performance/stats?start_date=2024-03-02&end_date=2024-03-02", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		data := body["data"].(map[string]any)
		require.Equal(t, "2024-03-02", data["start_date"])
		stats := data["stats"].([]any)
		require.Len(t, stats, 1)
		require.Equal(t, "Budi", stats[0].(map[string]any)["worker_name"])
		require.EqualValues(t, 1, stats[0].(map[string]any)["total_records"])
	})

	t.Run("filter worker", func(t *testing.T) {
		_, body := e.request(t, fiber.MethodGet, "/api/performance/stats?worker_id="+sari.WorkerID.String(), nil)
		stats := body["data"].(map[string]any)["stats"].([]any)
		require.Len(t, stats, 1)
		require.Equal(t, "Sari", stats[0].(map[string]any)["worker_name"])
	})

	t.Run("worker tidak ada 404 saat create", func(t *testing.T) {
		resp, body := e.request(t, fiber.MethodPost, "/api/performance", fiber.Map{
			"worker_id":      "3f0c9c2e-1111-4222-8333-444455556666",
			"date":           "2024-03-01",
			"units_produced": 10,
			"defects":        0,
			"hours_worked":   8,
		})
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		require.Equal(t, false, body["success"])
	})

	t.Run("hours di luar batas 400", func(t *testing.T) {
		resp, _ := e.request(t, fiber.MethodPost, "/api/performance", fiber.Map{
			"worker_id":      budi.WorkerID,
			"date":           "2024-03-03",
			"units_produced": 10,
			"defects":        0,
			"hours_worked":   25,
		})
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("soft delete mengeluarkan record dari stats", func(t *testing.T) {
		resp, body := e.request(t, fiber.MethodGet, "/api/performance?worker_id="+sari.WorkerID.String(), nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		rows := body["data"].([]any)
		require.Len(t, rows, 1)
		id := rows[0].(map[string]any)["performance_id"].(string)

		resp, _ = e.request(t, fiber.MethodDelete, "/api/performance/"+id, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		_, body = e.request(t, fiber.MethodGet, "/api/performance/stats", nil)
		stats := body["data"].(map[string]any)["stats"].([]any)
		require.Len(t, stats, 1)
		require.Equal(t, "Budi", stats[0].(map[string]any)["worker_name"])
	})
}
