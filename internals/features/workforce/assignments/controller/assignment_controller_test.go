// file: internals/features/workforce/assignments/controller/assignment_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	notifModel "pabrikku_backend/internals/features/messaging/notifications/model"
	lineModel "pabrikku_backend/internals/features/production/lines/model"
	userModel "pabrikku_backend/internals/features/users/user/model"
	assignmentModel "pabrikku_backend/internals/features/workforce/assignments/model"
	assignmentRoute "pabrikku_backend/internals/features/workforce/assignments/route"
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
		&assignmentModel.AssignmentModel{},
		&userModel.UserModel{},
		&notifModel.NotificationModel{},
	))

	app := fiber.New()
	api := app.Group("/api")
	assignmentRoute.AssignmentRoutes(api, db)
	return &env{app: app, db: db}
}

func (e *env) seedWorker(t *testing.T, name, cin string) workerModel.WorkerModel {
	t.Helper()
	w := workerModel.WorkerModel{WorkerName: name, WorkerCIN: cin, WorkerRole: workerModel.WorkerRoleOperator}
	require.NoError(t, e.db.Create(&w).Error)
	return w
}

func (e *env) seedLine(t *testing.T, name string, active bool) lineModel.ProductionLineModel {
	t.Helper()
	l := lineModel.ProductionLineModel{
		ProductionLineName:     name,
		ProductionLineLocation: "Hall 1",
		ProductionLineCapacity: 10,
		ProductionLineIsActive: active,
	}
	require.NoError(t, e.db.Create(&l).Error)
	return l
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

func TestAssignmentEndpoints(t *testing.T) {
	t.Run("create lalu conflict 409 dengan pesan lengkap", func(t *testing.T) {
		e := newEnv(t)
		w := e.seedWorker(t, "Budi", "W-0001")
		la := e.seedLine(t, "Line A", true)
		lb := e.seedLine(t, "Line B", true)

		resp, body := e.request(t, fiber.MethodPost, "/api/assignments", fiber.Map{
			"worker_id":          w.WorkerID,
			"production_line_id": la.ProductionLineID,
			"position":           "welder",
			"date":               "2024-02-10",
			"shift":              "morning",
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		require.Equal(t, true, body["success"])
		data := body["data"].(map[string]any)
		require.NotEmpty(t, data["assignment_id"])

		resp, body = e.request(t, fiber.MethodPost, "/api/assignments", fiber.Map{
			"worker_id":          w.WorkerID,
			"production_line_id": lb.ProductionLineID,
			"position":           "packer",
			"date":               "2024-02-10",
			"shift":              "morning",
		})
		require.Equal(t, fiber.StatusConflict, resp.StatusCode)
		require.Equal(t, "CONFLICT", body["error"])
		require.Equal(t,
			"Worker is already assigned to Line A on 2024-02-10 for morning shift",
			body["message"])
	})

	t.Run("worker tidak ada 404", func(t *testing.T) {
		e := newEnv(t)
		l := e.seedLine(t, "Line A", true)

		resp, body := e.request(t, fiber.MethodPost, "/api/assignments", fiber.Map{
			"worker_id":          "3f0c9c2e-1111-4222-8333-444455556666",
			"production_line_id": l.ProductionLineID,
			"position":           "welder",
			"date":               "2024-02-10",
			"shift":              "morning",
		})
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		require.Equal(t, "WORKER_NOT_FOUND", body["error"])
	})

	t.Run("line nonaktif 400", func(t *testing.T) {
		e := newEnv(t)
		w := e.seedWorker(t, "Budi", "W-0001")
		l := e.seedLine(t, "Line C", false)

		resp, body := e.request(t, fiber.MethodPost, "/api/assignments", fiber.Map{
			"worker_id":          w.WorkerID,
			"production_line_id": l.ProductionLineID,
			"position":           "welder",
			"date":               "2024-02-10",
			"shift":              "morning",
		})
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "PRODUCTION_LINE_INACTIVE", body["error"])
	})

	t.Run("shift tidak dikenal 400", func(t *testing.T) {
		e := newEnv(t)
		w := e.seedWorker(t, "Budi", "W-0001")
		l := e.seedLine(t, "Line A", true)

		resp, body := e.request(t, fiber.MethodPost, "/api/assignments", fiber.Map{
			"worker_id":          w.WorkerID,
			"production_line_id": l.ProductionLineID,
			"position":           "welder",
			"date":               "2024-02-10",
			"shift":              "graveyard",
		})
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "VALIDATION_ERROR", body["error"])
	})

	t.Run("path calendar dan conflicts tidak tertelan :id", func(t *testing.T) {
		e := newEnv(t)

		resp, body := e.request(t, fiber.MethodGet, "/api/assignments/calendar?year=2024&month=2", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		data := body["data"].(map[string]any)
		require.EqualValues(t, 2024, data["year"])

		resp, body = e.request(t, fiber.MethodGet, "/api/assignments/conflicts", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		data = body["data"].(map[string]any)
		require.EqualValues(t, 0, data["total"])
	})

	t.Run("calendar filter worker", func(t *testing.T) {
		e := newEnv(t)
		w1 := e.seedWorker(t, "Budi", "W-0001")
		w2 := e.seedWorker(t, "Sari", "W-0002")
		l := e.seedLine(t, "Line A", true)

		for _, in := range []fiber.Map{
			{"worker_id": w1.WorkerID, "date": "2024-02-10"},
			{"worker_id": w2.WorkerID, "date": "2024-02-11"},
		} {
			in["production_line_id"] = l.ProductionLineID
			in["position"] = "welder"
			in["shift"] = "morning"
			resp, _ := e.request(t, fiber.MethodPost, "/api/assignments", in)
			require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		}

		resp, body := e.request(t, fiber.MethodGet,
			"/api/assignments/calendar?year=2024&month=2&worker_id="+w1.WorkerID.String(), nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		data := body["data"].(map[string]any)
		days := data["days"].(map[string]any)
		require.Contains(t, days, "2024-02-10")
		require.NotContains(t, days, "2024-02-11")
		summary := data["summary"].(map[string]any)
		require.EqualValues(t, 1, summary["total_assignments"])

		resp, body = e.request(t, fiber.MethodGet,
			"/api/assignments/calendar?year=2024&month=2&worker_id=not-a-uuid", nil)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "INVALID_ID", body["error"])
	})

	t.Run("calendar tanpa query 400", func(t *testing.T) {
		e := newEnv(t)
		resp, body := e.request(t, fiber.MethodGet, "/api/assignments/calendar", nil)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "VALIDATION_ERROR", body["error"])
	})

	t.Run("id bukan uuid 400", func(t *testing.T) {
		e := newEnv(t)
		resp, body := e.request(t, fiber.MethodGet, "/api/assignments/not-a-uuid", nil)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "INVALID_ID", body["error"])
	})

	t.Run("detail tidak ada 404", func(t *testing.T) {
		e := newEnv(t)
		resp, body := e.request(t, fiber.MethodGet, "/api/assignments/3f0c9c2e-1111-4222-8333-444455556666", nil)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		require.Equal(t, "NOT_FOUND", body["error"])
	})

	t.Run("update position lalu delete", func(t *testing.T) {
		e := newEnv(t)
		w := e.seedWorker(t, "Budi", "W-0001")
		l := e.seedLine(t, "Line A", true)

		_, body := e.request(t, fiber.MethodPost, "/api/assignments", fiber.Map{
			"worker_id":          w.WorkerID,
			"production_line_id": l.ProductionLineID,
			"position":           "welder",
			"date":               "2024-02-10",
			"shift":              "morning",
		})
		id := body["data"].(map[string]any)["assignment_id"].(string)

		target := fmt.Sprintf("/api/assignments/%s", id)
		resp, body := e.request(t, fiber.MethodPut, target, fiber.Map{"position": "inspector"})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "inspector", body["data"].(map[string]any)["position"])

		resp, _ = e.request(t, fiber.MethodDelete, target, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, body = e.request(t, fiber.MethodGet, target, nil)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		require.Equal(t, "NOT_FOUND", body["error"])
	})

	t.Run("list paginasi", func(t *testing.T) {
		e := newEnv(t)
		w := e.seedWorker(t, "Budi", "W-0001")
		l := e.seedLine(t, "Line A", true)

		for d := 1; d <= 25; d++ {
			resp, _ := e.request(t, fiber.MethodPost, "/api/assignments", fiber.Map{
				"worker_id":          w.WorkerID,
				"production_line_id": l.ProductionLineID,
				"position":           "welder",
				"date":               fmt.Sprintf("2024-03-%02d", d),
				"shift":              "morning",
			})
			require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		}

		resp, body := e.request(t, fiber.MethodGet, "/api/assignments?page=1&per_page=10", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		pg := body["pagination"].(map[string]any)
		require.EqualValues(t, 10, pg["count"])
		require.Equal(t, true, pg["has_next"])
		require.Equal(t, false, pg["has_prev"])

		resp, body = e.request(t, fiber.MethodGet, "/api/assignments?page=3&per_page=10", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		pg = body["pagination"].(map[string]any)
		require.EqualValues(t, 25, pg["total"])
		require.EqualValues(t, 3, pg["total_pages"])
		require.EqualValues(t, 5, pg["count"])
		require.Equal(t, false, pg["has_next"])
		require.Equal(t, true, pg["has_prev"])
		require.Len(t, body["data"].([]any), 5)
	})
}
