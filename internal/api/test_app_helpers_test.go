package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/weekmark/internal/services"
	"github.com/terraincognita07/weekmark/internal/store"
)

// testClock lets handler tests move the week window without waiting.
type testClock struct {
	current time.Time
}

var testWednesday = time.Date(2026, 9, 2, 15, 0, 0, 0, time.UTC)

func newVolatileTestApp(t *testing.T) (*fiber.App, *testClock) {
	t.Helper()
	selector := store.NewSelector(nil, store.NewMemoryStore())
	return newTestAppWithSelector(t, selector)
}

func newDurableTestApp(t *testing.T) (*fiber.App, *testClock) {
	t.Helper()

	database, err := store.OpenSQLite(filepath.Join(t.TempDir(), "weekmark-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	durable, err := store.NewDurableStore(database)
	if err != nil {
		t.Fatalf("init durable store: %v", err)
	}
	t.Cleanup(func() {
		_ = durable.Close()
	})

	selector := store.NewSelector(durable, store.NewMemoryStore())
	return newTestAppWithSelector(t, selector)
}

func newTestAppWithSelector(t *testing.T, selector services.StoreSelector) (*fiber.App, *testClock) {
	t.Helper()

	clock := &testClock{current: testWednesday}
	users := services.NewUserService(selector)
	timetable := services.NewTimetableServiceWithClock(selector, time.UTC, func() time.Time {
		return clock.current
	})
	handler := NewHandler(users, timetable, selector)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, clock
}

func jsonRequest(t *testing.T, method string, path string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}
	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	return request
}

func doJSON(t *testing.T, app *fiber.App, request *http.Request, wantStatus int) map[string]any {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if response.StatusCode != wantStatus {
		t.Fatalf("%s %s: expected status %d, got %d (body %s)",
			request.Method, request.URL.Path, wantStatus, response.StatusCode, raw)
	}

	decoded := map[string]any{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("decode response %s: %v", raw, err)
	}
	return decoded
}
