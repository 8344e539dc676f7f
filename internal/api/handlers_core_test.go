package api

import (
	"net/http"
	"testing"
)

func TestHealthReportsVolatileBackend(t *testing.T) {
	app, _ := newVolatileTestApp(t)

	body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/health", nil), http.StatusOK)
	if body["status"] != "OK" {
		t.Fatalf("expected status OK, got %v", body)
	}
	if body["database"] != "volatile" {
		t.Fatalf("expected volatile database label, got %v", body)
	}
}

func TestHealthReportsDurableBackend(t *testing.T) {
	app, _ := newDurableTestApp(t)

	body := doJSON(t, app, jsonRequest(t, http.MethodGet, "/api/health", nil), http.StatusOK)
	if body["database"] != "durable" {
		t.Fatalf("expected durable database label, got %v", body)
	}
}
