package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthReportsBackendAvailability(t *testing.T) {
	app := newTestApp(t, &stubSQL{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	app.Health(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "healthy" {
		t.Fatalf("status = %v", resp["status"])
	}
	models := resp["available_models"].(map[string]any)
	if models["procedural_fallback"] != true {
		t.Fatalf("procedural fallback should be available: %v", models)
	}
	if models["dall-e-3"] != false || models["stable-diffusion-xl"] != false {
		t.Fatalf("hosted backends should be unavailable: %v", models)
	}
}

func TestModelsEndpoint(t *testing.T) {
	app := newTestApp(t, &stubSQL{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/models", nil)
	rec := httptest.NewRecorder()
	app.Models(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	procedural, ok := resp["procedural"]
	if !ok {
		t.Fatalf("missing procedural capabilities: %v", resp)
	}
	if procedural["available"] != true {
		t.Fatalf("procedural availability = %v", procedural["available"])
	}
	dalle := resp["dall-e-3"]
	if dalle["max_prompt_length"].(float64) != 4000 {
		t.Fatalf("dalle prompt limit = %v", dalle["max_prompt_length"])
	}
}
