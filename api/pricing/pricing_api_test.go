package pricing

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func pricingTestServer() *echo.Echo {
	e := echo.New()
	RegisterPricingRoutes(e.Group("/api"), nil)
	return e
}

func TestPricingAPI_Quote(t *testing.T) {
	e := pricingTestServer()

	body, _ := json.Marshal(map[string]interface{}{
		"plan":         "pro",
		"users":        20,
		"storage_gb":   50,
		"integrations": 3,
		"support":      "priority",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/pricing/quote", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/pricing/quote status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Request-Duration-ms") == "" {
		t.Error("X-Request-Duration-ms header missing")
	}

	var resp map[string]float64
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 79 base + 15 users over allowance * 10 + 50GB * 2 + 3 * 15 + 25
	if resp["total"] != 399 {
		t.Errorf("total = %v, want 399", resp["total"])
	}
	if resp["user_cost"] != 150 {
		t.Errorf("user_cost = %v, want 150", resp["user_cost"])
	}
}

func TestPricingAPI_QuoteUnknownPlanFallsBack(t *testing.T) {
	e := pricingTestServer()

	body, _ := json.Marshal(map[string]interface{}{
		"plan": "platinum", "users": 1, "support": "basic",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/pricing/quote", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]float64
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["base_price"] != 29 {
		t.Errorf("base_price = %v, want 29 (basic fallback)", resp["base_price"])
	}
}

func TestPricingAPI_Plans(t *testing.T) {
	e := pricingTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/pricing/plans", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/pricing/plans status = %d, want 200", rec.Code)
	}
	var resp map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	plans, ok := resp["plans"].(map[string]interface{})
	if !ok || len(plans) != 3 {
		t.Errorf("plans = %v, want 3 entries", resp["plans"])
	}
	if resp["free_user_allowance"].(float64) != 5 {
		t.Errorf("free_user_allowance = %v, want 5", resp["free_user_allowance"])
	}
}
