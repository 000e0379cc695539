package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pagecraft/backend/config"
	"github.com/pagecraft/backend/internal/domain"
)

// fakeStore serves a fixed run result, or a fixed error.
type fakeStore struct {
	result *domain.RunResult
	err    error
}

func (s *fakeStore) SaveRun(_ context.Context, _ *domain.RunResult) error { return nil }

func (s *fakeStore) LoadRun(_ context.Context) (*domain.RunResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func storedRun() *domain.RunResult {
	return &domain.RunResult{
		Questions: []domain.Question{
			{Text: "What is the price of GlowBoost Vitamin C Serum?", Category: domain.CategoryPurchase},
		},
		FAQ: &domain.FAQPage{
			PageType:       domain.PageTypeFAQ,
			Title:          "Frequently Asked Questions",
			ProductName:    "GlowBoost Vitamin C Serum",
			TotalQuestions: 1,
		},
		ProductPages: []*domain.ProductPage{
			{PageType: domain.PageTypeProduct, Title: "GlowBoost Vitamin C Serum"},
			{PageType: domain.PageTypeProduct, Title: "ClearSkin Niacinamide Serum"},
		},
		Comparison: &domain.ComparisonPage{
			PageType: domain.PageTypeComparison,
			Title:    "GlowBoost Vitamin C Serum vs ClearSkin Niacinamide Serum",
		},
	}
}

func testRouter(store domain.PageStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "development",
			AllowedOrigins: []string{"http://localhost:*"},
		},
	}
	return SetupRouter(cfg, NewHandler(store))
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response body: %v", err)
	}
	return body
}

func TestHealthCheck(t *testing.T) {
	router := testRouter(&fakeStore{result: storedRun()})
	w := doRequest(router, http.MethodGet, "/health")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "healthy" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["service"] != "pagecraft-backend" {
		t.Errorf("service field = %v", body["service"])
	}
}

func TestGetData(t *testing.T) {
	t.Run("returns every artifact", func(t *testing.T) {
		router := testRouter(&fakeStore{result: storedRun()})
		w := doRequest(router, http.MethodGet, "/api/v1/data")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		body := decodeBody(t, w)
		if body["success"] != true {
			t.Error("success = false")
		}
		for _, key := range []string{"questions", "faq", "product_pages", "comparison"} {
			if _, ok := body[key]; !ok {
				t.Errorf("response missing %q", key)
			}
		}
	})

	t.Run("maps a missing run to 404", func(t *testing.T) {
		router := testRouter(&fakeStore{err: domain.ErrPageNotFound})
		w := doRequest(router, http.MethodGet, "/api/v1/data")

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("maps other store errors to 500", func(t *testing.T) {
		router := testRouter(&fakeStore{err: domain.ErrExternalService})
		w := doRequest(router, http.MethodGet, "/api/v1/data")

		if w.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", w.Code)
		}
	})
}

func TestGetQuestions(t *testing.T) {
	router := testRouter(&fakeStore{result: storedRun()})
	w := doRequest(router, http.MethodGet, "/api/v1/pages/questions")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	questions, ok := body["questions"].([]any)
	if !ok || len(questions) != 1 {
		t.Errorf("questions = %v", body["questions"])
	}
}

func TestGetFAQ(t *testing.T) {
	router := testRouter(&fakeStore{result: storedRun()})
	w := doRequest(router, http.MethodGet, "/api/v1/pages/faq")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	faq, ok := body["faq"].(map[string]any)
	if !ok {
		t.Fatalf("faq = %v", body["faq"])
	}
	if faq["title"] != "Frequently Asked Questions" {
		t.Errorf("faq title = %v", faq["title"])
	}
}

func TestGetProductPage(t *testing.T) {
	tests := []struct {
		name string
		path string
		want int
	}{
		{"first page", "/api/v1/pages/products/1", http.StatusOK},
		{"second page", "/api/v1/pages/products/2", http.StatusOK},
		{"out of range", "/api/v1/pages/products/3", http.StatusNotFound},
		{"zero index", "/api/v1/pages/products/0", http.StatusBadRequest},
		{"negative index", "/api/v1/pages/products/-1", http.StatusBadRequest},
		{"non-numeric index", "/api/v1/pages/products/abc", http.StatusBadRequest},
	}

	router := testRouter(&fakeStore{result: storedRun()})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, tt.path)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}

	t.Run("indexes are 1-based", func(t *testing.T) {
		w := doRequest(router, http.MethodGet, "/api/v1/pages/products/2")
		body := decodeBody(t, w)
		page, ok := body["product_page"].(map[string]any)
		if !ok {
			t.Fatalf("product_page = %v", body["product_page"])
		}
		if page["title"] != "ClearSkin Niacinamide Serum" {
			t.Errorf("title = %v, want the second product", page["title"])
		}
	})
}

func TestGetComparison(t *testing.T) {
	t.Run("returns the comparison page", func(t *testing.T) {
		router := testRouter(&fakeStore{result: storedRun()})
		w := doRequest(router, http.MethodGet, "/api/v1/pages/comparison")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})

	t.Run("404s when the run had no comparison", func(t *testing.T) {
		run := storedRun()
		run.Comparison = nil
		router := testRouter(&fakeStore{result: run})
		w := doRequest(router, http.MethodGet, "/api/v1/pages/comparison")

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}
