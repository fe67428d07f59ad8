package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newServiceTestServer() *chi.Mux {
	r := chi.NewRouter()
	NewServiceHandler().RegisterRoutes(r)
	return r
}

func TestServicePageStickerQuote(t *testing.T) {
	r := newServiceTestServer()

	w := postForm(r, "/service", url.Values{
		"service_type": {"sticker"},
		"qty":          {"2"},
		"height":       {"3"},
		"width":        {"4"},
		"size_unit":    {"ft"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "GHC 52.8") {
		t.Errorf("expected sticker price GHC 52.8 in page")
	}
}

func TestServicePageDTFQuote(t *testing.T) {
	r := newServiceTestServer()

	w := postForm(r, "/service", url.Values{
		"service_type": {"dtf"},
		"dtf_qty":      {"3"},
		"dtf_size":     {"A3"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "GHC 42.0") {
		t.Errorf("expected DTF price GHC 42.0 in page")
	}
}

func TestServicePageEmptyFieldPoisonsPrices(t *testing.T) {
	r := newServiceTestServer()

	// height is sent but empty: it must fail to parse rather than
	// default to zero.
	w := postForm(r, "/service", url.Values{
		"service_type":     {"banner"},
		"banner_qty":       {"2"},
		"banner_height":    {""},
		"banner_width":     {"4"},
		"banner_size_unit": {"ft"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := strings.Count(w.Body.String(), "Invalid input."); got != 4 {
		t.Errorf("expected all four price fields poisoned, found %d", got)
	}
}

func TestServicePageAbsentFieldsDefaultToZero(t *testing.T) {
	r := newServiceTestServer()

	// No numeric fields at all: they default to "0" and price to zero.
	w := postForm(r, "/service", url.Values{"service_type": {"sticker"}})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "GHC 0.0") {
		t.Errorf("expected a zero sticker price")
	}
}

func TestServicePageOneWayVisionShowsNoPrice(t *testing.T) {
	r := newServiceTestServer()

	w := postForm(r, "/service", url.Values{
		"service_type":           {"onewayvision"},
		"onewayvision_qty":       {"1"},
		"onewayvision_height":    {"2"},
		"onewayvision_width":     {"3"},
		"onewayvision_size_unit": {"ft"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "GHC ") {
		t.Errorf("one way vision has no price field on the page")
	}
}

func TestServicePageGet(t *testing.T) {
	r := newServiceTestServer()

	req := httptest.NewRequest(http.MethodGet, "/service", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "Invalid input.") {
		t.Error("a plain GET must not show any prices")
	}
}
