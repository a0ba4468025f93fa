package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"LocalPicks/middleware"
	"LocalPicks/models"
	"LocalPicks/services"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

// stubProvider is a canned PlacesProvider for exercising the HTTP surface.
type stubProvider struct {
	hasKey    bool
	center    *models.LatLng
	searchFn  func(query string, radiusM int) ([]models.Place, error)
	suggestFn func(query string) ([]models.Place, error)
}

func (s *stubProvider) HasCredentials() bool { return s.hasKey }

func (s *stubProvider) SearchPlaces(_ context.Context, query string, _ *models.LatLng, radiusM int) ([]models.Place, error) {
	if s.searchFn == nil {
		return nil, nil
	}
	return s.searchFn(query, radiusM)
}

func (s *stubProvider) ResolveCenter(_ context.Context, _ string) *models.LatLng { return s.center }

func (s *stubProvider) PlaceReviews(_ context.Context, _ string) []string { return nil }

func (s *stubProvider) SuggestPlaces(_ context.Context, query string) ([]models.Place, error) {
	if s.suggestFn == nil {
		return nil, nil
	}
	return s.suggestFn(query)
}

// newTestRouter wires the controllers the way routes/v1 does, minus the
// observability middleware that the assertions do not need.
func newTestRouter(provider services.PlacesProvider) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandlerMiddleware())
	picks := NewPicksController(provider)
	suggest := NewSuggestController(provider)
	v1 := r.Group("/v1")
	v1.GET("/picks", picks.GetPicks)
	v1.GET("/suggest", suggest.GetSuggestions)
	return r
}

func strongPlace(id, name string) models.Place {
	return models.Place{
		ID:          id,
		Name:        name,
		Address:     "12 Mission St, Testville, CA",
		Rating:      4.6,
		ReviewCount: 500,
		MapsURI:     "https://maps.example/" + id,
		PrimaryType: "mexican_restaurant",
	}
}

func TestGetPicks_MissingLocationIsBadRequest(t *testing.T) {
	r := newTestRouter(&stubProvider{hasKey: true})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/picks", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "location is required") {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestGetPicks_InvalidModeIsBadRequest(t *testing.T) {
	r := newTestRouter(&stubProvider{hasKey: true})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/picks?location=Testville&mode=bestest", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "strict, best, or hype") {
		t.Errorf("body = %q, want the allowed modes named", w.Body.String())
	}
}

func TestGetPicks_ReturnsEnvelopeWithPicks(t *testing.T) {
	provider := &stubProvider{
		hasKey: true,
		center: &models.LatLng{Latitude: 37.0, Longitude: -122.0},
		searchFn: func(_ string, _ int) ([]models.Place, error) {
			return []models.Place{
				strongPlace("p1", "Taqueria Uno"),
				strongPlace("p2", "Taqueria Dos"),
				strongPlace("p3", "Taqueria Tres"),
			}, nil
		},
	}
	r := newTestRouter(provider)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/picks?location=Testville%2C+CA&cuisine=tacos&mode=strict", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %q", w.Code, w.Body.String())
	}

	var envelope struct {
		StatusCode int                  `json:"statusCode"`
		Message    string               `json:"message"`
		Data       models.PicksResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.StatusCode != http.StatusOK {
		t.Errorf("envelope statusCode = %d, want 200", envelope.StatusCode)
	}
	if envelope.Message != "Picks fetched successfully" {
		t.Errorf("envelope message = %q", envelope.Message)
	}
	if got := envelope.Data.Query; got != "best tacos restaurants in Testville, CA" {
		t.Errorf("query = %q", got)
	}
	if len(envelope.Data.Picks) != 3 {
		t.Fatalf("got %d picks, want 3", len(envelope.Data.Picks))
	}
	if envelope.Data.Picks[0].Name != "Taqueria Uno" {
		t.Errorf("first pick = %q", envelope.Data.Picks[0].Name)
	}
}

func TestGetPicks_InternalFieldsStayOffTheWire(t *testing.T) {
	provider := &stubProvider{
		hasKey: true,
		center: &models.LatLng{Latitude: 37.0, Longitude: -122.0},
		searchFn: func(_ string, _ int) ([]models.Place, error) {
			return []models.Place{strongPlace("p1", "Taqueria Uno")}, nil
		},
	}
	r := newTestRouter(provider)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/picks?location=Testville&mode=strict", nil))

	var raw struct {
		Data struct {
			Picks []map[string]interface{} `json:"picks"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(raw.Data.Picks) == 0 {
		t.Fatal("no picks in response")
	}
	for _, field := range []string{"key", "place_id", "Key", "PlaceID"} {
		if _, ok := raw.Data.Picks[0][field]; ok {
			t.Errorf("pick leaked internal field %q", field)
		}
	}
}

func TestGetPicks_SearchFailureMapsToBadGateway(t *testing.T) {
	provider := &stubProvider{
		hasKey: true,
		center: &models.LatLng{Latitude: 37.0, Longitude: -122.0},
		searchFn: func(_ string, _ int) ([]models.Place, error) {
			return nil, errors.New("upstream exploded")
		},
	}
	r := newTestRouter(provider)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/picks?location=Testville&mode=strict", nil))

	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Places search failed") {
		t.Errorf("body = %q", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "upstream exploded") {
		t.Errorf("provider error detail leaked to the client: %q", w.Body.String())
	}
}

func TestGetSuggestions_ReturnsAreaLabels(t *testing.T) {
	provider := &stubProvider{
		hasKey: true,
		suggestFn: func(_ string) ([]models.Place, error) {
			return []models.Place{
				{Name: "Downtown", Address: "Downtown, San Jose, CA"},
				{Name: "Willow Glen", Address: "Willow Glen, San Jose, CA"},
			}, nil
		},
	}
	r := newTestRouter(provider)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/suggest?q=san+jose", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var envelope struct {
		Data []models.Suggestion `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(envelope.Data))
	}
	if envelope.Data[0].Label != "Downtown, San Jose, CA" {
		t.Errorf("label = %q", envelope.Data[0].Label)
	}
}

func TestGetSuggestions_ShortQueryStaysOK(t *testing.T) {
	r := newTestRouter(&stubProvider{hasKey: true})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/suggest?q=a", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"data":[]`) {
		t.Errorf("body = %q, want an empty data array", w.Body.String())
	}
}
