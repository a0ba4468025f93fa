package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"LocalPicks/cache"
	"LocalPicks/config/environment"
	"LocalPicks/metrics"
	"LocalPicks/models"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	placesAPIBase = "https://places.googleapis.com/v1"

	searchTimeout = 20 * time.Second
	lookupTimeout = 15 * time.Second

	maxSearchResults = 20
	maxReviewTexts   = 8

	// Field masks keep the payloads small. Every field the ranking pipeline
	// reads has to appear in the search mask or the provider silently drops it.
	searchFieldMask  = "places.id,places.displayName,places.formattedAddress,places.rating,places.userRatingCount,places.googleMapsUri,places.primaryType,places.types,places.location,places.businessStatus,places.currentOpeningHours.openNow,places.photos"
	centerFieldMask  = "places.location"
	suggestFieldMask = "places.displayName,places.formattedAddress"
	reviewsFieldMask = "reviews.text.text"
)

// PlacesProvider is the retrieval capability the pick and suggestion services
// depend on. The concrete implementation talks to the Google Places API (New);
// tests substitute a fake.
type PlacesProvider interface {
	HasCredentials() bool
	SearchPlaces(ctx context.Context, query string, center *models.LatLng, radiusM int) ([]models.Place, error)
	ResolveCenter(ctx context.Context, text string) *models.LatLng
	PlaceReviews(ctx context.Context, placeID string) []string
	SuggestPlaces(ctx context.Context, query string) ([]models.Place, error)
}

// PlacesService calls the Places API with a shared rate limit and a circuit
// breaker, and caches review texts per place.
type PlacesService struct {
	apiKey      string
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	breaker     *gobreaker.CircuitBreaker[[]byte]
	reviewCache cache.Store
}

// NewPlacesService initializes PlacesService from the environment. A missing
// API key is not an error here; callers check HasCredentials and degrade.
func NewPlacesService() *PlacesService {
	return &PlacesService{
		apiKey:      environment.GetGooglePlacesKey(),
		baseURL:     placesAPIBase,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		limiter:     rate.NewLimiter(rate.Limit(10), 5),
		breaker:     newPlacesBreaker(),
		reviewCache: cache.New(512, time.Hour),
	}
}

// newPlacesBreaker opens after a 60% failure rate over at least 8 requests
// and probes again after 30 seconds.
func newPlacesBreaker() *gobreaker.CircuitBreaker[[]byte] {
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "google-places",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 8 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("places circuit breaker state change")
		},
	})
}

// HasCredentials reports whether an API key is configured.
func (s *PlacesService) HasCredentials() bool {
	return s.apiKey != ""
}

// Wire shapes for the Places API (New). LatLng doubles as the location shape
// on both sides of the wire.

type searchTextRequest struct {
	TextQuery      string        `json:"textQuery"`
	MaxResultCount int           `json:"maxResultCount"`
	LocationBias   *locationBias `json:"locationBias,omitempty"`
}

type locationBias struct {
	Circle searchCircle `json:"circle"`
}

type searchCircle struct {
	Center models.LatLng `json:"center"`
	Radius float64       `json:"radius"`
}

type searchTextResponse struct {
	Places []wirePlace `json:"places"`
}

type wirePlace struct {
	ID                  string         `json:"id"`
	DisplayName         localizedText  `json:"displayName"`
	FormattedAddress    string         `json:"formattedAddress"`
	Rating              float64        `json:"rating"`
	UserRatingCount     int            `json:"userRatingCount"`
	GoogleMapsURI       string         `json:"googleMapsUri"`
	PrimaryType         string         `json:"primaryType"`
	Types               []string       `json:"types"`
	Location            *models.LatLng `json:"location"`
	BusinessStatus      string         `json:"businessStatus"`
	CurrentOpeningHours *openingHours  `json:"currentOpeningHours"`
	Photos              []photoName    `json:"photos"`
}

type localizedText struct {
	Text string `json:"text"`
}

type openingHours struct {
	OpenNow *bool `json:"openNow"`
}

type photoName struct {
	Name string `json:"name"`
}

type placeDetailsResponse struct {
	Reviews []struct {
		Text localizedText `json:"text"`
	} `json:"reviews"`
}

func (w wirePlace) toPlace() models.Place {
	p := models.Place{
		ID:             w.ID,
		Name:           w.DisplayName.Text,
		Address:        w.FormattedAddress,
		Rating:         w.Rating,
		ReviewCount:    w.UserRatingCount,
		MapsURI:        w.GoogleMapsURI,
		PrimaryType:    w.PrimaryType,
		Types:          w.Types,
		Location:       w.Location,
		BusinessStatus: w.BusinessStatus,
	}
	if w.CurrentOpeningHours != nil {
		p.OpenNow = w.CurrentOpeningHours.OpenNow
	}
	if len(w.Photos) > 0 {
		p.PhotoRef = w.Photos[0].Name
	}
	return p
}

// SearchPlaces runs a text search, optionally biased to a circle around
// center. Results arrive unranked; the pick pipeline does all filtering.
func (s *PlacesService) SearchPlaces(ctx context.Context, query string, center *models.LatLng, radiusM int) ([]models.Place, error) {
	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	reqBody := searchTextRequest{TextQuery: query, MaxResultCount: maxSearchResults}
	if center != nil && radiusM > 0 {
		reqBody.LocationBias = &locationBias{
			Circle: searchCircle{Center: *center, Radius: float64(radiusM)},
		}
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	raw, err := s.call(ctx, http.MethodPost, s.baseURL+"/places:searchText", body, searchFieldMask, "search")
	if err != nil {
		return nil, err
	}

	var payload searchTextResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	places := make([]models.Place, 0, len(payload.Places))
	for _, wp := range payload.Places {
		places = append(places, wp.toPlace())
	}
	return places, nil
}

// ResolveCenter turns free-form location text into coordinates using a
// single-result text search. Resolution is best effort: any failure returns
// nil and the caller skips distance filtering.
func (s *PlacesService) ResolveCenter(ctx context.Context, text string) *models.LatLng {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	body, err := json.Marshal(searchTextRequest{TextQuery: text, MaxResultCount: 1})
	if err != nil {
		return nil
	}
	raw, err := s.call(ctx, http.MethodPost, s.baseURL+"/places:searchText", body, centerFieldMask, "resolve")
	if err != nil {
		log.Debug().Err(err).Str("text", text).Msg("center resolution failed")
		return nil
	}

	var payload searchTextResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	if len(payload.Places) == 0 {
		return nil
	}
	return payload.Places[0].Location
}

// PlaceReviews fetches up to maxReviewTexts review texts for a place.
// Failures degrade to an empty slice so narrative enrichment falls back to
// its generic lines. Results are cached for an hour.
func (s *PlacesService) PlaceReviews(ctx context.Context, placeID string) []string {
	placeID = strings.TrimSpace(placeID)
	if placeID == "" {
		return nil
	}

	if cached, ok := s.reviewCache.Get(placeID); ok {
		metrics.CacheHits.WithLabelValues("reviews").Inc()
		if texts, ok := cached.([]string); ok {
			return texts
		}
	}
	metrics.CacheMisses.WithLabelValues("reviews").Inc()

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	raw, err := s.call(ctx, http.MethodGet, s.baseURL+"/places/"+placeID, nil, reviewsFieldMask, "reviews")
	if err != nil {
		log.Debug().Err(err).Str("place_id", placeID).Msg("review fetch failed")
		return nil
	}

	var payload placeDetailsResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	texts := make([]string, 0, len(payload.Reviews))
	for _, r := range payload.Reviews {
		t := strings.TrimSpace(r.Text.Text)
		if t == "" {
			continue
		}
		texts = append(texts, t)
		if len(texts) == maxReviewTexts {
			break
		}
	}
	s.reviewCache.Set(placeID, texts)
	return texts
}

// SuggestPlaces runs a lightweight text search for the typeahead endpoint,
// returning only names and addresses. The caller filters and shapes them.
func (s *PlacesService) SuggestPlaces(ctx context.Context, query string) ([]models.Place, error) {
	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	body, err := json.Marshal(searchTextRequest{TextQuery: query, MaxResultCount: 10})
	if err != nil {
		return nil, err
	}
	raw, err := s.call(ctx, http.MethodPost, s.baseURL+"/places:searchText", body, suggestFieldMask, "suggest")
	if err != nil {
		return nil, err
	}

	var payload searchTextResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decoding suggest response: %w", err)
	}
	places := make([]models.Place, 0, len(payload.Places))
	for _, wp := range payload.Places {
		places = append(places, wp.toPlace())
	}
	return places, nil
}

// call runs one HTTP exchange against the Places API behind the shared rate
// limiter and circuit breaker, returning the raw response body.
func (s *PlacesService) call(ctx context.Context, method, url string, body []byte, fieldMask, endpoint string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		metrics.ProviderCalls.WithLabelValues(endpoint, "skipped").Inc()
		return nil, err
	}

	raw, err := s.breaker.Execute(func() ([]byte, error) {
		return s.doRequest(ctx, method, url, body, fieldMask)
	})
	if err != nil {
		metrics.ProviderCalls.WithLabelValues(endpoint, "error").Inc()
		return nil, err
	}
	metrics.ProviderCalls.WithLabelValues(endpoint, "ok").Inc()
	return raw, nil
}

func (s *PlacesService) doRequest(ctx context.Context, method, url string, body []byte, fieldMask string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Goog-Api-Key", s.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("places api status %d: %s", resp.StatusCode, errorSnippet(data))
	}
	return data, nil
}

// errorSnippet trims an error body down to something loggable.
func errorSnippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
