package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"LocalPicks/cache"
	"LocalPicks/metrics"
	"LocalPicks/models"

	"github.com/rs/zerolog/log"
)

const (
	suggestMinQueryLen  = 2
	suggestDefaultLimit = 5
	suggestMaxLimit     = 6
)

// leadingStreetNumber matches labels that begin like a street address.
var leadingStreetNumber = regexp.MustCompile(`^\d+\s`)

// unitMarkers flag address fragments that point at a single unit rather than
// a place or area worth suggesting.
var unitMarkers = []string{"suite", "ste ", "ste.", "unit ", "apt ", "apt.", "bldg", "floor"}

// SuggestService backs the location typeahead. It is deliberately forgiving:
// every failure degrades to an empty list so the input field never blocks on
// a backend error.
type SuggestService struct {
	Provider PlacesProvider
	cache    cache.Store
}

// NewSuggestService initializes SuggestService with a bounded short-TTL cache
// keyed by query text and limit.
func NewSuggestService(provider PlacesProvider) *SuggestService {
	return &SuggestService{
		Provider: provider,
		cache:    cache.New(256, 10*time.Minute),
	}
}

// GetSuggestions returns up to limit location-like suggestions for a partial
// query. It never returns an error.
func (s *SuggestService) GetSuggestions(ctx context.Context, query string, limit int) []models.Suggestion {
	metrics.SuggestRequests.Inc()

	query = strings.TrimSpace(query)
	if len(query) < suggestMinQueryLen {
		return []models.Suggestion{}
	}
	if limit < 1 {
		limit = suggestDefaultLimit
	} else if limit > suggestMaxLimit {
		limit = suggestMaxLimit
	}
	if !s.Provider.HasCredentials() {
		return []models.Suggestion{}
	}

	cacheKey := strings.ToLower(query) + "|" + strconv.Itoa(limit)
	if cached, ok := s.cache.Get(cacheKey); ok {
		metrics.CacheHits.WithLabelValues("suggestions").Inc()
		if suggestions, ok := cached.([]models.Suggestion); ok {
			return suggestions
		}
	}
	metrics.CacheMisses.WithLabelValues("suggestions").Inc()

	places, err := s.Provider.SuggestPlaces(ctx, query)
	if err != nil {
		log.Debug().Err(err).Str("query", query).Msg("suggestion search failed")
		return []models.Suggestion{}
	}

	seen := make(map[string]bool, len(places))
	suggestions := make([]models.Suggestion, 0, limit)
	for _, p := range places {
		name := strings.TrimSpace(p.Name)
		addr := strings.TrimSpace(p.Address)
		label := addr
		if label == "" {
			label = name
		}
		if !looksLikeArea(label) {
			continue
		}
		dedupe := strings.ToLower(label)
		if seen[dedupe] {
			continue
		}
		seen[dedupe] = true
		suggestions = append(suggestions, models.Suggestion{Label: label, Name: name, Address: addr})
		if len(suggestions) == limit {
			break
		}
	}

	s.cache.Set(cacheKey, suggestions)
	return suggestions
}

// looksLikeArea keeps labels that read like a place or neighborhood and
// rejects ones that read like a specific street address or unit.
func looksLikeArea(label string) bool {
	if label == "" || !strings.Contains(label, ",") {
		return false
	}
	if strings.Contains(label, "#") {
		return false
	}
	if leadingStreetNumber.MatchString(label) {
		return false
	}
	lower := strings.ToLower(label)
	for _, marker := range unitMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	return true
}
