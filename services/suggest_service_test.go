package services

import (
	"context"
	"errors"
	"testing"

	"LocalPicks/models"
)

func suggestPlace(name, addr string) models.Place {
	return models.Place{Name: name, Address: addr}
}

func TestGetSuggestions_ShortQuery(t *testing.T) {
	provider := &fakeProvider{hasKey: true}
	svc := NewSuggestService(provider)

	for _, q := range []string{"", "a", " b "} {
		got := svc.GetSuggestions(context.Background(), q, 5)
		if len(got) != 0 {
			t.Errorf("GetSuggestions(%q) = %v, want empty", q, got)
		}
	}
	if provider.suggestCalls != 0 {
		t.Errorf("short queries must not reach the provider")
	}
}

func TestGetSuggestions_MissingCredentialIsSilentlyEmpty(t *testing.T) {
	provider := &fakeProvider{hasKey: false}
	svc := NewSuggestService(provider)

	got := svc.GetSuggestions(context.Background(), "san jo", 5)
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
	if provider.suggestCalls != 0 {
		t.Errorf("provider must not be called without a credential")
	}
}

func TestGetSuggestions_FiltersAddressLikeEntries(t *testing.T) {
	provider := &fakeProvider{
		hasKey: true,
		suggestFn: func(query string) ([]models.Place, error) {
			return []models.Place{
				suggestPlace("Downtown San Jose", "Downtown San Jose, CA"),
				suggestPlace("Some Office", "123 Main St, San Jose, CA"),
				suggestPlace("Some Suite", "Willow Glen, Suite 4, San Jose, CA"),
				suggestPlace("Some Unit", "Japantown #12, San Jose, CA"),
				suggestPlace("Upstairs Office", "2nd Floor, 4 Park Ave, San Jose, CA"),
				suggestPlace("No Comma Place", "Plain Label"),
				suggestPlace("Willow Glen", "Willow Glen, San Jose, CA"),
			}, nil
		},
	}
	svc := NewSuggestService(provider)

	got := svc.GetSuggestions(context.Background(), "san jose", 6)
	if len(got) != 2 {
		t.Fatalf("got %v, want the two area-like entries", got)
	}
	if got[0].Label != "Downtown San Jose, CA" || got[1].Label != "Willow Glen, San Jose, CA" {
		t.Errorf("labels = %q, %q", got[0].Label, got[1].Label)
	}
}

func TestGetSuggestions_LabelFallsBackToName(t *testing.T) {
	provider := &fakeProvider{
		hasKey: true,
		suggestFn: func(query string) ([]models.Place, error) {
			return []models.Place{suggestPlace("Santana Row, San Jose", "")}, nil
		},
	}
	svc := NewSuggestService(provider)

	got := svc.GetSuggestions(context.Background(), "santana", 5)
	if len(got) != 1 || got[0].Label != "Santana Row, San Jose" {
		t.Errorf("got %v, want the name used as label", got)
	}
}

func TestGetSuggestions_DedupesAndClampsLimit(t *testing.T) {
	provider := &fakeProvider{
		hasKey: true,
		suggestFn: func(query string) ([]models.Place, error) {
			places := make([]models.Place, 0, 10)
			places = append(places, suggestPlace("Dup", "Downtown, San Jose, CA"))
			places = append(places, suggestPlace("Dup Again", "Downtown, San Jose, CA"))
			for _, n := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
				places = append(places, suggestPlace(n, n+" District, San Jose, CA"))
			}
			return places, nil
		},
	}
	svc := NewSuggestService(provider)

	got := svc.GetSuggestions(context.Background(), "san jose", 99)
	if len(got) != suggestMaxLimit {
		t.Fatalf("got %d suggestions, want clamp to %d", len(got), suggestMaxLimit)
	}
	seen := make(map[string]bool)
	for _, sug := range got {
		if seen[sug.Label] {
			t.Errorf("duplicate label %q", sug.Label)
		}
		seen[sug.Label] = true
	}
}

func TestGetSuggestions_DefaultLimit(t *testing.T) {
	provider := &fakeProvider{
		hasKey: true,
		suggestFn: func(query string) ([]models.Place, error) {
			places := make([]models.Place, 0, 8)
			for _, n := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
				places = append(places, suggestPlace(n, n+" District, San Jose, CA"))
			}
			return places, nil
		},
	}
	svc := NewSuggestService(provider)

	got := svc.GetSuggestions(context.Background(), "san jose", 0)
	if len(got) != suggestDefaultLimit {
		t.Errorf("got %d suggestions, want default %d", len(got), suggestDefaultLimit)
	}
}

func TestGetSuggestions_ProviderErrorIsSilentlyEmpty(t *testing.T) {
	provider := &fakeProvider{
		hasKey: true,
		suggestFn: func(query string) ([]models.Place, error) {
			return nil, errors.New("upstream exploded")
		},
	}
	svc := NewSuggestService(provider)

	got := svc.GetSuggestions(context.Background(), "san jose", 5)
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want a typed empty list", got)
	}
}

func TestGetSuggestions_CachesByQueryAndLimit(t *testing.T) {
	provider := &fakeProvider{
		hasKey: true,
		suggestFn: func(query string) ([]models.Place, error) {
			return []models.Place{suggestPlace("Downtown", "Downtown, San Jose, CA")}, nil
		},
	}
	svc := NewSuggestService(provider)

	first := svc.GetSuggestions(context.Background(), "San Jose", 5)
	second := svc.GetSuggestions(context.Background(), "san jose", 5)
	if provider.suggestCalls != 1 {
		t.Errorf("provider calls = %d, want 1 (case-insensitive cache hit)", provider.suggestCalls)
	}
	if len(first) != 1 || len(second) != 1 || first[0] != second[0] {
		t.Errorf("cached result mismatch: %v vs %v", first, second)
	}

	svc.GetSuggestions(context.Background(), "san jose", 3)
	if provider.suggestCalls != 2 {
		t.Errorf("different limit must miss the cache, calls = %d", provider.suggestCalls)
	}
}
