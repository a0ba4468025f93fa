package services

import (
	"math"
	"net/url"
	"sort"
	"strings"

	"LocalPicks/models"
)

// maxRankedCandidates caps the ranked list before narrative enrichment;
// finalPickCount is what a response actually shows.
const (
	maxRankedCandidates = 12
	finalPickCount      = 5
)

// ScoreFunc rates a candidate for ranking.
type ScoreFunc func(models.Place) float64

// ScoreLocalTrust rewards rating heavily and review volume logarithmically,
// so a 4.8 with 400 reviews beats a 4.3 with 4,000.
func ScoreLocalTrust(p models.Place) float64 {
	return p.Rating*2 + math.Log10(math.Max(1, float64(p.ReviewCount)))
}

// ScoreHype inverts the weighting: review volume dominates and rating is a
// minor tiebreak.
func ScoreHype(p models.Place) float64 {
	return math.Log10(math.Max(1, float64(p.ReviewCount)))*5 + p.Rating
}

// PickKey is the dedupe key for a venue, stable across modes within one
// request so overlap with the strict baseline can be detected.
func PickKey(name, address string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "||" + strings.ToLower(strings.TrimSpace(address))
}

// isClosed reports whether the provider marked the venue as not operating.
// Missing information must never exclude a venue, so only explicit closure
// signals count.
func isClosed(p models.Place) bool {
	switch strings.ToUpper(strings.TrimSpace(p.BusinessStatus)) {
	case "CLOSED_PERMANENTLY", "CLOSED_TEMPORARILY":
		return true
	}
	return p.OpenNow != nil && !*p.OpenNow
}

// matchesTypeLock reports whether a candidate fits the allowed category set.
// A nil set means no lock. The primary type or any secondary type may match.
func matchesTypeLock(p models.Place, allowed map[string]bool) bool {
	if len(allowed) == 0 {
		return true
	}
	if allowed[strings.ToLower(strings.TrimSpace(p.PrimaryType))] {
		return true
	}
	for _, t := range p.Types {
		if allowed[strings.ToLower(strings.TrimSpace(t))] {
			return true
		}
	}
	return false
}

// BuildPicks runs the filter pipeline over raw candidates, ranks the
// survivors with score, and assembles up to maxRankedCandidates picks.
// The why/order narrative is left for later so venues cut before the final
// truncation never cost a review fetch.
func BuildPicks(
	places []models.Place,
	minRating float64,
	minReviews int,
	score ScoreFunc,
	allowed map[string]bool,
	center *models.LatLng,
	maxRadiusM int,
) []models.Pick {
	filtered := make([]models.Place, 0, len(places))
	for _, p := range places {
		if isClosed(p) {
			continue
		}
		name := strings.TrimSpace(p.Name)
		if name == "" {
			continue
		}
		if IsChain(name) {
			continue
		}
		if !matchesTypeLock(p, allowed) {
			continue
		}
		if p.Rating < minRating || p.ReviewCount < minReviews {
			continue
		}
		// Hard distance cap. Candidates without coordinates pass; the cap
		// only guards against confidently-known far-away results.
		if center != nil && maxRadiusM > 0 && p.Location != nil {
			d := HaversineMeters(center.Latitude, center.Longitude, p.Location.Latitude, p.Location.Longitude)
			if d > float64(maxRadiusM) {
				continue
			}
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return score(filtered[i]) > score(filtered[j])
	})
	if len(filtered) > maxRankedCandidates {
		filtered = filtered[:maxRankedCandidates]
	}

	picks := make([]models.Pick, 0, len(filtered))
	for _, p := range filtered {
		picks = append(picks, assemblePick(p, center))
	}
	return picks
}

// assemblePick shapes one surviving candidate into the outward Pick record.
func assemblePick(p models.Place, center *models.LatLng) models.Pick {
	name := strings.TrimSpace(p.Name)
	addr := strings.TrimSpace(p.Address)
	conf := ConfidenceLabel(p.Rating, p.ReviewCount)

	var distanceMiles *float64
	if center != nil && p.Location != nil {
		d := HaversineMeters(center.Latitude, center.Longitude, p.Location.Latitude, p.Location.Longitude)
		miles := math.Round(MetersToMiles(d)*10) / 10
		distanceMiles = &miles
	}

	var photoURL string
	if p.PhotoRef != "" {
		// The media URL carries no key; clients attach their own restricted
		// browser key when loading it.
		photoURL = placesAPIBase + "/" + p.PhotoRef + "/media?maxWidthPx=800"
	}

	return models.Pick{
		Key:                 PickKey(name, addr),
		PlaceID:             strings.TrimSpace(p.ID),
		Name:                name,
		Location:            addr,
		Rating:              p.Rating,
		Reviews:             p.ReviewCount,
		Confidence:          conf,
		ConfidenceExplainer: ConfidenceExplainer(conf),
		Why:                 "",
		Order:               OrderFallback,
		Links: models.PickLinks{
			GoogleMaps: p.MapsURI,
			YelpSearch: "https://www.yelp.com/search?find_desc=" + url.QueryEscape(name) + "&find_loc=" + url.QueryEscape(addr),
		},
		HypeReason:    HypeReason(p.Rating, p.ReviewCount),
		DistanceMiles: distanceMiles,
		PhotoURL:      photoURL,
	}
}

// BuildPicksWithTypeFallback applies the category lock, and when the locked
// result is too thin and fallback is allowed, re-runs the whole pipeline
// unlocked and keeps that instead. Dish-term and non-food searches pass
// allowFallback=false and keep the locked result however sparse it is.
func BuildPicksWithTypeFallback(
	places []models.Place,
	minRating float64,
	minReviews int,
	score ScoreFunc,
	allowed map[string]bool,
	wantAtLeast int,
	allowFallback bool,
	center *models.LatLng,
	maxRadiusM int,
) ([]models.Pick, bool) {
	picks := BuildPicks(places, minRating, minReviews, score, allowed, center, maxRadiusM)
	if len(allowed) > 0 && allowFallback && len(picks) < wantAtLeast {
		picks = BuildPicks(places, minRating, minReviews, score, nil, center, maxRadiusM)
		return picks, true
	}
	return picks, false
}

// PreferNewFirst marks picks that already appear in the strict baseline,
// moves them behind the fresh ones, and truncates to the final pick count.
func PreferNewFirst(picks []models.Pick, strictKeys map[string]bool) []models.Pick {
	newOnes := make([]models.Pick, 0, len(picks))
	overlaps := make([]models.Pick, 0, len(picks))
	for _, p := range picks {
		if strictKeys[p.Key] {
			p.AlsoInStrict = true
			overlaps = append(overlaps, p)
		} else {
			newOnes = append(newOnes, p)
		}
	}
	merged := append(newOnes, overlaps...)
	if len(merged) > finalPickCount {
		merged = merged[:finalPickCount]
	}
	return merged
}
