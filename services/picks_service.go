package services

import (
	"context"
	"net/http"
	"strings"

	"LocalPicks/metrics"
	"LocalPicks/models"
	"LocalPicks/utils"

	"github.com/rs/zerolog/log"
)

const (
	missingCredentialMessage = "Missing GOOGLE_PLACES_API_KEY"

	unresolvedLocationNote = "I couldn’t confidently interpret that location. Try adding a nearby city/state (example: 'Downtown San Jose, CA')."

	strictWideNote = "This area is limited for that search, so I widened the search up to 10 miles."
	bestWideNote   = "This area is limited for that search, so I widened the search up to 15 miles."
	hypeWideNote   = "Showing hype picks up to 25 miles."
)

// modePolicy is the per-mode knob set: radii, quality thresholds, how many
// picks count as "enough", and the scoring function. Hype relaxes its
// thresholds on the wide attempt; the other modes keep theirs.
type modePolicy struct {
	primaryRadiusM int
	maxRadiusM     int
	minRating      float64
	minReviews     int
	wideMinRating  float64
	wideMinReviews int
	want           int
	score          ScoreFunc
}

// policyFor returns the policy for a mode. The relaxed flag only affects
// best mode, which lowers its bar for dish-term and non-food searches so a
// small town's only pho spot still surfaces.
func policyFor(mode models.Mode, relaxed bool) modePolicy {
	switch mode {
	case models.ModeBest:
		pol := modePolicy{
			primaryRadiusM: MilesToMeters(10),
			maxRadiusM:     MilesToMeters(15),
			minRating:      4.1,
			minReviews:     30,
			wideMinRating:  4.1,
			wideMinReviews: 30,
			want:           3,
			score:          ScoreLocalTrust,
		}
		if relaxed {
			pol.minRating, pol.minReviews = 3.8, 1
			pol.wideMinRating, pol.wideMinReviews = 3.8, 1
			pol.want = 1
		}
		return pol
	case models.ModeHype:
		return modePolicy{
			primaryRadiusM: MilesToMeters(10),
			maxRadiusM:     MilesToMeters(25),
			minRating:      4.0,
			minReviews:     80,
			wideMinRating:  3.8,
			wideMinReviews: 20,
			want:           3,
			score:          ScoreHype,
		}
	default:
		return modePolicy{
			primaryRadiusM: MilesToMeters(5),
			maxRadiusM:     MilesToMeters(10),
			minRating:      4.3,
			minReviews:     150,
			wideMinRating:  4.3,
			wideMinReviews: 150,
			want:           3,
			score:          ScoreLocalTrust,
		}
	}
}

// querySet holds the query variants one request can need. The strict variant
// is always built because it anchors overlap detection.
type querySet struct {
	base   string
	strict string
	best   string
	hype   string
}

// buildQueries assembles the upstream query text. A bare search (dish term or
// non-food category) drops the word "restaurants" so the provider is not
// steered toward restaurant results.
func buildQueries(location, cuisine string, bare bool) querySet {
	var base string
	switch {
	case cuisine == "":
		base = "restaurants in " + location
	case bare:
		base = cuisine + " in " + location
	default:
		base = cuisine + " restaurants in " + location
	}
	base = strings.TrimSpace(base)
	return querySet{
		base:   base,
		strict: strings.TrimSpace("best " + base),
		best:   base,
		hype:   strings.TrimSpace("popular " + base),
	}
}

// requestPlan fixes the cuisine-dependent decisions for one request: query
// text, category lock, whether lock fallback is allowed, and whether best
// mode runs with relaxed thresholds.
type requestPlan struct {
	queries       querySet
	allowed       map[string]bool
	allowFallback bool
	relaxed       bool
}

func planRequest(location, cuisine string) requestPlan {
	bare := cuisine != "" && (IsDishTerm(cuisine) || IsNonFoodCategory(cuisine))
	return requestPlan{
		queries: buildQueries(location, cuisine, bare),
		allowed: CuisineLockTypes(cuisine),
		// A dish-term search must keep its lock even when sparse, or the
		// town's dominant category would crowd out the one real match.
		allowFallback: !bare,
		relaxed:       bare,
	}
}

// pickContext carries the per-request state shared by the mode handlers.
type pickContext struct {
	location   string
	cuisine    string
	plan       requestPlan
	center     *models.LatLng
	strictKeys map[string]bool
	resp       *models.PicksResponse
}

// PicksService orchestrates the pick-selection pipeline for all three modes.
type PicksService struct {
	Provider PlacesProvider
}

// NewPicksService initializes PicksService with a places provider.
func NewPicksService(provider PlacesProvider) *PicksService {
	return &PicksService{Provider: provider}
}

// GetPicks produces the ranked, narrated pick list for a location, optional
// cuisine, and mode. Provider search failures surface as a 502; missing
// credentials and unresolvable locations degrade to well-formed empty
// responses.
func (s *PicksService) GetPicks(ctx context.Context, location, cuisine string, mode models.Mode) (*models.PicksResponse, error) {
	metrics.PickRequests.WithLabelValues(string(mode)).Inc()

	location = strings.TrimSpace(location)
	cuisine = strings.TrimSpace(cuisine)
	plan := planRequest(location, cuisine)

	resp := &models.PicksResponse{
		Query:     plan.queries.base,
		Mode:      string(mode),
		ModeLabel: mode.Label(),
		Picks:     []models.Pick{},
		Debug:     models.PicksDebug{Mode: string(mode), ModeLabel: mode.Label()},
	}

	if !s.Provider.HasCredentials() {
		resp.Error = missingCredentialMessage
		return resp, nil
	}

	// Resolve the location to coordinates once; every query variant shares
	// the center. Without one the distance cap is unenforceable and the
	// provider can drift to far-away matches, so never search blind.
	center := s.Provider.ResolveCenter(ctx, location)
	if center == nil {
		note := unresolvedLocationNote
		resp.LimitationNote = &note
		return resp, nil
	}
	resp.Debug.CenterResolved = true
	resp.Debug.Center = center

	pc := &pickContext{
		location: location,
		cuisine:  cuisine,
		plan:     plan,
		center:   center,
		resp:     resp,
	}

	// The strict baseline runs for every mode; best and hype use its keys to
	// demote picks the user would already have seen under strict.
	strictPol := policyFor(models.ModeStrict, false)
	strictPicks, strictFellBack, strictRaw, err := s.searchAndBuild(ctx, plan.queries.strict, center, plan, strictPol, false)
	if err != nil {
		return nil, err
	}
	strictPicks = truncatePicks(strictPicks, finalPickCount)
	pc.strictKeys = pickKeySet(strictPicks)

	switch mode {
	case models.ModeBest, models.ModeHype:
		err = s.runRanked(ctx, pc, mode)
	default:
		err = s.runStrict(ctx, pc, strictPicks, strictFellBack, strictRaw)
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// runStrict finishes a strict-mode request from the already-computed
// baseline, widening to the max radius when the primary attempt is thin.
func (s *PicksService) runStrict(ctx context.Context, pc *pickContext, picks []models.Pick, fellBack bool, rawCount int) error {
	pol := policyFor(models.ModeStrict, false)
	resp := pc.resp
	resp.Query = pc.plan.queries.strict
	resp.Debug.PrimaryRadiusM = pol.primaryRadiusM
	resp.Debug.MaxRadiusM = pol.maxRadiusM
	resp.Debug.RawPrimaryCount = rawCount
	resp.Debug.TypeLockFallback = fellBack

	if len(picks) < pol.want {
		widePicks, wideFellBack, wideRaw, err := s.searchAndBuild(ctx, pc.plan.queries.strict, pc.center, pc.plan, pol, true)
		if err != nil {
			return err
		}
		resp.Debug.RawWideCount = wideRaw
		if len(widePicks) > len(picks) {
			picks = truncatePicks(widePicks, finalPickCount)
			resp.Debug.TypeLockFallback = wideFellBack
			resp.Debug.Widened = true
			note := strictWideNote
			resp.LimitationNote = &note
			metrics.SearchWidened.WithLabelValues(string(models.ModeStrict)).Inc()
		}
	}

	s.enrich(ctx, picks, pc.cuisine, models.ModeStrict)
	resp.Picks = picks
	resp.Debug.FinalCount = len(picks)
	return nil
}

// runRanked handles best and hype mode: own primary search, widening, and
// demotion of picks that overlap the strict baseline.
func (s *PicksService) runRanked(ctx context.Context, pc *pickContext, mode models.Mode) error {
	pol := policyFor(mode, pc.plan.relaxed)
	query := pc.plan.queries.best
	if mode == models.ModeHype {
		query = pc.plan.queries.hype
	}

	resp := pc.resp
	resp.Query = query
	resp.Debug.PrimaryRadiusM = pol.primaryRadiusM
	resp.Debug.MaxRadiusM = pol.maxRadiusM

	picks, fellBack, rawCount, err := s.searchAndBuild(ctx, query, pc.center, pc.plan, pol, false)
	if err != nil {
		return err
	}
	resp.Debug.RawPrimaryCount = rawCount
	resp.Debug.TypeLockFallback = fellBack

	if len(picks) < pol.want {
		widePicks, wideFellBack, wideRaw, err := s.searchAndBuild(ctx, query, pc.center, pc.plan, pol, true)
		if err != nil {
			return err
		}
		resp.Debug.RawWideCount = wideRaw
		if len(widePicks) > len(picks) {
			picks = widePicks
			resp.Debug.TypeLockFallback = wideFellBack
			resp.Debug.Widened = true
			note := bestWideNote
			if mode == models.ModeHype {
				note = HypeDistanceLine(pc.location, pc.cuisine) + " " + hypeWideNote
			}
			resp.LimitationNote = &note
			metrics.SearchWidened.WithLabelValues(string(mode)).Inc()
		}
	}

	picks = PreferNewFirst(picks, pc.strictKeys)
	s.enrich(ctx, picks, pc.cuisine, mode)
	resp.Picks = picks
	resp.Debug.FinalCount = len(picks)
	return nil
}

// searchAndBuild runs one provider search plus one filter/rank pass. The wide
// flag switches to the mode's max radius and wide thresholds. Search failures
// come back as a 502 CustomError since candidate retrieval is load-bearing.
func (s *PicksService) searchAndBuild(ctx context.Context, query string, center *models.LatLng, plan requestPlan, pol modePolicy, wide bool) ([]models.Pick, bool, int, error) {
	radius := pol.primaryRadiusM
	minRating, minReviews := pol.minRating, pol.minReviews
	if wide {
		radius = pol.maxRadiusM
		minRating, minReviews = pol.wideMinRating, pol.wideMinReviews
	}

	places, err := s.Provider.SearchPlaces(ctx, query, center, radius)
	if err != nil {
		log.Error().Err(err).Str("query", query).Bool("wide", wide).Msg("places search failed")
		return nil, false, 0, utils.WrapError(http.StatusBadGateway, "Places search failed", err)
	}

	picks, fellBack := BuildPicksWithTypeFallback(
		places, minRating, minReviews, pol.score,
		plan.allowed, pol.want, plan.allowFallback,
		center, radius,
	)
	return picks, fellBack, len(places), nil
}

// enrich fills the why and order lines for the final picks. Review fetches
// happen here, after truncation, so discarded candidates never cost one.
func (s *PicksService) enrich(ctx context.Context, picks []models.Pick, cuisine string, mode models.Mode) {
	for i := range picks {
		texts := s.Provider.PlaceReviews(ctx, picks[i].PlaceID)
		dish := MostMentionedDish(texts, cuisine)
		picks[i].Order = OrderLine(picks[i].Name, dish)
		picks[i].Why = WhyLine(mode, picks[i].Name, picks[i].Rating, picks[i].Reviews)
	}
}

func truncatePicks(picks []models.Pick, n int) []models.Pick {
	if len(picks) > n {
		return picks[:n]
	}
	return picks
}

func pickKeySet(picks []models.Pick) map[string]bool {
	keys := make(map[string]bool, len(picks))
	for _, p := range picks {
		keys[p.Key] = true
	}
	return keys
}
