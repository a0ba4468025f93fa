package models

// PickLinks bundles the outbound links for one pick.
type PickLinks struct {
	GoogleMaps string `json:"google_maps"`
	YelpSearch string `json:"yelp_search"`
}

// Pick is a candidate that survived filtering and ranking, enriched with the
// narrative fields shown to the user. Key and PlaceID are internal: Key is the
// normalized name+address used for cross-mode overlap detection and PlaceID is
// needed for the review fetch. Neither is part of the response body.
type Pick struct {
	Key     string `json:"-"`
	PlaceID string `json:"-"`

	Name                string    `json:"name"`
	Location            string    `json:"location"`
	Rating              float64   `json:"rating"`
	Reviews             int       `json:"reviews"`
	Confidence          string    `json:"confidence"`
	ConfidenceExplainer string    `json:"confidence_explainer"`
	Why                 string    `json:"why"`
	Order               string    `json:"order"`
	Links               PickLinks `json:"links"`
	AlsoInStrict        bool      `json:"also_in_strict"`
	HypeReason          string    `json:"hype_reason"`
	DistanceMiles       *float64  `json:"distance_miles"`
	PhotoURL            string    `json:"photo_url,omitempty"`
}
