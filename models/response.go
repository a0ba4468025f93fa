package models

// PicksDebug captures how a pick list was produced. It is diagnostic output
// for the frontend and not a stable contract.
type PicksDebug struct {
	Mode             string  `json:"mode"`
	ModeLabel        string  `json:"mode_label"`
	CenterResolved   bool    `json:"center_resolved"`
	Center           *LatLng `json:"center,omitempty"`
	PrimaryRadiusM   int     `json:"primary_radius_m,omitempty"`
	MaxRadiusM       int     `json:"max_radius_m,omitempty"`
	RawPrimaryCount  int     `json:"raw_primary_count"`
	RawWideCount     int     `json:"raw_wide_count"`
	TypeLockFallback bool    `json:"type_lock_fallback"`
	Widened          bool    `json:"widened"`
	FinalCount       int     `json:"final_count"`
}

// PicksResponse is the full payload for one pick-generation request.
// Picks is always non-nil so clients can rely on an empty array instead of
// null. Error is only set for the degraded missing-credential payload.
type PicksResponse struct {
	Query          string     `json:"query"`
	Mode           string     `json:"mode"`
	ModeLabel      string     `json:"mode_label"`
	Picks          []Pick     `json:"picks"`
	LimitationNote *string    `json:"limitation_note"`
	Debug          PicksDebug `json:"debug"`
	Error          string     `json:"error,omitempty"`
}

// Suggestion is one typeahead entry for the location field.
type Suggestion struct {
	Label   string `json:"label"`
	Name    string `json:"name"`
	Address string `json:"address"`
}
