package models

// LatLng is a geographic point. It marshals with the same field names the
// Places API uses, so it doubles as the wire shape for location bias.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Place is one candidate venue returned by the places provider.
// A zero Rating or ReviewCount means the provider did not report one.
type Place struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"review_count"`
	MapsURI        string   `json:"maps_uri"`
	PrimaryType    string   `json:"primary_type"`
	Types          []string `json:"types"`
	Location       *LatLng  `json:"location,omitempty"`
	BusinessStatus string   `json:"business_status,omitempty"`
	// OpenNow is nil when the provider did not include open-now info.
	OpenNow  *bool  `json:"open_now,omitempty"`
	PhotoRef string `json:"photo_ref,omitempty"`
}
