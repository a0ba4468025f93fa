package models

import (
	"fmt"
	"strings"
)

// Mode selects which pick-selection policy a request runs under.
type Mode string

const (
	ModeStrict Mode = "strict"
	ModeBest   Mode = "best"
	ModeHype   Mode = "hype"
)

// ParseMode normalizes and validates a mode query value. An empty value
// defaults to strict; anything else outside the three known modes is an error.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return ModeStrict, nil
	case ModeStrict:
		return ModeStrict, nil
	case ModeBest:
		return ModeBest, nil
	case ModeHype:
		return ModeHype, nil
	default:
		return "", fmt.Errorf("mode must be: strict, best, or hype")
	}
}

// Label returns the human-readable name shown above the pick list.
func (m Mode) Label() string {
	switch m {
	case ModeStrict:
		return "Top Local Picks"
	case ModeBest:
		return "Best Available"
	case ModeHype:
		return "Hype"
	}
	return "Unknown"
}
