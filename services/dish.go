package services

import "strings"

// NormalizeText lowercases s, replaces anything outside letters, digits and
// whitespace with a space, and collapses runs of whitespace. Review text and
// keywords go through the same normalization so substring counting lines up.
func NormalizeText(s string) string {
	lower := strings.ToLower(s)
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r
		case r >= '0' && r <= '9':
			return r
		default:
			return ' '
		}
	}, lower)
	return strings.Join(strings.Fields(mapped), " ")
}

// MostMentionedDish guesses the dish a venue is known for by counting keyword
// occurrences across its review texts. It returns "" when there is nothing to
// go on: no reviews, no keyword list for the cuisine, or no keyword that
// actually appears. Ties go to the keyword listed first, so the tables keep
// control over which dish wins.
func MostMentionedDish(reviewTexts []string, cuisine string) string {
	if len(reviewTexts) == 0 {
		return ""
	}

	keywords := dishKeywords[ResolveDishAlias(cuisine)]
	if len(keywords) == 0 {
		return ""
	}

	parts := make([]string, 0, len(reviewTexts))
	for _, t := range reviewTexts {
		parts = append(parts, NormalizeText(t))
	}
	joined := strings.Join(parts, " ")

	best := ""
	bestCount := 0
	for _, kw := range keywords {
		k := NormalizeText(kw)
		if k == "" {
			continue
		}
		if n := strings.Count(joined, k); n > bestCount {
			best = kw
			bestCount = n
		}
	}
	return best
}
