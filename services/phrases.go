package services

import (
	"fmt"
	"strconv"

	"LocalPicks/models"
)

// Phrase banks for the narrative fields. Selection is keyed through
// StablePickIndex so a given place always gets the same line and the lines
// still rotate across places.

var strictWhyLines = []string{
	"This feels like a place locals genuinely rely on.",
	"Quiet winner energy — not flashy, just trusted.",
	"If you only try one, start here. It’s the safe local call.",
	"This has the kind of reputation that builds naturally over time.",
	"People keep coming back here — it’s a real local staple.",
}

var bestWhyLines = []string{
	"A solid everyday choice for this area.",
	"The kind of place someone local would casually recommend.",
	"Dependable energy — not a risk pick.",
	"This fits how people actually eat around here.",
	"If options are limited, this is a sensible call.",
}

var hypeWhyLines = []string{
	"This one gets talked about a lot.",
	"More attention than average around here.",
	"The kind of place people mention by name.",
	"If you’re chasing what’s popular, this is the lane.",
	"High visibility spot — it keeps showing up in conversation.",
}

var orderSentences = []string{
	"Most people mention this",
	"Commonly mentioned by regulars",
	"Shows up often when locals talk about this place",
	"Mentioned repeatedly in reviews",
	"A frequent favorite among locals",
	"This is what people tend to order here",
	"This comes up a lot when locals talk about the place",
}

// hypeDistanceLines soften the blow when hype mode goes past its primary
// radius.
var hypeDistanceLines = []string{
	"Popularity isn’t always neighborhood-bound.",
	"Popular spots often draw people from farther away.",
	"Hype isn’t always right around the corner.",
	"This kind of popularity isn’t always local.",
	"This kind of buzz isn’t always local.",
}

// OrderFallback is the order line used when reviews gave us no dish signal.
const OrderFallback = "If you’re unsure, ask what regulars order most."

// WhyLine picks the mode-appropriate "why this place" sentence.
func WhyLine(mode models.Mode, name string, rating float64, reviews int) string {
	key := fmt.Sprintf("%s|%s|%s|%d", mode, name, strconv.FormatFloat(rating, 'g', -1, 64), reviews)

	var options []string
	switch mode {
	case models.ModeStrict:
		options = strictWhyLines
	case models.ModeBest:
		options = bestWhyLines
	default:
		options = hypeWhyLines
	}
	return options[StablePickIndex(key, len(options))]
}

// OrderLine formats the "what to order" sentence for a pick.
func OrderLine(placeName, dish string) string {
	if dish == "" {
		return OrderFallback
	}
	key := "order|" + placeName + "|" + dish
	sentence := orderSentences[StablePickIndex(key, len(orderSentences))]
	return fmt.Sprintf("%s — %s.", sentence, dish)
}

// HypeDistanceLine picks the rotating "popularity isn't always local"
// disclaimer for a widened hype search.
func HypeDistanceLine(location, cuisine string) string {
	key := "hype_distance|" + normalizeCuisineKey(location) + "|" + normalizeCuisineKey(cuisine)
	return hypeDistanceLines[StablePickIndex(key, len(hypeDistanceLines))]
}

// ConfidenceLabel grades how much proof sits behind a rating.
func ConfidenceLabel(rating float64, reviews int) string {
	if rating >= 4.5 && reviews >= 300 {
		return "High"
	}
	if rating >= 4.3 && reviews >= 100 {
		return "Med"
	}
	return "Low"
}

// ConfidenceExplainer returns the fixed one-liner for a confidence label.
func ConfidenceExplainer(label string) string {
	switch label {
	case "High":
		return "High = lots of reviews + very strong rating."
	case "Med":
		return "Med = good rating with some real review depth."
	}
	return "Low = fewer reviews. Could still be great, just less proof."
}

// HypeReason describes the crowd signal behind a pick. Tiers are ordered and
// the first match wins; it is descriptive only and independent of scoring.
func HypeReason(rating float64, reviews int) string {
	if reviews >= 1500 && rating >= 4.4 {
		return "Big buzz: tons of reviews + very high rating."
	}
	if reviews >= 800 {
		return "Popular spot: lots of reviews (people talk about it)."
	}
	if rating >= 4.6 && reviews >= 200 {
		return "High rating + solid review count (strong crowd signal)."
	}
	if reviews >= 200 {
		return "Decent buzz: good review volume for this area."
	}
	return "Some buzz: not huge, but trending-ish locally."
}
