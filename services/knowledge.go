package services

import "strings"

// The tables below are the static knowledge the pipeline runs on. They are
// plain data on purpose: tuning a list must never require touching pipeline
// logic.

// chainHints are lowercase brand fragments. Matching is substring-based and
// may catch an unlucky independent spot; that tradeoff is accepted.
var chainHints = []string{
	"mcdonald", "starbucks", "chipotle", "subway", "taco bell", "kfc", "wendy",
	"burger king", "domino", "pizza hut", "panera", "dunkin", "ihop", "applebee",
	"olive garden", "outback", "red lobster", "buffalo wild wings",
	"cheesecake factory", "yard house",
}

// IsChain reports whether a venue name looks like a well-known chain.
func IsChain(name string) bool {
	n := strings.ToLower(name)
	for _, hint := range chainHints {
		if strings.Contains(n, hint) {
			return true
		}
	}
	return false
}

// cuisineTypeLock maps a cuisine term to the provider place types we try to
// keep results within.
var cuisineTypeLock = map[string][]string{
	"pizza":     {"pizza_restaurant"},
	"tacos":     {"mexican_restaurant"},
	"ramen":     {"ramen_restaurant", "japanese_restaurant"},
	"sushi":     {"sushi_restaurant", "japanese_restaurant"},
	"thai":      {"thai_restaurant"},
	"bbq":       {"barbecue_restaurant"},
	"breakfast": {"breakfast_restaurant"},
	"burgers":   {"hamburger_restaurant"},

	"italian":       {"italian_restaurant"},
	"chinese":       {"chinese_restaurant"},
	"mediterranean": {"mediterranean_restaurant", "middle_eastern_restaurant", "greek_restaurant"},
	"vietnamese":    {"vietnamese_restaurant"},
	"steak":         {"steak_house"},
	"fried chicken": {"chicken_restaurant", "american_restaurant"},
}

// CuisineLockTypes returns the allowed place types for a cuisine term, or nil
// when the term carries no lock. Dish terms resolve through their parent
// cuisine first.
func CuisineLockTypes(cuisine string) map[string]bool {
	c := normalizeCuisineKey(cuisine)
	if c == "" {
		return nil
	}
	if parent, ok := dishAliases[c]; ok {
		c = parent
	}
	types, ok := cuisineTypeLock[c]
	if !ok {
		return nil
	}
	allowed := make(map[string]bool, len(types))
	for _, t := range types {
		allowed[t] = true
	}
	return allowed
}

// dishKeywords are the words we look for in reviews to guess what to order.
// Order matters: on tied counts the earlier keyword wins, so put the more
// specific dishes first.
var dishKeywords = map[string][]string{
	"tacos": {
		"birria", "al pastor", "carnitas", "carne asada", "fish taco", "shrimp taco",
		"quesabirria", "burrito", "quesadilla", "salsa", "guacamole",
		"barbacoa", "lengua", "pollo", "chile relleno", "pozole", "menudo",
	},
	"pizza": {
		"pepperoni", "margherita", "mushroom", "sausage", "meatball", "garlic", "pesto",
		"white pizza", "deep dish", "thin crust", "calzone",
		"sicilian", "grandma slice", "four cheese",
	},
	"ramen": {
		"tonkotsu", "shoyu", "miso", "spicy ramen", "chashu", "gyoza", "broth", "noodles",
	},
	"sushi": {
		"omakase", "roll", "nigiri", "sashimi", "spicy tuna", "salmon", "eel", "uni", "hand roll",
	},
	"thai": {
		"pad thai", "green curry", "red curry", "tom yum", "drunken noodles", "pad see ew", "thai tea",
	},
	"bbq": {
		"brisket", "ribs", "pulled pork", "burnt ends", "sausage", "smoked chicken", "mac and cheese",
		"beef rib", "pork ribs", "tri tip", "smoked turkey",
	},
	"breakfast": {
		"pancakes", "waffles", "biscuits and gravy", "omelet", "eggs benedict", "hash browns",
		"french toast", "breakfast burrito",
	},
	"burgers": {
		"burger", "cheeseburger", "fries", "onion rings", "milkshake", "smashburger", "bacon",
		"double burger", "house burger", "patty melt", "bacon burger",
	},

	"italian": {
		"spaghetti", "meatballs", "lasagna",
		"chicken parmesan", "eggplant parmesan",
		"alfredo", "carbonara", "bolognese",
	},
	"chinese": {
		"dumplings", "potstickers", "fried rice",
		"lo mein", "chow mein",
		"kung pao chicken", "mapo tofu",
	},
	"mediterranean": {
		"shawarma", "gyro", "falafel",
		"hummus", "kebab", "chicken shawarma",
	},
	"vietnamese": {
		"pho", "bun bo hue",
		"vermicelli", "banh mi", "spring rolls",
	},
	"steak": {
		"ribeye", "new york strip",
		"filet mignon", "prime rib", "steak frites",
	},
	"fried chicken": {
		"fried chicken", "hot chicken",
		"chicken and waffles",
		"collard greens", "cornbread", "mac and cheese",
	},
}

// dishAliases maps a single-dish search term to the cuisine whose keyword
// list and type lock it should borrow. A term in this table is searched as-is
// ("pho in San Jose", no "restaurants") and never falls back out of its lock:
// a small town's one pho shop must not lose to an unrelated majority
// category.
var dishAliases = map[string]string{
	"pho":         "vietnamese",
	"banh mi":     "vietnamese",
	"birria":      "tacos",
	"quesabirria": "tacos",
	"al pastor":   "tacos",
	"shawarma":    "mediterranean",
	"gyro":        "mediterranean",
	"falafel":     "mediterranean",
	"pad thai":    "thai",
	"tonkotsu":    "ramen",
	"omakase":     "sushi",
	"carbonara":   "italian",
	"lasagna":     "italian",
	"dumplings":   "chinese",
	"hot chicken": "fried chicken",
	"brisket":     "bbq",
}

// IsDishTerm reports whether the cuisine term is a single-dish alias.
func IsDishTerm(cuisine string) bool {
	_, ok := dishAliases[normalizeCuisineKey(cuisine)]
	return ok
}

// ResolveDishAlias returns the parent cuisine for a dish term, or the term
// itself when it is not an alias.
func ResolveDishAlias(cuisine string) string {
	c := normalizeCuisineKey(cuisine)
	if parent, ok := dishAliases[c]; ok {
		return parent
	}
	return c
}

// nonFoodCategories are search terms for which "restaurants" must not be
// appended to the query. They get no type lock and no lock fallback.
var nonFoodCategories = map[string]bool{
	"hair salon":  true,
	"barber":      true,
	"barbershop":  true,
	"nail salon":  true,
	"pharmacy":    true,
	"drugstore":   true,
	"gym":         true,
	"dentist":     true,
	"car wash":    true,
	"laundromat":  true,
	"dry cleaner": true,
}

// IsNonFoodCategory reports whether the term is a recognized non-restaurant
// category search.
func IsNonFoodCategory(cuisine string) bool {
	return nonFoodCategories[normalizeCuisineKey(cuisine)]
}

func normalizeCuisineKey(cuisine string) string {
	return strings.ToLower(strings.TrimSpace(cuisine))
}
