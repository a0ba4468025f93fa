package services

import "testing"

func TestIsChain(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"McDonald's", true},
		{"MCDONALD'S #4521", true},
		{"Taco Bell", true},
		{"Starbucks Reserve", true},
		{"The Cheesecake Factory", true},
		{"Joe's Tacos", false},
		{"Maria's Kitchen", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsChain(tt.name); got != tt.want {
			t.Errorf("IsChain(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCuisineLockTypes(t *testing.T) {
	allowed := CuisineLockTypes("tacos")
	if allowed == nil || !allowed["mexican_restaurant"] {
		t.Errorf("tacos lock = %v, want mexican_restaurant allowed", allowed)
	}

	if got := CuisineLockTypes("ethiopian"); got != nil {
		t.Errorf("unlocked cuisine returned %v, want nil", got)
	}
	if got := CuisineLockTypes(""); got != nil {
		t.Errorf("empty cuisine returned %v, want nil", got)
	}
}

func TestCuisineLockTypes_DishAliasInheritsParentLock(t *testing.T) {
	phoLock := CuisineLockTypes("pho")
	if phoLock == nil || !phoLock["vietnamese_restaurant"] {
		t.Errorf("pho lock = %v, want vietnamese_restaurant allowed", phoLock)
	}

	birriaLock := CuisineLockTypes("birria")
	if birriaLock == nil || !birriaLock["mexican_restaurant"] {
		t.Errorf("birria lock = %v, want mexican_restaurant allowed", birriaLock)
	}
}

func TestIsDishTerm(t *testing.T) {
	for _, dish := range []string{"pho", "Pho", " birria ", "pad thai", "hot chicken"} {
		if !IsDishTerm(dish) {
			t.Errorf("IsDishTerm(%q) = false, want true", dish)
		}
	}
	for _, notDish := range []string{"tacos", "vietnamese", "pizza", "", "sushi"} {
		if IsDishTerm(notDish) {
			t.Errorf("IsDishTerm(%q) = true, want false", notDish)
		}
	}
}

func TestResolveDishAlias(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pho", "vietnamese"},
		{"BIRRIA", "tacos"},
		{"shawarma", "mediterranean"},
		{"tacos", "tacos"},
		{"unknown term", "unknown term"},
	}
	for _, tt := range tests {
		if got := ResolveDishAlias(tt.in); got != tt.want {
			t.Errorf("ResolveDishAlias(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsNonFoodCategory(t *testing.T) {
	for _, term := range []string{"hair salon", "Pharmacy", " gym "} {
		if !IsNonFoodCategory(term) {
			t.Errorf("IsNonFoodCategory(%q) = false, want true", term)
		}
	}
	for _, term := range []string{"tacos", "pho", "", "restaurant"} {
		if IsNonFoodCategory(term) {
			t.Errorf("IsNonFoodCategory(%q) = true, want false", term)
		}
	}
}
