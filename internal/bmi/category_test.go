package bmi

import (
	"errors"
	"math"
	"testing"
)

// --- Resolve() ---

func TestResolve_Boundaries(t *testing.T) {
	tests := []struct {
		value    float64
		wantName string
		wantRisk string
	}{
		{0, CategoryUnderweight, RiskMalnutrition},
		{-3.5, CategoryUnderweight, RiskMalnutrition},
		{18.49, CategoryUnderweight, RiskMalnutrition},
		{18.50, CategoryNormal, RiskLow},
		{24.49, CategoryNormal, RiskLow},
		{24.99, CategoryNormal, RiskLow},
		{25.00, CategoryOverweight, RiskEnhanced},
		{29.40, CategoryOverweight, RiskEnhanced},
		{29.99, CategoryOverweight, RiskEnhanced},
		{30, CategoryModeratelyObese, RiskMedium},
		{32.83, CategoryModeratelyObese, RiskMedium},
		{34.99, CategoryModeratelyObese, RiskMedium},
		{35, CategorySeverelyObese, RiskHigh},
		{39.99, CategorySeverelyObese, RiskHigh},
		{40, CategoryVerySeverelyObese, RiskVeryHigh},
		{math.Inf(1), CategoryVerySeverelyObese, RiskVeryHigh},
		{math.Inf(-1), CategoryUnderweight, RiskMalnutrition},
	}
	for _, tc := range tests {
		c, err := Resolve(tc.value)
		if err != nil {
			t.Errorf("Resolve(%v) error = %v", tc.value, err)
			continue
		}
		if c.Name != tc.wantName || c.Risk != tc.wantRisk {
			t.Errorf("Resolve(%v) = (%q, %q), want (%q, %q)",
				tc.value, c.Name, c.Risk, tc.wantName, tc.wantRisk)
		}
	}
}

func TestResolve_NoCategory(t *testing.T) {
	// NaN never compares true; 18.495 falls between two rounded bounds.
	for _, v := range []float64{math.NaN(), 18.495, 24.995, 39.999} {
		_, err := Resolve(v)
		if !errors.Is(err, ErrNoCategory) {
			t.Errorf("Resolve(%v) error = %v, want ErrNoCategory", v, err)
		}
	}
}

// --- table invariants ---

func TestTable_PartitionCompleteness(t *testing.T) {
	// Every two-decimal value in [-10, 100] matches exactly one category.
	for i := -1000; i <= 10000; i++ {
		v := float64(i) / 100
		var matches int
		for _, c := range Categories() {
			if c.Contains(v) {
				matches++
			}
		}
		if matches != 1 {
			t.Fatalf("value %.2f matched %d categories, want 1", v, matches)
		}
	}
}

func TestTable_OrderedAndUnbounded(t *testing.T) {
	cats := Categories()
	if len(cats) != 6 {
		t.Fatalf("Categories() len = %d, want 6", len(cats))
	}
	if !math.IsInf(cats[0].Lower, -1) {
		t.Errorf("first lower = %v, want -Inf", cats[0].Lower)
	}
	if !math.IsInf(cats[len(cats)-1].Upper, 1) {
		t.Errorf("last upper = %v, want +Inf", cats[len(cats)-1].Upper)
	}
	seen := make(map[string]bool)
	for i, c := range cats {
		if seen[c.Name] {
			t.Errorf("duplicate category name %q", c.Name)
		}
		seen[c.Name] = true
		if c.Lower > c.Upper {
			t.Errorf("%q: lower %v > upper %v", c.Name, c.Lower, c.Upper)
		}
		if i > 0 && c.Lower <= cats[i-1].Upper {
			t.Errorf("%q overlaps %q", c.Name, cats[i-1].Name)
		}
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[0].Name = "Tampered"
	cats[0].Upper = 99

	again := Categories()
	if again[0].Name != CategoryUnderweight || again[0].Upper != 18.49 {
		t.Errorf("table mutated through Categories(): %+v", again[0])
	}
}

// --- Lookup() ---

func TestLookup(t *testing.T) {
	c, ok := Lookup(CategoryOverweight)
	if !ok {
		t.Fatal("Lookup(Overweight) not found")
	}
	if c.Lower != 25 || c.Upper != 29.99 || c.Risk != RiskEnhanced {
		t.Errorf("Lookup(Overweight) = %+v", c)
	}

	for _, name := range []string{"unknown", "overweight", "", "Very Severly Obese"} {
		if _, ok := Lookup(name); ok {
			t.Errorf("Lookup(%q) found, want not found", name)
		}
	}
}

// --- Classify() ---

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		height, kg   float64
		cm           bool
		wantValue    float64
		wantCategory string
		wantRisk     string
	}{
		{"175cm 75kg", 175, 75, true, 24.49, CategoryNormal, RiskLow},
		{"171cm 96kg", 171, 96, true, 32.83, CategoryModeratelyObese, RiskMedium},
		{"1.67m 82kg", 1.67, 82, false, 29.40, CategoryOverweight, RiskEnhanced},
		{"zero height", 0, 82, true, 0, CategoryUnderweight, RiskMalnutrition},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Classify(tc.height, tc.kg, tc.cm)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if r.Value != tc.wantValue || r.Category != tc.wantCategory || r.Risk != tc.wantRisk {
				t.Errorf("Classify() = %+v, want {%v %q %q}", r, tc.wantValue, tc.wantCategory, tc.wantRisk)
			}
		})
	}
}

func TestClassify_NaNHeight(t *testing.T) {
	_, err := Classify(math.NaN(), 70, true)
	if !errors.Is(err, ErrNoCategory) {
		t.Errorf("Classify(NaN) error = %v, want ErrNoCategory", err)
	}
}
