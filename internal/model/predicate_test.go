package model

import "testing"

func TestYearRange_Contains(t *testing.T) {
	r := YearRange{Min: 2022, Max: 2024}

	for year, want := range map[int]bool{
		2021: false,
		2022: true,
		2023: true,
		2024: true,
		2025: false,
	} {
		if got := r.Contains(year); got != want {
			t.Errorf("Contains(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestPredicateSet_IsEmpty(t *testing.T) {
	if !(PredicateSet{}).IsEmpty() {
		t.Error("Expected zero-value predicate set to be empty")
	}
	if (PredicateSet{Industries: []string{"Retail"}}).IsEmpty() {
		t.Error("Expected industry constraint to make the set non-empty")
	}
	if (PredicateSet{Years: &YearRange{Min: 2022, Max: 2023}}).IsEmpty() {
		t.Error("Expected year constraint to make the set non-empty")
	}
}

func TestRecord_KeyAndValue(t *testing.T) {
	rec := Record{
		Company:            "Acme",
		Industry:           "Retail",
		Tool:               "ChatGPT",
		AdoptionYear:       2022,
		TrainingHours:      40.5,
		ProductivityChange: 7.2,
	}

	if rec.Key(FieldCompany) != "Acme" {
		t.Errorf("Expected company key Acme, got %s", rec.Key(FieldCompany))
	}
	if rec.Key(FieldTool) != "ChatGPT" {
		t.Errorf("Expected tool key ChatGPT, got %s", rec.Key(FieldTool))
	}
	if rec.Value(MetricTrainingHours) != 40.5 {
		t.Errorf("Expected training hours 40.5, got %f", rec.Value(MetricTrainingHours))
	}
	if rec.Value(MetricAdoptionYear) != 2022 {
		t.Errorf("Expected adoption year 2022, got %f", rec.Value(MetricAdoptionYear))
	}
}
