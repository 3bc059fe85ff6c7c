package engine

import (
	"errors"
	"testing"

	"github.com/mkravets/adoptlens/internal/model"
)

func sampleTable() model.Table {
	return model.Table{
		{Company: "Acme", Industry: "Retail", Country: "USA", Tool: "ChatGPT", AdoptionYear: 2022},
		{Company: "Globex", Industry: "Finance", Country: "UK", Tool: "Copilot", AdoptionYear: 2023},
		{Company: "Initech", Industry: "Retail", Country: "USA", Tool: "Copilot", AdoptionYear: 2023},
		{Company: "Umbrella", Industry: "Healthcare", Country: "Germany", Tool: "Claude", AdoptionYear: 2024},
	}
}

func TestApply_EmptyPredicatesReturnFullTable(t *testing.T) {
	table := sampleTable()

	view, err := Apply(table, model.PredicateSet{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(view) != len(table) {
		t.Fatalf("Expected %d records, got %d", len(table), len(view))
	}
	for i := range table {
		if view[i].Company != table[i].Company {
			t.Errorf("Expected order preserved at %d: want %s, got %s", i, table[i].Company, view[i].Company)
		}
	}
}

func TestApply_SingleFieldConstraint(t *testing.T) {
	view, err := Apply(sampleTable(), model.PredicateSet{Industries: []string{"Retail"}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(view) != 2 {
		t.Fatalf("Expected 2 retail records, got %d", len(view))
	}
	for _, rec := range view {
		if rec.Industry != "Retail" {
			t.Errorf("Expected only Retail records, got %s", rec.Industry)
		}
	}
}

func TestApply_OrWithinField(t *testing.T) {
	view, err := Apply(sampleTable(), model.PredicateSet{
		Industries: []string{"Retail", "Healthcare"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(view) != 3 {
		t.Errorf("Expected 3 records across both industries, got %d", len(view))
	}
}

func TestApply_AndAcrossFields(t *testing.T) {
	view, err := Apply(sampleTable(), model.PredicateSet{
		Industries: []string{"Retail"},
		Tools:      []string{"Copilot"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(view) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(view))
	}
	if view[0].Company != "Initech" {
		t.Errorf("Expected Initech, got %s", view[0].Company)
	}
}

func TestApply_YearRange(t *testing.T) {
	view, err := Apply(sampleTable(), model.PredicateSet{
		Years: &model.YearRange{Min: 2023, Max: 2024},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(view) != 3 {
		t.Errorf("Expected 3 records in [2023, 2024], got %d", len(view))
	}
	for _, rec := range view {
		if rec.AdoptionYear < 2023 || rec.AdoptionYear > 2024 {
			t.Errorf("Record outside year range: %d", rec.AdoptionYear)
		}
	}
}

func TestApply_NoMatches(t *testing.T) {
	_, err := Apply(sampleTable(), model.PredicateSet{
		Industries: []string{"Aerospace"},
	})
	if !errors.Is(err, ErrNoMatches) {
		t.Errorf("Expected ErrNoMatches, got %v", err)
	}

	// Individually satisfiable constraints whose intersection is empty.
	_, err = Apply(sampleTable(), model.PredicateSet{
		Industries: []string{"Healthcare"},
		Countries:  []string{"USA"},
	})
	if !errors.Is(err, ErrNoMatches) {
		t.Errorf("Expected ErrNoMatches for empty intersection, got %v", err)
	}
}

func TestApply_CaseSensitiveMatching(t *testing.T) {
	_, err := Apply(sampleTable(), model.PredicateSet{
		Industries: []string{"retail"},
	})
	if !errors.Is(err, ErrNoMatches) {
		t.Errorf("Expected case-sensitive match to fail, got %v", err)
	}
}

func TestApply_Idempotent(t *testing.T) {
	p := model.PredicateSet{Countries: []string{"USA"}}

	first, err := Apply(sampleTable(), p)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := Apply(model.Table(first), p)
	if err != nil {
		t.Fatalf("Expected no error on reapply, got %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("Expected identical views, got %d then %d records", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Record %d changed across reapply", i)
		}
	}
}

func TestApply_DoesNotMutateTable(t *testing.T) {
	table := sampleTable()
	before := make(model.Table, len(table))
	copy(before, table)

	if _, err := Apply(table, model.PredicateSet{Tools: []string{"Copilot"}}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	for i := range before {
		if table[i] != before[i] {
			t.Errorf("Apply mutated table at index %d", i)
		}
	}
}
