package server

import "testing"

func TestValidateOfficialData(t *testing.T) {
	if errs := validateOfficialData("Kathy Hochul", "Governor", "New York", "governor"); len(errs) != 0 {
		t.Fatalf("expected clean validation, got %v", errs)
	}
	errs := validateOfficialData("", "", "", "")
	if len(errs) != 3 {
		t.Fatalf("expected three required-field failures, got %v", errs)
	}
	errs = validateOfficialData("Name", "Position", "Atlantis", "governor")
	if len(errs) != 1 || errs[0] != "Invalid state" {
		t.Fatalf("expected invalid state, got %v", errs)
	}
	errs = validateOfficialData("Name", "Position", "Texas", "astronaut")
	if len(errs) != 1 || errs[0] != "Invalid category" {
		t.Fatalf("expected invalid category, got %v", errs)
	}
}

func TestValidateOfficialDataEmptyCategoryOK(t *testing.T) {
	if errs := validateOfficialData("Name", "Position", "Texas", ""); len(errs) != 0 {
		t.Fatalf("empty category should pass, got %v", errs)
	}
}

func TestIsValidStateIncludesTerritories(t *testing.T) {
	for _, state := range []string{"Washington DC", "Puerto Rico", "US Virgin Islands"} {
		if !isValidState(state) {
			t.Fatalf("expected %s to be valid", state)
		}
	}
	if isValidState("Ontario") {
		t.Fatal("expected Ontario to be rejected")
	}
}

func TestValidatePlayerNames(t *testing.T) {
	names, err := validatePlayerNames([]string{" Alice ", "", "Bob"})
	if err != nil {
		t.Fatalf("expected names, got %v", err)
	}
	if len(names) != 2 || names[0] != "Alice" || names[1] != "Bob" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestValidatePlayerNamesRejectsEmpty(t *testing.T) {
	if _, err := validatePlayerNames([]string{"  ", ""}); err == nil {
		t.Fatal("expected error for no usable names")
	}
}

func TestValidatePlayerNamesRejectsDuplicates(t *testing.T) {
	if _, err := validatePlayerNames([]string{"Alice", "alice"}); err == nil {
		t.Fatal("expected case-insensitive duplicate rejection")
	}
}

func TestNormalizeTextCollapsesWhitespace(t *testing.T) {
	if got := normalizeText("  Kathy   Hochul "); got != "Kathy Hochul" {
		t.Fatalf("expected collapsed text, got %q", got)
	}
}
