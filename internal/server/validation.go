package server

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	maxNameLength     = 64
	maxPositionLength = 64
	maxFunFactLength  = 280
	maxPlayerNames    = 20
)

var usStates = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
	"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana",
	"Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
	"Mississippi", "Missouri", "Montana", "Nebraska", "Nevada",
	"New Hampshire", "New Jersey", "New Mexico", "New York",
	"North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon",
	"Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
	"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington",
	"West Virginia", "Wisconsin", "Wyoming", "Washington DC",
	"Puerto Rico", "US Virgin Islands",
}

var officialCategories = []string{
	"secretary_of_state", "governor", "senator", "mayor", "fake", "general",
}

func validStates() []string {
	return append([]string(nil), usStates...)
}

func validCategories() []string {
	return append([]string(nil), officialCategories...)
}

func isValidState(state string) bool {
	for _, candidate := range usStates {
		if candidate == state {
			return true
		}
	}
	return false
}

func isValidCategory(category string) bool {
	if category == "" {
		return true
	}
	for _, candidate := range officialCategories {
		if candidate == category {
			return true
		}
	}
	return false
}

var validatorOnce sync.Once

func registerValidators() {
	validatorOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = engine.RegisterValidation("usstate", func(fl validator.FieldLevel) bool {
			return isValidState(fl.Field().String())
		})
		_ = engine.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return isValidCategory(fl.Field().String())
		})
	})
}

// validateOfficialData mirrors the admin-side checks: required fields first,
// then whitelist checks for state and category. Returns all failures at once.
func validateOfficialData(name, position, state, category string) []string {
	var errs []string
	required := []struct {
		label string
		value string
	}{
		{"name", name},
		{"position", position},
		{"state", state},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			errs = append(errs, fmt.Sprintf("%s is required", field.label))
		}
	}
	if strings.TrimSpace(state) != "" && !isValidState(state) {
		errs = append(errs, "Invalid state")
	}
	if !isValidCategory(category) {
		errs = append(errs, "Invalid category")
	}
	if len(name) > maxNameLength {
		errs = append(errs, fmt.Sprintf("name must be %d characters or fewer", maxNameLength))
	}
	if len(position) > maxPositionLength {
		errs = append(errs, fmt.Sprintf("position must be %d characters or fewer", maxPositionLength))
	}
	return errs
}

// validatePlayerNames trims, drops blanks, and rejects duplicates.
func validatePlayerNames(raw []string) ([]string, error) {
	names := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, name := range raw {
		trimmed := normalizeText(name)
		if trimmed == "" {
			continue
		}
		if len(trimmed) > maxNameLength {
			return nil, fmt.Errorf("player name must be %d characters or fewer", maxNameLength)
		}
		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate player name %q", trimmed)
		}
		seen[key] = struct{}{}
		names = append(names, trimmed)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("At least one player required")
	}
	if len(names) > maxPlayerNames {
		return nil, fmt.Errorf("at most %d players supported", maxPlayerNames)
	}
	return names, nil
}

func normalizeText(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	return strings.Join(fields, " ")
}
