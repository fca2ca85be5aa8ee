package domain

import (
	"fmt"
	"math"
	"strings"
)

// The validators below are shared by every path that creates entities, so
// the API and the seed catalog accept exactly the same input.

// ValidateName rejects a blank or whitespace-only value for field.
func ValidateName(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%w: %s is required", ErrValidation, field)
	}
	return nil
}

// ValidateAmount rejects money values that are negative, NaN, or infinite.
func ValidateAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a finite number", ErrValidation, field)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrValidation, field)
	}
	return nil
}

// ValidatePackage enforces the rules for a new travel package.
func ValidatePackage(name string, capacity int) error {
	if err := ValidateName("name", name); err != nil {
		return err
	}
	if capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", ErrValidation)
	}
	return nil
}

// ValidateActivity enforces the rules for a new activity.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - Cost must be finite and not negative.
//   - Capacity must be at least 1.
func ValidateActivity(name string, cost float64, capacity int) error {
	if err := ValidateName("name", name); err != nil {
		return err
	}
	if err := ValidateAmount("cost", cost); err != nil {
		return err
	}
	if capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", ErrValidation)
	}
	return nil
}

// ValidatePassenger enforces the rules for a new passenger. An opening
// balance may not be negative even for tiers that can go negative later.
func ValidatePassenger(name string, balance float64) error {
	if err := ValidateName("name", name); err != nil {
		return err
	}
	return ValidateAmount("balance", balance)
}
