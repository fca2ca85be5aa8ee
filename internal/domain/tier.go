package domain

import (
	"fmt"
	"strings"
)

// Tier is a passenger category that controls pricing and whether the
// balance check applies when joining an activity.
type Tier string

const (
	TierStandard Tier = "Standard"
	TierGold     Tier = "Gold"
	TierPremium  Tier = "Premium"
)

// goldRate is the fraction of the list price a Gold passenger pays.
const goldRate = 0.9

// ParseTier maps a tier name to a Tier, ignoring case.
// An empty string is treated as Standard.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return TierStandard, nil
	case "gold":
		return TierGold, nil
	case "premium":
		return TierPremium, nil
	}
	return "", fmt.Errorf("%w: unknown tier %q", ErrValidation, s)
}

// Price returns what a passenger of this tier pays for an activity that
// lists at cost.
func (t Tier) Price(cost float64) float64 {
	if t == TierGold {
		return cost * goldRate
	}
	return cost
}

// WaivesBalanceCheck reports whether passengers of this tier may join
// activities they cannot afford. Their balance is allowed to go negative.
func (t Tier) WaivesBalanceCheck() bool {
	return t == TierPremium
}
