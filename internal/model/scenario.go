package model

import (
	"errors"
	"fmt"
)

// ErrInvalidScenario marks parameters the cost models cannot evaluate.
var ErrInvalidScenario = errors.New("invalid scenario")

// FilingStatus selects the tax thresholds applied to the buyer.
type FilingStatus string

const (
	FilingJoint  FilingStatus = "joint"
	FilingSingle FilingStatus = "single"
)

// StandardDeduction returns the threshold above which mortgage and property tax
// payments yield a tax benefit.
func (f FilingStatus) StandardDeduction() float64 {
	if f == FilingJoint {
		return 12600
	}
	return 9300
}

// CapitalGainsExclusion returns the gain excluded from tax on a home held long enough.
func (f FilingStatus) CapitalGainsExclusion() float64 {
	if f == FilingJoint {
		return 500000
	}
	return 250000
}

// ScenarioParameters is the validated input of a single rent-vs-buy evaluation.
// Percentages are plain numbers (4.0 means 4%).
type ScenarioParameters struct {
	HomeValue         float64
	HoldYears         int
	MortgageRate      float64
	MortgageInsurance float64 // added to MortgageRate when DownPayment < 20
	DownPayment       float64
	MortgageTermYears int
	PriceAppreciation float64
	RentAppreciation  float64
	Inflation         float64
	InvestmentReturn  float64
	PropertyTax       float64
	Filing            FilingStatus
	MarginalRate      float64
	BuyingCost        float64
	SellingCost       float64
	Maintenance       float64
	OwnerInsurance    float64
	MonthlyCommon     float64 // currency units per month
	RenterInsurance   float64
}

// Validate rejects inputs that would make the projections divide by zero or
// compound a negative base.
func (p *ScenarioParameters) Validate() error {
	switch {
	case p.HomeValue <= 0:
		return fmt.Errorf("%w: home value must be positive, got %v", ErrInvalidScenario, p.HomeValue)
	case p.HoldYears <= 0:
		return fmt.Errorf("%w: holding period must be positive, got %d", ErrInvalidScenario, p.HoldYears)
	case p.MortgageTermYears <= 0:
		return fmt.Errorf("%w: mortgage term must be positive, got %d", ErrInvalidScenario, p.MortgageTermYears)
	case p.DownPayment < 0 || p.DownPayment > 100:
		return fmt.Errorf("%w: down payment must be within 0..100%%, got %v", ErrInvalidScenario, p.DownPayment)
	case p.InvestmentReturn <= -100:
		return fmt.Errorf("%w: investment return must be above -100%%, got %v", ErrInvalidScenario, p.InvestmentReturn)
	case p.MortgageRate < 0:
		return fmt.Errorf("%w: mortgage rate must not be negative, got %v", ErrInvalidScenario, p.MortgageRate)
	}
	return nil
}
