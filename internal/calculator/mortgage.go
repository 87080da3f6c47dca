package calculator

import (
	"errors"
	"fmt"
	"math"
)

// MonthsPerYear is the number of mortgage installments per year.
const MonthsPerYear = 12

// PMIThresholdPercent is the down payment below which mortgage insurance applies.
const PMIThresholdPercent = 20.0

// EffectiveMortgageRate adds the mortgage insurance surcharge to the nominal rate
// when the down payment is below PMIThresholdPercent.
func EffectiveMortgageRate(ratePercent, insurancePercent, downPaymentPercent float64) float64 {
	if downPaymentPercent < PMIThresholdPercent {
		return ratePercent + insurancePercent
	}
	return ratePercent
}

// MonthlyPayment returns the fixed installment that amortizes principal over
// termYears at ratePercent, compounded monthly.
func MonthlyPayment(ratePercent float64, termYears int, principal float64) (float64, error) {
	if termYears <= 0 {
		return 0, errors.New("mortgage term must be positive")
	}
	n := float64(termYears * MonthsPerYear)
	r := ratePercent / (100 * MonthsPerYear)
	if r == 0 {
		return principal / n, nil
	}
	return principal * r / (1 - math.Pow(1+r, -n)), nil
}

// RemainingPrincipal returns the unpaid balance of a mortgage with remainingYears
// left on its term. It sums the principal portion of every installment paid so far
// and subtracts that from principal.
func RemainingPrincipal(principal float64, termYears int, ratePercent float64, remainingYears int) (float64, error) {
	if remainingYears < 0 || remainingYears > termYears {
		return 0, fmt.Errorf("remaining years %d outside mortgage term %d", remainingYears, termYears)
	}
	payment, err := MonthlyPayment(ratePercent, termYears, principal)
	if err != nil {
		return 0, err
	}
	r := ratePercent / (100 * MonthsPerYear)
	paidMonths := (termYears - remainingYears) * MonthsPerYear

	balance := principal
	paidPrincipal := 0.0
	for m := 0; m < paidMonths; m++ {
		portion := payment - balance*r
		paidPrincipal += portion
		balance -= portion
	}
	return principal - paidPrincipal, nil
}
