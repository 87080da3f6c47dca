package costmodel

import (
	"github.com/lakshmankumar12/rent-vs-buy/internal/calculator"
	"github.com/lakshmankumar12/rent-vs-buy/internal/model"
)

// EvaluateRenter projects the renter's cash flow for a candidate monthly rent.
// Year-1 rent already includes one year of rent appreciation.
func EvaluateRenter(monthlyRent float64, p *model.ScenarioParameters) *model.RenterEvaluation {
	annual := monthlyRent * calculator.MonthsPerYear
	ev := &model.RenterEvaluation{
		MonthlyRent: monthlyRent,
		Rent:        calculator.ExtrapolateCompounding(annual, p.HoldYears, p.RentAppreciation),
		Insurance:   calculator.ExtrapolateOnBase(annual, p.RentAppreciation, p.HoldYears, p.RenterInsurance),
	}
	ev.Expenses = make(model.YearlySeries, len(ev.Rent))
	for i := range ev.Rent {
		ev.Expenses[i] = ev.Rent[i] + ev.Insurance[i]
	}
	ev.OpportunityCost = calculator.FutureValueOfSeries(ev.Expenses, p.InvestmentReturn)
	return ev
}

// RenterOpportunityCost returns only the compounded renter cost for monthlyRent.
func RenterOpportunityCost(monthlyRent float64, p *model.ScenarioParameters) float64 {
	return EvaluateRenter(monthlyRent, p).OpportunityCost
}
