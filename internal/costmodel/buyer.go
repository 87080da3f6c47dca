package costmodel

import (
	"fmt"

	"github.com/lakshmankumar12/rent-vs-buy/internal/calculator"
	"github.com/lakshmankumar12/rent-vs-buy/internal/model"
)

// ExclusionMinHoldYears is the holding period a home must exceed before the
// capital gains exclusion applies.
const ExclusionMinHoldYears = 3

// EvaluateBuyer projects the buyer's cash flow over the holding period and returns
// the buyer's opportunity cost net of the sale proceeds. The result depends only on p.
func EvaluateBuyer(p *model.ScenarioParameters) (*model.BuyerOutcome, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	years := p.HoldYears
	out := &model.BuyerOutcome{}

	// Sale at the end of the holding period
	out.SaleValue = calculator.Compound(p.HomeValue, years, p.PriceAppreciation)
	out.SaleLoss = out.SaleValue * p.SellingCost / 100
	net := out.SaleValue - out.SaleLoss

	gain := net - p.HomeValue
	if years > ExclusionMinHoldYears {
		gain -= p.Filing.CapitalGainsExclusion()
	}
	if gain > 0 {
		out.CapitalGainsTax = gain * p.MarginalRate / 100
		net -= out.CapitalGainsTax
	}

	// Mortgage
	rate := calculator.EffectiveMortgageRate(p.MortgageRate, p.MortgageInsurance, p.DownPayment)
	out.EffectiveMortgageRate = rate
	out.DownPayment = p.HomeValue * p.DownPayment / 100
	principal := p.HomeValue - out.DownPayment

	payment, err := calculator.MonthlyPayment(rate, p.MortgageTermYears, principal)
	if err != nil {
		return nil, fmt.Errorf("monthly payment: %w", err)
	}
	out.MonthlyPayment = payment

	if years < p.MortgageTermYears {
		rem, err := calculator.RemainingPrincipal(principal, p.MortgageTermYears, rate, p.MortgageTermYears-years)
		if err != nil {
			return nil, fmt.Errorf("remaining principal: %w", err)
		}
		out.RemainingPrincipal = rem
		net -= rem
	}
	out.NetSaleValue = net

	// Yearly cash flow
	out.PropertyTax = calculator.ExtrapolateOnBase(p.HomeValue, p.PriceAppreciation, years, p.PropertyTax)
	out.Maintenance = calculator.ExtrapolateOnBase(p.HomeValue, p.PriceAppreciation, years, p.Maintenance)
	out.OwnerInsurance = calculator.ExtrapolateOnBase(p.HomeValue, p.PriceAppreciation, years, p.OwnerInsurance)
	out.CommonFees = calculator.ExtrapolateCompounding(p.MonthlyCommon*calculator.MonthsPerYear, years, p.Inflation)

	deduction := p.Filing.StandardDeduction()
	annualPayment := payment * calculator.MonthsPerYear
	out.Mortgage = make(model.YearlySeries, years)
	out.TaxSavings = make(model.YearlySeries, years)
	out.Expenses = make(model.YearlySeries, years)
	for i := 0; i < years; i++ {
		// charged every year of the hold, including years past the term
		out.Mortgage[i] = annualPayment
		exp := out.Maintenance[i] + out.CommonFees[i] + out.OwnerInsurance[i]
		itemized := out.PropertyTax[i] + out.Mortgage[i]
		exp += itemized
		if itemized > deduction {
			out.TaxSavings[i] = (itemized - deduction) * p.MarginalRate / 100
			exp -= out.TaxSavings[i]
		}
		out.Expenses[i] = exp
	}

	out.InitialExpense = out.DownPayment + p.HomeValue*p.BuyingCost/100
	out.OpportunityCost = calculator.FutureValueOfSeries(out.Expenses, p.InvestmentReturn)
	out.OpportunityCost += calculator.Compound(out.InitialExpense, years, p.InvestmentReturn)
	out.NetOpportunityCost = out.OpportunityCost - out.NetSaleValue

	return out, nil
}
