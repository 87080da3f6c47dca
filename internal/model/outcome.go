package model

// YearlySeries holds one value per year of the holding period.
// Index 0 is the end of year 1.
type YearlySeries []float64

// BuyerOutcome is computed once per scenario and is the solver's fixed target.
type BuyerOutcome struct {
	// Sale side
	SaleValue          float64 // appreciated price before any deduction
	SaleLoss           float64
	CapitalGainsTax    float64
	RemainingPrincipal float64
	NetSaleValue       float64

	// Mortgage
	EffectiveMortgageRate float64
	MonthlyPayment        float64
	DownPayment           float64
	InitialExpense        float64

	// Yearly cash flow
	PropertyTax    YearlySeries
	Maintenance    YearlySeries
	OwnerInsurance YearlySeries
	CommonFees     YearlySeries
	Mortgage       YearlySeries
	TaxSavings     YearlySeries
	Expenses       YearlySeries

	OpportunityCost    float64
	NetOpportunityCost float64
}

// RenterEvaluation is the renter cash flow for one candidate monthly rent.
type RenterEvaluation struct {
	MonthlyRent     float64
	Rent            YearlySeries
	Insurance       YearlySeries
	Expenses        YearlySeries
	OpportunityCost float64
}

// Analysis is the end result of a rent-vs-buy evaluation.
type Analysis struct {
	Scenario      ScenarioParameters
	Buyer         *BuyerOutcome
	BreakevenRent float64
	Iterations    int
	Residual      float64 // buyer target minus renter cost at BreakevenRent
}
