package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/lakshmankumar12/rent-vs-buy/internal/model"
	"github.com/lakshmankumar12/rent-vs-buy/internal/solver"
)

// Verbosity levels at which each part of the report appears.
const (
	LevelQuiet   = 0
	LevelInputs  = 1
	LevelSummary = 2
	LevelDetails = 3
	LevelBuyer   = 4
	LevelRenter  = 5
)

// Reporter writes diagnostic lines gated by Level. Fmt renders every amount.
type Reporter struct {
	Level int
	Fmt   Formatter
	Out   io.Writer
}

// New builds a Reporter. Level 0 always selects the plain formatter.
func New(out io.Writer, level int, pretty bool) *Reporter {
	if level <= LevelQuiet {
		pretty = false
	}
	return &Reporter{Level: level, Fmt: NewFormatter(pretty), Out: out}
}

// Enabled reports whether lines at level are printed.
func (r *Reporter) Enabled(level int) bool { return r.Level >= level }

// Printf writes one line when level is enabled.
func (r *Reporter) Printf(level int, format string, args ...interface{}) {
	if !r.Enabled(level) {
		return
	}
	fmt.Fprintf(r.Out, format+"\n", args...)
}

func (r *Reporter) f(v float64) string { return r.Fmt.Format(v) }

// Inputs prints the resolved scenario.
func (r *Reporter) Inputs(p *model.ScenarioParameters) {
	if !r.Enabled(LevelInputs) {
		return
	}
	var b strings.Builder
	b.WriteString("Inputs\n")
	b.WriteString(fmt.Sprintf("  home value:          %s\n", r.f(p.HomeValue)))
	b.WriteString(fmt.Sprintf("  holding period:      %d years\n", p.HoldYears))
	b.WriteString(fmt.Sprintf("  mortgage:            %.2f%% over %d years (insurance %.2f%%)\n", p.MortgageRate, p.MortgageTermYears, p.MortgageInsurance))
	b.WriteString(fmt.Sprintf("  down payment:        %.2f%%\n", p.DownPayment))
	b.WriteString(fmt.Sprintf("  appreciation:        price %.2f%% | rent %.2f%% | inflation %.2f%%\n", p.PriceAppreciation, p.RentAppreciation, p.Inflation))
	b.WriteString(fmt.Sprintf("  investment return:   %.2f%%\n", p.InvestmentReturn))
	b.WriteString(fmt.Sprintf("  tax:                 property %.2f%% | marginal %.2f%% | filing %s\n", p.PropertyTax, p.MarginalRate, p.Filing))
	b.WriteString(fmt.Sprintf("  transaction cost:    buy %.2f%% | sell %.2f%%\n", p.BuyingCost, p.SellingCost))
	b.WriteString(fmt.Sprintf("  upkeep:              maintenance %.2f%% | owner insurance %.2f%% | common %s/month\n", p.Maintenance, p.OwnerInsurance, r.f(p.MonthlyCommon)))
	b.WriteString(fmt.Sprintf("  renter insurance:    %.2f%%", p.RenterInsurance))
	fmt.Fprintln(r.Out, b.String())
}

// SaleDetails prints how the sale proceeds were derived.
func (r *Reporter) SaleDetails(b *model.BuyerOutcome, years int) {
	r.Printf(LevelDetails, "Home value at end of %d years is %s", years, r.f(b.SaleValue))
	r.Printf(LevelDetails, "Sale loss: %s", r.f(b.SaleLoss))
	if b.CapitalGainsTax > 0 {
		r.Printf(LevelDetails, "Capital gains tax: %s", r.f(b.CapitalGainsTax))
	}
	r.Printf(LevelDetails, "Mortgage payment is %s/month at %.2f%%", r.f(b.MonthlyPayment), b.EffectiveMortgageRate)
	if b.RemainingPrincipal > 0 {
		r.Printf(LevelDetails, "Remaining principal to pay: %s", r.f(b.RemainingPrincipal))
	}
}

// BuyerTable prints the buyer's yearly cash flow.
func (r *Reporter) BuyerTable(b *model.BuyerOutcome) {
	if !r.Enabled(LevelBuyer) {
		return
	}
	var sb strings.Builder
	sb.WriteString("Buyer situation:\n")
	for i := range b.Expenses {
		sb.WriteString(fmt.Sprintf("year %d, property tax: %s maintenance: %s common: %s insurance: %s mortgage: %s tax saving: %s net yearly: %s\n",
			i, r.f(b.PropertyTax[i]), r.f(b.Maintenance[i]), r.f(b.CommonFees[i]), r.f(b.OwnerInsurance[i]),
			r.f(b.Mortgage[i]), r.f(b.TaxSavings[i]), r.f(b.Expenses[i])))
	}
	fmt.Fprint(r.Out, sb.String())
}

// BuyerSummary prints the buyer target the solver works against.
func (r *Reporter) BuyerSummary(b *model.BuyerOutcome, years int) {
	r.Printf(LevelSummary, "Initial buy expense: %s", r.f(b.InitialExpense))
	r.Printf(LevelSummary, "Opportunity cost for buyer: %s", r.f(b.OpportunityCost))
	r.Printf(LevelSummary, "Final value at end of %d years is %s", years, r.f(b.NetSaleValue))
	r.Printf(LevelSummary, "Net for buyer: %s", r.f(b.NetOpportunityCost))
}

// SolverStep prints one search iteration.
func (r *Reporter) SolverStep(s solver.Step) {
	r.Printf(LevelBuyer, "left: %d, guess: %s, rent cost: %s, diff: %s",
		s.Left, r.f(s.Guess), r.f(s.Value), r.f(s.Residual))
}

// RenterTable prints the renter's yearly cash flow for one candidate rent.
func (r *Reporter) RenterTable(ev *model.RenterEvaluation) {
	if !r.Enabled(LevelRenter) {
		return
	}
	var sb strings.Builder
	sb.WriteString("Renter situation:\n")
	for i := range ev.Expenses {
		sb.WriteString(fmt.Sprintf("year %d, rent: %s renter insurance: %s net yearly: %s\n",
			i, r.f(ev.Rent[i]), r.f(ev.Insurance[i]), r.f(ev.Expenses[i])))
	}
	sb.WriteString(fmt.Sprintf("Opportunity cost for renter at rent %s is %s\n", r.f(ev.MonthlyRent), r.f(ev.OpportunityCost)))
	fmt.Fprint(r.Out, sb.String())
}

// Breakeven prints the result. The amount itself is printed at every level.
func (r *Reporter) Breakeven(a *model.Analysis) {
	r.Printf(LevelInputs, "Start renting if rent value is less than:")
	fmt.Fprintln(r.Out, r.f(a.BreakevenRent))
}
