package analysis

import (
	"fmt"
	"io"

	"github.com/lakshmankumar12/rent-vs-buy/internal/costmodel"
	"github.com/lakshmankumar12/rent-vs-buy/internal/model"
	"github.com/lakshmankumar12/rent-vs-buy/internal/report"
	"github.com/lakshmankumar12/rent-vs-buy/internal/solver"
)

// InitialGuessDivisor gives the first rent guess as home value / 250.
const InitialGuessDivisor = 250.0

// Analyzer runs the buyer model once and searches for the breakeven rent.
type Analyzer struct {
	Reporter *report.Reporter
	Options  solver.Options
}

// New creates an Analyzer. A nil reporter discards all diagnostics.
func New(rep *report.Reporter) *Analyzer {
	if rep == nil {
		rep = report.New(io.Discard, report.LevelQuiet, false)
	}
	return &Analyzer{Reporter: rep}
}

// Run evaluates p and returns the monthly rent at which renting costs as much as buying.
func (a *Analyzer) Run(p *model.ScenarioParameters) (*model.Analysis, error) {
	rep := a.Reporter
	rep.Inputs(p)

	buyer, err := costmodel.EvaluateBuyer(p)
	if err != nil {
		return nil, fmt.Errorf("evaluate buyer: %w", err)
	}
	rep.SaleDetails(buyer, p.HoldYears)
	rep.BuyerTable(buyer)
	rep.BuyerSummary(buyer, p.HoldYears)

	eval := func(rent float64) float64 {
		ev := costmodel.EvaluateRenter(rent, p)
		rep.RenterTable(ev)
		return ev.OpportunityCost
	}

	opts := a.Options
	onStep := opts.OnStep
	opts.OnStep = func(s solver.Step) {
		rep.SolverStep(s)
		if onStep != nil {
			onStep(s)
		}
	}

	res, err := solver.Solve(buyer.NetOpportunityCost, p.HomeValue/InitialGuessDivisor, eval, opts)
	if err != nil {
		return nil, fmt.Errorf("breakeven rent: %w", err)
	}

	return &model.Analysis{
		Scenario:      *p,
		Buyer:         buyer,
		BreakevenRent: res.Root,
		Iterations:    res.Iterations,
		Residual:      res.Residual,
	}, nil
}
