package analysis

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/lakshmankumar12/rent-vs-buy/internal/config"
	"github.com/lakshmankumar12/rent-vs-buy/internal/costmodel"
	"github.com/lakshmankumar12/rent-vs-buy/internal/model"
	"github.com/lakshmankumar12/rent-vs-buy/internal/report"
	"github.com/lakshmankumar12/rent-vs-buy/internal/solver"
)

// bisectRoot finds the rent where the renter cost meets target on a wide bracket,
// independently of the solver.
func bisectRoot(target float64, p *model.ScenarioParameters) float64 {
	lo, hi := -1e6, 1e6
	for i := 0; i < 200; i++ {
		mid := (lo + hi) / 2
		if costmodel.RenterOpportunityCost(mid, p) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

func TestRun_DefaultScenario(t *testing.T) {
	p := config.DefaultScenario()
	res, err := New(nil).Run(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	naive := p.HomeValue / InitialGuessDivisor
	if res.BreakevenRent <= 0 || res.BreakevenRent >= 2*naive {
		t.Errorf("breakeven %.2f outside (0, %.2f)", res.BreakevenRent, 2*naive)
	}
	if math.Abs(res.BreakevenRent-1149.507) > 0.01 {
		t.Errorf("expected ~1149.51, got %.4f", res.BreakevenRent)
	}
	if math.Abs(res.Residual) > solver.DefaultEpsilon {
		t.Errorf("residual %.4f exceeds epsilon", res.Residual)
	}
	if res.Iterations != 18 {
		t.Errorf("expected 18 iterations, got %d", res.Iterations)
	}
}

func TestRun_MatchesIndependentBisection(t *testing.T) {
	scenarios := []func(*model.ScenarioParameters){
		func(p *model.ScenarioParameters) {},
		func(p *model.ScenarioParameters) { p.HoldYears = 5; p.Filing = model.FilingSingle },
		func(p *model.ScenarioParameters) { p.DownPayment = 20; p.MortgageRate = 6.5 },
		func(p *model.ScenarioParameters) { p.HomeValue = 900000; p.HoldYears = 30 },
		func(p *model.ScenarioParameters) { p.HoldYears = 40; p.InvestmentReturn = 5 },
		func(p *model.ScenarioParameters) { p.HomeValue = 150000; p.MonthlyCommon = 0; p.RentAppreciation = 2 },
	}
	for i, mutate := range scenarios {
		p := config.DefaultScenario()
		mutate(p)
		res, err := New(nil).Run(p)
		if err != nil {
			t.Fatalf("scenario %d: unexpected error: %v", i, err)
		}
		target := res.Buyer.NetOpportunityCost
		got := costmodel.RenterOpportunityCost(res.BreakevenRent, p)
		if math.Abs(target-got) > solver.DefaultEpsilon {
			t.Errorf("scenario %d: renter cost %.4f misses target %.4f", i, got, target)
		}
		root := bisectRoot(target, p)
		if math.Abs(res.BreakevenRent-root) > solver.DefaultEpsilon {
			t.Errorf("scenario %d: breakeven %.6f, independent root %.6f", i, res.BreakevenRent, root)
		}
	}
}

func TestRun_BuyerTargetComputedOnce(t *testing.T) {
	p := config.DefaultScenario()
	res, err := New(nil).Run(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := costmodel.EvaluateBuyer(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Buyer.NetOpportunityCost != again.NetOpportunityCost {
		t.Errorf("buyer target changed: %v vs %v", res.Buyer.NetOpportunityCost, again.NetOpportunityCost)
	}
}

func TestRun_Reporting(t *testing.T) {
	var buf bytes.Buffer
	a := New(report.New(&buf, report.LevelRenter, true))
	steps := 0
	a.Options.OnStep = func(solver.Step) { steps++ }
	res, err := a.Run(config.DefaultScenario())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if steps != res.Iterations {
		t.Errorf("observer saw %d steps, expected %d", steps, res.Iterations)
	}
	out := buf.String()
	for _, want := range []string{
		"Inputs",
		"Home value at end of 20 years is 962,140.64",
		"Remaining principal to pay:",
		"Buyer situation:",
		"Net for buyer: 1,565,111.85",
		"Renter situation:",
		"left: 9999, guess: 1,200.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
	if n := strings.Count(out, "Renter situation:"); n != res.Iterations {
		t.Errorf("expected one renter table per iteration (%d), got %d", res.Iterations, n)
	}
}

func TestRun_QuietReporterPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	if _, err := New(report.New(&buf, report.LevelQuiet, true)).Run(config.DefaultScenario()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no diagnostics at level 0, got %q", buf.String())
	}
}

func TestRun_Errors(t *testing.T) {
	p := config.DefaultScenario()
	p.MortgageTermYears = 0
	if _, err := New(nil).Run(p); !errors.Is(err, model.ErrInvalidScenario) {
		t.Errorf("expected ErrInvalidScenario, got %v", err)
	}

	a := New(nil)
	a.Options.MaxIterations = 3
	if _, err := a.Run(config.DefaultScenario()); !errors.Is(err, solver.ErrNoConvergence) {
		t.Errorf("expected ErrNoConvergence, got %v", err)
	}
}
