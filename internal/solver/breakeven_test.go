package solver

import (
	"errors"
	"math"
	"testing"
)

func TestSolve_Linear(t *testing.T) {
	tests := []struct {
		name    string
		target  float64
		initial float64
		slope   float64
	}{
		{"root above guess", 300000, 1200, 100},
		{"root below guess", 30000, 1200, 100},
		{"negative root", -5000, 1200, 10},
		{"steep", 1e7, 500, 1e4},
		{"flat", 1000, 0, 0.5},
	}
	for _, tt := range tests {
		f := func(x float64) float64 { return tt.slope * x }
		res, err := Solve(tt.target, tt.initial, f, Options{})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if res.State != Converged {
			t.Errorf("%s: expected CONVERGED, got %s", tt.name, res.State)
		}
		if math.Abs(tt.target-f(res.Root)) > DefaultEpsilon {
			t.Errorf("%s: residual %.4f exceeds epsilon", tt.name, tt.target-f(res.Root))
		}
		if math.Abs(res.Residual) > DefaultEpsilon {
			t.Errorf("%s: reported residual %.4f exceeds epsilon", tt.name, res.Residual)
		}
	}
}

func TestSolve_Nonlinear(t *testing.T) {
	f := func(x float64) float64 { return x*x*x + x }
	res, err := Solve(1e6, 0, f, Options{Epsilon: 1e-3, Step: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(1e6-f(res.Root)) > 1e-3 {
		t.Errorf("root %.6f does not satisfy the target", res.Root)
	}
}

func TestSolve_InitialGuessIsRoot(t *testing.T) {
	calls := 0
	f := func(x float64) float64 { calls++; return 2 * x }
	res, err := Solve(100, 50, f, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Iterations != 1 || calls != 1 || res.Root != 50 {
		t.Errorf("expected single evaluation at 50, got %d iterations, %d calls, root %.2f", res.Iterations, calls, res.Root)
	}
}

func TestSolve_ExpansionThenBisection(t *testing.T) {
	var guesses []float64
	f := func(x float64) float64 { return x }
	_, err := Solve(250, 0, f, Options{OnStep: func(s Step) { guesses = append(guesses, s.Guess) }})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{0, 100, 200, 300, 250}
	if len(guesses) != len(want) {
		t.Fatalf("expected guesses %v, got %v", want, guesses)
	}
	for i := range want {
		if guesses[i] != want[i] {
			t.Errorf("guess %d: expected %.1f, got %.1f", i, want[i], guesses[i])
		}
	}
}

func TestSolve_OnStepSeesEveryIteration(t *testing.T) {
	steps := 0
	lastLeft := -1
	res, err := Solve(123456, 1, func(x float64) float64 { return 7 * x }, Options{
		OnStep: func(s Step) {
			steps++
			if s.Iteration != steps {
				t.Errorf("iteration %d reported as %d", steps, s.Iteration)
			}
			lastLeft = s.Left
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if steps != res.Iterations {
		t.Errorf("observer saw %d steps, result says %d", steps, res.Iterations)
	}
	if lastLeft != DefaultMaxIterations-res.Iterations {
		t.Errorf("expected %d evaluations left, got %d", DefaultMaxIterations-res.Iterations, lastLeft)
	}
}

func TestSolve_IterationCap(t *testing.T) {
	f := func(x float64) float64 { return x }
	res, err := Solve(1e9, 0, f, Options{MaxIterations: 5})
	if !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("expected ErrNoConvergence, got %v", err)
	}
	if res.State != Failed {
		t.Errorf("expected FAILED, got %s", res.State)
	}
	if res.Iterations != 5 {
		t.Errorf("expected 5 iterations, got %d", res.Iterations)
	}
}

func TestSolve_DiscontinuousNeverConverges(t *testing.T) {
	step := func(x float64) float64 {
		if x < 50 {
			return 0
		}
		return 100
	}
	res, err := Solve(50, 0, step, Options{})
	if !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("expected ErrNoConvergence, got %v", err)
	}
	if res.Iterations != DefaultMaxIterations {
		t.Errorf("expected %d iterations, got %d", DefaultMaxIterations, res.Iterations)
	}
}

func TestSolve_NonFinite(t *testing.T) {
	_, err := Solve(10, 1, func(float64) float64 { return math.NaN() }, Options{})
	if !errors.Is(err, ErrNonFinite) {
		t.Errorf("expected ErrNonFinite, got %v", err)
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{Searching: "SEARCHING", Converged: "CONVERGED", Failed: "FAILED", State(9): "UNKNOWN"} {
		if s.String() != want {
			t.Errorf("expected %s, got %s", want, s.String())
		}
	}
}

func TestSolve_Options(t *testing.T) {
	f := func(x float64) float64 { return 2 * x }
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"zero values use defaults", Options{}, false},
		{"negative epsilon", Options{Epsilon: -1}, true},
		{"negative step", Options{Step: -100}, true},
		{"negative cap", Options{MaxIterations: -1}, true},
	}
	for _, tt := range tests {
		calls := 0
		res, err := Solve(100, 0, func(x float64) float64 { calls++; return f(x) }, tt.opts)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("%s: expected ErrInvalidOptions, got %v", tt.name, err)
			}
			if calls != 0 || res.State != Failed {
				t.Errorf("%s: expected no evaluation and FAILED, got %d calls, %s", tt.name, calls, res.State)
			}
			continue
		}
		if err != nil || res.State != Converged {
			t.Errorf("%s: expected convergence, got %v (%s)", tt.name, err, res.State)
		}
	}
}
