package solver

import (
	"errors"
	"fmt"
	"math"
)

// Defaults used when Options leaves a field zero.
const (
	DefaultEpsilon       = 1.0
	DefaultStep          = 100.0
	DefaultMaxIterations = 10000
)

var (
	// ErrNoConvergence is returned when the iteration cap is reached.
	ErrNoConvergence = errors.New("could not converge")
	// ErrNonFinite is returned when the evaluation yields NaN or an infinity.
	ErrNonFinite = errors.New("evaluation is not finite")
	// ErrInvalidOptions is returned for negative Options values.
	ErrInvalidOptions = errors.New("invalid solver options")
)

// State of the search.
type State int

const (
	Searching State = iota
	Converged
	Failed
)

func (s State) String() string {
	switch s {
	case Searching:
		return "SEARCHING"
	case Converged:
		return "CONVERGED"
	case Failed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// EvalFunc maps a guess to a value. It must be monotonically increasing for the
// search to converge; this is not checked.
type EvalFunc func(guess float64) float64

// Options tunes the search. A zero field selects its Default* value, so an
// exact-match Epsilon of 0 cannot be requested. Negative values are rejected.
type Options struct {
	Epsilon       float64 // accepted |residual|
	Step          float64 // expansion step before a bracket exists
	MaxIterations int
	// OnStep, if set, is called after every evaluation.
	OnStep func(Step)
}

func (o Options) withDefaults() (Options, error) {
	if o.Epsilon < 0 || o.Step < 0 || o.MaxIterations < 0 {
		return o, fmt.Errorf("%w: epsilon %v, step %v, max iterations %d",
			ErrInvalidOptions, o.Epsilon, o.Step, o.MaxIterations)
	}
	if o.Epsilon == 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.Step == 0 {
		o.Step = DefaultStep
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	return o, nil
}

// Step describes one evaluation for observers.
type Step struct {
	Iteration int
	Left      int // evaluations left before the cap
	Guess     float64
	Value     float64
	Residual  float64
}

// SearchState is the mutable state of one search. It is owned by Solve.
type SearchState struct {
	Guess     float64
	Lower     float64 // residual > 0 here
	HasLower  bool
	Upper     float64 // residual < 0 here
	HasUpper  bool
	Iteration int
	Residual  float64
	State     State
}

// next picks the following guess: fixed steps until both bounds are known,
// then the midpoint.
func (s *SearchState) next(step float64) {
	if s.Residual > 0 {
		s.Lower, s.HasLower = s.Guess, true
		if !s.HasUpper {
			s.Guess += step
			return
		}
	} else {
		s.Upper, s.HasUpper = s.Guess, true
		if !s.HasLower {
			s.Guess -= step
			return
		}
	}
	s.Guess = (s.Lower + s.Upper) / 2
}

// Result of a finished search.
type Result struct {
	Root       float64
	Iterations int
	Residual   float64
	State      State
}

// Solve searches for x with |target - eval(x)| <= Epsilon starting at initial.
func Solve(target, initial float64, eval EvalFunc, opts Options) (Result, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return Result{Root: initial, State: Failed}, err
	}
	st := &SearchState{Guess: initial, State: Searching}

	for st.State == Searching {
		if st.Iteration >= opts.MaxIterations {
			st.State = Failed
			return st.result(), fmt.Errorf("%w after %d iterations: last guess %.4f, residual %.4f",
				ErrNoConvergence, st.Iteration, st.Guess, st.Residual)
		}
		st.Iteration++

		value := eval(st.Guess)
		st.Residual = target - value
		if opts.OnStep != nil {
			opts.OnStep(Step{
				Iteration: st.Iteration,
				Left:      opts.MaxIterations - st.Iteration,
				Guess:     st.Guess,
				Value:     value,
				Residual:  st.Residual,
			})
		}

		switch {
		case math.IsNaN(st.Residual) || math.IsInf(st.Residual, 0):
			st.State = Failed
			return st.result(), fmt.Errorf("%w at guess %.4f", ErrNonFinite, st.Guess)
		case math.Abs(st.Residual) <= opts.Epsilon:
			st.State = Converged
		default:
			st.next(opts.Step)
		}
	}
	return st.result(), nil
}

func (s *SearchState) result() Result {
	return Result{Root: s.Guess, Iterations: s.Iteration, Residual: s.Residual, State: s.State}
}
