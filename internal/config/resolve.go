package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/lakshmankumar12/rent-vs-buy/internal/model"
)

// ErrMissingInput is returned when a field resolves to an empty value.
var ErrMissingInput = errors.New("missing input")

// MissingInputError lists the fields that resolved to an empty value.
type MissingInputError struct {
	Fields []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingInput, strings.Join(e.Fields, ", "))
}

func (e *MissingInputError) Unwrap() error { return ErrMissingInput }

// Resolve builds scenario parameters from the field table. Later sources win over
// earlier ones and all of them win over the field default. A value that fails to
// parse or is rejected by the range policy is replaced by the field default.
func Resolve(fields []Field, sources []Source, mode ValidationMode) (*model.ScenarioParameters, error) {
	p := &model.ScenarioParameters{}
	var missing []string

	for _, f := range fields {
		raw, given := f.Default, false
		for _, src := range sources {
			if src == nil {
				continue
			}
			if v, ok := src.Lookup(f.Name); ok {
				raw, given = v, true
			}
		}
		if strings.TrimSpace(raw) == "" {
			missing = append(missing, f.Name)
			continue
		}

		v, err := f.Parse(raw, mode)
		if err != nil {
			if !given {
				return nil, fmt.Errorf("default of %w", err)
			}
			log.Printf("[WARN] %v, using default %s", err, f.Default)
			if v, err = f.Parse(f.Default, mode); err != nil {
				return nil, fmt.Errorf("default of %w", err)
			}
		}
		if f.set != nil {
			f.set(p, v)
		}
	}

	if len(missing) > 0 {
		return nil, &MissingInputError{Fields: missing}
	}
	return p, nil
}

// DefaultScenario resolves every field to its default.
func DefaultScenario() *model.ScenarioParameters {
	p, err := Resolve(Fields, nil, ValidationStrict)
	if err != nil {
		panic(fmt.Sprintf("invalid field defaults: %v", err))
	}
	return p
}
