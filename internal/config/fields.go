package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lakshmankumar12/rent-vs-buy/internal/model"
)

// Kind is the type of a scenario field.
type Kind int

const (
	KindFloat Kind = iota
	KindInt
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindEnum:
		return "enum"
	default:
		return "float"
	}
}

// ValidationMode selects how out-of-range numbers are treated.
type ValidationMode string

const (
	// ValidationStrict replaces values outside [Low, High] with the default.
	ValidationStrict ValidationMode = "strict"
	// ValidationLegacy only rejects values that are below Low and above High at
	// the same time, which never happens for Low < High.
	ValidationLegacy ValidationMode = "legacy"
)

// ParseValidationMode accepts "strict" or "legacy" (case-insensitive).
func ParseValidationMode(s string) (ValidationMode, error) {
	switch m := ValidationMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ValidationStrict, ValidationLegacy:
		return m, nil
	}
	return "", fmt.Errorf("unknown validation mode %q (want %q or %q)", s, ValidationStrict, ValidationLegacy)
}

// Value is a parsed field value.
type Value struct {
	Num float64
	Str string
}

// Field describes one scenario input.
type Field struct {
	Name    string
	Help    string
	Default string
	Low     float64
	High    float64
	Choices []string
	Kind    Kind
	set     func(p *model.ScenarioParameters, v Value)
}

// Parse converts raw according to the field kind and range policy.
func (f Field) Parse(raw string, mode ValidationMode) (Value, error) {
	raw = strings.TrimSpace(raw)
	switch f.Kind {
	case KindEnum:
		for _, c := range f.Choices {
			if strings.EqualFold(raw, c) {
				return Value{Str: c}, nil
			}
		}
		if mode == ValidationLegacy {
			return Value{Str: raw}, nil
		}
		return Value{}, fmt.Errorf("%s: %q is not one of %s", f.Name, raw, strings.Join(f.Choices, "/"))
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %q is not an integer", f.Name, raw)
		}
		return f.checkRange(float64(n), raw, mode)
	default:
		x, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %q is not a number", f.Name, raw)
		}
		return f.checkRange(x, raw, mode)
	}
}

func (f Field) checkRange(x float64, raw string, mode ValidationMode) (Value, error) {
	var outside bool
	if mode == ValidationLegacy {
		outside = x < f.Low && x > f.High
	} else {
		outside = x < f.Low || x > f.High
	}
	if outside {
		return Value{}, fmt.Errorf("%s: %s is outside %g..%g", f.Name, raw, f.Low, f.High)
	}
	return Value{Num: x}, nil
}

// Range renders the accepted range or choices for help output.
func (f Field) Range() string {
	if f.Kind == KindEnum {
		return strings.Join(f.Choices, "/")
	}
	return fmt.Sprintf("%g..%g", f.Low, f.High)
}

// Fields lists every scenario input with its default and accepted range.
var Fields = []Field{
	{Name: "home_val", Help: "Home value", Default: "300000", Low: 100000, High: 1000000, Kind: KindInt,
		set: func(p *model.ScenarioParameters, v Value) { p.HomeValue = v.Num }},
	{Name: "how_long", Help: "How long do you plan to hold the home (years)", Default: "20", Low: 2, High: 100, Kind: KindInt,
		set: func(p *model.ScenarioParameters, v Value) { p.HoldYears = int(v.Num) }},
	{Name: "mort_per", Help: "Mortgage rate %", Default: "3", Low: 1, High: 25, Kind: KindFloat,
		set: func(p *model.ScenarioParameters, v Value) { p.MortgageRate = v.Num }},
	{Name: "down_pay", Help: "Down payment %", Default: "0", Low: 0, High: 100, Kind: KindInt,
		set: func(p *model.ScenarioParameters, v Value) { p.DownPayment = v.Num }},
	{Name: "mort_ins", Help: "Mortgage insurance % (down payment below 20%)", Default: "0.5", Low: 0.3, High: 1.2, Kind: KindFloat,
		set: func(p *model.ScenarioParameters, v Value) { p.MortgageInsurance = v.Num }},
	{Name: "mort_term", Help: "Mortgage term (years)", Default: "30", Low: 2, High: 40, Kind: KindInt,
		set: func(p *model.ScenarioParameters, v Value) { p.MortgageTermYears = int(v.Num) }},
	{Name: "price_appr", Help: "Price appreciation %", Default: "6.0", Low: 1, High: 25, Kind: KindFloat,
		set: func(p *model.ScenarioParameters, v Value) { p.PriceAppreciation = v.Num }},
	{Name: "rent_appr", Help: "Rent appreciation %", Default: "4.5", Low: 1, High: 25, Kind: KindFloat,
		set: func(p *model.ScenarioParameters, v Value) { p.RentAppreciation = v.Num }},
	{Name: "inflation", Help: "Inflation %", Default: "4.2", Low: 1, High: 25, Kind: KindFloat,
		set: func(p *model.ScenarioParameters, v Value) { p.Inflation = v.Num }},
	{Name: "inv_rate", Help: "Investment return %", Default: "12.0", Low: 1, High: 25, Kind: KindFloat,
		set: func(p *model.ScenarioParameters, v Value) { p.InvestmentReturn = v.Num }},
	{Name: "prop_tax", Help: "Property tax %", Default: "1.1", Low: 0.1, High: 10, Kind: KindFloat,
		set: func(p *model.ScenarioParameters, v Value) { p.PropertyTax = v.Num }},
	{Name: "joint", Help: "Joint filing", Default: "yes", Choices: []string{"yes", "no"}, Kind: KindEnum,
		set: func(p *model.ScenarioParameters, v Value) {
			p.Filing = model.FilingSingle
			if v.Str == "yes" {
				p.Filing = model.FilingJoint
			}
		}},
	{Name: "marg_rate", Help: "Marginal tax rate %", Default: "22", Low: 0, High: 25, Kind: KindFloat,
		set: func(p *model.ScenarioParameters, v Value) { p.MarginalRate = v.Num }},
	{Name: "buy_loss", Help: "Buying transaction cost %", Default: "1.5", Low: 0, High: 25, Kind: KindFloat,
		set: func(p *model.ScenarioParameters, v Value) { p.BuyingCost = v.Num }},
	{Name: "sell_loss", Help: "Selling transaction cost %", Default: "6", Low: 0, High: 25, Kind: KindFloat,
		set: func(p *model.ScenarioParameters, v Value) { p.SellingCost = v.Num }},
	{Name: "maint", Help: "Maintenance %", Default: ".5", Low: 0.1, High: 10, Kind: KindFloat,
		set: func(p *model.ScenarioParameters, v Value) { p.Maintenance = v.Num }},
	{Name: "own_ins", Help: "Owner insurance %", Default: "0.46", Low: 0.1, High: 10, Kind: KindFloat,
		set: func(p *model.ScenarioParameters, v Value) { p.OwnerInsurance = v.Num }},
	{Name: "month_comm", Help: "Monthly common/HOA fee", Default: "250", Low: 0, High: 5000, Kind: KindInt,
		set: func(p *model.ScenarioParameters, v Value) { p.MonthlyCommon = v.Num }},
	{Name: "rent_ins", Help: "Renter insurance %", Default: "0.5", Low: 0.1, High: 10, Kind: KindFloat,
		set: func(p *model.ScenarioParameters, v Value) { p.RenterInsurance = v.Num }},
}
