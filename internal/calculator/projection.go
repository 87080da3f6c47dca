package calculator

import (
	"math"

	"github.com/lakshmankumar12/rent-vs-buy/internal/model"
)

// Compound returns principal * (1 + ratePercent/100)^periods.
func Compound(principal float64, periods int, ratePercent float64) float64 {
	return principal * math.Pow(1+ratePercent/100, float64(periods))
}

// ExtrapolateCompounding grows initial by ratePercent once per year and returns the
// end-of-year values, so element 0 already includes one year of growth.
func ExtrapolateCompounding(initial float64, years int, ratePercent float64) model.YearlySeries {
	if years <= 0 {
		return model.YearlySeries{}
	}
	rr := ratePercent / 100
	out := make(model.YearlySeries, years)
	v := initial
	for i := 0; i < years; i++ {
		v *= 1 + rr
		out[i] = v
	}
	return out
}

// ExtrapolateOnBase grows a base by baseGrowthPercent each year and reports
// rateOnBasePercent of the grown base. The base is updated before the percentage
// is taken.
func ExtrapolateOnBase(base, baseGrowthPercent float64, years int, rateOnBasePercent float64) model.YearlySeries {
	if years <= 0 {
		return model.YearlySeries{}
	}
	gr := baseGrowthPercent / 100
	vr := rateOnBasePercent / 100
	out := make(model.YearlySeries, years)
	b := base
	for i := 0; i < years; i++ {
		b *= 1 + gr
		out[i] = b * vr
	}
	return out
}

// FutureValueOfSeries compounds every yearly amount for the years left in the
// horizon and sums the results. Element i compounds for len(series)-i years.
func FutureValueOfSeries(series model.YearlySeries, ratePercent float64) float64 {
	n := len(series)
	total := 0.0
	for i, v := range series {
		total += Compound(v, n-i, ratePercent)
	}
	return total
}
