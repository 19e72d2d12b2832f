package renderer

import (
	"strconv"

	"github.com/etnz/ppo"
)

// SweepView is the data behind the benefit by budget report.
type SweepView struct {
	Rows       []SweepRow
	Best       int
	Saturation ppo.Money
}

// SweepRow is one budget of the sweep.
type SweepRow struct {
	Budget     ppo.Money
	MaxBenefit int
	Gain       string // "+n", or "-" when the extra budget brings nothing
}

// NewSweepView creates the sweep report data, amounts in currency.
func NewSweepView(points []ppo.SweepPoint, currency string) *SweepView {
	v := &SweepView{
		Rows:       make([]SweepRow, 0, len(points)),
		Saturation: ppo.M(ppo.Saturation(points), currency),
	}
	for _, p := range points {
		gain := "-"
		if p.Gain > 0 {
			gain = "+" + strconv.Itoa(p.Gain)
		}
		v.Rows = append(v.Rows, SweepRow{
			Budget:     ppo.M(p.Budget, currency),
			MaxBenefit: p.MaxBenefit,
			Gain:       gain,
		})
		v.Best = p.MaxBenefit
	}
	return v
}
