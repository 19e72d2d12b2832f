package ppo

import "fmt"

// Percent is a ratio expressed in percent, 50 is half.
type Percent float64

// PercentOf returns part as a percentage of whole, 0 when whole is 0.
func PercentOf(part, whole int) Percent {
	if whole == 0 {
		return 0
	}
	return Percent(float64(part) * 100 / float64(whole))
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
