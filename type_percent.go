package dcf

import "fmt"

// Percent is a display value in percent points: Percent(8.63) prints "8.63%".
// Rates in the valuation model are plain fractions; scale by 100 on the way in.
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}
