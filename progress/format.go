package progress

import (
	"fmt"

	"github.com/agbru/progresskit/numeric"
)

// formatSource renders "current/max (pct%)" with a floored percentage, or
// just "current" when the max is unknown.
func formatSource(src Source) string {
	cur := src.CurrentDecimal()
	maxValue, known := src.MaxDecimal()
	if !known {
		return cur.String()
	}
	return fmt.Sprintf("%s/%s (%d%%)", cur, maxValue, numeric.IntegerPercentage(cur, maxValue))
}
