// Package denomination converts between physical note counts and scalar
// currency totals. The breakdown direction is a best-effort pre-fill for edit
// forms, never an audit trail: only the reduced total is persisted.
package denomination

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/smaite/karobar-ledger/internal/models"
)

// CoinsKey is the sentinel bucket for loose change, counted at face value 1.
// Only INR uses it.
const CoinsKey = "coins"

// Face-value sets per currency, largest first as required by Breakdown.
var (
	NPRFaceValues = []int{1000, 500, 100, 50, 20, 10, 5}
	INRFaceValues = []int{500, 200, 100, 50, 20, 10, 5, 2, 1}
)

// FaceValues returns the note set for a currency.
func FaceValues(c models.Currency) []int {
	if c == models.INR {
		return INRFaceValues
	}
	return NPRFaceValues
}

// Count maps a face-value label ("1000", "500", ... or CoinsKey) to how many
// of that note were counted.
type Count map[string]int

var ErrNegativeCount = errors.New("denomination count must be non-negative")

// Total reduces a count map to its scalar value: Σ(count × faceValue), with
// the coins bucket valued at 1 when coinsKey is non-empty. Unknown keys are
// ignored. Negative counts are rejected rather than silently summed.
func Total(counts Count, faceValues []int, coinsKey string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, fv := range faceValues {
		n, ok := counts[strconv.Itoa(fv)]
		if !ok {
			continue
		}
		if n < 0 {
			return decimal.Zero, fmt.Errorf("%w: %d x %d", ErrNegativeCount, n, fv)
		}
		total = total.Add(decimal.NewFromInt(int64(n) * int64(fv)))
	}
	if coinsKey != "" {
		if n, ok := counts[coinsKey]; ok {
			if n < 0 {
				return decimal.Zero, fmt.Errorf("%w: %d coins", ErrNegativeCount, n)
			}
			total = total.Add(decimal.NewFromInt(int64(n)))
		}
	}
	return total, nil
}

// Breakdown splits a total into note counts greedily, largest face value
// first. When allowRemainderBucket is set (INR), any sub-unit remainder after
// the smallest note lands in the coins bucket rounded down; otherwise the
// remainder is dropped. The result is one valid mix that reproduces the
// total, not necessarily the mix that was physically counted.
func Breakdown(total decimal.Decimal, faceValues []int, allowRemainderBucket bool) Count {
	counts := make(Count, len(faceValues)+1)
	remaining := total
	for _, fv := range faceValues {
		d := decimal.NewFromInt(int64(fv))
		n := remaining.Div(d).Floor()
		if n.Cmp(decimal.Zero) > 0 {
			counts[strconv.Itoa(fv)] = int(n.IntPart())
			remaining = remaining.Sub(n.Mul(d))
		}
	}
	if allowRemainderBucket && remaining.Cmp(decimal.Zero) > 0 {
		counts[CoinsKey] = int(remaining.Floor().IntPart())
	}
	return counts
}
