package bucket

import (
	"fmt"
	"math"

	svcErr "github.com/oggyb/matching-service/internal/errors"
)

const (
	MinHeight = 140
	MaxHeight = 220
)

// HeightRanges partitions 140..220cm: one 6cm bucket then 5cm buckets.
var HeightRanges = heightRanges()

func heightRanges() []Range {
	out := []Range{{Lower: MinHeight, Upper: 145, Bucket: "range_140_to_145"}}
	for lo := 146; lo <= MaxHeight; lo += 5 {
		hi := lo + 4
		out = append(out, Range{Lower: lo, Upper: hi, Bucket: fmt.Sprintf("range_%d_to_%d", lo, hi)})
	}
	return out
}

// HeightBucket rounds cm half-to-even before the range lookup.
func HeightBucket(cm float64) (string, error) {
	if math.IsNaN(cm) || math.IsInf(cm, 0) {
		return "", svcErr.Invalid("height must be a finite number")
	}
	rounded := math.RoundToEven(cm)
	if rounded < MinHeight || rounded > MaxHeight {
		return "", svcErr.Invalid("height %gcm must be between %d and %d", cm, MinHeight, MaxHeight)
	}
	return Classify(int(rounded), HeightRanges)
}
