// Package bucket turns raw preference inputs into the name of the bucket that
// must be flagged on a user's record. Everything here is pure.
package bucket

import (
	"fmt"

	svcErr "github.com/oggyb/matching-service/internal/errors"
)

// Range is an inclusive [Lower, Upper] interval owned by a bucket.
type Range struct {
	Lower  int
	Upper  int
	Bucket string
}

// Classify returns the bucket whose range contains value.
// Ranges must be ordered, contiguous and non-overlapping.
func Classify(value int, ranges []Range) (string, error) {
	if len(ranges) == 0 {
		return "", svcErr.Invalid("no buckets configured")
	}
	lo, hi := ranges[0].Lower, ranges[len(ranges)-1].Upper
	if value < lo || value > hi {
		return "", svcErr.Invalid("value %d is outside the supported range %d-%d", value, lo, hi)
	}
	for _, r := range ranges {
		if value >= r.Lower && value <= r.Upper {
			return r.Bucket, nil
		}
	}
	// only reachable with a gap in ranges
	return "", svcErr.Invalid("value %d does not fall in any bucket", value)
}

// Buckets lists the bucket names of ranges in order.
func Buckets(ranges []Range) []string {
	out := make([]string, len(ranges))
	for i, r := range ranges {
		out[i] = r.Bucket
	}
	return out
}

// Validate reports the first gap or overlap between consecutive ranges.
func Validate(ranges []Range) error {
	for i, r := range ranges {
		if r.Lower > r.Upper {
			return fmt.Errorf("bucket %s: lower %d above upper %d", r.Bucket, r.Lower, r.Upper)
		}
		if i > 0 && r.Lower != ranges[i-1].Upper+1 {
			return fmt.Errorf("bucket %s does not start right after %s", r.Bucket, ranges[i-1].Bucket)
		}
	}
	return nil
}
