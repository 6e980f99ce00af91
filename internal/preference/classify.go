package preference

import (
	"time"

	"github.com/oggyb/matching-service/internal/bucket"
	svcErr "github.com/oggyb/matching-service/internal/errors"
)

type classifier func(in Input, now time.Time) ([]string, error)

func one(b string, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	return []string{b}, nil
}

func byAge(prefix string) classifier {
	return func(in Input, now time.Time) ([]string, error) {
		b, err := bucket.AgeBucket(in.Text, now)
		return one(prefix+b, err)
	}
}

func byHeight(prefix string) classifier {
	return func(in Input, _ time.Time) ([]string, error) {
		b, err := bucket.HeightBucket(in.Number)
		return one(prefix+b, err)
	}
}

func byLabel(v bucket.Vocabulary) classifier {
	return func(in Input, _ time.Time) ([]string, error) {
		return one(v.Lookup(in.Text))
	}
}

func byLabels(v bucket.Vocabulary) classifier {
	return func(in Input, _ time.Time) ([]string, error) {
		return v.LookupMany(in.Texts)
	}
}

// byGender accepts "male", "female", "both" or a 0 (male) / 1 (female) score.
// "both" raises two flags.
func byGender(in Input, _ time.Time) ([]string, error) {
	if in.Score != nil {
		switch *in.Score {
		case 0:
			return []string{"male"}, nil
		case 1:
			return []string{"female"}, nil
		}
		return nil, svcErr.Invalid("gender_score must be 0 (male) or 1 (female), got %d", *in.Score)
	}
	if in.Text == "both" {
		return bucket.Genders.Buckets(), nil
	}
	b, err := bucket.Genders.Lookup(in.Text)
	if err != nil {
		return nil, svcErr.Invalid("invalid gender %q, must be one of: male, female, both", in.Text)
	}
	return []string{b}, nil
}

func bySmoking(in Input, _ time.Time) ([]string, error) {
	if in.Bool {
		return []string{"does_smoke"}, nil
	}
	return nil, nil
}
