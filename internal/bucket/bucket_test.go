package bucket_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/matching-service/internal/bucket"
	svcErr "github.com/oggyb/matching-service/internal/errors"
)

func date(s string) time.Time {
	d, _ := time.Parse(bucket.DateLayout, s)
	return d
}

func TestClassify_Boundaries(t *testing.T) {
	ranges := []bucket.Range{
		{Lower: 1, Upper: 3, Bucket: "low"},
		{Lower: 4, Upper: 6, Bucket: "high"},
	}
	for value, want := range map[int]string{1: "low", 3: "low", 4: "high", 6: "high"} {
		got, err := bucket.Classify(value, ranges)
		require.NoError(t, err)
		assert.Equal(t, want, got, value)
	}

	for _, value := range []int{0, 7} {
		_, err := bucket.Classify(value, ranges)
		assert.ErrorIs(t, err, svcErr.ErrInvalidValue)
	}
}

func TestRangeTablesArePartitions(t *testing.T) {
	assert.NoError(t, bucket.Validate(bucket.AgeRanges))
	assert.NoError(t, bucket.Validate(bucket.HeightRanges))

	gap := []bucket.Range{{Lower: 1, Upper: 2, Bucket: "a"}, {Lower: 4, Upper: 5, Bucket: "b"}}
	assert.Error(t, bucket.Validate(gap))
}

func TestAgeInYears_BirthdayRule(t *testing.T) {
	dob := date("1995-06-15")
	assert.Equal(t, 28, bucket.AgeInYears(dob, date("2024-06-14")))
	assert.Equal(t, 29, bucket.AgeInYears(dob, date("2024-06-15")))
	assert.Equal(t, 29, bucket.AgeInYears(dob, date("2024-12-31")))
}

func TestAgeBucket(t *testing.T) {
	now := date("2024-03-01")
	cases := map[string]string{
		"1995-06-15": "range_25_to_34",
		"1960-01-01": "range_above_44",
		"2006-03-01": "range_18_to_24", // 18 today
		"1999-03-02": "range_18_to_24", // 24, turns 25 tomorrow
		"1999-03-01": "range_25_to_34",
		"1979-03-01": "range_above_44",
		"1979-03-02": "range_35_to_44",
	}
	for dob, want := range cases {
		got, err := bucket.AgeBucket(dob, now)
		require.NoError(t, err, dob)
		assert.Equal(t, want, got, dob)
	}
}

func TestParseDate_UnpaddedMonthAndDay(t *testing.T) {
	for _, s := range []string{"1995-6-5", "1995-06-5", "1995-6-05", " 1995-06-05 "} {
		d, err := bucket.ParseDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, date("1995-06-05"), d, s)
	}

	got, err := bucket.AgeBucket("1995-6-5", date("2024-03-01"))
	require.NoError(t, err)
	assert.Equal(t, "range_25_to_34", got)
}

func TestAgeBucket_Rejects(t *testing.T) {
	now := date("2024-03-01")
	for _, dob := range []string{"2006-03-02", "15/06/1995", "1995-13-01", "1995-6", "95-06-05", "", "2030-01-01"} {
		_, err := bucket.AgeBucket(dob, now)
		assert.ErrorIs(t, err, svcErr.ErrInvalidValue, dob)
	}
}

func TestHeightRanges_Shape(t *testing.T) {
	require.Len(t, bucket.HeightRanges, 16)
	assert.Equal(t, "range_140_to_145", bucket.HeightRanges[0].Bucket)
	assert.Equal(t, "range_146_to_150", bucket.HeightRanges[1].Bucket)
	assert.Equal(t, "range_216_to_220", bucket.HeightRanges[15].Bucket)
}

func TestHeightBucket_ExactlyOneForEveryCentimetre(t *testing.T) {
	for cm := bucket.MinHeight; cm <= bucket.MaxHeight; cm++ {
		hits := 0
		for _, r := range bucket.HeightRanges {
			if cm >= r.Lower && cm <= r.Upper {
				hits++
			}
		}
		assert.Equal(t, 1, hits, cm)

		_, err := bucket.HeightBucket(float64(cm))
		assert.NoError(t, err, cm)
	}
}

func TestHeightBucket_Rounding(t *testing.T) {
	cases := map[float64]string{
		145.4: "range_140_to_145",
		145.5: "range_146_to_150", // half to even: 146
		146.5: "range_146_to_150", // half to even: 146
		150.5: "range_146_to_150", // half to even: 150
		139.6: "range_140_to_145",
		220.4: "range_216_to_220",
	}
	for cm, want := range cases {
		got, err := bucket.HeightBucket(cm)
		require.NoError(t, err, cm)
		assert.Equal(t, want, got, cm)
	}
}

func TestHeightBucket_Rejects(t *testing.T) {
	for _, cm := range []float64{139.4, 220.6, 0, -150, math.NaN(), math.Inf(1)} {
		_, err := bucket.HeightBucket(cm)
		assert.ErrorIs(t, err, svcErr.ErrInvalidValue, cm)
	}
}

func TestVocabulary_Lookup(t *testing.T) {
	got, err := bucket.PrayerFrequencies.Lookup("always_prays")
	require.NoError(t, err)
	assert.Equal(t, "always_pray", got)

	got, err = bucket.Sects.Lookup("ibadi")
	require.NoError(t, err)
	assert.Equal(t, "ibadi", got)

	_, err = bucket.ReligiousLevels.Lookup("Practising")
	assert.ErrorIs(t, err, svcErr.ErrInvalidValue)
	assert.Contains(t, err.Error(), "very_practising")
}

func TestVocabulary_Sizes(t *testing.T) {
	assert.Len(t, bucket.ReligiousLevels.Values(), 4)
	assert.Len(t, bucket.Sects.Values(), 6)
	assert.Len(t, bucket.PrayerFrequencies.Values(), 4)
	assert.Len(t, bucket.MarriageTimelines.Values(), 5)
	assert.Len(t, bucket.ChildrenExpectations.Values(), 3)
}

func TestVocabulary_LookupMany(t *testing.T) {
	got, err := bucket.EthnicOrigins.LookupMany([]string{"arab", "persian", "arab"})
	require.NoError(t, err)
	assert.Equal(t, []string{"arab", "persian"}, got)

	got, err = bucket.PersonalityTraits.LookupMany(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = bucket.EthnicOrigins.LookupMany([]string{"arab", "martian", "lunar"})
	require.ErrorIs(t, err, svcErr.ErrInvalidValue)
	assert.Contains(t, err.Error(), "lunar, martian")
}
