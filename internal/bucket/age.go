package bucket

import (
	"math"
	"strings"
	"time"

	svcErr "github.com/oggyb/matching-service/internal/errors"
)

// DateLayout is the canonical date-of-birth format.
const DateLayout = "2006-01-02"

// parseLayout also takes unpadded month and day, e.g. 1995-6-5.
const parseLayout = "2006-1-2"

const MinAge = 18

var AgeRanges = []Range{
	{Lower: 18, Upper: 24, Bucket: "range_18_to_24"},
	{Lower: 25, Upper: 34, Bucket: "range_25_to_34"},
	{Lower: 35, Upper: 44, Bucket: "range_35_to_44"},
	{Lower: 45, Upper: math.MaxInt32, Bucket: "range_above_44"},
}

// ParseDate parses a YYYY-MM-DD date of birth. Month and day may omit the
// leading zero.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(parseLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, svcErr.Invalid("date_of_birth %q must be in YYYY-MM-DD format", s)
	}
	return d, nil
}

// AgeInYears counts whole years between dob and now; the current year only
// counts once the birthday (month, day) has been reached.
func AgeInYears(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// AgeBucket derives the age bucket for a date of birth evaluated at now.
func AgeBucket(dob string, now time.Time) (string, error) {
	d, err := ParseDate(dob)
	if err != nil {
		return "", err
	}
	if d.After(now) {
		return "", svcErr.Invalid("date_of_birth %s is in the future", dob)
	}
	age := AgeInYears(d, now)
	if age < MinAge {
		return "", svcErr.Invalid("age must be at least %d, got %d", MinAge, age)
	}
	return Classify(age, AgeRanges)
}
