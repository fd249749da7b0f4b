package tracking

import (
	"errors"
	"strings"
	"time"
)

// Date layouts, in Go reference-time notation.
const (
	// QueryDateLayout is the dd-MM-yyyy form used in GET /track/{userId}/{date}.
	QueryDateLayout = "02-01-2006"
	// DateKeyLayout is the canonical d.M.yyyy key stored with each record.
	DateKeyLayout = "2.1.2006"
)

// ErrInvalidDate is returned for input that is not a real calendar date in the
// expected layout.
var ErrInvalidDate = errors.New("invalid date")

// NormalizeDate turns a dd-MM-yyyy query date into the canonical date key:
// "05-03-2024" becomes "5.3.2024" and "31-12-2023" becomes "31.12.2023".
// Anything else (wrong separators, single-digit fields, 31-02-2024, trailing text)
// fails with ErrInvalidDate.
func NormalizeDate(input string) (string, error) {
	t, err := time.Parse(QueryDateLayout, input)
	if err != nil {
		return "", ErrInvalidDate
	}
	return DateKey(t), nil
}

// CanonicalDateKey accepts either a dd-MM-yyyy date or a d.M.yyyy key and returns
// the canonical key. Tracking writes go through it so that records are always
// stored under the key NormalizeDate produces.
func CanonicalDateKey(input string) (string, error) {
	input = strings.TrimSpace(input)
	if strings.Contains(input, "-") {
		return NormalizeDate(input)
	}
	t, err := time.Parse(DateKeyLayout, input)
	if err != nil {
		return "", ErrInvalidDate
	}
	return DateKey(t), nil
}

// DateKey formats t as a canonical date key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}
