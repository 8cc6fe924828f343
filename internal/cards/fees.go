// internal/cards/fees.go
package cards

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory reports a category outside the fee table. The validator
// rules this out before fees are computed; the check here is defensive.
var ErrUnknownCategory = errors.New("unknown category")

// feeTable is the closed mapping from member category to card fee. There is
// no default entry: an unmapped category is an error, not a fallback.
var feeTable = map[Category]float64{
	CategoryStudentUndergrad: 10.0,
	CategoryStudentGrad:      12.0,
	CategoryFaculty:          5.0,
	CategoryStaff:            6.0,
	CategoryExternal:         20.0,
}

// FeeFor returns the fixed card fee for a member category.
func FeeFor(category Category) (float64, error) {
	fee, ok := feeTable[category]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return fee, nil
}
