// internal/cards/fees_test.go
package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeForAllCategories(t *testing.T) {
	tests := []struct {
		category Category
		fee      float64
	}{
		{CategoryStudentUndergrad, 10.0},
		{CategoryStudentGrad, 12.0},
		{CategoryFaculty, 5.0},
		{CategoryStaff, 6.0},
		{CategoryExternal, 20.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.category), func(t *testing.T) {
			fee, err := FeeFor(tc.category)
			require.NoError(t, err)
			assert.Equal(t, tc.fee, fee)
		})
	}
}

func TestFeeForUnknownCategory(t *testing.T) {
	for _, category := range []Category{"", "alumni", "STUDENT_UNDERGRAD", "docente"} {
		_, err := FeeFor(category)
		require.ErrorIs(t, err, ErrUnknownCategory)
	}
}
