// file: internals/features/exam/exams/service/cohort_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCohortKey(t *testing.T) {
	cases := []struct {
		rollNo string
		want   string
	}{
		{"24CSAA001", "CSAA"},
		{"24csaa001", "CSAA"},
		{"23ECBB042", "ECBB"},
		{"24CS", "CS"},   // shorter than the full cohort window
		{"24", ""},       // nothing after the year prefix
		{"X", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CohortKey(tc.rollNo), "roll %q", tc.rollNo)
	}
}
