// file: internals/features/exam/exams/service/cohort.go
package service

import "strings"

// CohortKey derives the interleaving group from a roll number: the four
// characters after the year prefix, upper-cased (e.g. "24CSCS001" → "CSCS").
// Kept as a standalone pure function so the grouping rule can be swapped for
// an explicit cohort field without touching the allocator.
func CohortKey(rollNo string) string {
	if len(rollNo) <= 2 {
		return ""
	}
	end := 6
	if len(rollNo) < end {
		end = len(rollNo)
	}
	return strings.ToUpper(rollNo[2:end])
}
