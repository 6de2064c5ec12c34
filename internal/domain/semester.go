package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// SemesterCount is the number of semesters a fee can be paid for.
const SemesterCount = 8

// Semesters lists the semester labels in order.
func Semesters() []string {
	out := make([]string, SemesterCount)
	for i := range out {
		out[i] = fmt.Sprintf("Sem %d", i+1)
	}
	return out
}

// NormalizeSemester accepts "5", "sem5", "Sem 5" or "Semester 5" and
// returns the canonical "Sem 5" label.
func NormalizeSemester(s string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "semester")
	v = strings.TrimPrefix(v, "sem")
	v = strings.TrimSpace(v)
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > SemesterCount {
		return "", fmt.Errorf("invalid semester %q: expected 1-%d", s, SemesterCount)
	}
	return fmt.Sprintf("Sem %d", n), nil
}
