package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSemester(t *testing.T) {
	for _, in := range []string{"5", "sem5", "Sem 5", " SEMESTER 5 "} {
		got, err := NormalizeSemester(in)
		require.NoError(t, err, in)
		assert.Equal(t, "Sem 5", got, in)
	}

	for _, in := range []string{"", "0", "9", "sem", "fifth"} {
		_, err := NormalizeSemester(in)
		assert.Error(t, err, in)
	}
}

func TestSemesters(t *testing.T) {
	s := Semesters()
	assert.Len(t, s, SemesterCount)
	assert.Equal(t, "Sem 1", s[0])
	assert.Equal(t, "Sem 8", s[7])
}
