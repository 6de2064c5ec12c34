package fundtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoom_Default(t *testing.T) {
	assert.Equal(t, 30, NewZoom().Percent())

	var zero Zoom
	assert.Equal(t, NewZoom().Percent(), zero.Percent())
}

func TestZoom_StepsAndClamps(t *testing.T) {
	z := NewZoom()
	for i := 0; i < 30; i++ {
		z = z.In()
	}
	assert.Equal(t, 200, z.Percent())

	for i := 0; i < 30; i++ {
		z = z.Out()
	}
	assert.Equal(t, 10, z.Percent())

	assert.Equal(t, 30, z.Reset().Percent())
}

func TestZoom_RoundTripDoesNotDrift(t *testing.T) {
	z := NewZoom()
	for i := 0; i < 7; i++ {
		z = z.In()
	}
	for i := 0; i < 7; i++ {
		z = z.Out()
	}
	assert.Equal(t, NewZoom(), z)
}

func TestZoomPercent(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{30, 30},
		{54, 50},
		{55, 60},
		{0, 10},
		{-40, 10},
		{500, 200},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ZoomPercent(tt.in).Percent(), "ZoomPercent(%d)", tt.in)
	}
}
