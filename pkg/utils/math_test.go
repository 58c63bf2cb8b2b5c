package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampFloat64(t *testing.T) {
	assert.Equal(t, 5.0, ClampFloat64(5, 0, 10))
	assert.Equal(t, 0.0, ClampFloat64(-1, 0, 10))
	assert.Equal(t, 10.0, ClampFloat64(11, 0, 10))
}

func TestNormalize01(t *testing.T) {
	assert.Equal(t, 0.5, Normalize01(50, 0, 100))
	assert.Equal(t, 0.0, Normalize01(-5, 0, 100))
	assert.Equal(t, 1.0, Normalize01(200, 0, 100))
	// Degenerate interval
	assert.Equal(t, 0.0, Normalize01(5, 10, 10))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3.14, Round(3.14159, 2))
	assert.Equal(t, 3.0, Round(3.14159, 0))
	assert.Equal(t, 1200.0, Round(1200.4, 0))
}
