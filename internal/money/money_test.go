package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.35, Round2(12.345))
	assert.Equal(t, 0.3, Round2(0.1+0.2))
	assert.Equal(t, 150.0, Round2(150))
	assert.Equal(t, -1.01, Round2(-1.005))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "12.50", Format(12.5))
	assert.Equal(t, "0.00", Format(0))
	assert.Equal(t, "1234.57", Format(1234.567))
}
