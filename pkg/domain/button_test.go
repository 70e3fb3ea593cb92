package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButtonName(t *testing.T) {
	assert.Equal(t, "left", ButtonName(1))
	assert.Equal(t, "middle", ButtonName(2))
	assert.Equal(t, "right", ButtonName(3))

	t.Run("Out Of Range Is Unknown Not Rejected", func(t *testing.T) {
		assert.Equal(t, "unknown", ButtonName(0))
		assert.Equal(t, "unknown", ButtonName(4))
		assert.Equal(t, "unknown", ButtonName(-1))
		assert.Equal(t, "unknown", ButtonName(99))
	})
}
