package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stringer struct{}

func (stringer) String() string { return "stringer" }

func TestGetStringValue(t *testing.T) {
	assert.Equal(t, "plain", getStringValue("plain"))
	assert.Equal(t, "lazy", getStringValue(func() string { return "lazy" }))
	assert.Equal(t, "stringer", getStringValue(stringer{}))
	assert.Panics(t, func() { getStringValue(42) })
}
