package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatestSupersedesOlderGenerations(t *testing.T) {
	var guard Latest

	first := guard.Next()
	assert.True(t, guard.Current(first))

	second := guard.Next()
	assert.False(t, guard.Current(first), "older fetch should be discarded")
	assert.True(t, guard.Current(second))
}

func TestLatestZeroValueIsReady(t *testing.T) {
	var guard Latest
	assert.False(t, guard.Current(1))
	assert.Equal(t, uint64(1), guard.Next())
}
