//go:build !s1debug

package s1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksDisabled(t *testing.T) {
	assert.False(t, ChecksEnabled())
	assert.NotPanics(t, func() { quad12.Contains(4) })
	assert.Equal(t, 0.25, empty.Project(0.25))
}
