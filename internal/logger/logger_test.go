package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsNop(t *testing.T) {
	l := New()
	require.NotNil(t, l.Log)

	// Must be safe to log before Init.
	l.Log.Info("noop")
}

func TestInit(t *testing.T) {
	l := New()

	require.NoError(t, l.Init("Info"))
	assert.True(t, l.Log.Core().Enabled(0)) // InfoLevel
}

func TestInitBadLevel(t *testing.T) {
	l := New()

	assert.Error(t, l.Init("extremely-verbose"))
}
