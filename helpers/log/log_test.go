package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	old := Level()
	defer SetLevel(old)

	assert.False(t, Log.Core().Enabled(zapcore.DebugLevel))
	SetLevel(zapcore.DebugLevel)
	assert.Equal(t, zapcore.DebugLevel, Level())
	assert.True(t, Named("qsort").Core().Enabled(zapcore.DebugLevel))
}

func TestNew(t *testing.T) {
	l, err := New(zapcore.InfoLevel)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))

	assert.False(t, Nop().Core().Enabled(zapcore.ErrorLevel))
}
