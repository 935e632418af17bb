package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "production", ""} {
		l, err := New(mode, "info")
		require.NoError(t, err, "mode %q", mode)
		assert.True(t, l.Zap().Core().Enabled(zapcore.InfoLevel))
		assert.False(t, l.Zap().Core().Enabled(zapcore.DebugLevel))
	}
}

func TestNew_DefaultLevelIsWarn(t *testing.T) {
	l, err := New("dev", "")
	require.NoError(t, err)
	assert.False(t, l.Zap().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Zap().Core().Enabled(zapcore.WarnLevel))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("dev", "loud")
	require.Error(t, err)
}

func TestWith(t *testing.T) {
	l := Nop().With("request_id", "abc")
	require.NotNil(t, l.SugaredLogger)
	l.Info("ignored")
}
