package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferLoggerCapturesMessages(t *testing.T) {
	l := NewBufferLogger()

	l.Debug("debug %d", 1)
	l.Info("info")
	l.Warn("warn")
	l.Error("error %s", "x")

	require.Len(t, l.Messages, 4)
	assert.Equal(t, "debug 1", l.Messages[0].Message)
	assert.Equal(t, "debug", l.Messages[0].Level)
	assert.Equal(t, "error x", l.Messages[3].Message)

	assert.True(t, l.HasLevel("warn"))
	assert.False(t, l.HasLevel("fatal"))

	l.Clear()
	assert.Empty(t, l.Messages)
}

func TestEnvLoggerDebugGatedByEnv(t *testing.T) {
	t.Setenv("SYSMON_DEBUG", "")

	// No output assertions here (log goes to stderr); just exercise the
	// gate in both states.
	l := NewEnvLogger("[test]")
	l.Debug("suppressed")

	t.Setenv("SYSMON_DEBUG", "1")
	l.Debug("emitted")
}

func TestSetDefaultSwapsPackageLogger(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	buf := NewBufferLogger()
	SetDefault(buf)

	require.Same(t, buf, Default())
	Default().Info("routed %s", "here")

	require.Len(t, buf.Messages, 1)
	assert.Equal(t, "routed here", buf.Messages[0].Message)
}

func TestNoopLoggerDiscards(t *testing.T) {
	l := Noop()
	l.Debug("a")
	l.Info("b")
	l.Warn("c")
	l.Error("d")
}
