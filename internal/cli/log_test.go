package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, LogInfo)

	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l.Info("shown", "k", 1)
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=1")

	c := New(&buf, LogInfo)
	c.SetLogLevel(LogDebug)
	assert.Equal(t, log.DebugLevel, c.Logger.GetLevel())
}

func TestLoggerFromContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Same(t, log.Default(), loggerFromContext(nil))

	l := newLogger(&bytes.Buffer{}, LogDebug)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestProgress_Done(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, LogInfo))
	p.done("finished", "cells", 9)
	assert.Contains(t, buf.String(), "finished")
	assert.Contains(t, buf.String(), "cells=9")
	assert.Contains(t, buf.String(), "took=")
}
