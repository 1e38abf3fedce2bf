package internal

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) (*bytes.Buffer, *int) {
	t.Helper()
	var (
		buf  bytes.Buffer
		code = -1
	)
	origOut, origExit := stderr, exit
	stderr = &buf
	exit = func(c int) { code = c }
	t.Cleanup(func() {
		stderr, exit = origOut, origExit
	})
	return &buf, &code
}

func TestEcho(t *testing.T) {
	buf, code := capture(t)
	Echo("hello %s", "world")
	Echo("done\n")
	assert.Equal(t, "hello world\ndone\n", buf.String())
	assert.Equal(t, -1, *code)
}

func TestFatal(t *testing.T) {
	buf, code := capture(t)
	Fatal("bad %d", 1)
	assert.Equal(t, "bad 1\n", buf.String())
	assert.Equal(t, 1, *code)
}

func TestCheck(t *testing.T) {
	buf, code := capture(t)
	Check(nil, "nothing")
	assert.Empty(t, buf.String())
	assert.Equal(t, -1, *code)

	Check(errors.New("boom"), "failed to %s", "run")
	assert.Equal(t, "failed to run: boom\n", buf.String())
	assert.Equal(t, 1, *code)
}

func TestNewLogger(t *testing.T) {
	buf, _ := capture(t)
	log, err := NewLogger("warn")
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = NewLogger("loud")
	assert.Error(t, err)
}
