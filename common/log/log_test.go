package log

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLog_ReinitClosesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")

	require.NoError(t, InitLog("analyzer", "info", first))
	prev := logFile
	require.NotNil(t, prev)
	Info("第一个文件")

	require.NoError(t, InitLog("analyzer", "info", second))
	_, err := prev.Write([]byte("x"))
	assert.True(t, errors.Is(err, os.ErrClosed), "previous log file still open: %v", err)
	Info("第二个文件")

	require.NoError(t, Close())
	assert.Nil(t, logFile)
	require.NoError(t, Close())

	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "第二个文件"))
	data, err = os.ReadFile(first)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "第二个文件"))
}

func TestInitLog_StderrWithoutPath(t *testing.T) {
	require.NoError(t, InitLog("analyzer", "debug", ""))
	assert.Nil(t, logFile)
	require.NoError(t, Close())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]log.Level{
		"debug": log.DebugLevel,
		"WARN":  log.WarnLevel,
		"error": log.ErrorLevel,
		"":      log.InfoLevel,
		"bogus": log.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) expected %v, got %v", in, want, got)
		}
	}
}
