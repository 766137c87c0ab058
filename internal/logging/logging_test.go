package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackwell-systems/gradientctl/internal/logging"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(logging.NewHandler(&buf, slog.LevelInfo, termenv.Ascii))

	log.Debug("hidden")
	log.Info("shown", "stops", 3)
	log.With("view", "editor").WithGroup("clip").Warn("careful", "mode", "osc52")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INF shown stops=3")
	assert.Contains(t, out, "WRN careful")
	assert.Contains(t, out, "clip.mode=osc52")
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

func TestHandler_NestedGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(logging.NewHandler(&buf, slog.LevelInfo, termenv.Ascii))

	log.With("view", "editor").WithGroup("a").With("id", 7).WithGroup("b").Info("drop", "x", 1)

	out := buf.String()
	assert.Contains(t, out, " view=editor")
	assert.Contains(t, out, " a.id=7")
	assert.Contains(t, out, " a.b.x=1")
	assert.NotContains(t, out, " b.x=1")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetup_File(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "gradientctl.log")
	closeFn, err := logging.Setup(path, "debug")
	require.NoError(t, err)

	slog.Debug("editor started", "angle", 90)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "DBG editor started angle=90")
}

func TestSetup_Disabled(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	closeFn, err := logging.Setup("", "info")
	require.NoError(t, err)
	assert.NoError(t, closeFn())
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelError))
}
