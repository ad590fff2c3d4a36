package logging_test

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/pathfinder/internal/logging"
)

func TestHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(logging.NewHandler(&buf, nil))

	l.Info("search finished", "strategy", "ucs", "found", true, "note", "two words")
	line := buf.String()

	assert.Regexp(t, regexp.MustCompile(`^\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2} INFO search finished `), line)
	assert.Contains(t, line, "strategy=ucs found=true")
	assert.Contains(t, line, `note="two words"`)
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}

func TestHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(logging.NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	l.Info("hidden")
	assert.Empty(t, buf.String())
	l.Warn("shown")
	assert.Contains(t, buf.String(), "WARN shown")
}

func TestHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(logging.NewHandler(&buf, nil)).With("maze", "lake").WithGroup("req")

	l.Info("solved", "id", 7, slog.Group("stats", "expansions", 12))
	assert.Contains(t, buf.String(), "maze=lake req.id=7 req.stats.expansions=12")
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"Error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestSetup(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	logging.Setup(&buf, slog.LevelDebug, false)
	slog.Debug("installed")
	assert.Contains(t, buf.String(), "DEBUG installed")
}
