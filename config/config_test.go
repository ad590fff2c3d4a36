package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfinder/config"
	"github.com/katalvlaran/pathfinder/search"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "pathfinder.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())

	s, err := c.Strategy()
	require.NoError(t, err)
	assert.Equal(t, search.AStar, s)
}

func TestRead(t *testing.T) {
	p := writeFile(t, `
server:
  listen: ":8080"
log:
  level: debug
  source: true
search:
  default_strategy: ucs
  max_expansions: 5000
`)
	c, err := config.Read(p)
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Server.Listen)
	assert.Equal(t, "debug", c.Log.Level)
	assert.True(t, c.Log.Source)
	assert.Equal(t, 5000, c.Search.MaxExpansions)

	s, err := c.Strategy()
	require.NoError(t, err)
	assert.Equal(t, search.UCS, s)
}

func TestRead_KeepsDefaults(t *testing.T) {
	c, err := config.Read(writeFile(t, "log:\n  level: warn\n"))
	require.NoError(t, err)
	assert.Equal(t, "localhost:6060", c.Server.Listen)
	assert.Equal(t, "astar", c.Search.DefaultStrategy)
}

func TestRead_Invalid(t *testing.T) {
	cases := map[string]string{
		"Level":    "log:\n  level: loud\n",
		"Negative": "search:\n  max_expansions: -1\n",
		"Strategy": "search:\n  default_strategy: greedy\n",
		"Listen":   "server:\n  listen: nowhere\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Read(writeFile(t, body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestRead_Errors(t *testing.T) {
	_, err := config.Read(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Read(writeFile(t, "server: [1, 2"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}
