package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/slscmigrate/internal/config"
	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

func TestConfigInitCmd(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := execute(t, "config", "init", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created")

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, slscmigrate.ConfigFileName), cfg.Path)
	assert.Equal(t, slscmigrate.DefaultOutputSuffix, cfg.Output.Suffix)

	_, _, err = execute(t, "config", "init", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrConfigExists), "got: %v", err)

	require.NoError(t, os.WriteFile(cfg.Path, []byte("output:\n  indent: 9\n"), 0644))
	_, _, err = execute(t, "config", "init", dir, "--force")
	require.NoError(t, err)

	cfg, err = config.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Output.Indent)
}
