package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

func TestCheckCmd(t *testing.T) {
	dir := t.TempDir()

	legacy := writeInput(t, dir, "legacy.nivssdf", legacyContent())
	stdout, _, err := execute(t, "check", legacy)
	require.NoError(t, err)
	assert.Contains(t, stdout, "needs migration")
	assert.Contains(t, stdout, "2016.0")

	current := writeInput(t, dir, "current.nivssdf", `<SystemDefinitionFile><Version Major="2020" Minor="3" /></SystemDefinitionFile>`)
	stdout, _, err = execute(t, "check", current)
	require.NoError(t, err)
	assert.Contains(t, stdout, "is up to date")
	assert.NotContains(t, stdout, "Legacy devices")

	_, _, err = execute(t, "check", filepath.Join(dir, "missing.nivssdf"))
	require.Error(t, err)
	assert.Equal(t, slscmigrate.ExitInputError, slscmigrate.ExitCodeForError(err))
}
