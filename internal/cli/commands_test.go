package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

func TestMigrateCmd_ArgsValidation(t *testing.T) {
	err := migrateCmd.Args(migrateCmd, []string{})
	require.Error(t, err)
	assert.Equal(t, slscmigrate.ExitUsageError, slscmigrate.ExitCodeForError(err), "got: %v", err)

	err = migrateCmd.Args(migrateCmd, []string{"a", "b", "c"})
	require.Error(t, err)
	assert.Equal(t, slscmigrate.ExitUsageError, slscmigrate.ExitCodeForError(err), "got: %v", err)

	assert.NoError(t, migrateCmd.Args(migrateCmd, []string{"a"}))
	assert.NoError(t, migrateCmd.Args(migrateCmd, []string{"a", "b"}))
}

func TestCheckCmd_ArgsValidation(t *testing.T) {
	err := checkCmd.Args(checkCmd, []string{})
	require.Error(t, err)
	assert.Equal(t, slscmigrate.ExitUsageError, slscmigrate.ExitCodeForError(err))

	err = checkCmd.Args(checkCmd, []string{"a", "b"})
	require.Error(t, err)
	assert.Equal(t, slscmigrate.ExitUsageError, slscmigrate.ExitCodeForError(err))
}

func TestRootCmd_UnknownFlag(t *testing.T) {
	_, _, err := execute(t, "migrate", "--no-such-flag", "x")
	require.Error(t, err)
	assert.Equal(t, slscmigrate.ExitUsageError, slscmigrate.ExitCodeForError(err))
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"migrate", "check", "config", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "slscmigrate ")
}
