package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/slscmigrate/internal/checksum"
	"github.com/vvka-141/slscmigrate/internal/sysdef"
	"github.com/vvka-141/slscmigrate/pkg/slscmigrate"
)

func TestBuildMigrationConfig(t *testing.T) {
	tests := []struct {
		name       string
		configYAML string
		env        map[string]string
		args       func(dir string) []string
		flags      map[string]string
		check      func(t *testing.T, dir string, setup migrationSetup)
		wantErr    error
	}{
		{
			name: "defaults derive the output path",
			args: func(dir string) []string { return []string{filepath.Join(dir, "system.nivssdf")} },
			check: func(t *testing.T, dir string, setup migrationSetup) {
				assert.Equal(t, filepath.Join(dir, "system_migrated.nivssdf"), setup.config.OutputPath)
				assert.Equal(t, 0, setup.config.Indent)
				assert.False(t, setup.config.Backup)
				assert.Empty(t, setup.logFile)
			},
		},
		{
			name: "second argument names the output",
			args: func(dir string) []string {
				return []string{filepath.Join(dir, "system.nivssdf"), filepath.Join(dir, "out.nivssdf")}
			},
			check: func(t *testing.T, dir string, setup migrationSetup) {
				assert.Equal(t, filepath.Join(dir, "out.nivssdf"), setup.config.OutputPath)
			},
		},
		{
			name: "argument and conflicting --output",
			args: func(dir string) []string {
				return []string{filepath.Join(dir, "system.nivssdf"), filepath.Join(dir, "a.nivssdf")}
			},
			flags:   map[string]string{"output": "b.nivssdf"},
			wantErr: slscmigrate.ErrInvalidConfig,
		},
		{
			name:       "config file supplies defaults",
			configYAML: "output:\n  indent: 3\n  backup: true\n  suffix: _native\nlog:\n  file: run.log\n  verbose: true\n",
			args:       func(dir string) []string { return []string{filepath.Join(dir, "system.nivssdf")} },
			check: func(t *testing.T, dir string, setup migrationSetup) {
				assert.Equal(t, filepath.Join(dir, "system_native.nivssdf"), setup.config.OutputPath)
				assert.Equal(t, 3, setup.config.Indent)
				assert.False(t, setup.config.Backup, "backup only applies in place")
				assert.True(t, setup.config.Verbose)
				assert.Equal(t, "run.log", setup.logFile)
			},
		},
		{
			name:       "config backup applies in place",
			configYAML: "output:\n  backup: true\n",
			args:       func(dir string) []string { return []string{filepath.Join(dir, "system.nivssdf")} },
			flags:      map[string]string{"in-place": "true"},
			check: func(t *testing.T, dir string, setup migrationSetup) {
				assert.True(t, setup.config.InPlace)
				assert.True(t, setup.config.Backup)
				assert.Empty(t, setup.config.OutputPath)
			},
		},
		{
			name:       "environment overrides the file",
			configYAML: "output:\n  indent: 3\n",
			env:        map[string]string{"SLSCMIGRATE_OUTPUT_INDENT": "5"},
			args:       func(dir string) []string { return []string{filepath.Join(dir, "system.nivssdf")} },
			check: func(t *testing.T, dir string, setup migrationSetup) {
				assert.Equal(t, 5, setup.config.Indent)
			},
		},
		{
			name:       "flags override environment and file",
			configYAML: "output:\n  indent: 3\nlog:\n  file: run.log\n",
			env:        map[string]string{"SLSCMIGRATE_OUTPUT_INDENT": "5"},
			args:       func(dir string) []string { return []string{filepath.Join(dir, "system.nivssdf")} },
			flags:      map[string]string{"indent": "0", "log-file": "other.log", "dry-run": "true", "force": "true"},
			check: func(t *testing.T, dir string, setup migrationSetup) {
				assert.Equal(t, 0, setup.config.Indent)
				assert.Equal(t, "other.log", setup.logFile)
				assert.True(t, setup.config.DryRun)
				assert.True(t, setup.config.Force)
			},
		},
		{
			name:       "invalid config file",
			configYAML: "output:\n  suffix: a/b\n",
			args:       func(dir string) []string { return []string{filepath.Join(dir, "system.nivssdf")} },
			wantErr:    slscmigrate.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			t.Cleanup(func() { resetFlags(t) })

			dir := t.TempDir()
			if tt.configYAML != "" {
				require.NoError(t, os.WriteFile(filepath.Join(dir, slscmigrate.ConfigFileName), []byte(tt.configYAML), 0644))
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			for k, v := range tt.flags {
				require.NoError(t, migrateCmd.Flags().Set(k, v))
			}

			setup, err := buildMigrationConfig(migrateCmd, tt.args(dir), false)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, dir, setup)
		})
	}
}

func TestMigrateCmd_WritesDefaultOutput(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "system.nivssdf", legacyContent())

	_, stderr, err := execute(t, "migrate", input)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Migrated")

	data, err := os.ReadFile(filepath.Join(dir, "system_migrated.nivssdf"))
	require.NoError(t, err)
	doc, err := sysdef.Parse(data)
	require.NoError(t, err)
	assert.Empty(t, doc.SectionsOf(sysdef.KindLegacySLSCDevice))
	assert.Len(t, doc.SectionsOf(sysdef.KindSLSCDevice), 1)

	original, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, legacyContent(), string(original))
}

func TestMigrateCmd_ReportYAML(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "system.nivssdf", legacyContent())

	stdout, _, err := execute(t, "migrate", input, "--dry-run", "--report")
	require.NoError(t, err)

	var report slscmigrate.Report
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &report), stdout)
	assert.Equal(t, checksum.New().Calculate([]byte(legacyContent())), report.InputChecksum)
	assert.NotEmpty(t, report.OutputChecksum)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "2016.0", report.Version)
	assert.Equal(t, 1, report.Modules)

	_, err = os.Stat(filepath.Join(dir, "system_migrated.nivssdf"))
	assert.True(t, os.IsNotExist(err), "dry run must not write")
}

func TestMigrateCmd_InPlaceBackup(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "system.nivssdf", legacyContent())

	_, stderr, err := execute(t, "migrate", input, "--in-place", "--backup")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Backup")

	backup, err := os.ReadFile(input + slscmigrate.BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, legacyContent(), string(backup))

	migrated, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.NotContains(t, string(migrated), sysdef.KindLegacySLSCDevice.GUID())
}

func TestMigrateCmd_ExistingOutputWithoutForce(t *testing.T) {
	t.Setenv("SLSCMIGRATE_NON_INTERACTIVE", "1")
	dir := t.TempDir()
	input := writeInput(t, dir, "system.nivssdf", legacyContent())
	output := writeInput(t, dir, "out.nivssdf", "previous")

	_, _, err := execute(t, "migrate", input, output)
	require.Error(t, err)
	assert.Equal(t, slscmigrate.ExitApprovalDenied, slscmigrate.ExitCodeForError(err), "got: %v", err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))

	_, _, err = execute(t, "migrate", input, output, "--force")
	require.NoError(t, err)
	data, err = os.ReadFile(output)
	require.NoError(t, err)
	assert.NotEqual(t, "previous", string(data))
}

func TestMigrateCmd_AlreadyCurrent(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "system.nivssdf", `<SystemDefinitionFile><Version Major="2018" Minor="0" /></SystemDefinitionFile>`)

	_, stderr, err := execute(t, "migrate", input)
	require.NoError(t, err)
	assert.Contains(t, stderr, "already up to date")

	_, err = os.Stat(filepath.Join(dir, "system_migrated.nivssdf"))
	assert.True(t, os.IsNotExist(err))
}

func TestMigrateCmd_FailureExitCodes(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "migrate", filepath.Join(dir, "missing.nivssdf"))
	require.Error(t, err)
	assert.Equal(t, slscmigrate.ExitInputError, slscmigrate.ExitCodeForError(err))

	broken := writeInput(t, dir, "broken.nivssdf", "<SystemDefinitionFile>")
	_, _, err = execute(t, "migrate", broken)
	require.Error(t, err)
	assert.Equal(t, slscmigrate.ExitInvalidDocument, slscmigrate.ExitCodeForError(err))

	_, _, err = execute(t, "migrate", broken, "--backup")
	require.Error(t, err)
	assert.Equal(t, slscmigrate.ExitConfigError, slscmigrate.ExitCodeForError(err))
}

func TestMigrateCmd_LogFile(t *testing.T) {
	dir := t.TempDir()
	input := writeInput(t, dir, "system.nivssdf", legacyContent())
	logPath := filepath.Join(dir, "logs", "migrate.log")

	_, _, err := execute(t, "migrate", input, "--log-file", logPath, "-v")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Parsing chassis ChassisA")
	assert.Contains(t, string(data), "Writing ")
}
