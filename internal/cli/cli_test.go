package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/slscmigrate/internal/testing/fixtures"
)

// resetFlags restores every command flag to its default. Flags are package-level
// globals that persist across tests.
func resetFlags(t *testing.T) {
	t.Helper()
	for _, fs := range []*pflag.FlagSet{
		rootCmd.PersistentFlags(),
		migrateCmd.Flags(),
		configInitCmd.Flags(),
	} {
		fs.VisitAll(func(f *pflag.Flag) {
			require.NoError(t, f.Value.Set(f.DefValue))
			f.Changed = false
		})
	}
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(t)
	t.Cleanup(func() { resetFlags(t) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func legacyContent() string {
	return fixtures.NewSystemDefinitionBuilder(2016, 0).
		AddTarget("Controller", func(tb *fixtures.TargetBuilder) {
			tb.AddChassis("ChassisA", "10.0.0.5", func(c *fixtures.ChassisBuilder) {
				c.AddModule("Mod1", 1)
				c.AddFiller("Empty", 2)
			})
		}).
		AddAlias("A1", "Targets/Controller/Custom Devices/SLSC/ChassisA/Mod1").
		Build()
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
