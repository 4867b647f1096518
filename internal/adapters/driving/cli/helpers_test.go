package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/bindery-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bindery-cli/internal/adapters/driven/pdfio/plaindoc"
	"github.com/custodia-labs/bindery-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bindery-cli/internal/core/services"
)

// stubConfigStore is an in-memory driven.ConfigStore for command tests.
type stubConfigStore struct {
	defaults driven.OutputDefaults
	path     string
	saved    bool
	saveErr  error
}

func (s *stubConfigStore) Defaults() driven.OutputDefaults { return s.defaults }
func (s *stubConfigStore) Load() error                     { return nil }
func (s *stubConfigStore) Path() string                    { return s.path }

func (s *stubConfigStore) Save() error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = true
	return nil
}

// setupTestServices swaps in an assembler backed by the plain-text
// DocumentIO and returns a cleanup restoring the previous wiring.
func setupTestServices() func() {
	prevAssembler := assembler
	prevCfgStore := cfgStore
	prevRecipes := recipes

	assembler = services.NewAssemblerService(plaindoc.NewEngine())
	cfgStore = nil
	recipes = file.NewRecipeStore()

	return func() {
		assembler = prevAssembler
		cfgStore = prevCfgStore
		recipes = prevRecipes
	}
}

// execute runs the root command with args and returns its combined
// output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag in the command tree to its default so
// one test's flags cannot leak into the next execution.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
