// Package cli implements the bindery command-line interface using Cobra.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bindery-cli/internal/core/ports/driven"
	"github.com/custodia-labs/bindery-cli/internal/core/ports/driving"
	"github.com/custodia-labs/bindery-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by main (or by tests).
var (
	assembler driving.Assembler
	cfgStore  driven.ConfigStore
	recipes   driven.RecipeStore
)

// verboseFlag enables progress logging to stderr.
var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "bindery",
	Short: "Extract, slice, and recombine PDF pages",
	Long: `Bindery assembles documents from PDF pages: extract signature pages
from a directory of signed agreements, combine them, slice page ranges,
and compile final signed operating agreements.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Print progress to stderr")
}

// SetAssembler injects the assembler service.
func SetAssembler(a driving.Assembler) {
	assembler = a
}

// SetConfigStore injects the configuration store.
func SetConfigStore(s driven.ConfigStore) {
	cfgStore = s
}

// SetRecipeStore injects the recipe store.
func SetRecipeStore(s driven.RecipeStore) {
	recipes = s
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// outputDefaults returns the store's configured defaults, or the zero
// value when no store is wired so flag defaults apply.
func outputDefaults() driven.OutputDefaults {
	if cfgStore == nil {
		return driven.OutputDefaults{}
	}
	return cfgStore.Defaults()
}

// flagOrConfig returns the configured value when the named flag was
// not set on the command line and the config value is non-empty.
func flagOrConfig(cmd *cobra.Command, name, flagVal, cfgVal string) string {
	if !cmd.Flags().Changed(name) && cfgVal != "" {
		return cfgVal
	}
	return flagVal
}
