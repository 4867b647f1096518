package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage bindery configuration",
	Long: `View and manage the bindery configuration file, which holds the
default output directories, prefixes, and file names for each command.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the configuration file",
	Long: `Writes the current configuration to disk so it can be edited. Existing
values are preserved; missing fields are filled with the built-in
defaults.`,
	RunE: runConfigInit,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if cfgStore == nil {
		return errors.New("config store not configured")
	}

	defaults := cfgStore.Defaults()

	cmd.Printf("Config file: %s\n", cfgStore.Path())
	cmd.Println()
	cmd.Println("[extract]")
	cmd.Printf("  output_dir = %q\n", defaults.ExtractOutputDir)
	cmd.Printf("  prefix = %q\n", defaults.ExtractPrefix)
	cmd.Println()
	cmd.Println("[combine]")
	cmd.Printf("  output_name = %q\n", defaults.CombineName)
	cmd.Println()
	cmd.Println("[slice]")
	cmd.Printf("  output_name = %q\n", defaults.SliceName)
	cmd.Println()
	cmd.Println("[combine_list]")
	cmd.Printf("  output_name = %q\n", defaults.CombineListName)
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	if cfgStore == nil {
		return errors.New("config store not configured")
	}

	if err := cfgStore.Save(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	cmd.Printf("Created: %s\n", cfgStore.Path())
	return nil
}
