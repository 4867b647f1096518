package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bindery-cli/internal/core/ports/driving"
)

var (
	extractPageNumber int
	extractOutputDir  string
	extractPrefix     string
)

var extractCmd = &cobra.Command{
	Use:   "extract [input-dir]",
	Short: "Extract a single page from each PDF in a directory",
	Long: `Extracts the same page from every PDF in a directory and writes each
page as its own document, named after the source file with a prefix.
Useful for pulling signature pages out of individually signed agreements.

Page numbers are zero-based; negative values count from the end of each
document (-1 is the last page).`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().IntVarP(&extractPageNumber, "page-number", "p", 0, "Zero-based page to extract (negative counts from the end)")
	extractCmd.Flags().StringVar(&extractOutputDir, "output-dir", "Sig Pages", "Directory for extracted pages (relative paths resolve beside the input directory)")
	extractCmd.Flags().StringVar(&extractPrefix, "output-prefix", "Sig Page - ", "Prefix for output file names")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if assembler == nil {
		return errors.New("assembler service not configured")
	}

	inputDir := args[0]
	defaults := outputDefaults()
	outputDir := flagOrConfig(cmd, "output-dir", extractOutputDir, defaults.ExtractOutputDir)
	prefix := flagOrConfig(cmd, "output-prefix", extractPrefix, defaults.ExtractPrefix)

	created, err := assembler.ExtractPage(context.Background(), driving.ExtractRequest{
		InputDir:   inputDir,
		PageNumber: extractPageNumber,
		OutputDir:  resolveOutDir(filepath.Dir(filepath.Clean(inputDir)), outputDir),
		Prefix:     prefix,
	})
	if err != nil {
		return fmt.Errorf("failed to extract pages: %w", err)
	}

	for _, path := range created {
		cmd.Printf("Created: %s\n", path)
	}
	cmd.Printf("Extracted page %d from %d document(s).\n", extractPageNumber, len(created))
	return nil
}

// resolveOutDir places a relative output directory beside base.
// Absolute paths are used as given; empty means base itself.
func resolveOutDir(base, dir string) string {
	if dir == "" {
		return base
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}
