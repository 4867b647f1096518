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
	combineOutputDir  string
	combineOutputName string
)

var combineCmd = &cobra.Command{
	Use:   "combine [input-dir]",
	Short: "Combine all PDFs in a directory into one document",
	Long: `Concatenates every PDF in a directory, in lexicographic filename
order, into a single document. Each source document's pages keep their
original order.`,
	Args: cobra.ExactArgs(1),
	RunE: runCombine,
}

func init() {
	combineCmd.Flags().StringVar(&combineOutputDir, "output-dir", "", "Directory for the combined document (defaults beside the input directory)")
	combineCmd.Flags().StringVar(&combineOutputName, "output-name", "Sig Pages Combined.pdf", "Name of the combined document")
	rootCmd.AddCommand(combineCmd)
}

func runCombine(cmd *cobra.Command, args []string) error {
	if assembler == nil {
		return errors.New("assembler service not configured")
	}

	inputDir := args[0]
	outputName := flagOrConfig(cmd, "output-name", combineOutputName, outputDefaults().CombineName)

	outPath, err := assembler.CombineDir(context.Background(), driving.CombineRequest{
		InputDir:   inputDir,
		OutputDir:  resolveOutDir(filepath.Dir(filepath.Clean(inputDir)), combineOutputDir),
		OutputName: outputName,
	})
	if err != nil {
		return fmt.Errorf("failed to combine documents: %w", err)
	}

	cmd.Printf("Created: %s\n", outPath)
	return nil
}
