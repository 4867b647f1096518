package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bindery-cli/internal/core/ports/driving"
)

var combineListOutputName string

var combineListCmd = &cobra.Command{
	Use:   "combine-list [file]... [output-dir]",
	Short: "Combine an explicit list of PDFs into one document",
	Long: `Concatenates the given files, in the order given, into a single
document written to the output directory (the last argument). Unlike
combine, the order is the argument order, not the filename order.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runCombineList,
}

func init() {
	combineListCmd.Flags().StringVar(&combineListOutputName, "output-name", "Combined.pdf", "Name of the combined document")
	rootCmd.AddCommand(combineListCmd)
}

func runCombineList(cmd *cobra.Command, args []string) error {
	if assembler == nil {
		return errors.New("assembler service not configured")
	}

	files := args[:len(args)-1]
	outputDir := args[len(args)-1]
	outputName := flagOrConfig(cmd, "output-name", combineListOutputName, outputDefaults().CombineListName)

	outPath, err := assembler.CombineList(context.Background(), driving.CombineListRequest{
		InputFiles: files,
		OutputDir:  outputDir,
		OutputName: outputName,
	})
	if err != nil {
		return fmt.Errorf("failed to combine documents: %w", err)
	}

	cmd.Printf("Created: %s\n", outPath)
	return nil
}
