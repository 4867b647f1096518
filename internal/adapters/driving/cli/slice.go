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
	sliceStartPage  int
	sliceEndPage    int
	sliceOutputDir  string
	sliceOutputName string
)

var sliceCmd = &cobra.Command{
	Use:   "slice [input-file]",
	Short: "Copy a page range of a PDF into a new document",
	Long: `Copies a contiguous page range of one document into a new document.
The start page is inclusive and the end page exclusive, both zero-based.
Negative values count from the end; an end page of -1 means "through the
last page", so --start-page 0 --end-page -1 copies the whole document.`,
	Args: cobra.ExactArgs(1),
	RunE: runSlice,
}

func init() {
	sliceCmd.Flags().IntVar(&sliceStartPage, "start-page", 0, "Zero-based first page, inclusive")
	sliceCmd.Flags().IntVar(&sliceEndPage, "end-page", -1, "Zero-based end page, exclusive (-1 for through the last page)")
	sliceCmd.Flags().StringVar(&sliceOutputDir, "output-dir", "", "Directory for the sliced document (defaults beside the input file)")
	sliceCmd.Flags().StringVar(&sliceOutputName, "output-name", "Sliced.pdf", "Name of the sliced document")
	rootCmd.AddCommand(sliceCmd)
}

func runSlice(cmd *cobra.Command, args []string) error {
	if assembler == nil {
		return errors.New("assembler service not configured")
	}

	inputFile := args[0]
	outputName := flagOrConfig(cmd, "output-name", sliceOutputName, outputDefaults().SliceName)

	outPath, err := assembler.Slice(context.Background(), driving.SliceRequest{
		InputFile:  inputFile,
		StartPage:  sliceStartPage,
		EndPage:    sliceEndPage,
		OutputDir:  resolveOutDir(filepath.Dir(inputFile), sliceOutputDir),
		OutputName: outputName,
	})
	if err != nil {
		return fmt.Errorf("failed to slice document: %w", err)
	}

	cmd.Printf("Created: %s\n", outPath)
	return nil
}
