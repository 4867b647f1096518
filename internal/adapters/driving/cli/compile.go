package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/bindery-cli/internal/core/domain"
	"github.com/custodia-labs/bindery-cli/internal/core/ports/driving"
)

var (
	compileRecipePath string
	compileOutputName string
)

var compileFinalCmd = &cobra.Command{
	Use:   "compile-final [clean-oa] [signed-dir] [investor-sig-page] [manager-sig-page]",
	Short: "Compile a final signed operating agreement",
	Long: `Assembles one final document from a clean (unsigned) operating
agreement and a directory of individually signed copies: every signer's
signature page is extracted from their copy and interleaved with the
clean agreement's pages.

The two page arguments are the zero-based positions of the investor and
manager signature pages within the clean agreement. The assembly
template can be overridden with --recipe, a TOML file of ordered
source/page-range segments.`,
	Args: cobra.ExactArgs(4),
	RunE: runCompileFinal,
}

func init() {
	compileFinalCmd.Flags().StringVar(&compileRecipePath, "recipe", "", "TOML recipe overriding the default assembly template")
	compileFinalCmd.Flags().StringVar(&compileOutputName, "output-name", "", "Name of the final document (defaults to \"<clean name> FINAL COMBINED.pdf\")")
	rootCmd.AddCommand(compileFinalCmd)
}

func runCompileFinal(cmd *cobra.Command, args []string) error {
	if assembler == nil {
		return errors.New("assembler service not configured")
	}

	investorSig, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid investor signature page %q: %w", args[2], err)
	}
	managerSig, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("invalid manager signature page %q: %w", args[3], err)
	}

	var recipe *domain.Recipe
	if compileRecipePath != "" {
		if recipes == nil {
			return errors.New("recipe store not configured")
		}
		loaded, err := recipes.Load(compileRecipePath)
		if err != nil {
			return err
		}
		recipe = &loaded
	}

	outPath, err := assembler.CompileFinal(context.Background(), driving.CompileRequest{
		CleanPath:       args[0],
		SignedDir:       args[1],
		InvestorSigPage: investorSig,
		ManagerSigPage:  managerSig,
		Recipe:          recipe,
		OutputName:      compileOutputName,
	})
	if err != nil {
		return fmt.Errorf("failed to compile final agreement: %w", err)
	}

	cmd.Printf("Created: %s\n", outPath)
	return nil
}
