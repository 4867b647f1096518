package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/bindery-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/bindery-cli/internal/adapters/driven/pdfio/pdfcpu"
	"github.com/custodia-labs/bindery-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/bindery-cli/internal/core/services"
)

func main() {
	store, err := file.NewStore("")
	if err != nil {
		// A broken config file should not block the tool; fall back to
		// built-in defaults.
		fmt.Fprintf(os.Stderr, "Warning: ignoring config: %v\n", err)
	}
	if store != nil {
		cli.SetConfigStore(store)
	}
	cli.SetRecipeStore(file.NewRecipeStore())

	cli.SetAssembler(services.NewAssemblerService(pdfcpu.NewEngine()))
	cli.Execute()
}
