package file

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/bindery-cli/internal/core/domain"
	"github.com/custodia-labs/bindery-cli/internal/core/ports/driven"
)

// Ensure RecipeStore implements the interface.
var _ driven.RecipeStore = (*RecipeStore)(nil)

// RecipeStore loads assembly recipes from TOML files:
//
//	[[segment]]
//	source = "clean"
//	start = 0
//	end = 27
//
//	[[segment]]
//	source = "signatures"
//	start = 0
//	end = -1
type RecipeStore struct{}

// NewRecipeStore creates a TOML-based recipe store.
func NewRecipeStore() *RecipeStore {
	return &RecipeStore{}
}

// Load reads the recipe at path. The recipe is validated before being
// returned.
func (*RecipeStore) Load(path string) (domain.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("failed to read recipe %s: %w", path, err)
	}

	var recipe domain.Recipe
	if err := toml.Unmarshal(data, &recipe); err != nil {
		return domain.Recipe{}, fmt.Errorf("failed to parse recipe %s: %w", path, err)
	}

	if err := recipe.Validate(); err != nil {
		return domain.Recipe{}, fmt.Errorf("recipe %s: %w", path, err)
	}
	return recipe, nil
}
