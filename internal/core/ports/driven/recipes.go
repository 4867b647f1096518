package driven

import "github.com/custodia-labs/bindery-cli/internal/core/domain"

// RecipeStore loads assembly recipes from storage.
type RecipeStore interface {
	// Load reads the recipe at path and validates it.
	// Returns domain.ErrInvalidRecipe (wrapped) if the recipe is
	// malformed.
	Load(path string) (domain.Recipe, error)
}
