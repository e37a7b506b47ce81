package recept

import (
	"fmt"

	"github.com/mskold/kokbok/internal/domain/entities"
)

// Serialize renders recipes as cookbook lines in the given order. A single
// blank line separates consecutive recipes; Parse skips blanks, so the
// output round-trips.
func Serialize(recipes []*entities.Recipe) []string {
	lines := make([]string, 0, estimateLines(recipes))

	for i, recipe := range recipes {
		if i > 0 {
			lines = append(lines, "")
		}

		lines = append(lines, MarkerRecipe, recipe.Name, MarkerIngredients)
		for _, ingredient := range recipe.Ingredients {
			lines = append(lines, fmt.Sprintf("%s;%s;%s", ingredient.Amount, ingredient.Unit, ingredient.Name))
		}

		lines = append(lines, MarkerInstructions)
		lines = append(lines, recipe.Instructions...)
	}

	return lines
}

func estimateLines(recipes []*entities.Recipe) int {
	total := 0
	for _, recipe := range recipes {
		// Three markers, the name and a separator
		total += 5 + len(recipe.Ingredients) + len(recipe.Instructions)
	}
	return total
}
