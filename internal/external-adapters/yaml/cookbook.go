// Package yaml provides YAML interchange for cookbook collections, for
// exchanging recipes with tools that do not read the recept text format.
package yaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mskold/kokbok/internal/domain/entities"
)

// yamlCookbook represents the raw YAML document structure
type yamlCookbook struct {
	Recipes []yamlRecipe `yaml:"recipes"`
}

type yamlRecipe struct {
	Name         string           `yaml:"name"`
	Ingredients  []yamlIngredient `yaml:"ingredients,omitempty"`
	Instructions []string         `yaml:"instructions,omitempty"`
}

type yamlIngredient struct {
	Amount string `yaml:"amount,omitempty"`
	Unit   string `yaml:"unit,omitempty"`
	Name   string `yaml:"name"`
}

// Export renders recipes as a YAML document, preserving order
func Export(recipes []*entities.Recipe) ([]byte, error) {
	doc := yamlCookbook{Recipes: make([]yamlRecipe, 0, len(recipes))}

	for _, recipe := range recipes {
		ingredients := make([]yamlIngredient, 0, len(recipe.Ingredients))
		for _, ingredient := range recipe.Ingredients {
			ingredients = append(ingredients, yamlIngredient{
				Amount: ingredient.Amount,
				Unit:   ingredient.Unit,
				Name:   ingredient.Name,
			})
		}

		doc.Recipes = append(doc.Recipes, yamlRecipe{
			Name:         recipe.Name,
			Ingredients:  ingredients,
			Instructions: recipe.Instructions,
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cookbook: %w", err)
	}
	return data, nil
}

// Import parses a YAML document produced by Export (or written by hand)
// into recipe entities. Every recipe and ingredient must carry a name.
func Import(data []byte) ([]*entities.Recipe, error) {
	var doc yamlCookbook
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	recipes := make([]*entities.Recipe, 0, len(doc.Recipes))
	for i, raw := range doc.Recipes {
		if raw.Name == "" {
			return nil, fmt.Errorf("recipe %d must have a name", i+1)
		}

		recipe := &entities.Recipe{
			Name:         raw.Name,
			Instructions: raw.Instructions,
		}
		for _, ingredient := range raw.Ingredients {
			if ingredient.Name == "" {
				return nil, fmt.Errorf("recipe %q has an ingredient without a name", raw.Name)
			}
			recipe.Ingredients = append(recipe.Ingredients, entities.Ingredient{
				Amount: ingredient.Amount,
				Unit:   ingredient.Unit,
				Name:   ingredient.Name,
			})
		}

		recipes = append(recipes, recipe)
	}

	return recipes, nil
}
