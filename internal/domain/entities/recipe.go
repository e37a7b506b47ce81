package entities

import "slices"

// Recipe represents a named dish with ordered ingredients and instructions
type Recipe struct {
	Name         string
	Ingredients  []Ingredient
	Instructions []string
}

// Ingredient represents one recipe component as an (amount, unit, name)
// triple. Amount and unit are free-form text and may be empty.
type Ingredient struct {
	Amount string
	Unit   string
	Name   string
}

// Clone returns a deep copy of the recipe. The copy shares no slice
// storage with the original, so callers may mutate it freely.
func (r *Recipe) Clone() *Recipe {
	return &Recipe{
		Name:         r.Name,
		Ingredients:  slices.Clone(r.Ingredients),
		Instructions: slices.Clone(r.Instructions),
	}
}

// Equal reports structural value equality: same name, same ingredients in
// the same order, same instructions in the same order.
func (r *Recipe) Equal(other *Recipe) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Name == other.Name &&
		slices.Equal(r.Ingredients, other.Ingredients) &&
		slices.Equal(r.Instructions, other.Instructions)
}
