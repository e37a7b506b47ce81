// Package recept implements the section-delimited plain-text cookbook
// format and the file-backed repository built on it.
//
// A cookbook file is a sequence of lines. Three literal marker lines
// delimit regions:
//
//	[Recept]
//	Pancakes
//	[Ingredienser]
//	2;dl;flour
//	[Instruktioner]
//	Mix and fry
//
// Blank lines are ignored everywhere. Ingredient lines carry exactly three
// semicolon-separated fields; there is no escaping for a literal ';'
// inside a field.
package recept

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mskold/kokbok/internal/domain/entities"
)

// Section markers. Exact, case-sensitive literal lines with no leading or
// trailing content.
const (
	MarkerRecipe       = "[Recept]"
	MarkerIngredients  = "[Ingredienser]"
	MarkerInstructions = "[Instruktioner]"
)

// ErrFormat is the sentinel all parse failures unwrap to
var ErrFormat = errors.New("malformed cookbook")

// ParseError describes where and why parsing failed
type ParseError struct {
	Line   int // 1-based line number in the input
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: line %d: %s", ErrFormat, e.Line, e.Reason)
}

// Unwrap lets callers match with errors.Is(err, ErrFormat)
func (e *ParseError) Unwrap() error {
	return ErrFormat
}

// readState is the parse cursor, local to one Parse call
type readState int

const (
	stateIndefinite readState = iota
	stateExpectingName
	stateReadingIngredients
	stateReadingInstructions
)

// Parse converts cookbook lines into recipes sorted by name.
//
// The cursor starts indefinite; only marker lines advance it. Content
// before the first recipe marker, an ingredient or instruction section
// before any recipe has been named, and ingredient lines that do not split
// into exactly three fields all fail with a *ParseError. A recipe with an
// empty ingredient or instruction section is valid.
func Parse(lines []string) ([]*entities.Recipe, error) {
	recipes := make([]*entities.Recipe, 0)
	state := stateIndefinite
	var current *entities.Recipe

	for i, raw := range lines {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		switch raw {
		case MarkerRecipe:
			state = stateExpectingName
			continue
		case MarkerIngredients:
			if current == nil {
				return nil, &ParseError{Line: i + 1, Reason: "ingredient section before any recipe"}
			}
			state = stateReadingIngredients
			continue
		case MarkerInstructions:
			if current == nil {
				return nil, &ParseError{Line: i + 1, Reason: "instruction section before any recipe"}
			}
			state = stateReadingInstructions
			continue
		}

		switch state {
		case stateExpectingName:
			current = &entities.Recipe{Name: strings.TrimSpace(raw)}
			recipes = append(recipes, current)

		case stateReadingIngredients:
			ingredient, err := parseIngredient(raw)
			if err != nil {
				return nil, &ParseError{Line: i + 1, Reason: err.Error()}
			}
			current.Ingredients = append(current.Ingredients, ingredient)

		case stateReadingInstructions:
			current.Instructions = append(current.Instructions, strings.TrimSpace(raw))

		case stateIndefinite:
			return nil, &ParseError{Line: i + 1, Reason: "content outside any section"}
		}
	}

	// Byte-wise ordinal ordering, stable for equal names
	sort.SliceStable(recipes, func(a, b int) bool {
		return recipes[a].Name < recipes[b].Name
	})

	return recipes, nil
}

// parseIngredient splits an "amount;unit;name" line. Amount and unit may
// be empty after trimming; the name may not.
func parseIngredient(line string) (entities.Ingredient, error) {
	parts := strings.Split(line, ";")
	if len(parts) != 3 {
		return entities.Ingredient{}, fmt.Errorf("ingredient %q has %d fields, want 3", line, len(parts))
	}

	ingredient := entities.Ingredient{
		Amount: strings.TrimSpace(parts[0]),
		Unit:   strings.TrimSpace(parts[1]),
		Name:   strings.TrimSpace(parts[2]),
	}
	if ingredient.Name == "" {
		return entities.Ingredient{}, fmt.Errorf("ingredient %q has an empty name", line)
	}

	return ingredient, nil
}
