package recept

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/mskold/kokbok/internal/domain/entities"
	"github.com/mskold/kokbok/internal/domain/events"
	"github.com/mskold/kokbok/internal/domain/interfaces"
	"github.com/mskold/kokbok/internal/domain/interfaces/repositories"
)

var _ repositories.CookbookRepository = (*Repository)(nil)

// Sentinel errors for the repository's index and lookup contracts
var (
	ErrIndexOutOfRange = errors.New("recipe index out of range")
	ErrNotFound        = errors.New("recipe not found")
)

const filePerms = 0o600

// Repository implements repositories.CookbookRepository on top of the
// recept text format.
//
// The repository exclusively owns its collection: accessors hand out deep
// copies and mutators operate only on the owned slice. It is not safe for
// concurrent use; a single logical caller is assumed.
type Repository struct {
	recipes  []*entities.Recipe
	modified bool
	notifier *events.Notifier
	log      interfaces.Logger
}

// NewRepository creates an empty repository. A nil logger disables logging.
func NewRepository(log interfaces.Logger) *Repository {
	if log == nil {
		log = &interfaces.NoOpLogger{}
	}
	return &Repository{
		recipes:  make([]*entities.Recipe, 0),
		notifier: events.NewNotifier(),
		log:      log,
	}
}

// Load reads the cookbook at path and replaces the owned collection with
// the parsed result, sorted by name. The previous collection and the
// modification flag survive any failure: nothing is installed until the
// whole file has parsed.
func (r *Repository) Load(path string) error {
	//nolint:gosec // G304: path is the caller's cookbook file
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read cookbook %s: %w", path, err)
	}

	parsed, err := Parse(SplitLines(string(data)))
	if err != nil {
		return fmt.Errorf("failed to parse cookbook %s: %w", path, err)
	}

	r.recipes = parsed
	r.modified = false
	r.log.Info("cookbook loaded", interfaces.F("path", path), interfaces.F("recipes", len(parsed)))
	r.notifier.Notify()

	return nil
}

// Save serializes the owned collection and overwrites the file at path.
// The write is atomic (temp file + rename), so a failed save never leaves
// a truncated cookbook behind. Clears the modification flag on success.
func (r *Repository) Save(path string) error {
	lines := Serialize(r.recipes)

	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}

	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write cookbook %s: %w", path, err)
	}
	// atomic.WriteFile leaves temp-file permissions on new files
	if err := os.Chmod(path, filePerms); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}

	r.modified = false
	r.log.Info("cookbook saved", interfaces.F("path", path), interfaces.F("recipes", len(r.recipes)))

	return nil
}

// GetAll returns one independent deep copy per owned recipe, in stored
// order. Mutating the result never affects the repository.
func (r *Repository) GetAll() []*entities.Recipe {
	copies := make([]*entities.Recipe, len(r.recipes))
	for i, recipe := range r.recipes {
		copies[i] = recipe.Clone()
	}
	return copies
}

// GetAt returns a deep copy of the recipe at index
func (r *Repository) GetAt(index int) (*entities.Recipe, error) {
	if index < 0 || index >= len(r.recipes) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(r.recipes))
	}
	return r.recipes[index].Clone(), nil
}

// Delete removes the first owned element matching recipe: by pointer
// identity when the caller still holds an owned pointer (fast path), then
// by value equality, which is the common case for copies handed out by
// GetAll/GetAt. Returns ErrNotFound and removes nothing when no element
// matches.
func (r *Repository) Delete(recipe *entities.Recipe) error {
	if recipe == nil {
		return fmt.Errorf("%w: nil recipe", ErrNotFound)
	}

	index := slices.IndexFunc(r.recipes, func(owned *entities.Recipe) bool {
		return owned == recipe
	})
	if index < 0 {
		index = slices.IndexFunc(r.recipes, func(owned *entities.Recipe) bool {
			return owned.Equal(recipe)
		})
	}
	if index < 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, recipe.Name)
	}

	r.recipes = slices.Delete(r.recipes, index, index+1)
	r.modified = true
	r.log.Info("recipe deleted", interfaces.F("name", recipe.Name), interfaces.F("remaining", len(r.recipes)))
	r.notifier.Notify()

	return nil
}

// DeleteAt removes the recipe at index
func (r *Repository) DeleteAt(index int) error {
	if index < 0 || index >= len(r.recipes) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, index, len(r.recipes))
	}
	return r.Delete(r.recipes[index])
}

// Count returns the number of owned recipes
func (r *Repository) Count() int {
	return len(r.recipes)
}

// IsModified reports whether the collection has mutations not yet saved.
// Reads never change it; Load and Save clear it.
func (r *Repository) IsModified() bool {
	return r.modified
}

// Subscribe registers a callback fired once after each committed mutation
func (r *Repository) Subscribe(fn events.ChangeFunc) events.SubscriptionID {
	return r.notifier.Subscribe(fn)
}

// Unsubscribe removes a previously registered callback
func (r *Repository) Unsubscribe(id events.SubscriptionID) {
	r.notifier.Unsubscribe(id)
}

// SplitLines splits file content into lines, tolerating CRLF endings. A
// trailing newline does not produce a phantom final line for the parser,
// which skips blanks anyway.
func SplitLines(content string) []string {
	return strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
}
