package test_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mskold/kokbok/internal/external-adapters/recept"
	"github.com/mskold/kokbok/internal/external-adapters/yaml"
)

// TestEndToEnd_LoadDeleteSaveReload runs the full lifecycle a session
// performs: load a cookbook, delete a recipe through a caller-held copy,
// save, and reload the result.
func TestEndToEnd_LoadDeleteSaveReload(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "kokbok.txt")

	cookbook := `[Recept]
Pancakes
[Ingredienser]
2;dl;flour
3;st;eggs
[Instruktioner]
Mix ingredients
Fry on pan

[Recept]
Apple pie
[Ingredienser]
4;st;apples
[Instruktioner]
Bake at 200C
`
	if err := os.WriteFile(path, []byte(cookbook), 0o600); err != nil {
		t.Fatal(err)
	}

	repo := recept.NewRepository(nil)

	notifications := 0
	repo.Subscribe(func() { notifications++ })

	if err := repo.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if repo.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", repo.Count())
	}

	// Sorted on load
	first, err := repo.GetAt(0)
	if err != nil {
		t.Fatalf("GetAt(0) error = %v", err)
	}
	if first.Name != "Apple pie" {
		t.Fatalf("GetAt(0).Name = %q, want Apple pie", first.Name)
	}

	// Delete through the copy, as the presentation layer would
	if err := repo.Delete(first); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if !repo.IsModified() {
		t.Error("IsModified() should be true after delete")
	}
	if notifications != 2 {
		t.Errorf("notifications = %d, want 2 (one per Load and Delete)", notifications)
	}

	if err := repo.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if repo.IsModified() {
		t.Error("IsModified() should be false after save")
	}

	reloaded := recept.NewRepository(nil)
	if err := reloaded.Load(path); err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if reloaded.Count() != 1 {
		t.Fatalf("reloaded Count() = %d, want 1", reloaded.Count())
	}
	remaining, _ := reloaded.GetAt(0)
	if remaining.Name != "Pancakes" {
		t.Errorf("remaining recipe = %q, want Pancakes", remaining.Name)
	}
	if len(remaining.Ingredients) != 2 || len(remaining.Instructions) != 2 {
		t.Errorf("reloaded recipe lost data: %+v", remaining)
	}
}

// TestEndToEnd_YAMLInterchange exports a loaded cookbook to YAML and
// brings it back through the text serializer.
func TestEndToEnd_YAMLInterchange(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "kokbok.txt")

	cookbook := `[Recept]
Tea
[Ingredienser]
1;tsk;tea leaves
2;dl;water
[Instruktioner]
Boil water
Steep
`
	if err := os.WriteFile(path, []byte(cookbook), 0o600); err != nil {
		t.Fatal(err)
	}

	repo := recept.NewRepository(nil)
	if err := repo.Load(path); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	data, err := yaml.Export(repo.GetAll())
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	imported, err := yaml.Import(data)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	reparsed, err := recept.Parse(recept.Serialize(imported))
	if err != nil {
		t.Fatalf("Parse(Serialize()) error = %v", err)
	}

	want := repo.GetAll()
	if len(reparsed) != len(want) {
		t.Fatalf("interchange count = %d, want %d", len(reparsed), len(want))
	}
	for i := range want {
		if !reparsed[i].Equal(want[i]) {
			t.Errorf("interchange changed recipe %d:\n got %+v\nwant %+v", i, reparsed[i], want[i])
		}
	}
}
