package catalog

import "testing"

// TestVaultSize verifies the library holds exactly 40 entries numbered densely
// from 1.
func TestVaultSize(t *testing.T) {
	entries := Vault()
	if len(entries) != 40 {
		t.Fatalf("vault size = %d, want 40", len(entries))
	}
	for i, e := range entries {
		if e.Number != i+1 {
			t.Errorf("entries[%d].Number = %d, want %d", i, e.Number, i+1)
		}
		if e.Title == "" {
			t.Errorf("entry %d has empty title", e.Number)
		}
		if len(e.Steps) == 0 {
			t.Errorf("entry %d has no steps", e.Number)
		}
	}
}

// TestVaultByNumber verifies lookup by number and the bounds behavior.
func TestVaultByNumber(t *testing.T) {
	entry, ok := VaultByNumber(7)
	if !ok {
		t.Fatal("VaultByNumber(7) not found")
	}
	if entry.Title != "Black on Oxygen (BOO)" {
		t.Errorf("title = %q, want Black on Oxygen (BOO)", entry.Title)
	}

	last, ok := VaultByNumber(40)
	if !ok {
		t.Fatal("VaultByNumber(40) not found")
	}
	if last.Title != "Transition Complex" {
		t.Errorf("title = %q, want Transition Complex", last.Title)
	}

	for _, n := range []int{0, -1, 41} {
		if _, ok := VaultByNumber(n); ok {
			t.Errorf("VaultByNumber(%d) = found, want miss", n)
		}
	}
}

// TestFormattedTitle verifies the numbered display title.
func TestFormattedTitle(t *testing.T) {
	entry, _ := VaultByNumber(2)
	if got := entry.FormattedTitle(); got != "2. Fast 5 Tempo Run" {
		t.Errorf("FormattedTitle() = %q, want %q", got, "2. Fast 5 Tempo Run")
	}
}
