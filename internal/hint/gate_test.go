package hint

import (
	"os"
	"path/filepath"
	"testing"
)

// TestSaveLoad_RoundTrip verifies flags survive a save/load cycle.
func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hints.json")
	in := Flags{"v1": true, "v2": false}

	if err := Save(path, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !out["v1"] || out["v2"] {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}

// TestLoad_MissingFile_ReturnsEmpty verifies missing files return empty flags.
func TestLoad_MissingFile_ReturnsEmpty(t *testing.T) {
	out, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty flags, got %+v", out)
	}
}

// TestGate_FirstRunShowsThenDismisses verifies the pending to dismissed flow.
func TestGate_FirstRunShowsThenDismisses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hints.json")
	g := NewGate(path, "v1")

	if !g.ShouldShow() {
		t.Fatalf("expected first run to show the hint")
	}
	g.Dismiss()
	if g.State() != StateDismissed {
		t.Fatalf("expected dismissed state, got %s", g.State())
	}
	if g.ShouldShow() {
		t.Fatalf("expected no hint after dismissal")
	}

	fresh := NewGate(path, "v1")
	if fresh.ShouldShow() {
		t.Fatalf("expected persisted dismissal to survive restarts")
	}
}

// TestGate_NewVersionResurfaces verifies a version bump shows the hint again.
func TestGate_NewVersionResurfaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hints.json")
	g1 := NewGate(path, "v1")
	g1.Dismiss()

	g2 := NewGate(path, "v2")
	if !g2.ShouldShow() {
		t.Fatalf("expected v2 hint to show regardless of v1 dismissal")
	}
	g2.Dismiss()

	out, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !out["v1"] || !out["v2"] {
		t.Fatalf("expected both versions persisted, got %+v", out)
	}
}

// TestGate_StoreFailureShowsEveryTime verifies degraded behavior on bad storage.
func TestGate_StoreFailureShowsEveryTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	g := NewGate(path, "v1")
	if !g.ShouldShow() {
		t.Fatalf("expected corrupt store to degrade to showing")
	}
	if !g.ShouldShow() {
		t.Fatalf("expected repeated shows while store is broken")
	}
}

// TestGate_DismissIsOneShot verifies repeated dismissals are no-ops.
func TestGate_DismissIsOneShot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hints.json")
	g := NewGate(path, "v1")
	g.Dismiss()
	g.Dismiss()
	if g.State() != StateDismissed {
		t.Fatalf("expected dismissed state, got %s", g.State())
	}
}
