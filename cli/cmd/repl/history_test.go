package repl

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestHistory(t *testing.T) *History {
	t.Helper()

	return NewHistory(filepath.Join(t.TempDir(), baseHistory))
}

func TestHistory_WriteAndLoad(t *testing.T) {
	h := newTestHistory(t)

	entries := []struct {
		line string
		mode inputMode
	}{
		{"1 + 2", modeEval},
		{"vars", modeCtrl},
		{"x = 3", modeEval},
	}

	for _, e := range entries {
		if _, err := h.WriteWithMode(e.line, e.mode); err != nil {
			t.Fatalf("WriteWithMode(%q) failed: %v", e.line, err)
		}
	}

	// Reload from disk and verify entries round-trip with their modes.
	reloaded := NewHistory(h.path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if reloaded.Len() != len(entries) {
		t.Fatalf("Len() = %d, want %d", reloaded.Len(), len(entries))
	}

	for i, e := range entries {
		got, err := reloaded.GetEntry(i)
		if err != nil {
			t.Fatalf("GetEntry(%d) failed: %v", i, err)
		}

		if got.Line != e.line || got.Mode != e.mode {
			t.Errorf("GetEntry(%d) = {%q, %v}, want {%q, %v}",
				i, got.Line, got.Mode, e.line, e.mode)
		}
	}
}

func TestHistory_DeduplicatesEntries(t *testing.T) {
	h := newTestHistory(t)

	for _, line := range []string{"a = 1", "b = 2", "a = 1"} {
		if _, err := h.WriteWithMode(line, modeEval); err != nil {
			t.Fatal(err)
		}
	}

	// The earlier duplicate is removed, the repeat moves to the end.
	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}

	last, err := h.GetEntry(1)
	if err != nil {
		t.Fatal(err)
	}

	if last.Line != "a = 1" {
		t.Errorf("last entry = %q, want %q", last.Line, "a = 1")
	}
}

func TestHistory_SkipsConsecutiveDuplicate(t *testing.T) {
	h := newTestHistory(t)

	for range 3 {
		if _, err := h.WriteWithMode("1 + 1", modeEval); err != nil {
			t.Fatal(err)
		}
	}

	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}
}

func TestHistory_SameLineDifferentModes(t *testing.T) {
	h := newTestHistory(t)

	// "reset" typed as an expression and as a command are distinct entries.
	if _, err := h.WriteWithMode("reset", modeEval); err != nil {
		t.Fatal(err)
	}

	if _, err := h.WriteWithMode("reset", modeCtrl); err != nil {
		t.Fatal(err)
	}

	if h.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.Len())
	}
}

func TestHistory_LegacyFormatDefaultsToEval(t *testing.T) {
	path := filepath.Join(t.TempDir(), baseHistory)

	// Lines without a mode prefix come from older history files.
	if err := os.WriteFile(path, []byte("1 + 2\nC:quit\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatal(err)
	}

	first, err := h.GetEntry(0)
	if err != nil {
		t.Fatal(err)
	}

	if first.Mode != modeEval {
		t.Errorf("legacy entry mode = %v, want modeEval", first.Mode)
	}

	second, err := h.GetEntry(1)
	if err != nil {
		t.Fatal(err)
	}

	if second.Mode != modeCtrl || second.Line != "quit" {
		t.Errorf("prefixed entry = {%q, %v}, want {%q, modeCtrl}",
			second.Line, second.Mode, "quit")
	}
}

func TestHistory_Clear(t *testing.T) {
	h := newTestHistory(t)

	if _, err := h.WriteWithMode("1 + 2", modeEval); err != nil {
		t.Fatal(err)
	}

	if err := h.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", h.Len())
	}

	// The file is truncated, so a reload stays empty.
	reloaded := NewHistory(h.path)
	if err := reloaded.Load(); err != nil {
		t.Fatal(err)
	}

	if reloaded.Len() != 0 {
		t.Errorf("reloaded Len() = %d, want 0", reloaded.Len())
	}
}

func TestHistory_GetEntryOutOfBounds(t *testing.T) {
	h := newTestHistory(t)

	if _, err := h.GetEntry(0); err != ErrOutOfBounds {
		t.Errorf("GetEntry(0) error = %v, want ErrOutOfBounds", err)
	}

	if _, err := h.GetEntry(-1); err != ErrOutOfBounds {
		t.Errorf("GetEntry(-1) error = %v, want ErrOutOfBounds", err)
	}
}

func TestHistory_LoadMissingFile(t *testing.T) {
	h := NewHistory(filepath.Join(t.TempDir(), "does-not-exist"))

	if err := h.Load(); err != nil {
		t.Errorf("Load() on missing file = %v, want nil", err)
	}
}
