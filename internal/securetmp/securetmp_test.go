package securetmp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStageAndRelease(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir, nil)

	payload := []byte("fake image bytes")
	h, err := m.Stage(payload)
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}

	if filepath.Dir(h.Path()) != dir {
		t.Errorf("staged outside requested dir: %s", h.Path())
	}

	info, err := os.Stat(h.Path())
	if err != nil {
		t.Fatalf("stat staged file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("staged file mode = %o, want 600", perm)
	}
	if info.Size() != int64(len(payload)) {
		t.Errorf("staged file size = %d, want %d", info.Size(), len(payload))
	}

	got, err := os.ReadFile(h.Path())
	if err != nil {
		t.Fatalf("read staged file: %v", err)
	}
	if string(got) != string(payload) {
		t.Error("staged content differs from payload")
	}

	h.Release()
	if _, err := os.Stat(h.Path()); !os.IsNotExist(err) {
		t.Errorf("staged file still exists after release: %v", err)
	}
}

func TestReleaseIdempotent(t *testing.T) {
	m := NewManager(t.TempDir(), nil)

	h, err := m.Stage([]byte("payload"))
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}

	h.Release()
	h.Release() // second call must be a no-op
	h.Release()

	if _, err := os.Stat(h.Path()); !os.IsNotExist(err) {
		t.Errorf("staged file still exists: %v", err)
	}
}

func TestReleaseAfterExternalRemoval(t *testing.T) {
	m := NewManager(t.TempDir(), nil)

	h, err := m.Stage([]byte("payload"))
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if err := os.Remove(h.Path()); err != nil {
		t.Fatalf("remove: %v", err)
	}

	// Must not panic or recreate the file.
	h.Release()
	if _, err := os.Stat(h.Path()); !os.IsNotExist(err) {
		t.Errorf("file reappeared after release: %v", err)
	}
}

func TestHashPrefix(t *testing.T) {
	a := HashPrefix([]byte("payload a"))
	b := HashPrefix([]byte("payload b"))

	if len(a) != 12 {
		t.Errorf("prefix length = %d, want 12 hex chars", len(a))
	}
	if a == b {
		t.Error("distinct payloads produced identical prefixes")
	}
	if a != HashPrefix([]byte("payload a")) {
		t.Error("prefix not deterministic")
	}
	if strings.ToLower(a) != a {
		t.Error("prefix not lower-case hex")
	}
}

func TestStagedNamesAreUnique(t *testing.T) {
	m := NewManager(t.TempDir(), nil)

	payload := []byte("same payload")
	h1, err := m.Stage(payload)
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	defer h1.Release()
	h2, err := m.Stage(payload)
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	defer h2.Release()

	if h1.Path() == h2.Path() {
		t.Error("two staged files share a path")
	}
}
