package store

import (
	"os"
	"path/filepath"
	"testing"

	tu "pagegrid/internal/testutil"
)

func touchFile(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRecent_OrderAndDedup(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	a := touchFile(t, tmp, "a.pdf")
	b := touchFile(t, tmp, "b.pdf")

	if got, err := LoadRecent(); err != nil || len(got) != 0 {
		t.Fatalf("initial list = %v, err %v", got, err)
	}
	for _, p := range []string{a, b, a} {
		if err := TouchRecent(p); err != nil {
			t.Fatalf("TouchRecent(%s): %v", p, err)
		}
	}
	got, err := LoadRecent()
	if err != nil {
		t.Fatalf("LoadRecent: %v", err)
	}
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("expected [a b] most-recent-first, got %v", got)
	}
}

func TestRecent_DropsMissingFiles(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	a := touchFile(t, tmp, "a.pdf")
	if err := TouchRecent(a); err != nil {
		t.Fatal(err)
	}
	if err := os.Remove(a); err != nil {
		t.Fatal(err)
	}
	got, err := LoadRecent()
	if err != nil {
		t.Fatalf("LoadRecent: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("deleted file still listed: %v", got)
	}
}

func TestRecent_RejectsEmptyPath(t *testing.T) {
	if err := TouchRecent("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
