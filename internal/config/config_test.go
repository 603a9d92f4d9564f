package config

import (
	"os"
	"path/filepath"
	"testing"

	tu "pagegrid/internal/testutil"
)

func TestLoad_MissingYieldsDefaults(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	s, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s != Default() {
		t.Fatalf("missing file did not yield defaults: %+v", s)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	want := Default()
	want.ClickThresholdCells = 3
	want.BlockModifier = "ctrl"
	want.SplitRatio = 0.4
	if err := Save(want); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}

func TestLoad_NormalizesBadValues(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	p, err := Path()
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	raw := `{"clickThresholdCells": -5, "blockModifier": "hyper", "splitRatio": 7}`
	if err := os.WriteFile(p, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if s.ClickThresholdCells != 1 || s.BlockModifier != "alt" || s.SplitRatio != 0.5 {
		t.Fatalf("not normalized: %+v", s)
	}
}

func TestLoad_CorruptFileReturnsDefaultsWithError(t *testing.T) {
	tmp := t.TempDir()
	defer tu.WithEnv(t, "XDG_CONFIG_HOME", tmp)()
	defer tu.WithEnv(t, "HOME", tmp)()

	p, err := Path()
	if err != nil {
		t.Fatalf("Path error: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load()
	if err == nil {
		t.Fatal("corrupt file should report an error")
	}
	if s != Default() {
		t.Fatalf("corrupt file should still yield defaults: %+v", s)
	}
}

func TestSettingsSchema(t *testing.T) {
	b, err := MarshalSchema(SettingsSchema())
	if err != nil {
		t.Fatalf("MarshalSchema error: %v", err)
	}
	if len(b) == 0 {
		t.Fatal("empty schema")
	}
}
