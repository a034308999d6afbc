package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-chroma/internal/games/chroma"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseChroma(GetDefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if cfg != DefaultChromaConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultChromaConfig())
	}
}

func TestDefaultRulesMatchEngine(t *testing.T) {
	if got := DefaultChromaConfig().Rules(); got != chroma.DefaultRules() {
		t.Errorf("Rules() = %+v, want %+v", got, chroma.DefaultRules())
	}
}

func TestLoadChromaFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadChroma("")
	if err != nil {
		t.Fatalf("LoadChroma() failed: %v", err)
	}
	if cfg != DefaultChromaConfig() {
		t.Errorf("LoadChroma() = %+v, want defaults", cfg)
	}
}

func TestLoadChromaCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chroma.yaml")
	data := "timer:\n  initial: 12.5\ndisplay:\n  cell_width: 6\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadChroma(path)
	if err != nil {
		t.Fatalf("LoadChroma() failed: %v", err)
	}
	if cfg.Timer.Initial != 12.5 {
		t.Errorf("initial = %v, want 12.5", cfg.Timer.Initial)
	}
	if cfg.Display.CellWidth != 6 {
		t.Errorf("cell width = %d, want 6", cfg.Display.CellWidth)
	}
	// Untouched keys keep their defaults.
	if cfg.Timer.Max != 30 || cfg.Display.TickRate != 10 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadChromaUserDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".chroma", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "chroma.yaml"), []byte("timer:\n  hit_bonus: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadChroma("")
	if err != nil {
		t.Fatalf("LoadChroma() failed: %v", err)
	}
	if cfg.Timer.HitBonus != 4 {
		t.Errorf("hit bonus = %v, want 4", cfg.Timer.HitBonus)
	}
}

func TestLoadChromaErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadChroma(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timer: [not, a, map]"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadChroma(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timer:\n  initial: 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadChroma(invalid)
	if err == nil || !strings.Contains(err.Error(), "timer.max") {
		t.Errorf("expected timer.max validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultChromaConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	cfg.Timer.Initial = 0
	cfg.Display.TickRate = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"timer.initial", "display.tick_rate"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyChromaPreset(t *testing.T) {
	normal := DefaultChromaConfig()
	ApplyChromaPreset(&normal, DifficultyNormal)
	if normal != DefaultChromaConfig() {
		t.Error("normal preset should not change the config")
	}

	easy := DefaultChromaConfig()
	ApplyChromaPreset(&easy, DifficultyEasy)
	if easy.Timer.Initial != 20 || easy.Timer.HitBonus != 3 {
		t.Errorf("easy timer = %+v", easy.Timer)
	}

	hard := DefaultChromaConfig()
	ApplyChromaPreset(&hard, DifficultyHard)
	if hard.Timer.Initial != 10 || hard.Timer.MissPenalty != 4 {
		t.Errorf("hard timer = %+v", hard.Timer)
	}

	tight := DefaultChromaConfig()
	tight.Timer.Max = 15
	ApplyChromaPreset(&tight, DifficultyEasy)
	if tight.Timer.Max != 20 {
		t.Errorf("max = %v, want raised to initial", tight.Timer.Max)
	}
	if err := tight.Validate(); err != nil {
		t.Errorf("preset produced invalid config: %v", err)
	}
}

func TestLoadEnv(t *testing.T) {
	const key = "CHROMA_TEST_LOAD_ENV"
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=77\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv() failed: %v", err)
	}
	if got := EnvInt64(key, 0); got != 77 {
		t.Errorf("EnvInt64 = %d, want 77", got)
	}

	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing .env should not fail: %v", err)
	}
}

func TestEnvFallbacks(t *testing.T) {
	t.Setenv(EnvSeed, "not-a-number")
	if got := EnvInt64(EnvSeed, 5); got != 5 {
		t.Errorf("EnvInt64 with bad value = %d, want fallback 5", got)
	}

	t.Setenv(EnvDBPath, "")
	if got := EnvString(EnvDBPath, "x.db"); got != "x.db" {
		t.Errorf("EnvString with empty value = %q, want fallback", got)
	}

	t.Setenv(EnvDBPath, "/tmp/scores.db")
	if got := EnvString(EnvDBPath, "x.db"); got != "/tmp/scores.db" {
		t.Errorf("EnvString = %q, want /tmp/scores.db", got)
	}
}
