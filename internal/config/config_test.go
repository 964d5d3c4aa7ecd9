package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvGifDir, EnvScale, EnvSound, EnvDebug, EnvSeed} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want %+v", cfg, Default())
	}
}

func TestLoadEnvThenFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvGifDir, "/tmp/reactions")
	t.Setenv(EnvScale, "2")
	t.Setenv(EnvSound, "false")

	cfg, err := Load("", []string{"-scale", "3", "-seed", "99"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{GifDir: "/tmp/reactions", Scale: 3, Sound: false, Seed: 99}
	if cfg != want {
		t.Fatalf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv(EnvDebug)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(EnvDebug+"=true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Debug {
		t.Fatal("debug from .env not applied")
	}
}

func TestLoadMissingDotEnvIsFine(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.env"), nil); err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad scale env", map[string]string{EnvScale: "big"}, nil},
		{"bad sound env", map[string]string{EnvSound: "loud"}, nil},
		{"scale out of range", nil, []string{"-scale", "9"}},
		{"empty gif dir", nil, []string{"-gifs", ""}},
		{"unknown flag", nil, []string{"-speed", "5"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			if _, err := Load("", c.args); err == nil {
				t.Fatal("want error")
			}
		})
	}
}
