package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := defaultConfig()
		if cfg.FPS != 30 || cfg.Border != "#" || cfg.Background != "." {
			t.Errorf("got %+v", cfg)
		}
	})

	t.Run("PartialFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "textyle.toml")
		if err := os.WriteFile(path, []byte("fps = 60\nborder = \"*\"\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg := defaultConfig()
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.FPS != 60 || cfg.Border != "*" {
			t.Errorf("got %+v", cfg)
		}
		// Missing keys keep defaults.
		if cfg.Background != "." {
			t.Errorf("background = %q", cfg.Background)
		}
	})
}

func TestCellFromConfig(t *testing.T) {
	if got := cellFromConfig("@", '#'); got.Cluster != "@" {
		t.Errorf("got %q", got.Cluster)
	}
	if got := cellFromConfig("", '#'); got.Cluster != "#" {
		t.Errorf("fallback got %q", got.Cluster)
	}
	// Only the first rune of a longer value is used.
	if got := cellFromConfig("ab", '#'); got.Cluster != "a" {
		t.Errorf("got %q", got.Cluster)
	}
}
