package config

import (
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/parleyhq/parley/internal/errors"
)

func TestLoadFrom_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom(%q) returned error: %v", path, err)
	}

	if cfg.Producer != ProducerScript {
		t.Errorf("Producer = %q, want %q", cfg.Producer, ProducerScript)
	}
	if cfg.BusinessName != DefaultBusinessName {
		t.Errorf("BusinessName = %q, want %q", cfg.BusinessName, DefaultBusinessName)
	}
	if cfg.TypingDelayMinMs != DefaultTypingDelayMinMs {
		t.Errorf("TypingDelayMinMs = %d, want %d", cfg.TypingDelayMinMs, DefaultTypingDelayMinMs)
	}
	if cfg.TypingDelayMaxMs != DefaultTypingDelayMaxMs {
		t.Errorf("TypingDelayMaxMs = %d, want %d", cfg.TypingDelayMaxMs, DefaultTypingDelayMaxMs)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	cfg.SetProducer(ProducerOpenAI)
	cfg.BusinessName = "Testco"
	cfg.TypingDelayMinMs = 100
	cfg.TypingDelayMaxMs = 200

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom after Save returned error: %v", err)
	}
	if reloaded.GetProducer() != ProducerOpenAI {
		t.Errorf("Producer = %q, want %q", reloaded.GetProducer(), ProducerOpenAI)
	}
	if reloaded.BusinessName != "Testco" {
		t.Errorf("BusinessName = %q, want %q", reloaded.BusinessName, "Testco")
	}
	if reloaded.TypingDelayMinMs != 100 || reloaded.TypingDelayMaxMs != 200 {
		t.Errorf("delay bounds = %d/%d, want 100/200", reloaded.TypingDelayMinMs, reloaded.TypingDelayMaxMs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "bad producer",
			mutate:  func(c *Config) { c.Producer = "carrier-pigeon" },
			wantErr: true,
		},
		{
			name:    "negative delay",
			mutate:  func(c *Config) { c.TypingDelayMinMs = -5 },
			wantErr: true,
		},
		{
			name: "inverted delay bounds",
			mutate: func(c *Config) {
				c.TypingDelayMinMs = 500
				c.TypingDelayMaxMs = 100
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if tt.wantErr && err != nil && !perrors.Is(err, perrors.KindInvalid) {
				t.Errorf("Validate() error kind = %v, want KindInvalid", perrors.GetKind(err))
			}
		})
	}
}

func TestLoadFrom_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("writing corrupt config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Errorf("LoadFrom(corrupt) = nil error, want error")
	}
}
