package simulation

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.SeparationWeight != 1.5 {
		t.Errorf("SeparationWeight = %v; want 1.5", cfg.SeparationWeight)
	}
	if cfg.AlignmentWeight != 1.0 {
		t.Errorf("AlignmentWeight = %v; want 1.0", cfg.AlignmentWeight)
	}
	if cfg.CohesionWeight != 1.0 {
		t.Errorf("CohesionWeight = %v; want 1.0", cfg.CohesionWeight)
	}
	if cfg.PerceptionRadius != 100 {
		t.Errorf("PerceptionRadius = %v; want 100", cfg.PerceptionRadius)
	}
	if cfg.MaxSpeed != 4.0 {
		t.Errorf("MaxSpeed = %v; want 4.0", cfg.MaxSpeed)
	}
	if cfg.MaxForce != 0.2 {
		t.Errorf("MaxForce = %v; want 0.2", cfg.MaxForce)
	}
	if cfg.NumBoids != 50 {
		t.Errorf("NumBoids = %v; want 50", cfg.NumBoids)
	}
	if cfg.DriftWeight != 0 {
		t.Errorf("DriftWeight = %v; want 0", cfg.DriftWeight)
	}
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeTempConfig(t, `{
		"worldWidth": 640,
		"worldHeight": 480,
		"numBoids": 120,
		"separationWeight": 2.5
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.WorldWidth != 640 || cfg.WorldHeight != 480 {
		t.Errorf("world = %vx%v; want 640x480", cfg.WorldWidth, cfg.WorldHeight)
	}
	if cfg.NumBoids != 120 {
		t.Errorf("NumBoids = %d; want 120", cfg.NumBoids)
	}
	if cfg.SeparationWeight != 2.5 {
		t.Errorf("SeparationWeight = %v; want 2.5", cfg.SeparationWeight)
	}
	// Fields missing from the file keep their defaults.
	if cfg.PerceptionRadius != 100 {
		t.Errorf("PerceptionRadius = %v; want default 100", cfg.PerceptionRadius)
	}
	if cfg.MaxSpeed != 4.0 {
		t.Errorf("MaxSpeed = %v; want default 4.0", cfg.MaxSpeed)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Malformed json", `{"worldWidth": `},
		{"Wrong type", `{"numBoids": "lots"}`},
		{"Unknown property", `{"boidCount": 10}`},
		{"Zero world width", `{"worldWidth": 0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempConfig(t, tt.content)
			if _, err := LoadConfig(path); err == nil {
				t.Errorf("LoadConfig accepted %s", tt.content)
			}
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("LoadConfig accepted a missing file")
	}
}
