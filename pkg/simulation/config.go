package simulation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed config.schema.json
var configSchema string

// Config holds the world bounds and the live-tunable simulation knobs.
// An instance is shared by reference between the UI and the Flock, so slider
// changes are picked up on the next tick. None of the knobs are validated at
// mutation time: the update loop must accept any numeric value, the ranges
// in the schema only apply to values loaded from a file.
type Config struct {
	// World dimensions (wrap bounds), fixed at construction.
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	NumBoids int `json:"numBoids"`

	// Steering rule weights
	SeparationWeight float64 `json:"separationWeight"`
	AlignmentWeight  float64 `json:"alignmentWeight"`
	CohesionWeight   float64 `json:"cohesionWeight"`

	// Neighbor scan radius shared by all three rules
	PerceptionRadius float64 `json:"perceptionRadius"`

	// Per-boid kinematic limits, applied uniformly to the whole flock
	MaxSpeed float64 `json:"maxSpeed"`
	MaxForce float64 `json:"maxForce"`

	// Perlin drift strength; 0 disables the drift force entirely
	DriftWeight float64 `json:"driftWeight"`
}

func DefaultConfig() *Config {
	return &Config{
		WorldWidth:       1000,
		WorldHeight:      800,
		NumBoids:         50,
		SeparationWeight: 1.5,
		AlignmentWeight:  1.0,
		CohesionWeight:   1.0,
		PerceptionRadius: 100,
		MaxSpeed:         4.0,
		MaxForce:         0.2,
		DriftWeight:      0,
	}
}

// LoadConfig loads configuration from a JSON file and validates it against
// the embedded schema. Values missing from the file keep their defaults.
func LoadConfig(configFile string) (*Config, error) {
	sch, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}

	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
