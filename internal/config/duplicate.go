package config

import (
	"strconv"

	"github.com/MitchellWeg/PGN-Parser/internal/errors"
)

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Dedupe drops records whose tags and movetext were already written
	Dedupe bool `toml:"dedupe"`

	// DedupeCapacity bounds how many fingerprints are remembered
	DedupeCapacity int `toml:"dedupe_capacity" split_words:"true"`
}

// DefaultDedupeCapacity is the number of fingerprints kept by default.
const DefaultDedupeCapacity = 1 << 20

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{
		DedupeCapacity: DefaultDedupeCapacity,
	}
}

// Validate checks the duplicate settings.
func (d *DuplicateConfig) Validate() error {
	if d.Dedupe && d.DedupeCapacity < 1 {
		return &errors.ConfigError{
			Key:    "dedupe_capacity",
			Value:  strconv.Itoa(d.DedupeCapacity),
			Reason: "must be at least 1 when dedupe is on",
		}
	}
	return nil
}
