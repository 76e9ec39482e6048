package config

import (
	"strconv"

	"github.com/MitchellWeg/PGN-Parser/internal/errors"
	"github.com/MitchellWeg/PGN-Parser/internal/parser"
)

// ScanConfig holds settings for partitioning and scanning the input.
type ScanConfig struct {
	// Threads is the number of windows and of workers scanning them.
	Threads int `toml:"threads"`

	// LossySeams keeps raw byte cuts between windows instead of moving
	// them to record starts.
	LossySeams bool `toml:"lossy_seams" split_words:"true"`

	// UnknownTags is "drop" or "fold".
	UnknownTags string `toml:"unknown_tags" split_words:"true"`
}

// NewScanConfig creates a ScanConfig with default values.
func NewScanConfig() *ScanConfig {
	return &ScanConfig{
		Threads:     defaultThreads(),
		UnknownTags: parser.DropUnknown.String(),
	}
}

// Validate checks the scan settings.
func (s *ScanConfig) Validate() error {
	if s.Threads < 1 {
		return &errors.ConfigError{Key: "threads", Value: strconv.Itoa(s.Threads), Reason: "must be at least 1"}
	}
	_, err := parser.ParseUnknownTagPolicy(s.UnknownTags)
	return err
}

// UnknownTagPolicy returns the parsed unknown_tags setting, or DropUnknown
// if it does not parse.
func (s *ScanConfig) UnknownTagPolicy() parser.UnknownTagPolicy {
	p, err := parser.ParseUnknownTagPolicy(s.UnknownTags)
	if err != nil {
		return parser.DropUnknown
	}
	return p
}
