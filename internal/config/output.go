package config

import (
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/MitchellWeg/PGN-Parser/internal/errors"
	"github.com/MitchellWeg/PGN-Parser/internal/output"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format is the record encoding: "csv" or "jsonl".
	Format string `toml:"format"`

	// Delimiter separates CSV fields. It must be a single character.
	Delimiter string `toml:"delimiter"`

	// Split starts a new numbered output file every Split records.
	// 0 writes a single file.
	Split int `toml:"split"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:    output.FormatCSV,
		Delimiter: ",",
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if !slices.Contains(output.Formats(), o.Format) {
		return &errors.ConfigError{Key: "format", Value: o.Format, Reason: "want csv or jsonl"}
	}
	if _, err := o.DelimiterRune(); err != nil {
		return err
	}
	if o.Split < 0 {
		return &errors.ConfigError{Key: "split", Value: strconv.Itoa(o.Split), Reason: "must not be negative"}
	}
	return nil
}

// DelimiterRune returns the delimiter as a rune.
func (o *OutputConfig) DelimiterRune() (rune, error) {
	r, size := utf8.DecodeRuneInString(o.Delimiter)
	if size == 0 || size != len(o.Delimiter) || r == utf8.RuneError {
		return 0, &errors.ConfigError{Key: "delimiter", Value: o.Delimiter, Reason: "must be a single character"}
	}
	if r == '"' || r == '\r' || r == '\n' {
		return 0, &errors.ConfigError{Key: "delimiter", Value: o.Delimiter, Reason: "reserved character"}
	}
	return r, nil
}

// WriterOptions converts the settings for output.NewWriter.
func (o *OutputConfig) WriterOptions() output.Options {
	r, err := o.DelimiterRune()
	if err != nil {
		r = ','
	}
	return output.Options{Delimiter: r}
}
