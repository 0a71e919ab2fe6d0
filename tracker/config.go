package tracker

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultFilename is the artifact written next to the host's
// configuration file.
const DefaultFilename = "missing-references.json"

// Options configures the tracker. Start from DefaultOptions; the zero
// value disables the tracker and fails validation.
type Options struct {
	// Enabled gates all three handlers. When false the tracker never
	// reads state, touches files, or records references.
	Enabled bool `yaml:"enabled"`

	// WriteJSON selects record mode: the references collected during
	// this build replace the artifact's contents at build finish. When
	// false the tracker runs in enforce mode, suppressing warnings for
	// references already in the artifact.
	WriteJSON bool `yaml:"write_json"`

	// Filename is the artifact path, resolved relative to the host's
	// configuration directory.
	Filename string `yaml:"filename"`

	// Exclude lists glob patterns (doublestar syntax, ** supported)
	// matched against the path part of a reference's location.
	// Matching references are not recorded.
	Exclude []string `yaml:"exclude"`
}

// DefaultOptions returns the options used when the embedding project
// sets nothing.
func DefaultOptions() Options {
	return Options{
		Enabled:   true,
		WriteJSON: false,
		Filename:  DefaultFilename,
	}
}

// Validate checks that the options are usable.
func (o Options) Validate() error {
	if o.Filename == "" {
		return fmt.Errorf("filename is required")
	}
	for _, pattern := range o.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern: %s", pattern)
		}
	}
	return nil
}
