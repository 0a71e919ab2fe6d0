package tracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/docweave/xreftrack/xref"
)

// artifact is the persisted schema: domain:type -> target -> sorted
// location list.
type artifact map[string]map[string][]string

// loadIgnored reads the artifact at path into an ignore table keyed by
// reference. A missing file means no prior data and yields an empty
// table; a file that exists but cannot be parsed is a fatal error.
func loadIgnored(path string) (map[xref.Key][]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[xref.Key][]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	ignored := make(map[xref.Key][]string)
	for dtype, targets := range art {
		for target, locations := range targets {
			ignored[xref.Key{DomainType: dtype, Target: target}] = locations
		}
	}
	return ignored, nil
}

// saveRecords writes the accumulator to path in the artifact schema,
// replacing any prior contents. Object keys and location lists are
// sorted so the output is reproducible across builds.
func saveRecords(path string, records map[xref.Key]map[string]struct{}) error {
	art := make(artifact, len(records))
	for key, locations := range records {
		targets := art[key.DomainType]
		if targets == nil {
			targets = make(map[string][]string)
			art[key.DomainType] = targets
		}
		sorted := make([]string, 0, len(locations))
		for loc := range locations {
			sorted = append(sorted, loc)
		}
		sort.Strings(sorted)
		targets[key.Target] = sorted
	}

	data, err := json.MarshalIndent(art, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal missing references: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
