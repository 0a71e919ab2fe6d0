package tracker

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/docweave/xreftrack/build"
	"github.com/docweave/xreftrack/xref"
)

// Tracker records cross-reference lookups that fail during one build
// and reconciles them against the previously persisted ignore table.
// A Tracker is scoped to a single build; create a fresh one per run.
type Tracker struct {
	opts   Options
	logger *slog.Logger

	// ignored is loaded at build start and read-only afterwards.
	ignored map[xref.Key][]string
	// records accumulates this build's missing references.
	records map[xref.Key]map[string]struct{}
}

// New creates a tracker with the given options. A nil logger falls back
// to slog.Default.
func New(opts Options, logger *slog.Logger) (*Tracker, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tracker options: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		opts:    opts,
		logger:  logger,
		ignored: map[xref.Key][]string{},
		records: map[xref.Key]map[string]struct{}{},
	}, nil
}

// Register attaches the tracker's handlers to the app's lifecycle
// hooks.
func (t *Tracker) Register(app *build.App) {
	app.OnBuildStarted(t.prepare)
	app.OnMissingReference(t.record)
	app.OnBuildFinished(t.save)
}

// path resolves the artifact location against the host's configuration
// directory.
func (t *Tracker) path(app *build.App) string {
	return filepath.Join(app.ConfDir, t.opts.Filename)
}

// prepare loads the ignore table and, in enforce mode, extends the
// host's nitpick-ignore list so its own suppression takes effect during
// the same build.
func (t *Tracker) prepare(app *build.App) error {
	if !t.opts.Enabled {
		return nil
	}

	ignored, err := loadIgnored(t.path(app))
	if err != nil {
		return err
	}
	t.ignored = ignored

	if !t.opts.WriteJSON && len(ignored) > 0 {
		keys := make([]xref.Key, 0, len(ignored))
		for key := range ignored {
			keys = append(keys, key)
		}
		xref.SortKeys(keys)
		app.NitpickIgnore = append(app.NitpickIgnore, keys...)
	}

	t.logger.Debug("Loaded missing-reference ignore table",
		"file", t.opts.Filename,
		"entries", len(ignored))
	return nil
}

// record stores one unresolved reference in the build accumulator. It
// has no host-visible side effects before build finish.
func (t *Tracker) record(app *build.App, ref xref.Reference) error {
	if !t.opts.Enabled {
		return nil
	}

	loc := location(app, ref)
	if t.excluded(loc) {
		return nil
	}

	key := ref.Key()
	set := t.records[key]
	if set == nil {
		set = make(map[string]struct{})
		t.records[key] = set
	}
	set[loc] = struct{}{}
	return nil
}

// excluded reports whether the path part of a location matches any
// exclude pattern.
func (t *Tracker) excluded(loc string) bool {
	if len(t.opts.Exclude) == 0 {
		return false
	}
	path := loc
	if i := strings.LastIndex(loc, ":"); i >= 0 {
		path = loc[:i]
	}
	for _, pattern := range t.opts.Exclude {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}

// save warns about ignore-table entries that resolved since the last
// record run and, in record mode, replaces the artifact with this
// build's accumulator. The staleness diff never mutates persisted
// state.
func (t *Tracker) save(app *build.App, _ error) error {
	if !t.opts.Enabled {
		return nil
	}

	keys := make([]xref.Key, 0, len(t.ignored))
	for key := range t.ignored {
		keys = append(keys, key)
	}
	xref.SortKeys(keys)

	for _, key := range keys {
		recorded := t.records[key]
		for _, loc := range t.ignored[key] {
			if _, ok := recorded[loc]; ok {
				continue
			}
			app.WarnRef(loc, key.DomainType, fmt.Sprintf(
				"Reference %s for %s can be removed from %s. It is no longer a missing reference in the docs.",
				key, loc, t.opts.Filename))
		}
	}

	if t.opts.WriteJSON {
		if err := saveRecords(t.path(app), t.records); err != nil {
			return err
		}
		t.logger.Info("Wrote missing references",
			"file", t.opts.Filename,
			"entries", len(t.records))
	}
	return nil
}
