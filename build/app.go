// Package build provides the host-side surface a documentation build
// exposes to plugins: a per-build context object, typed lifecycle hooks,
// and the nitpick-ignore list used to suppress reference warnings.
package build

import (
	"fmt"
	"log/slog"

	"github.com/docweave/xreftrack/xref"
)

// Lifecycle hooks. The orchestrator invokes each list in registration
// order; the first hook error aborts the build.
type (
	// BuildStartedHook runs once before the first document is read.
	BuildStartedHook func(app *App) error

	// MissingReferenceHook runs once per unresolved cross-reference.
	MissingReferenceHook func(app *App, ref xref.Reference) error

	// BuildFinishedHook runs once at the end of the build. buildErr is
	// the outcome of the build itself, nil on success.
	BuildFinishedHook func(app *App, buildErr error) error
)

// Warning is one attributed build warning.
type Warning struct {
	Message  string
	Location string
	Type     string
	Subtype  string
}

// App is the per-build context handed to every hook. It replaces ambient
// environment state: everything a handler needs during the build is
// carried here, and the whole object is discarded when the build ends.
type App struct {
	// ConfDir is the directory holding the host's configuration file.
	// Relative artifact paths resolve against it; the documentation
	// root is its parent.
	ConfDir string

	// NitpickIgnore lists (domain:type, target) pairs the host must not
	// warn about. Build-started hooks may append to it.
	NitpickIgnore []xref.Key

	logger *slog.Logger

	started  []BuildStartedHook
	missing  []MissingReferenceHook
	finished []BuildFinishedHook

	warnings []Warning
}

// NewApp creates a build context rooted at confDir. A nil logger falls
// back to slog.Default.
func NewApp(confDir string, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{ConfDir: confDir, logger: logger}
}

// Logger returns the build's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// OnBuildStarted registers a hook invoked by StartBuild.
func (a *App) OnBuildStarted(h BuildStartedHook) {
	a.started = append(a.started, h)
}

// OnMissingReference registers a hook invoked by ReportMissing.
func (a *App) OnMissingReference(h MissingReferenceHook) {
	a.missing = append(a.missing, h)
}

// OnBuildFinished registers a hook invoked by FinishBuild.
func (a *App) OnBuildFinished(h BuildFinishedHook) {
	a.finished = append(a.finished, h)
}

// StartBuild runs the build-started hooks in registration order,
// stopping at the first error.
func (a *App) StartBuild() error {
	for _, h := range a.started {
		if err := h(a); err != nil {
			return fmt.Errorf("build-started hook: %w", err)
		}
	}
	return nil
}

// ReportMissing dispatches one unresolved reference to the
// missing-reference hooks.
func (a *App) ReportMissing(ref xref.Reference) error {
	for _, h := range a.missing {
		if err := h(a, ref); err != nil {
			return fmt.Errorf("missing-reference hook: %w", err)
		}
	}
	return nil
}

// FinishBuild runs the build-finished hooks, passing through the
// build's own outcome.
func (a *App) FinishBuild(buildErr error) error {
	for _, h := range a.finished {
		if err := h(a, buildErr); err != nil {
			return fmt.Errorf("build-finished hook: %w", err)
		}
	}
	return nil
}

// WarnRef emits an attributed reference warning. It is logged and
// recorded so the embedding project can inspect findings after the
// build; warnings never abort the build.
func (a *App) WarnRef(location, subtype, msg string) {
	a.logger.Warn(msg,
		"location", location,
		"type", "ref",
		"subtype", subtype)
	a.warnings = append(a.warnings, Warning{
		Message:  msg,
		Location: location,
		Type:     "ref",
		Subtype:  subtype,
	})
}

// Warnings returns the warnings emitted so far, in emission order.
func (a *App) Warnings() []Warning {
	return a.warnings
}

// IgnoresRef reports whether the key is on the nitpick-ignore list.
func (a *App) IgnoresRef(key xref.Key) bool {
	for _, k := range a.NitpickIgnore {
		if k == key {
			return true
		}
	}
	return false
}
