package build

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docweave/xreftrack/xref"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHookDispatchOrder(t *testing.T) {
	app := NewApp(t.TempDir(), testLogger())

	var calls []string
	app.OnBuildStarted(func(*App) error {
		calls = append(calls, "start-1")
		return nil
	})
	app.OnBuildStarted(func(*App) error {
		calls = append(calls, "start-2")
		return nil
	})
	app.OnMissingReference(func(*App, xref.Reference) error {
		calls = append(calls, "missing")
		return nil
	})
	app.OnBuildFinished(func(*App, error) error {
		calls = append(calls, "finish")
		return nil
	})

	require.NoError(t, app.StartBuild())
	require.NoError(t, app.ReportMissing(xref.Reference{Domain: "py", Type: "class", Target: "Foo"}))
	require.NoError(t, app.FinishBuild(nil))

	assert.Equal(t, []string{"start-1", "start-2", "missing", "finish"}, calls)
}

func TestHookErrorStopsDispatch(t *testing.T) {
	app := NewApp(t.TempDir(), testLogger())

	boom := errors.New("boom")
	var secondRan bool
	app.OnBuildStarted(func(*App) error { return boom })
	app.OnBuildStarted(func(*App) error {
		secondRan = true
		return nil
	})

	err := app.StartBuild()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, secondRan, "hooks after a failing hook must not run")
}

func TestFinishBuildPassesBuildError(t *testing.T) {
	app := NewApp(t.TempDir(), testLogger())

	buildErr := errors.New("build failed")
	var got error
	app.OnBuildFinished(func(_ *App, err error) error {
		got = err
		return nil
	})

	require.NoError(t, app.FinishBuild(buildErr))
	assert.Equal(t, buildErr, got)
}

func TestWarnRef(t *testing.T) {
	app := NewApp(t.TempDir(), testLogger())

	app.WarnRef("docs/index.rst:3", "py:class", "stale entry")

	warnings := app.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "stale entry", warnings[0].Message)
	assert.Equal(t, "docs/index.rst:3", warnings[0].Location)
	assert.Equal(t, "ref", warnings[0].Type)
	assert.Equal(t, "py:class", warnings[0].Subtype)
}

func TestIgnoresRef(t *testing.T) {
	app := NewApp(t.TempDir(), testLogger())
	key := xref.NewKey("py", "class", "Foo.Bar")

	assert.False(t, app.IgnoresRef(key))

	app.NitpickIgnore = append(app.NitpickIgnore, key)
	assert.True(t, app.IgnoresRef(key))
	assert.False(t, app.IgnoresRef(xref.NewKey("py", "func", "bar")))
}
