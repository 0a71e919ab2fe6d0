package tracker

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/docweave/xreftrack/build"
	"github.com/docweave/xreftrack/xref"
)

// Sentinels used when a reference's origin cannot be expressed as a
// path inside the documentation root.
const (
	unknownLocation = "<unknown>"
	externalPrefix  = "<external>"
)

// location renders the origin of a reference as "path:line". The path
// is made relative to the parent of the configuration directory; paths
// that escape that root collapse to "<external>/<basename>" so the
// artifact never leaks machine-specific paths. Later builds compare
// stored strings byte-for-byte, so the result must be deterministic:
// forward slashes regardless of OS, empty line part when unknown.
func location(app *build.App, ref xref.Reference) string {
	if ref.Source == "" {
		return unknownLocation + ":"
	}

	root := filepath.Dir(filepath.Clean(app.ConfDir))
	path := ref.Source

	rel, err := filepath.Rel(root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		path = externalPrefix + "/" + filepath.Base(path)
	} else {
		path = filepath.ToSlash(rel)
	}

	line := ""
	if ref.Line > 0 {
		line = strconv.Itoa(ref.Line)
	}
	return path + ":" + line
}
