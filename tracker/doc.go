// Package tracker freezes broken cross-reference warnings for a
// documentation build running in nitpicky mode.
//
// The workflow:
//
//  1. Register a Tracker against the build App.
//  2. Set write_json: true in the project configuration and run a
//     build. The tracker writes missing-references.json next to the
//     host's configuration file.
//  3. Turn write_json off. Subsequent builds load the file and extend
//     the host's nitpick-ignore list with every recorded reference, so
//     known failures no longer warn.
//  4. When a previously recorded reference resolves again, the build
//     warns that its entry can be pruned from the file.
//
// The persisted artifact maps "domain:type" to target to a sorted list
// of "path:line" locations. Object keys and location lists are sorted,
// so an unchanged documentation tree produces a byte-identical file on
// every record run.
package tracker
