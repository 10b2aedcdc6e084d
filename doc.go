// Package gmt provides a figure-centric Go binding for the GMT mapping
// engine.
//
// # Overview
//
// gmt wraps the native Generic Mapping Tools engine behind an
// object-oriented API modeled after common plotting libraries. All
// rendering, projection, and format conversion happen inside the
// engine; this package manages figure identity, translates friendly
// options into the engine's flag syntax, and coordinates previews.
//
// # Quick Start
//
//	import "github.com/gmtgo/gmt"
//
//	fig, err := gmt.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer fig.Close()
//
//	fig.Basemap(gmt.Options{"R": "0/360/-90/90", "J": "W15c", "B": "afg"})
//	fig.Coast(gmt.Options{"G": "tan", "S": "lightblue"})
//
//	// Save to PNG
//	fig.Savefig("world.png")
//
// # Figures and the active-figure model
//
// The engine keeps a single global "active figure" pointer. Every
// Figure carries a process-unique name and re-selects itself in the
// engine immediately before each drawing or export call, so several
// figures can coexist in one process. Last selected wins; using two
// figures from different goroutines without external locking is
// unsupported.
//
// # Engines
//
// The engine boundary lives in the engine subpackage. The default
// implementation (engine/cli) shells out to the gmt executable; inject
// an alternative with WithEngine.
//
// # Previews
//
// Show, PNG, and HTML render disposable previews into a per-figure
// temporary directory. Previews are regenerated on demand and removed
// when the figure is closed. A saved figure (Savefig) is written to the
// caller's path and is never touched by preview cleanup.
package gmt

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
