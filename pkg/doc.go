// Package pkg provides the core libraries for targetgraph, which exports the
// build-target dependency graph of a configured build tree.
//
// # Overview
//
// A build generator describes each target it knows about: its name, its kind
// (executable, static library, utility, ...), its properties and the targets
// and libraries it links against. targetgraph reads that description and
// writes the dependency graph as a JSON graph document, a Graphviz DOT file,
// or a rendered SVG/PDF/PNG diagram.
//
// # Architecture
//
// The data flow through targetgraph:
//
//	target model (YAML/JSON/TOML)
//	         ↓
//	    [model] package (load + validate + index)
//	         ↓
//	    [settings] + [filter] packages (what is visible)
//	         ↓
//	    [traverse] package (deterministic walk, observer callbacks)
//	         ↓
//	    [document] or [render/nodelink] emitter
//	         ↓
//	    JSON / DOT / SVG / PDF / PNG output
//
// [export] ties an emitter to an output destination and enforces the
// write-once lifecycle. [pipeline] runs load, configure and export in order
// and is what the CLI calls.
//
// # Quick Start
//
//	p, err := model.LoadFile("build/targets.yaml")
//	if err != nil {
//	    return err
//	}
//	s := settings.Default()
//	if _, err := settings.Load(&s, "targetgraph.toml", ""); err != nil {
//	    log.Warn("settings not fully applied", "err", err)
//	}
//	e, err := export.New("targets.json", p, s)
//	if err != nil {
//	    return err
//	}
//	if err := e.Write(); err != nil {
//	    return err
//	}
//	return e.Close()
//
// # Main Packages
//
// [model] - Projects, generators, targets and links, plus the reserved
// target names every generator adds on its own.
//
// [settings] - Export options with defaults, read from TOML, YAML, JSON or
// CMake list files.
//
// [filter] - The inclusion policy: ignore patterns, reserved names, external
// and imported targets, and the per-kind table.
//
// [traverse] - One sorted pass over all targets that reports nodes, direct
// edges and indirect (transitive) edges to an observer.
//
// [document] - The JSON graph document builder and its encoder.
//
// [render/nodelink] - DOT output and SVG rendering through Graphviz.
//
// [render] - SVG to PDF/PNG conversion.
//
// [errors] - Coded errors shared by every package.
//
// [observability] - Hooks for settings loading, traversal and finalization.
//
// # Testing
//
//	go test ./...                 # All tests
//	go test ./pkg/document/...    # Specific package
//	go test -run Example ./pkg/...
//
// [model]: https://pkg.go.dev/github.com/matzehuels/targetgraph/pkg/model
// [settings]: https://pkg.go.dev/github.com/matzehuels/targetgraph/pkg/settings
// [filter]: https://pkg.go.dev/github.com/matzehuels/targetgraph/pkg/filter
// [traverse]: https://pkg.go.dev/github.com/matzehuels/targetgraph/pkg/traverse
// [document]: https://pkg.go.dev/github.com/matzehuels/targetgraph/pkg/document
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/targetgraph/pkg/render/nodelink
// [render]: https://pkg.go.dev/github.com/matzehuels/targetgraph/pkg/render
// [export]: https://pkg.go.dev/github.com/matzehuels/targetgraph/pkg/export
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/targetgraph/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/targetgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/targetgraph/pkg/observability
package pkg
