// Package model describes the configured build targets of a project.
//
// # Overview
//
// A [Project] is the read-only input of an export: it is split into
// [Generator] values (one per configured directory), each owning a list of
// [Target] definitions. A target has a [Kind], a flag telling whether it was
// imported from outside the project, a bag of string properties, and the
// link dependencies declared on it, each annotated with a [DependencyKind].
//
// Traversal code works on [Item] values. An item either wraps a [Target] or
// stands for a link name that no target in the project defines (an external
// reference such as a system library).
//
// # Reserved Targets
//
// Generators synthesize housekeeping targets whose names differ between
// platforms ("all" vs. "ALL_BUILD", "install" vs. "INSTALL"). Use
// [IsReservedTarget] to recognize them; they never take part in an export.
//
// # Loading
//
// [LoadFile] reads a project description from JSON, YAML or TOML:
//
//	name: demo
//	definitions:
//	  CMAKE_BUILD_TYPE: Release
//	generators:
//	  - directory: .
//	    aliases:
//	      demo::core: core
//	    targets:
//	      - name: app
//	        kind: executable
//	        links:
//	          - name: demo::core
//	            kind: private-link
//	      - name: core
//	        kind: static-library
//	        properties:
//	          SOURCES: "a.cpp;b.cpp"
//
// Kinds accept either the CMake spelling (STATIC_LIBRARY) or the kebab form
// (static-library), case-insensitively.
package model
