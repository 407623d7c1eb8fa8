// Package document builds the exported dependency graph of a project.
//
// A [Builder] implements traverse.Observer: it is fed by a single
// traverse.Run pass and accumulates a [Document], which is then serialized
// with [Encode] or [WriteFile].
//
// # Document Shape
//
//	{
//	  "graph": {
//	    "directed": true,
//	    "type": "build-targets",
//	    "label": "demo",
//	    "metadata": {"conan_dependencies": [], "project_name": "demo"},
//	    "nodes": {
//	      "app": {"type": "target", "label": "app", "metadata": {"target_type": "EXECUTABLE"}}
//	    },
//	    "edges": [
//	      {"source": "app", "target": "libA", "relation": "depends_on",
//	       "metadata": {"dependency_type": "private-link"}}
//	    ]
//	  }
//	}
//
// Edges point from the depender to the dependee. An edge is only added when
// both of its endpoints pass the filter, so every edge endpoint is a key of
// "nodes" once the traversal has finished.
//
// # Multi-Valued Properties
//
// Property and definition values containing ";" are stored as sequences;
// other values stay scalar strings. [SplitValue] and [JoinValue] implement
// the rule in both directions:
//
//	SplitValue("a.cpp;b.cpp")             // []string{"a.cpp", "b.cpp"}
//	JoinValue([]string{"a.cpp", "b.cpp"}) // "a.cpp;b.cpp"
//
// # Determinism
//
// Node and metadata keys are maps and are encoded in sorted key order; edges
// keep traversal order. Two exports of the same project with the same
// settings produce identical bytes.
package document
