package document

import (
	"fmt"
	"strings"

	"github.com/matzehuels/targetgraph/pkg/model"
)

// Values used in node, edge and graph records.
const (
	GraphType = "build-targets"

	NodeTypeTarget   = "target"
	NodeTypeExternal = "external"

	RelationDirect   = "depends_on"
	RelationIndirect = "depends_on_indirectly"

	DependencyIndirect = "indirect"
)

// Reserved metadata keys. Computed values override properties of the same name.
const (
	MetaProjectName    = "project_name"
	MetaTargetType     = "target_type"
	MetaImported       = "imported"
	MetaAliases        = "aliases"
	MetaDependencyType = "dependency_type"
	MetaConan          = "conan_dependencies"
)

// ConanDefinition is the definition listing the Conan packages of the build.
// It is exported like any other definition and, split into a sequence, as
// [MetaConan].
const ConanDefinition = "CONAN_DEPENDENCIES"

// Metadata holds scalar strings, string sequences or booleans.
type Metadata map[string]any

// Document is the root of the exported file.
type Document struct {
	Graph Graph `json:"graph"`
}

// Graph is the node-link body of a [Document].
type Graph struct {
	Directed bool            `json:"directed"`
	Type     string          `json:"type"`
	Label    string          `json:"label"`
	Metadata Metadata        `json:"metadata"`
	Nodes    map[string]Node `json:"nodes"`
	Edges    []Edge          `json:"edges"`
}

// Node is one exported target or external reference.
type Node struct {
	Type     string   `json:"type"`
	Label    string   `json:"label"`
	Metadata Metadata `json:"metadata"`
}

// Edge is a dependency from Source (the depender) to Target (the dependee).
type Edge struct {
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Relation string   `json:"relation"`
	Metadata Metadata `json:"metadata"`
}

// New returns an empty directed graph document labeled with name.
func New(name string) *Document {
	return &Document{Graph: Graph{
		Directed: true,
		Type:     GraphType,
		Label:    name,
		Metadata: Metadata{},
		Nodes:    map[string]Node{},
		Edges:    []Edge{},
	}}
}

// HasNode reports whether name is a node key.
func (d *Document) HasNode(name string) bool {
	_, ok := d.Graph.Nodes[name]
	return ok
}

// SplitValue applies the multi-value rule: a value containing the list
// separator becomes a sequence of its parts (empty parts included),
// anything else is returned unchanged.
func SplitValue(v string) any {
	if !strings.Contains(v, model.ListSeparator) {
		return v
	}
	return strings.Split(v, model.ListSeparator)
}

// JoinValue reverses [SplitValue]. It also accepts []any, which is what a
// decoded document holds for sequences.
func JoinValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []string:
		return strings.Join(x, model.ListSeparator)
	case []any:
		parts := make([]string, len(x))
		for i, p := range x {
			parts[i] = fmt.Sprint(p)
		}
		return strings.Join(parts, model.ListSeparator)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
