package document

import (
	"io"
	"strings"

	"github.com/matzehuels/targetgraph/pkg/filter"
	"github.com/matzehuels/targetgraph/pkg/model"
	"github.com/matzehuels/targetgraph/pkg/settings"
)

// Builder accumulates a [Document] while a traversal runs. It owns the
// document exclusively; use one Builder per export.
type Builder struct {
	project  *model.Project
	filter   *filter.Filter
	indirect bool
	indent   string
	doc      *Document
}

// NewBuilder returns a builder whose document is already seeded with the
// project-level metadata, so it can be encoded even if no traversal ever
// runs.
func NewBuilder(p *model.Project, f *filter.Filter, s settings.Settings) *Builder {
	b := &Builder{
		project:  p,
		filter:   f,
		indirect: s.IndirectLinks,
		indent:   s.Indent(),
		doc:      New(p.Name),
	}
	b.seedMetadata()
	return b
}

func (b *Builder) seedMetadata() {
	meta := b.doc.Graph.Metadata
	for _, k := range b.project.DefinitionKeys() {
		meta[k] = SplitValue(b.project.Definition(k))
	}
	conan := []string{}
	if v := b.project.Definition(ConanDefinition); v != "" {
		conan = strings.Split(v, model.ListSeparator)
	}
	meta[MetaConan] = conan
	meta[MetaProjectName] = b.project.Name
}

// OnGraphStart labels the graph.
func (b *Builder) OnGraphStart(name string) {
	b.doc.Graph.Label = name
}

// OnNode records item when the filter lets it through. A repeated name
// overwrites the earlier record.
func (b *Builder) OnNode(item model.Item) {
	if b.filter.IsExcluded(item) {
		return
	}
	b.doc.Graph.Nodes[item.Name] = b.node(item)
}

// OnDirectEdge appends an edge when both endpoints are visible.
func (b *Builder) OnDirectEdge(depender, dependee model.Item, kind model.DependencyKind) {
	if !b.filter.IsLinkVisible(depender, dependee) {
		return
	}
	b.doc.Graph.Edges = append(b.doc.Graph.Edges, Edge{
		Source:   depender.Name,
		Target:   dependee.Name,
		Relation: RelationDirect,
		Metadata: Metadata{MetaDependencyType: kind.String()},
	})
}

// OnIndirectEdge appends a transitive edge when indirect links are enabled
// and both endpoints are visible.
func (b *Builder) OnIndirectEdge(depender, dependee model.Item) {
	if !b.indirect || !b.filter.IsLinkVisible(depender, dependee) {
		return
	}
	b.doc.Graph.Edges = append(b.doc.Graph.Edges, Edge{
		Source:   depender.Name,
		Target:   dependee.Name,
		Relation: RelationIndirect,
		Metadata: Metadata{MetaDependencyType: DependencyIndirect},
	})
}

// Document returns the document built so far.
func (b *Builder) Document() *Document { return b.doc }

// Counts returns the number of nodes and edges recorded.
func (b *Builder) Counts() (nodes, edges int) {
	return len(b.doc.Graph.Nodes), len(b.doc.Graph.Edges)
}

// Encode writes the document as JSON using the configured indentation.
func (b *Builder) Encode(w io.Writer) error {
	return Encode(w, b.doc, b.indent)
}

func (b *Builder) node(item model.Item) Node {
	meta := Metadata{}
	typ := NodeTypeExternal
	if t := item.Target; t != nil {
		typ = NodeTypeTarget
		for _, k := range t.PropertyKeys() {
			meta[k] = SplitValue(t.Properties[k])
		}
		delete(meta, MetaImported)
		delete(meta, MetaAliases)
		if t.Imported {
			meta[MetaImported] = true
		}
		if aliases := b.project.AliasesOf(t.Name); len(aliases) > 0 {
			meta[MetaAliases] = aliases
		}
	}
	meta[MetaTargetType] = item.Kind().String()

	return Node{Type: typ, Label: item.Name, Metadata: meta}
}
