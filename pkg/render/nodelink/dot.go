package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/targetgraph/pkg/filter"
	"github.com/matzehuels/targetgraph/pkg/model"
	"github.com/matzehuels/targetgraph/pkg/render"
	"github.com/matzehuels/targetgraph/pkg/settings"
)

var shapes = map[model.Kind]string{
	model.KindExecutable:       "egg",
	model.KindStaticLibrary:    "box",
	model.KindSharedLibrary:    "ellipse",
	model.KindModuleLibrary:    "octagon",
	model.KindInterfaceLibrary: "pentagon",
	model.KindObjectLibrary:    "hexagon",
	model.KindUnknownLibrary:   "septagon",
	model.KindUtility:          "box",
	model.KindGlobal:           "box",
}

var edgeStyles = map[model.DependencyKind][]string{
	model.LinkPrivate:   {"style=dashed"},
	model.LinkInterface: {"style=dotted"},
	model.LinkPublic:    nil,
	model.LinkObject:    {"style=dashed", "color=gray"},
	model.LinkUtility:   {"style=dotted", "arrowhead=empty"},
}

var indirectStyle = []string{"style=dotted", "color=gray60"}

type node struct {
	id    string
	label string
	shape string
}

type edge struct {
	from, to string
	attrs    []string
}

// Builder accumulates a DOT digraph during a traversal.
type Builder struct {
	project  *model.Project
	filter   *filter.Filter
	indirect bool

	name  string
	ids   map[string]string
	nodes []node
	edges []edge
}

// NewBuilder returns an empty diagram for p.
func NewBuilder(p *model.Project, f *filter.Filter, s settings.Settings) *Builder {
	return &Builder{
		project:  p,
		filter:   f,
		indirect: s.IndirectLinks,
		name:     p.Name,
		ids:      make(map[string]string),
	}
}

// OnGraphStart names the digraph.
func (b *Builder) OnGraphStart(name string) { b.name = name }

// OnNode declares item when it passes the filter.
func (b *Builder) OnNode(item model.Item) {
	if b.filter.IsExcluded(item) {
		return
	}
	if _, ok := b.ids[item.Name]; ok {
		return
	}
	id := "node" + strconv.Itoa(len(b.nodes))
	b.ids[item.Name] = id
	b.nodes = append(b.nodes, node{id: id, label: b.label(item.Name), shape: shapes[item.Kind()]})
}

// OnDirectEdge adds a styled edge when both endpoints are visible.
func (b *Builder) OnDirectEdge(depender, dependee model.Item, kind model.DependencyKind) {
	if !b.filter.IsLinkVisible(depender, dependee) {
		return
	}
	b.edges = append(b.edges, edge{from: depender.Name, to: dependee.Name, attrs: edgeStyles[kind]})
}

// OnIndirectEdge adds a gray dotted edge when indirect links are enabled.
func (b *Builder) OnIndirectEdge(depender, dependee model.Item) {
	if !b.indirect || !b.filter.IsLinkVisible(depender, dependee) {
		return
	}
	b.edges = append(b.edges, edge{from: depender.Name, to: dependee.Name, attrs: indirectStyle})
}

// Counts returns the number of declared nodes and edges.
func (b *Builder) Counts() (nodes, edges int) { return len(b.nodes), len(b.edges) }

// Encode writes the DOT source to w.
func (b *Builder) Encode(w io.Writer) error {
	_, err := io.WriteString(w, b.DOT())
	return err
}

// DOT returns the diagram as Graphviz source. Edges whose endpoints were
// never declared are left out.
func (b *Builder) DOT() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph \"%s\" {\n", escape(b.name))
	buf.WriteString("  node [fontsize=12];\n")
	buf.WriteString("\n")

	for _, n := range b.nodes {
		fmt.Fprintf(&buf, "  \"%s\" [label=\"%s\", shape=%s];\n", n.id, n.label, n.shape)
	}

	buf.WriteString("\n")
	for _, e := range b.edges {
		from, okFrom := b.ids[e.from]
		to, okTo := b.ids[e.to]
		if !okFrom || !okTo {
			continue
		}
		if len(e.attrs) == 0 {
			fmt.Fprintf(&buf, "  \"%s\" -> \"%s\";\n", from, to)
			continue
		}
		fmt.Fprintf(&buf, "  \"%s\" -> \"%s\" [%s];\n", from, to, strings.Join(e.attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func (b *Builder) label(name string) string {
	parts := []string{escape(name)}
	for _, a := range b.project.AliasesOf(name) {
		parts = append(parts, "("+escape(a)+")")
	}
	return strings.Join(parts, `\n`)
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escape(s string) string { return labelEscaper.Replace(s) }

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz <svg> header with one that scales
// from a zero origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion at the given scale.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
