package document

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/targetgraph/pkg/errors"
	"github.com/matzehuels/targetgraph/pkg/filter"
	"github.com/matzehuels/targetgraph/pkg/model"
	"github.com/matzehuels/targetgraph/pkg/settings"
	"github.com/matzehuels/targetgraph/pkg/traverse"
)

func scenarioProject() *model.Project {
	return &model.Project{
		Name: "demo",
		Definitions: map[string]string{
			"CMAKE_BUILD_TYPE":   "Release",
			"CMAKE_CXX_FLAGS":    "-Wall;-Wextra",
			"CONAN_DEPENDENCIES": "zlib/1.3;fmt/10.2",
		},
		Generators: []model.Generator{{
			Directory: ".",
			Aliases:   map[string]string{"demo::A": "libA"},
			Targets: []model.Target{
				{Name: "app", Kind: model.KindExecutable, Links: []model.Link{
					{Name: "libA", Kind: model.LinkPrivate},
					{Name: "ThirdPartyLib", Kind: model.LinkPrivate},
					{Name: "pthread", Kind: model.LinkPrivate},
				}},
				{Name: "libA", Kind: model.KindStaticLibrary, Links: []model.Link{
					{Name: "libB", Kind: model.LinkInterface},
				}},
				{Name: "libB", Kind: model.KindInterfaceLibrary},
				{Name: "ALL_BUILD", Kind: model.KindUtility, Links: []model.Link{{Name: "app"}}},
				{Name: "ThirdPartyLib", Kind: model.KindSharedLibrary, Imported: true},
				{Name: "NightlyMemCheck", Kind: model.KindUtility},
				{Name: "Tool", Kind: model.KindExecutable, Properties: map[string]string{
					"SOURCES":     "a.cpp;b.cpp",
					"OUTPUT_NAME": "tool",
					"imported":    "bogus",
				}},
			},
		}},
	}
}

func build(t *testing.T, p *model.Project, s settings.Settings) *Builder {
	t.Helper()
	f, err := filter.New(s)
	if err != nil {
		t.Fatalf("filter.New: %v", err)
	}
	b := NewBuilder(p, f, s)
	traverse.Run(p, b)
	return b
}

func nodeNames(doc *Document) []string {
	var names []string
	for n := range doc.Graph.Nodes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func TestBuilderScenario(t *testing.T) {
	b := build(t, scenarioProject(), settings.Default())
	doc := b.Document()

	want := []string{"Tool", "app", "libA", "libB"}
	if got := nodeNames(doc); !slices.Equal(got, want) {
		t.Errorf("nodes = %v, want %v", got, want)
	}

	wantEdges := []Edge{
		{Source: "app", Target: "libA", Relation: RelationDirect, Metadata: Metadata{MetaDependencyType: "private-link"}},
		{Source: "libA", Target: "libB", Relation: RelationDirect, Metadata: Metadata{MetaDependencyType: "interface-link"}},
	}
	if len(doc.Graph.Edges) != len(wantEdges) {
		t.Fatalf("edges = %+v, want %+v", doc.Graph.Edges, wantEdges)
	}
	for i, e := range doc.Graph.Edges {
		w := wantEdges[i]
		if e.Source != w.Source || e.Target != w.Target || e.Relation != w.Relation ||
			e.Metadata[MetaDependencyType] != w.Metadata[MetaDependencyType] {
			t.Errorf("edge %d = %+v, want %+v", i, e, w)
		}
	}

	if n, e := b.Counts(); n != 4 || e != 2 {
		t.Errorf("Counts = %d, %d, want 4, 2", n, e)
	}
}

func TestBuilderNodeRecord(t *testing.T) {
	doc := build(t, scenarioProject(), settings.Default()).Document()

	tool := doc.Graph.Nodes["Tool"]
	if tool.Type != NodeTypeTarget || tool.Label != "Tool" {
		t.Errorf("Tool node = %+v", tool)
	}
	if got, ok := tool.Metadata["SOURCES"].([]string); !ok || !slices.Equal(got, []string{"a.cpp", "b.cpp"}) {
		t.Errorf("SOURCES = %#v, want [a.cpp b.cpp]", tool.Metadata["SOURCES"])
	}
	if got := tool.Metadata["OUTPUT_NAME"]; got != "tool" {
		t.Errorf("OUTPUT_NAME = %#v, want scalar \"tool\"", got)
	}
	if got := tool.Metadata[MetaTargetType]; got != "EXECUTABLE" {
		t.Errorf("target_type = %v", got)
	}
	if _, ok := tool.Metadata[MetaImported]; ok {
		t.Error("computed imported flag must replace the property of the same name")
	}

	libA := doc.Graph.Nodes["libA"]
	if got, ok := libA.Metadata[MetaAliases].([]string); !ok || !slices.Equal(got, []string{"demo::A"}) {
		t.Errorf("aliases = %#v", libA.Metadata[MetaAliases])
	}
}

func TestBuilderGraphMetadata(t *testing.T) {
	doc := build(t, scenarioProject(), settings.Default()).Document()
	meta := doc.Graph.Metadata

	if meta[MetaProjectName] != "demo" || doc.Graph.Label != "demo" || !doc.Graph.Directed {
		t.Errorf("graph header = %+v", doc.Graph)
	}
	if meta["CMAKE_BUILD_TYPE"] != "Release" {
		t.Errorf("CMAKE_BUILD_TYPE = %#v", meta["CMAKE_BUILD_TYPE"])
	}
	if got, ok := meta["CMAKE_CXX_FLAGS"].([]string); !ok || len(got) != 2 {
		t.Errorf("CMAKE_CXX_FLAGS = %#v", meta["CMAKE_CXX_FLAGS"])
	}
	conan := []string{"zlib/1.3", "fmt/10.2"}
	if got, ok := meta[ConanDefinition].([]string); !ok || !slices.Equal(got, conan) {
		t.Errorf("%s = %#v, want the split definition", ConanDefinition, meta[ConanDefinition])
	}
	if got, ok := meta[MetaConan].([]string); !ok || !slices.Equal(got, conan) {
		t.Errorf("%s = %#v", MetaConan, meta[MetaConan])
	}

	single := &model.Project{Name: "p", Definitions: map[string]string{ConanDefinition: "zlib/1.3"}}
	f, _ := filter.New(settings.Default())
	m := NewBuilder(single, f, settings.Default()).Document().Graph.Metadata
	if m[ConanDefinition] != "zlib/1.3" {
		t.Errorf("%s = %#v, want the raw scalar definition", ConanDefinition, m[ConanDefinition])
	}
	if got, ok := m[MetaConan].([]string); !ok || !slices.Equal(got, []string{"zlib/1.3"}) {
		t.Errorf("single conan dependency = %#v, want a one-element sequence", m[MetaConan])
	}

	empty := NewBuilder(&model.Project{Name: "p"}, f, settings.Default()).Document().Graph.Metadata
	if _, ok := empty[ConanDefinition]; ok {
		t.Errorf("%s should be absent without the definition", ConanDefinition)
	}
	if got, ok := empty[MetaConan].([]string); !ok || len(got) != 0 {
		t.Errorf("absent conan dependencies = %#v, want empty sequence", empty[MetaConan])
	}
}

func TestBuilderEdgeValidity(t *testing.T) {
	configs := map[string]func(*settings.Settings){
		"default":   func(*settings.Settings) {},
		"externals": func(s *settings.Settings) { s.ExternalTargets = true },
		"indirect":  func(s *settings.Settings) { s.IndirectLinks = true },
		"no static": func(s *settings.Settings) { s.Kinds.StaticLibs = false },
		"all": func(s *settings.Settings) {
			s.ExternalTargets, s.IndirectLinks = true, true
			s.Kinds.CustomTargets, s.Kinds.GlobalTargets = true, true
		},
	}
	projects := map[string]func() *model.Project{
		"scenario":         scenarioProject,
		"through reserved": reservedHubProject,
	}
	for pname, newProject := range projects {
		for name, mod := range configs {
			t.Run(pname+"/"+name, func(t *testing.T) {
				s := settings.Default()
				mod(&s)
				doc := build(t, newProject(), s).Document()
				for _, e := range doc.Graph.Edges {
					if !doc.HasNode(e.Source) || !doc.HasNode(e.Target) {
						t.Errorf("orphaned %s edge %s -> %s", e.Relation, e.Source, e.Target)
					}
					if model.IsReservedTarget(e.Source) || model.IsReservedTarget(e.Target) {
						t.Errorf("reserved endpoint in edge %s -> %s", e.Source, e.Target)
					}
				}
				for n := range doc.Graph.Nodes {
					if model.IsReservedTarget(n) {
						t.Errorf("reserved node %s", n)
					}
				}
			})
		}
	}
}

// reservedHubProject reaches zlib and core only by way of ALL_BUILD.
func reservedHubProject() *model.Project {
	return &model.Project{
		Name: "hub",
		Generators: []model.Generator{{Targets: []model.Target{
			{Name: "app", Kind: model.KindExecutable, Links: []model.Link{{Name: "ALL_BUILD"}}},
			{Name: "ALL_BUILD", Kind: model.KindUtility, Links: []model.Link{{Name: "zlib"}, {Name: "core"}}},
			{Name: "core", Kind: model.KindStaticLibrary},
		}}},
	}
}

func TestBuilderIndirectSkipsReserved(t *testing.T) {
	s := settings.Default()
	s.ExternalTargets, s.IndirectLinks = true, true
	doc := build(t, reservedHubProject(), s).Document()

	if doc.HasNode("zlib") {
		t.Error("zlib is linked only by a reserved target and must not be exported")
	}
	for _, e := range doc.Graph.Edges {
		t.Errorf("unexpected edge %s -> %s (%s)", e.Source, e.Target, e.Relation)
	}
}

func TestBuilderExternals(t *testing.T) {
	s := settings.Default()
	s.ExternalTargets = true
	doc := build(t, scenarioProject(), s).Document()

	for _, name := range []string{"ThirdPartyLib", "pthread"} {
		if !doc.HasNode(name) {
			t.Errorf("%s should be exported when externals are visible", name)
		}
	}
	if got := doc.Graph.Nodes["pthread"]; got.Type != NodeTypeExternal || got.Metadata[MetaTargetType] != "UNKNOWN_LIBRARY" {
		t.Errorf("pthread node = %+v", got)
	}
	if got := doc.Graph.Nodes["ThirdPartyLib"]; got.Metadata[MetaImported] != true {
		t.Errorf("ThirdPartyLib imported = %v", got.Metadata[MetaImported])
	}
	if doc.HasNode("NightlyMemCheck") {
		t.Error("dashboard utility must stay hidden")
	}
}

func TestBuilderIndirect(t *testing.T) {
	hidden := build(t, scenarioProject(), settings.Default()).Document()
	for _, e := range hidden.Graph.Edges {
		if e.Relation == RelationIndirect {
			t.Fatalf("indirect edge %+v exported while disabled", e)
		}
	}

	s := settings.Default()
	s.IndirectLinks = true
	doc := build(t, scenarioProject(), s).Document()

	var found bool
	for _, e := range doc.Graph.Edges {
		if e.Relation == RelationIndirect {
			if e.Source != "app" || e.Target != "libB" || e.Metadata[MetaDependencyType] != DependencyIndirect {
				t.Errorf("unexpected indirect edge %+v", e)
			}
			found = true
		}
	}
	if !found {
		t.Error("app -> libB indirect edge missing")
	}
}

func TestBuilderOverwritesNode(t *testing.T) {
	f, _ := filter.New(settings.Default())
	b := NewBuilder(&model.Project{Name: "p"}, f, settings.Default())
	first := &model.Target{Name: "x", Kind: model.KindStaticLibrary}
	second := &model.Target{Name: "x", Kind: model.KindSharedLibrary}
	b.OnNode(model.ItemOf(first))
	b.OnNode(model.ItemOf(second))

	if n, _ := b.Counts(); n != 1 {
		t.Fatalf("nodes = %d, want 1", n)
	}
	if got := b.Document().Graph.Nodes["x"].Metadata[MetaTargetType]; got != "SHARED_LIBRARY" {
		t.Errorf("target_type = %v, want the later record", got)
	}
}

func TestDeterministicOutput(t *testing.T) {
	s := settings.Default()
	s.ExternalTargets, s.IndirectLinks = true, true

	var first []byte
	for i := 0; i < 3; i++ {
		var buf bytes.Buffer
		if err := build(t, scenarioProject(), s).Encode(&buf); err != nil {
			t.Fatal(err)
		}
		if first == nil {
			first = buf.Bytes()
			continue
		}
		if !bytes.Equal(first, buf.Bytes()) {
			t.Fatalf("run %d differs from the first run", i)
		}
	}
}

func TestSplitJoinValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"foo;bar;baz", []string{"foo", "bar", "baz"}},
		{"foo", "foo"},
		{"", ""},
		{"a;;b", []string{"a", "", "b"}},
		{"trailing;", []string{"trailing", ""}},
	}
	for _, tt := range tests {
		got := SplitValue(tt.in)
		switch w := tt.want.(type) {
		case string:
			if got != w {
				t.Errorf("SplitValue(%q) = %#v, want %q", tt.in, got, w)
			}
		case []string:
			if g, ok := got.([]string); !ok || !slices.Equal(g, w) {
				t.Errorf("SplitValue(%q) = %#v, want %#v", tt.in, got, w)
			}
		}
		if back := JoinValue(got); back != tt.in {
			t.Errorf("JoinValue(SplitValue(%q)) = %q", tt.in, back)
		}
	}

	if got := JoinValue([]any{"x", "y"}); got != "x;y" {
		t.Errorf("JoinValue([]any) = %q", got)
	}
}

func TestPropertyRoundTripThroughJSON(t *testing.T) {
	doc := build(t, scenarioProject(), settings.Default()).Document()
	data, err := Marshal(doc, "")
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if got := JoinValue(decoded.Graph.Nodes["Tool"].Metadata["SOURCES"]); got != "a.cpp;b.cpp" {
		t.Errorf("SOURCES after round trip = %q", got)
	}
}

func TestEncodeIndent(t *testing.T) {
	doc := New("p")
	tests := []struct {
		name   string
		indent string
		check  func(string) bool
	}{
		{"compact", "", func(s string) bool { return !strings.Contains(s, "\n ") && strings.Count(s, "\n") == 1 }},
		{"spaces", "    ", func(s string) bool { return strings.Contains(s, "\n    \"graph\"") }},
		{"tabs", "\t", func(s string) bool { return strings.Contains(s, "\n\t\"graph\"") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, doc, tt.indent); err != nil {
				t.Fatal(err)
			}
			if !tt.check(buf.String()) {
				t.Errorf("unexpected output:\n%s", buf.String())
			}
			if !json.Valid(buf.Bytes()) {
				t.Error("output is not valid JSON")
			}
		})
	}
}

func TestEncodeNoHTMLEscape(t *testing.T) {
	doc := New("p")
	doc.Graph.Metadata["flags"] = "$<CONFIG:Debug>"
	data, err := Marshal(doc, "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "$<CONFIG:Debug>") {
		t.Errorf("generator expression was escaped: %s", data)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	doc := build(t, scenarioProject(), settings.Default()).Document()
	if err := WriteFile(path, doc, "  "); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Graph.Nodes) != len(doc.Graph.Nodes) || len(got.Graph.Edges) != len(doc.Graph.Edges) {
		t.Errorf("decoded %d nodes / %d edges, want %d / %d",
			len(got.Graph.Nodes), len(got.Graph.Edges), len(doc.Graph.Nodes), len(doc.Graph.Edges))
	}
}

func TestWriteFileUnopenable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "graph.json")
	err := WriteFile(path, New("p"), "")
	if !errors.Is(err, errors.ErrCodeOutput) {
		t.Fatalf("err = %v, want OUTPUT_ERROR", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should have been created")
	}
}
