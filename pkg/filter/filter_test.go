package filter

import (
	"testing"

	"github.com/matzehuels/targetgraph/pkg/errors"
	"github.com/matzehuels/targetgraph/pkg/model"
	"github.com/matzehuels/targetgraph/pkg/settings"
)

func target(name string, kind model.Kind, imported bool) model.Item {
	return model.ItemOf(&model.Target{Name: name, Kind: kind, Imported: imported})
}

func TestIsExcluded(t *testing.T) {
	defaults := settings.Default()

	withExternals := settings.Default()
	withExternals.ExternalTargets = true

	withUtilities := settings.Default()
	withUtilities.Kinds.CustomTargets = true

	ignoring := settings.Default()
	ignoring.IgnoreTargets = []string{"^test_", "_bench$"}

	noStatic := settings.Default()
	noStatic.Kinds.StaticLibs = false

	tests := []struct {
		name     string
		settings settings.Settings
		item     model.Item
		want     bool
	}{
		{"executable", defaults, target("app", model.KindExecutable, false), false},
		{"static library", defaults, target("libA", model.KindStaticLibrary, false), false},
		{"interface library", defaults, target("libB", model.KindInterfaceLibrary, false), false},
		{"object library", defaults, target("objs", model.KindObjectLibrary, false), false},
		{"utility hidden by default", defaults, target("docs", model.KindUtility, false), true},
		{"utility enabled", withUtilities, target("docs", model.KindUtility, false), false},
		{"global target", defaults, target("edit_cache_x", model.KindGlobal, false), true},
		{"reserved name", withUtilities, target("ALL_BUILD", model.KindUtility, false), true},
		{"reserved lowercase", defaults, target("all", model.KindExecutable, false), true},
		{"reserved external", withExternals, model.ExternalItem("ZERO_CHECK"), true},
		{"dashboard utility", withUtilities, target("NightlyMemCheck", model.KindUtility, false), true},
		{"dashboard utility with externals", withExternals, target("ContinuousBuild", model.KindUtility, false), true},
		{"dashboard prefix on library", defaults, target("NightlyLib", model.KindStaticLibrary, false), false},
		{"external hidden", defaults, model.ExternalItem("pthread"), true},
		{"external shown", withExternals, model.ExternalItem("pthread"), false},
		{"imported hidden", defaults, target("ThirdPartyLib", model.KindSharedLibrary, true), true},
		{"imported shown", withExternals, target("ThirdPartyLib", model.KindSharedLibrary, true), false},
		{"ignore pattern prefix", ignoring, target("test_core", model.KindExecutable, false), true},
		{"ignore pattern suffix", ignoring, target("core_bench", model.KindExecutable, false), true},
		{"ignore pattern miss", ignoring, target("core", model.KindExecutable, false), false},
		{"kind disabled", noStatic, target("libA", model.KindStaticLibrary, false), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.settings)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := f.IsExcluded(tt.item); got != tt.want {
				t.Errorf("IsExcluded(%s) = %v, want %v", tt.item.Name, got, tt.want)
			}
		})
	}
}

func TestIsExcludedIdempotent(t *testing.T) {
	s := settings.Default()
	s.IgnoreTargets = []string{"gen"}
	f, err := New(s)
	if err != nil {
		t.Fatal(err)
	}

	items := []model.Item{
		target("app", model.KindExecutable, false),
		target("codegen", model.KindExecutable, false),
		target("ThirdPartyLib", model.KindStaticLibrary, true),
		model.ExternalItem("m"),
	}
	for _, it := range items {
		first := f.IsExcluded(it)
		for i := 0; i < 5; i++ {
			if got := f.IsExcluded(it); got != first {
				t.Fatalf("IsExcluded(%s) changed from %v to %v", it.Name, first, got)
			}
		}
	}
}

func TestIsLinkVisible(t *testing.T) {
	f, err := New(settings.Default())
	if err != nil {
		t.Fatal(err)
	}

	app := target("app", model.KindExecutable, false)
	lib := target("libA", model.KindStaticLibrary, false)
	imported := target("ThirdPartyLib", model.KindStaticLibrary, true)
	ext := model.ExternalItem("z")

	tests := []struct {
		name string
		a, b model.Item
		want bool
	}{
		{"both visible", app, lib, true},
		{"imported dependee", app, imported, false},
		{"imported depender", imported, lib, false},
		{"external dependee", lib, ext, false},
	}
	for _, tt := range tests {
		if got := f.IsLinkVisible(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: IsLinkVisible = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNewInvalidPattern(t *testing.T) {
	s := settings.Default()
	s.IgnoreTargets = []string{"(", "^skip"}

	f, err := New(s)
	if !errors.Is(err, errors.ErrCodeInvalidPattern) {
		t.Fatalf("err = %v, want INVALID_PATTERN", err)
	}
	if f == nil {
		t.Fatal("filter should still be usable")
	}
	if !f.IsExcluded(target("skipme", model.KindExecutable, false)) {
		t.Error("valid patterns after an invalid one must still apply")
	}
}
