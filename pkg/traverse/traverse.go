// Package traverse walks the targets of a project in a fixed order and
// reports every target and link to an [Observer].
//
// # Ordering
//
// All targets of all generators are collected into one list, deduplicated by
// name and sorted by name. Reserved generator targets (model.IsReservedTarget)
// are dropped before sorting: their spelling differs between platforms, so
// letting them in would make the output platform-dependent.
//
// For each target, in that order, [Run] calls:
//
//  1. OnNode for the target,
//  2. OnNode for every link name that resolves to no target and has not been
//     reported yet (external references),
//  3. OnDirectEdge for each declared link, in declaration order,
//  4. OnIndirectEdge for every target reachable only through other targets,
//     sorted by name.
//
// Traversal reports everything and filters nothing beyond reserved names;
// deciding what is visible is left to the observer.
//
// # Edge Direction
//
// Edges always point from the depender to the dependee.
package traverse

import (
	"slices"
	"strings"

	"github.com/matzehuels/targetgraph/pkg/model"
)

// Observer receives the callbacks of a traversal. Implementations decide
// what, if anything, to emit for each call.
type Observer interface {
	// OnGraphStart is called once, before any other callback, with the
	// project name.
	OnGraphStart(name string)
	// OnNode is called at most once per item name.
	OnNode(item model.Item)
	// OnDirectEdge is called for a link declared on depender.
	OnDirectEdge(depender, dependee model.Item, kind model.DependencyKind)
	// OnIndirectEdge is called for a dependency reachable only transitively.
	OnIndirectEdge(depender, dependee model.Item)
}

// Targets returns the project's targets as items, without reserved names,
// deduplicated and sorted by name. The first generator defining a name wins.
func Targets(p *model.Project) []model.Item {
	seen := make(map[string]bool)
	var items []model.Item
	for gi := range p.Generators {
		g := &p.Generators[gi]
		for ti := range g.Targets {
			t := &g.Targets[ti]
			if model.IsReservedTarget(t.Name) || seen[t.Name] {
				continue
			}
			seen[t.Name] = true
			items = append(items, model.ItemOf(t))
		}
	}
	slices.SortFunc(items, func(a, b model.Item) int { return strings.Compare(a.Name, b.Name) })
	return items
}

// Run performs a single pass over p and drives obs. It never modifies p.
func Run(p *model.Project, obs Observer) {
	w := walker{
		idx:     p.Index(),
		obs:     obs,
		visited: make(map[string]bool),
	}

	obs.OnGraphStart(p.Name)
	for _, item := range Targets(p) {
		w.visit(item)
	}
}

type walker struct {
	idx     *model.Index
	obs     Observer
	visited map[string]bool
}

func (w *walker) visit(item model.Item) {
	w.node(item)

	links := w.directLinks(item.Target)
	for _, l := range links {
		if l.dependee.IsExternal() {
			w.node(l.dependee)
		}
	}
	for _, l := range links {
		w.obs.OnDirectEdge(item, l.dependee, l.kind)
	}
	for _, dep := range Indirect(w.idx, item.Target) {
		w.obs.OnIndirectEdge(item, dep)
	}
}

func (w *walker) node(item model.Item) {
	if w.visited[item.Name] || model.IsReservedTarget(item.Name) {
		return
	}
	w.visited[item.Name] = true
	w.obs.OnNode(item)
}

type resolvedLink struct {
	dependee model.Item
	kind     model.DependencyKind
}

// directLinks resolves the links of t. A dependee listed more than once is
// kept at its first position with its first kind.
func (w *walker) directLinks(t *model.Target) []resolvedLink {
	if t == nil {
		return nil
	}
	seen := make(map[string]bool, len(t.Links))
	out := make([]resolvedLink, 0, len(t.Links))
	for _, l := range t.Links {
		dep := w.idx.Resolve(l.Name)
		if seen[dep.Name] {
			continue
		}
		seen[dep.Name] = true
		out = append(out, resolvedLink{dependee: dep, kind: l.Kind})
	}
	return out
}

// Indirect returns the items reachable from t through two or more links,
// excluding t itself and its direct dependees, sorted by name. Reserved
// targets are neither reported nor walked through, so nothing reachable
// only by way of one shows up. Cycles are tolerated.
func Indirect(idx *model.Index, t *model.Target) []model.Item {
	if t == nil {
		return nil
	}

	direct := make(map[string]bool, len(t.Links))
	for _, l := range t.Links {
		direct[idx.Resolve(l.Name).Name] = true
	}

	seen := map[string]bool{t.Name: true}
	reached := make(map[string]model.Item)
	stack := []*model.Target{t}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, l := range cur.Links {
			dep := idx.Resolve(l.Name)
			if seen[dep.Name] || model.IsReservedTarget(dep.Name) {
				continue
			}
			seen[dep.Name] = true
			if !direct[dep.Name] {
				reached[dep.Name] = dep
			}
			if dep.Target != nil {
				stack = append(stack, dep.Target)
			}
		}
	}

	out := make([]model.Item, 0, len(reached))
	for _, it := range reached {
		out = append(out, it)
	}
	slices.SortFunc(out, func(a, b model.Item) int { return strings.Compare(a.Name, b.Name) })
	return out
}
