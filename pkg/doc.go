// Package pkg holds the public libraries of splitpane.
//
// # Overview
//
// A pane group is an ordered set of panes that share 100% of one axis. Each
// pane is bounded by a minimum and maximum size and may collapse to a fixed
// collapsed size. The packages are layered:
//
//  1. [layout] - the pure engine: tolerant comparison, clamping, default and
//     normalized layouts, divider moves and divider ranges
//  2. [group] - stateful groups and a registry of them, with pane
//     registration, drags, collapse, expand and layout subscriptions
//  3. [input] - key presses and pointer drags translated into deltas
//  4. [manifest] - TOML declarations of groups and panes
//  5. [render] - terminal drawing of a group with lipgloss
//  6. [errors] and [observability] - error codes and instrumentation hooks
//
// # Quick Start
//
//	reg := group.NewRegistry(nil)
//	g, _ := reg.CreateGroup(group.Options{ID: "editor"})
//	_ = g.RegisterPane(group.PaneOptions{ID: "files", Order: 0, Constraints: layout.Constraints{MinSize: 10, MaxSize: 40}})
//	_ = g.RegisterPane(group.PaneOptions{ID: "code", Order: 1, Constraints: layout.DefaultConstraints()})
//	next, changed, _ := g.ResizeByDelta(0, 10, layout.TriggerMouseOrTouch)
package pkg
