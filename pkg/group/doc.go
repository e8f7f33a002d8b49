// Package group keeps the live state of pane groups on top of the layout
// engine.
//
// A [Registry] owns every group. Groups are addressed either by their string
// id or by the [Handle] returned at creation; handles index an arena and are
// never reused after [Registry.RemoveGroup]. Each [Group] holds its panes in
// order, the current layout in a [Cell], the sizes panes had before they were
// collapsed, and at most one active drag.
//
// # Concurrency
//
// All methods are safe for concurrent use. Mutations of one group are
// serialized: an operation reads the current layout, runs the engine and
// commits the result while holding the group lock. Subscribers are notified
// after the lock is released, on the goroutine that made the change.
//
// # Usage
//
//	reg := group.NewRegistry(logger)
//	g, _ := reg.CreateGroup(group.Options{ID: "editor"})
//	_ = g.RegisterPane(group.PaneOptions{ID: "sidebar", Constraints: sidebar})
//	_ = g.RegisterPane(group.PaneOptions{ID: "main", Order: 1, Constraints: layout.DefaultConstraints()})
//
//	unsubscribe := g.Subscribe(func(l layout.Layout) { fmt.Println(l) })
//	defer unsubscribe()
//
//	g.ResizeByDelta(0, 5, layout.TriggerKeyboard)
//	g.Collapse("sidebar")
package group
