// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about pane groups and the HTTP API.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the engine and the
// registry stay free of any metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGroupHooks(&myGroupHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	// ... move divider ...
//	observability.Group().OnResize(groupID, "keyboard", delta, changed, time.Since(start))
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Group Hooks
// =============================================================================

// GroupHooks receives events from the pane group registry.
type GroupHooks interface {
	// Lifecycle events
	OnGroupCreated(groupID string)
	OnGroupRemoved(groupID string)
	OnPaneRegistered(groupID, paneID string, paneCount int)
	OnPaneUnregistered(groupID, paneID string, paneCount int)

	// OnResize records one divider move. changed is false when the engine
	// returned the layout unchanged.
	OnResize(groupID, trigger string, delta float64, changed bool, duration time.Duration)

	// OnCollapse records a collapse (collapsed=true) or expand of a pane.
	OnCollapse(groupID, paneID string, collapsed bool)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed HTTP response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)

	// OnError records a request that failed with a server-side error.
	OnError(ctx context.Context, method, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGroupHooks is a no-op implementation of GroupHooks.
type NoopGroupHooks struct{}

func (NoopGroupHooks) OnGroupCreated(string)                                 {}
func (NoopGroupHooks) OnGroupRemoved(string)                                 {}
func (NoopGroupHooks) OnPaneRegistered(string, string, int)                  {}
func (NoopGroupHooks) OnPaneUnregistered(string, string, int)                {}
func (NoopGroupHooks) OnResize(string, string, float64, bool, time.Duration) {}
func (NoopGroupHooks) OnCollapse(string, string, bool)                       {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	groupHooks GroupHooks = NoopGroupHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetGroupHooks registers custom group hooks.
// This should be called once at application startup before any groups are created.
func SetGroupHooks(h GroupHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		groupHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before the server starts.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Group returns the registered group hooks.
func Group() GroupHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return groupHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	groupHooks = NoopGroupHooks{}
	httpHooks = NoopHTTPHooks{}
}
