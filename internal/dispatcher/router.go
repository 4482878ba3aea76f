package dispatcher

import (
	"sort"
	"strings"
	"sync"
)

// Router routes commands to handlers by namespace, the operator id prefix
// before the first dot ("view3d" in "view3d.select").
type Router struct {
	mu sync.RWMutex

	namespaces map[string]HandlerFunc
	fallback   HandlerFunc
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		namespaces: make(map[string]HandlerFunc),
	}
}

// RegisterNamespace routes every command in namespace to h.
func (r *Router) RegisterNamespace(namespace string, h HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.namespaces[namespace] = h
}

// UnregisterNamespace removes a namespace handler.
func (r *Router) UnregisterNamespace(namespace string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.namespaces, namespace)
}

// SetFallback sets the handler for commands no namespace claims.
func (r *Router) SetFallback(h HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = h
}

// Route returns the namespace handler for command, the fallback, or nil.
func (r *Router) Route(command string) HandlerFunc {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if ns := Namespace(command); ns != "" {
		if h, ok := r.namespaces[ns]; ok {
			return h
		}
	}
	return r.fallback
}

// Namespaces returns the registered namespaces, sorted.
func (r *Router) Namespaces() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.namespaces))
	for name := range r.namespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Namespace returns the prefix of command before the first dot, or "" for
// commands without one such as modal pseudo-commands.
func Namespace(command string) string {
	ns, _, ok := strings.Cut(command, ".")
	if !ok {
		return ""
	}
	return ns
}
