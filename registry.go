package dynbind

import (
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Handle is an OS module handle returned by a Loader. A registry owns every
// handle it loads and never releases it; the OS reclaims it at exit.
type Handle uintptr

// Loader opens libraries and looks up symbols in them. Names are passed to
// the OS unchanged.
type Loader interface {
	Open(name string) (Handle, error)
	Lookup(lib Handle, symbol string) (uintptr, error)
}

type registryConfig struct {
	loader Loader
	logger *zap.Logger
}

func defaultRegistryConfig() registryConfig {
	return registryConfig{loader: systemLoader{}}
}

// Option configures a Registry.
type Option func(*registryConfig)

// WithLoader replaces the platform loader. Mostly useful in tests.
func WithLoader(l Loader) Option {
	return func(c *registryConfig) {
		c.loader = l
	}
}

// WithLogger sets the logger used for load and lookup outcomes. Without it
// the registry logs through the package Logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *registryConfig) {
		c.logger = l
	}
}

// Registry maps library names to their load outcome. Each name is loaded at
// most once; the outcome, success or failure, is kept for the lifetime of
// the registry.
type Registry struct {
	config registryConfig

	mu   sync.Mutex
	libs map[string]*Library
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	cfg := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Registry{
		config: cfg,
		libs:   make(map[string]*Library),
	}
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry used by generated bindings.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Library returns the entry for name, creating it on first reference.
// Every call with the same name returns the same *Library. Creating an
// entry does not load anything.
func (r *Registry) Library(name string) *Library {
	r.mu.Lock()
	defer r.mu.Unlock()
	if lib, ok := r.libs[name]; ok {
		return lib
	}
	lib := &Library{
		name:    name,
		reg:     r,
		symbols: make(map[string]*symbolEntry),
	}
	r.libs[name] = lib
	return lib
}

// GetOrLoad loads name on first use and returns the cached outcome after
// that. Concurrent first callers share a single load attempt.
func (r *Registry) GetOrLoad(name string) (Handle, bool) {
	return r.Library(name).Load()
}

// Names lists the libraries referenced so far, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	names := make([]string, 0, len(r.libs))
	for name := range r.libs {
		names = append(names, name)
	}
	r.mu.Unlock()
	slices.Sort(names)
	return names
}

func (r *Registry) log() *zap.Logger {
	if r.config.logger != nil {
		return r.config.logger
	}
	return Logger()
}
