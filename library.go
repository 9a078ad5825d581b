package dynbind

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Library is a registry entry: a library name and the write-once outcome of
// loading it. It also caches symbol lookups, one attempt per symbol name.
type Library struct {
	name string
	reg  *Registry

	once   sync.Once
	handle Handle
	err    error

	mu      sync.Mutex
	symbols map[string]*symbolEntry
}

type symbolEntry struct {
	once sync.Once
	addr uintptr
	err  error
}

// Name returns the library name as given to the registry.
func (l *Library) Name() string {
	return l.name
}

// Load returns the library handle, loading it on the first call. A failed
// load is not retried.
func (l *Library) Load() (Handle, bool) {
	h, err := l.load()
	return h, err == nil
}

// Symbol returns the address of the named symbol. It reports false when the
// library did not load or does not export the symbol.
func (l *Library) Symbol(name string) (uintptr, bool) {
	addr, err := l.lookup(name)
	return addr, err == nil
}

func (l *Library) load() (Handle, error) {
	l.once.Do(func() {
		log := l.reg.log().With(zap.String("library", l.name))
		h, err := l.reg.config.loader.Open(l.name)
		if err == nil && h == 0 {
			err = fmt.Errorf("dynbind: %s: loader returned a nil handle", l.name)
		}
		if err != nil {
			l.err = fmt.Errorf("%w: %w", ErrLibraryUnavailable, err)
			log.Debug("library unavailable", zap.Error(err))
			return
		}
		l.handle = h
		log.Debug("library loaded")
	})
	return l.handle, l.err
}

func (l *Library) lookup(name string) (uintptr, error) {
	h, err := l.load()
	if err != nil {
		return 0, err
	}

	l.mu.Lock()
	e, ok := l.symbols[name]
	if !ok {
		e = &symbolEntry{}
		l.symbols[name] = e
	}
	l.mu.Unlock()

	e.once.Do(func() {
		log := l.reg.log().With(zap.String("library", l.name), zap.String("symbol", name))
		addr, err := l.reg.config.loader.Lookup(h, name)
		if err == nil && addr == 0 {
			err = fmt.Errorf("dynbind: symbol %s resolved to nil", name)
		}
		if err != nil {
			e.err = fmt.Errorf("%w: %w", ErrSymbolNotFound, err)
			log.Debug("symbol not found", zap.Error(err))
			return
		}
		e.addr = addr
		log.Debug("symbol resolved")
	})
	return e.addr, e.err
}
