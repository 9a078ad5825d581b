package dynbind

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// Binding is a lazily resolved, optional native function of Go type F.
//
// The first Resolve loads the owning library, looks up the symbol and turns
// its address into an F. The outcome is cached: a binding that resolved
// stays resolved, one that did not stays unavailable, even if the
// environment changes later.
//
// Calling a resolved F is a trusted operation. The binding only guarantees
// that a symbol of that name exists in that library; F is taken on faith to
// match its native signature.
type Binding[F any] struct {
	lib    *Library
	symbol string

	once sync.Once
	fn   F
	ok   bool
	err  error
}

// NewBinding declares an optional binding for symbol in lib. Nothing is
// loaded until Resolve is called. F must be a func type.
func NewBinding[F any](lib *Library, symbol string) *Binding[F] {
	if t := reflect.TypeFor[F](); t.Kind() != reflect.Func {
		panic(fmt.Sprintf("dynbind: binding %s: %s is not a func type", symbol, t))
	}
	return &Binding[F]{lib: lib, symbol: symbol}
}

// Provide returns a binding already resolved to fn. It is meant for tests
// and for platforms where a pure Go replacement exists.
func Provide[F any](symbol string, fn F) *Binding[F] {
	b := &Binding[F]{symbol: symbol, fn: fn, ok: true}
	b.once.Do(func() {})
	return b
}

// Absent returns a binding that is permanently unavailable.
func Absent[F any](symbol string) *Binding[F] {
	b := &Binding[F]{symbol: symbol, err: ErrSymbolNotFound}
	b.once.Do(func() {})
	return b
}

// Resolve returns the callable and true, or the zero F and false when the
// library or the symbol is missing. Only the first call does any work.
func (b *Binding[F]) Resolve() (F, bool) {
	b.once.Do(b.resolve)
	return b.fn, b.ok
}

// Available reports whether Resolve succeeds.
func (b *Binding[F]) Available() bool {
	_, ok := b.Resolve()
	return ok
}

// Err resolves the binding and returns why it is unavailable, or nil. The
// error matches ErrLibraryUnavailable, ErrSymbolNotFound or
// ErrUnsupportedSignature with errors.Is.
func (b *Binding[F]) Err() error {
	b.once.Do(b.resolve)
	return b.err
}

// Name returns the symbol name.
func (b *Binding[F]) Name() string {
	return b.symbol
}

// Library returns the registry entry the binding resolves against. It is
// nil for bindings built with Provide or Absent.
func (b *Binding[F]) Library() *Library {
	return b.lib
}

func (b *Binding[F]) resolve() {
	if b.lib == nil {
		b.err = ErrLibraryUnavailable
		return
	}
	addr, err := b.lib.lookup(b.symbol)
	if err != nil {
		b.err = err
		return
	}
	var fn F
	if err := bindFunc(&fn, addr); err != nil {
		b.err = err
		b.lib.reg.log().Warn("binding unavailable",
			zap.String("library", b.lib.name),
			zap.String("symbol", b.symbol),
			zap.Error(err))
		return
	}
	b.fn, b.ok = fn, true
}
