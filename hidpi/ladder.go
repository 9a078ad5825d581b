package hidpi

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/zap"

	"github.com/crgimenes/dynbind"
)

// ErrUnsupportedTier is returned by SetProcessTier for tiers the process
// API cannot express.
var ErrUnsupportedTier = errors.New("hidpi: unsupported tier")

const sOK = 0

// Bindings holds the optional entry points a Ladder probes. A nil field is
// treated as unavailable.
type Bindings struct {
	IsProcessDPIAware                   *dynbind.Binding[func() int32]
	SetProcessDPIAware                  *dynbind.Binding[func() int32]
	GetProcessDpiAwareness              *dynbind.Binding[func(hProcess uintptr, value *int32) int32]
	SetProcessDpiAwareness              *dynbind.Binding[func(value int32) int32]
	GetDpiAwarenessContextForProcess    *dynbind.Binding[func(hProcess uintptr) uintptr]
	GetThreadDpiAwarenessContext        *dynbind.Binding[func() uintptr]
	SetThreadDpiAwarenessContext        *dynbind.Binding[func(dpiContext uintptr) uintptr]
	GetAwarenessFromDpiAwarenessContext *dynbind.Binding[func(value uintptr) int32]
	AreDpiAwarenessContextsEqual        *dynbind.Binding[func(dpiContextA uintptr, dpiContextB uintptr) int32]
	GetThreadDpiHostingBehavior         *dynbind.Binding[func() int32]
	SetThreadDpiHostingBehavior         *dynbind.Binding[func(value int32) int32]
	GetDpiForSystem                     *dynbind.Binding[func() uint32]
	GetDpiForWindow                     *dynbind.Binding[func(hwnd uintptr) uint32]
}

func systemBindings() Bindings {
	return Bindings{
		IsProcessDPIAware:                   procIsProcessDPIAware,
		SetProcessDPIAware:                  procSetProcessDPIAware,
		GetProcessDpiAwareness:              procGetProcessDpiAwareness,
		SetProcessDpiAwareness:              procSetProcessDpiAwareness,
		GetDpiAwarenessContextForProcess:    procGetDpiAwarenessContextForProcess,
		GetThreadDpiAwarenessContext:        procGetThreadDpiAwarenessContext,
		SetThreadDpiAwarenessContext:        procSetThreadDpiAwarenessContext,
		GetAwarenessFromDpiAwarenessContext: procGetAwarenessFromDpiAwarenessContext,
		AreDpiAwarenessContextsEqual:        procAreDpiAwarenessContextsEqual,
		GetThreadDpiHostingBehavior:         procGetThreadDpiHostingBehavior,
		SetThreadDpiHostingBehavior:         procSetThreadDpiHostingBehavior,
		GetDpiForSystem:                     procGetDpiForSystem,
		GetDpiForWindow:                     procGetDpiForWindow,
	}
}

func resolve[F any](b *dynbind.Binding[F]) (F, bool) {
	if b == nil {
		var zero F
		return zero, false
	}
	return b.Resolve()
}

// Ladder answers DPI questions by trying the most capable available entry
// point first and falling back to older ones, ending at a baseline answer.
// Probing never changes process or thread state.
type Ladder struct {
	b Bindings
}

// New returns a ladder over b.
func New(b Bindings) *Ladder {
	return &Ladder{b: b}
}

var defaultLadder = sync.OnceValue(func() *Ladder {
	return New(systemBindings())
})

// Default returns the ladder over the system entry points.
func Default() *Ladder {
	return defaultLadder()
}

type rung struct {
	name  string
	probe func() (Tier, bool)
}

func climb(query string, rungs []rung) Tier {
	for _, r := range rungs {
		if t, ok := r.probe(); ok {
			logger().Debug("tier resolved",
				zap.String("query", query),
				zap.String("rung", r.name),
				zap.Stringer("tier", t))
			return t
		}
	}
	logger().Debug("tier baseline", zap.String("query", query), zap.Stringer("tier", Baseline))
	return Baseline
}

func logger() *zap.Logger {
	return dynbind.Logger().Named("hidpi")
}

// ProcessTier reports the DPI awareness of the current process.
func (l *Ladder) ProcessTier() Tier {
	return climb("process", []rung{
		{"GetDpiAwarenessContextForProcess", l.processContextTier},
		{"GetProcessDpiAwareness", l.processAwarenessTier},
		{"IsProcessDPIAware", l.legacyProcessTier},
	})
}

func (l *Ladder) processContextTier() (Tier, bool) {
	get, ok := resolve(l.b.GetDpiAwarenessContextForProcess)
	if !ok {
		return Baseline, false
	}
	// NULL selects the current process.
	return l.contextTier(Context(get(0)))
}

func (l *Ladder) processAwarenessTier() (Tier, bool) {
	get, ok := resolve(l.b.GetProcessDpiAwareness)
	if !ok {
		return Baseline, false
	}
	var v int32
	if hr := get(0, &v); hr != sOK {
		return Baseline, false
	}
	return awarenessTier(v)
}

func (l *Ladder) legacyProcessTier() (Tier, bool) {
	aware, ok := l.IsProcessDPIAware()
	if !ok {
		return Baseline, false
	}
	if aware {
		return System, true
	}
	return Unaware, true
}

// contextTier maps c to a tier. PerMonitor is promoted to PerMonitorV2 only
// when c is known to equal the V2 context.
func (l *Ladder) contextTier(c Context) (Tier, bool) {
	get, ok := resolve(l.b.GetAwarenessFromDpiAwarenessContext)
	if !ok {
		return Baseline, false
	}
	t, ok := awarenessTier(get(uintptr(c)))
	if !ok {
		return Baseline, false
	}
	if t == PerMonitor && l.ContextsEqual(c, ContextPerMonitorAwareV2) {
		t = PerMonitorV2
	}
	return t, true
}

// ThreadTier reports the DPI awareness of the calling thread. The thread
// context is read once and every later step works on that snapshot.
func (l *Ladder) ThreadTier() Tier {
	c, ok := l.threadContext()
	return climb("thread", []rung{
		{"GetThreadDpiAwarenessContext", func() (Tier, bool) {
			if !ok {
				return Baseline, false
			}
			return l.contextTier(c)
		}},
	})
}

func (l *Ladder) threadContext() (Context, bool) {
	get, ok := resolve(l.b.GetThreadDpiAwarenessContext)
	if !ok {
		return ContextUnaware, false
	}
	return Context(get()), true
}

// ThreadContext returns the calling thread's DPI awareness context, or
// ContextUnaware when it cannot be queried.
func (l *Ladder) ThreadContext() Context {
	c, _ := l.threadContext()
	return c
}

// SetThreadContext makes c the calling thread's context and returns the
// previous one. When the entry point is missing or the OS rejects c, the
// thread is left unchanged and its current context is returned, so the
// result is always safe to restore.
func (l *Ladder) SetThreadContext(c Context) Context {
	set, ok := resolve(l.b.SetThreadDpiAwarenessContext)
	if !ok {
		return l.ThreadContext()
	}
	prev := Context(set(uintptr(c)))
	if prev == 0 {
		logger().Debug("thread context rejected", zap.Uintptr("context", uintptr(c)))
		return l.ThreadContext()
	}
	return prev
}

// ContextsEqual reports whether a and b are known to be the same context.
// It is false when the comparison is unavailable.
func (l *Ladder) ContextsEqual(a, b Context) bool {
	eq, ok := resolve(l.b.AreDpiAwarenessContextsEqual)
	if !ok {
		return false
	}
	return eq(uintptr(a), uintptr(b)) != 0
}

// AwarenessFromContext returns the tier c describes, or Baseline.
func (l *Ladder) AwarenessFromContext(c Context) Tier {
	t, _ := l.contextTier(c)
	return t
}

// ContextName returns the DPI_AWARENESS_CONTEXT_* name matching c.
func (l *Ladder) ContextName(c Context) string {
	return contextName(l.AwarenessFromContext(c))
}

// WithThreadContext runs fn with the calling thread switched to c and
// restores the previous context when fn returns or panics. The goroutine
// stays locked to its OS thread for the duration.
func (l *Ladder) WithThreadContext(c Context, fn func() error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	prev := l.SetThreadContext(c)
	defer l.SetThreadContext(prev)

	return fn()
}

// IsProcessDPIAware reports the legacy process awareness flag. ok is false
// when the entry point is missing.
func (l *Ladder) IsProcessDPIAware() (aware, ok bool) {
	get, ok := resolve(l.b.IsProcessDPIAware)
	if !ok {
		return false, false
	}
	return get() != 0, true
}

// SetProcessDPIAware marks the process system aware using the legacy API.
func (l *Ladder) SetProcessDPIAware() (done, ok bool) {
	set, ok := resolve(l.b.SetProcessDPIAware)
	if !ok {
		return false, false
	}
	return set() != 0, true
}

// SetProcessTier sets the process awareness through shcore. It returns
// false and no error when the entry point is missing.
func (l *Ladder) SetProcessTier(t Tier) (bool, error) {
	var v int32
	switch t {
	case Unaware:
		v = 0
	case System:
		v = 1
	case PerMonitor:
		v = 2
	default:
		return false, fmt.Errorf("%w: %s", ErrUnsupportedTier, t)
	}
	set, ok := resolve(l.b.SetProcessDpiAwareness)
	if !ok {
		return false, nil
	}
	if hr := set(v); hr != sOK {
		return false, fmt.Errorf("SetProcessDpiAwareness(%s): HRESULT 0x%08X", t, uint32(hr))
	}
	return true, nil
}

// ThreadHostingBehavior returns the calling thread's DPI hosting behavior.
func (l *Ladder) ThreadHostingBehavior() (HostingBehavior, bool) {
	get, ok := resolve(l.b.GetThreadDpiHostingBehavior)
	if !ok {
		return HostingInvalid, false
	}
	return HostingBehavior(get()), true
}

// SetThreadHostingBehavior sets the calling thread's DPI hosting behavior and
// returns the previous one.
func (l *Ladder) SetThreadHostingBehavior(h HostingBehavior) (HostingBehavior, bool) {
	set, ok := resolve(l.b.SetThreadDpiHostingBehavior)
	if !ok {
		return HostingInvalid, false
	}
	prev := HostingBehavior(set(int32(h)))
	if prev == HostingInvalid {
		return prev, false
	}
	return prev, true
}

// DPIByAwareness returns the DPI that applies to hwnd under the calling
// thread's awareness: the system DPI for system aware threads and the
// window DPI for per-monitor aware ones. Unaware threads get no answer.
func (l *Ladder) DPIByAwareness(hwnd uintptr) (uint32, bool) {
	switch l.ThreadTier() {
	case System:
		get, ok := resolve(l.b.GetDpiForSystem)
		if !ok {
			return 0, false
		}
		return get(), true
	case PerMonitor, PerMonitorV2:
		get, ok := resolve(l.b.GetDpiForWindow)
		if !ok {
			return 0, false
		}
		dpi := get(hwnd)
		return dpi, dpi != 0
	default:
		return 0, false
	}
}
