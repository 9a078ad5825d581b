package hidpi

// ProcessTier reports the DPI awareness of the current process.
func ProcessTier() Tier { return Default().ProcessTier() }

// ThreadTier reports the DPI awareness of the calling thread.
func ThreadTier() Tier { return Default().ThreadTier() }

// ThreadContext returns the calling thread's DPI awareness context.
func ThreadContext() Context { return Default().ThreadContext() }

// SetThreadContext sets the calling thread's context and returns the
// previous one.
func SetThreadContext(c Context) Context { return Default().SetThreadContext(c) }

// ContextsEqual reports whether a and b are known to be the same context.
func ContextsEqual(a, b Context) bool { return Default().ContextsEqual(a, b) }

// AwarenessFromContext returns the tier c describes.
func AwarenessFromContext(c Context) Tier { return Default().AwarenessFromContext(c) }

// ContextName returns the DPI_AWARENESS_CONTEXT_* name matching c.
func ContextName(c Context) string { return Default().ContextName(c) }

// WithThreadContext runs fn with the calling thread switched to c.
func WithThreadContext(c Context, fn func() error) error {
	return Default().WithThreadContext(c, fn)
}

// IsProcessDPIAware reports the legacy process awareness flag.
func IsProcessDPIAware() (aware, ok bool) { return Default().IsProcessDPIAware() }

// SetProcessDPIAware marks the process system aware using the legacy API.
func SetProcessDPIAware() (done, ok bool) { return Default().SetProcessDPIAware() }

// SetProcessTier sets the process awareness through shcore.
func SetProcessTier(t Tier) (bool, error) { return Default().SetProcessTier(t) }

// ThreadHostingBehavior returns the calling thread's DPI hosting behavior.
func ThreadHostingBehavior() (HostingBehavior, bool) { return Default().ThreadHostingBehavior() }

// SetThreadHostingBehavior sets the calling thread's DPI hosting behavior
// and returns the previous one.
func SetThreadHostingBehavior(h HostingBehavior) (HostingBehavior, bool) {
	return Default().SetThreadHostingBehavior(h)
}

// DPIByAwareness returns the DPI that applies to hwnd under the calling
// thread's awareness.
func DPIByAwareness(hwnd uintptr) (uint32, bool) { return Default().DPIByAwareness(hwnd) }
