package hidpi

// Context is a DPI_AWARENESS_CONTEXT. Values other than the predefined
// pseudo-handles are opaque and must be compared with ContextsEqual.
type Context uintptr

const (
	ContextUnaware           Context = ^Context(0) // -1
	ContextSystemAware       Context = ^Context(1) // -2
	ContextPerMonitorAware   Context = ^Context(2) // -3
	ContextPerMonitorAwareV2 Context = ^Context(3) // -4
	ContextUnawareGdiScaled  Context = ^Context(4) // -5
)

// ContextForTier returns the predefined context for t.
func ContextForTier(t Tier) Context {
	switch t {
	case System:
		return ContextSystemAware
	case PerMonitor:
		return ContextPerMonitorAware
	case PerMonitorV2:
		return ContextPerMonitorAwareV2
	default:
		return ContextUnaware
	}
}

func contextName(t Tier) string {
	switch t {
	case System:
		return "DPI_AWARENESS_CONTEXT_SYSTEM_AWARE"
	case PerMonitor:
		return "DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE"
	case PerMonitorV2:
		return "DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2"
	default:
		return "DPI_AWARENESS_CONTEXT_UNAWARE"
	}
}
