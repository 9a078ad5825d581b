package hidpi

// Tier is a DPI awareness level. Higher tiers are more capable.
type Tier int

const (
	Unaware Tier = iota
	System
	PerMonitor
	PerMonitorV2
)

// Baseline is the answer when no probe succeeds.
const Baseline = Unaware

func (t Tier) String() string {
	switch t {
	case Unaware:
		return "unaware"
	case System:
		return "system"
	case PerMonitor:
		return "per-monitor"
	case PerMonitorV2:
		return "per-monitor-v2"
	default:
		return "invalid"
	}
}

// awarenessTier maps DPI_AWARENESS and PROCESS_DPI_AWARENESS values, which
// share the 0..2 encoding.
func awarenessTier(v int32) (Tier, bool) {
	switch v {
	case 0:
		return Unaware, true
	case 1:
		return System, true
	case 2:
		return PerMonitor, true
	default:
		return Baseline, false
	}
}

// HostingBehavior is a DPI_HOSTING_BEHAVIOR value.
type HostingBehavior int32

const (
	HostingInvalid HostingBehavior = -1
	HostingDefault HostingBehavior = 0
	HostingMixed   HostingBehavior = 1
)

func (h HostingBehavior) String() string {
	switch h {
	case HostingDefault:
		return "default"
	case HostingMixed:
		return "mixed"
	default:
		return "invalid"
	}
}
