package core

// Status is the symbolic indicator derived from the available balance.
type Status string

const (
	StatusExcellent Status = "excellent"
	StatusGood      Status = "good"
	StatusTight     Status = "tight"
	StatusOverspent Status = "overspent"
)

// statusBands is ordered from most to least favorable; the first band whose
// lower bound is exceeded wins, which keeps the mapping monotonic.
var statusBands = []struct {
	above  float64
	status Status
}{
	{1000, StatusExcellent},
	{500, StatusGood},
	{0, StatusTight},
}

// StatusFor maps an available balance into its status band. The thresholds
// are presentation policy, not budget logic.
func StatusFor(available float64) Status {
	for _, b := range statusBands {
		if available > b.above {
			return b.status
		}
	}
	return StatusOverspent
}

// Icon returns the traffic-light glyph shown next to the status.
func (s Status) Icon() string {
	switch s {
	case StatusExcellent:
		return "\U0001F7E2" // green circle
	case StatusGood:
		return "\U0001F7E1" // yellow circle
	case StatusTight:
		return "\U0001F7E0" // orange circle
	default:
		return "\U0001F534" // red circle
	}
}

// Label returns the short text shown in the dashboard table.
func (s Status) Label() string {
	switch s {
	case StatusExcellent:
		return "Excellent"
	case StatusGood:
		return "On track"
	case StatusTight:
		return "Tight"
	default:
		return "Over budget"
	}
}

// Favorability orders statuses from worst (0) to best. Useful for sorting and
// for asserting the band mapping never regresses as available grows.
func (s Status) Favorability() int {
	switch s {
	case StatusOverspent:
		return 0
	case StatusTight:
		return 1
	case StatusGood:
		return 2
	default:
		return 3
	}
}
