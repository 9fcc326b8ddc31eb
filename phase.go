package nest

// Phase is the session lifecycle phase. The phases move along the
// uninitialized -> configured -> (running <-> configured) -> ended machine,
// with Setup starting the next session once the previous one ended.
type Phase int

// Session lifecycle phases.
const (
	// PhaseUninitialized is the phase before the first Setup call.
	PhaseUninitialized Phase = iota
	// PhaseConfigured is the phase with a configured kernel and a zeroed
	// simulation clock.
	PhaseConfigured
	// PhaseRunning is the phase after the first Run of a segment.
	PhaseRunning
	// PhaseEnded is the phase after End flushed and cleaned the session.
	PhaseEnded
)

// String implements fmt.Stringer interface.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseConfigured:
		return "configured"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}
