package cli

// Screen is the part of the flow the REPL is on.
type Screen int

const (
	ScreenAuth Screen = iota
	ScreenDashboard
	ScreenCheckIn
)

func (s Screen) String() string {
	switch s {
	case ScreenAuth:
		return "auth"
	case ScreenDashboard:
		return "dashboard"
	case ScreenCheckIn:
		return "check-in"
	}
	return "unknown"
}
