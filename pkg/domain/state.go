package domain

// State is the readiness classification of the machine.
// It is derived from the deposit loads and never set independently.
type State int

const (
	// StateActionRequired means a maintenance action must run before brewing resumes.
	StateActionRequired State = iota
	// StateReady means brewing is permitted.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateActionRequired:
		return "ActionRequired"
	default:
		return "Unknown"
	}
}

// MarshalText lets State appear by name in JSON frames and structured logs.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
