package envs

// State is what Inspect found at the environment directory.
type State uint8

const (
	Absent State = iota
	Present
	// Partial is a directory left behind by an interrupted or failed setup.
	// Only reported when the completion marker is in use.
	Partial
)

func (s State) String() string {
	switch s {
	case Absent:
		return "absent"
	case Present:
		return "present"
	case Partial:
		return "partial"
	}
	return "unknown"
}

// NeedsSetup reports whether creation and installation must run.
func (s State) NeedsSetup() bool {
	return s != Present
}
