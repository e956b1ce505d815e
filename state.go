package vizcanvas

// State is the lifecycle state of a Surface.
type State uint8

const (
	// StateNotReady means no drawing context exists yet, usually because
	// the host is not attached.
	StateNotReady State = iota

	// StateReady means the surface has a scaled drawing context.
	StateReady

	// StateReleased is terminal: the listener is gone and the context closed.
	StateReleased
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNotReady:
		return "NotReady"
	case StateReady:
		return "Ready"
	case StateReleased:
		return "Released"
	default:
		return "Unknown"
	}
}
