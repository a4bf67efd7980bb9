package reconcile

type State uint8

const (
	StateStart State = iota
	StateResolving
	StateComparing
	StateNoop
	StateUpdating
	StateConfirming
	StateNotifying
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateResolving:
		return "resolving"
	case StateComparing:
		return "comparing"
	case StateNoop:
		return "noop"
	case StateUpdating:
		return "updating"
	case StateConfirming:
		return "confirming"
	case StateNotifying:
		return "notifying"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
