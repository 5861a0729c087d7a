package session

// State tracks where the session is in the per-file protocol. The
// transition table is explicit so the protocol is testable without a
// terminal attached.
type State int

const (
	StatePresenting State = iota
	StateDeleting
	StateKeeping
	StateSkipping
	StateInspecting
	StateBrowsing
	StateTerminated
	StateDone
)

func (s State) String() string {
	switch s {
	case StatePresenting:
		return "presenting"
	case StateDeleting:
		return "deleting"
	case StateKeeping:
		return "keeping"
	case StateSkipping:
		return "skipping"
	case StateInspecting:
		return "inspecting"
	case StateBrowsing:
		return "browsing"
	case StateTerminated:
		return "terminated"
	case StateDone:
		return "done"
	default:
		return "invalid"
	}
}

// Terminal reports whether no further records will be processed.
func (s State) Terminal() bool {
	return s == StateTerminated || s == StateDone
}

// Transition maps an already-resolved command (no CmdDefault) to the
// next state. Inspecting and browsing return to presenting the same
// record; unknown input re-presents without consuming anything.
func Transition(cmd Command) State {
	switch cmd {
	case CmdYes:
		return StateDeleting
	case CmdNo:
		return StateKeeping
	case CmdSkip:
		return StateSkipping
	case CmdInfo:
		return StateInspecting
	case CmdOpen:
		return StateBrowsing
	case CmdQuit:
		return StateTerminated
	default:
		return StatePresenting
	}
}
