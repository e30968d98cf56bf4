package engine

// Phase is the machine's current mode.
type Phase int

const (
	Typing Phase = iota
	PausedAfterTyping
	Deleting
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case PausedAfterTyping:
		return "paused"
	case Deleting:
		return "deleting"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}
