package mode

type Mode int

const (
	Unknown Mode = iota
	// Send mode connects to a peer and emits heartbeats
	Send
	// Listen mode accepts a single peer and reports its heartbeats
	Listen
)

func (m Mode) String() string {
	switch m {
	case Send:
		return "send"
	case Listen:
		return "listen"
	default:
		return "unknown"
	}
}
