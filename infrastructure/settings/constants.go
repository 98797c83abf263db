package settings

import "time"

const (
	// DefaultBeatIntervalMs is the pause between successive heartbeat writes.
	DefaultBeatIntervalMs BeatIntervalMs = 2000

	// DefaultDialTimeoutMs bounds the single connection attempt.
	DefaultDialTimeoutMs DialTimeoutMs = 5000

	// PeerReadTimeout is how long the listener waits without receiving a
	// heartbeat before treating the sender as gone. Must be larger than the
	// beat interval to tolerate scheduler jitter.
	PeerReadTimeout = 5 * time.Second

	// DefaultListenIP is the bind address used when listen mode gets no --host.
	DefaultListenIP = "0.0.0.0"
)
