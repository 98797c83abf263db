package heartbeat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
	"time"
)

// beatToken is the liveness token written on every tick. The peer treats any
// newline-terminated line as a heartbeat; the trailing newline is the only
// framing on the wire.
var beatToken = []byte("heartbeat\n")

// Token returns a copy of the wire token.
func Token() []byte {
	token := make([]byte, len(beatToken))
	copy(token, beatToken)
	return token
}

// Sender writes the heartbeat token to an established connection on a fixed
// cadence. It owns no reconnect logic: the first failed write ends the run.
type Sender struct {
	conn     net.Conn
	interval time.Duration
}

func NewSender(conn net.Conn, interval time.Duration) *Sender {
	return &Sender{
		conn:     conn,
		interval: interval,
	}
}

// Run emits the token immediately and then once per interval until ctx is
// cancelled or a write fails. The wait is a select on the ticker, not a bare
// sleep, so cancellation is not bounded by the interval.
func (s *Sender) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, writeErr := s.conn.Write(beatToken); writeErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("heartbeat write: %w", writeErr)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// IsDisconnect reports whether err is a peer-side connection teardown: reset,
// broken pipe, EOF, or a write on a connection already closed by the shutdown
// path.
func IsDisconnect(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, net.ErrClosed)
}
