package heartbeat

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"beatgo/application/logging"
)

// Monitor reads newline-delimited heartbeats from a single accepted sender
// and logs each one. A read deadline guards every read so a silent sender
// does not block the session forever.
type Monitor struct {
	conn        net.Conn
	readTimeout time.Duration
	logger      logging.Logger
}

func NewMonitor(conn net.Conn, readTimeout time.Duration, logger logging.Logger) *Monitor {
	return &Monitor{
		conn:        conn,
		readTimeout: readTimeout,
		logger:      logger,
	}
}

// Run reads until the sender disconnects, goes silent past the read timeout,
// or ctx is cancelled. Disconnect and silence end the session normally.
func (m *Monitor) Run(ctx context.Context) error {
	reader := bufio.NewReader(m.conn)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if deadlineErr := m.conn.SetReadDeadline(time.Now().Add(m.readTimeout)); deadlineErr != nil {
			return fmt.Errorf("set read deadline: %w", deadlineErr)
		}

		line, readErr := reader.ReadString('\n')
		if readErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if netErr, ok := readErr.(net.Error); ok && netErr.Timeout() {
				m.logger.Printf("no heartbeat within %v, closing session", m.readTimeout)
				return nil
			}
			if IsDisconnect(readErr) {
				m.logger.Printf("heartbeat sender disconnected")
				return nil
			}
			return fmt.Errorf("heartbeat read: %w", readErr)
		}

		m.logger.Printf("heartbeat received: %s", strings.TrimRight(line, "\r\n"))
	}
}
