package application

import (
	"context"
	"net"
)

// Connection establishes the outbound transport to the heartbeat peer.
type Connection interface {
	Establish(ctx context.Context) (net.Conn, error)
}
