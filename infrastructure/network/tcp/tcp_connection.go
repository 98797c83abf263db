package tcp

import (
	"context"
	"net"

	"beatgo/application"
	"beatgo/infrastructure/settings"
)

type TCPDialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// TCPConnection performs the single outbound connection attempt to the peer.
// There is no retry: a failed dial is final.
type TCPConnection struct {
	endpoint string
	dialer   TCPDialer
}

func NewTCPConnection(conf settings.Settings) (application.Connection, error) {
	endpoint, endpointErr := conf.Host.Endpoint(conf.Port)
	if endpointErr != nil {
		return nil, endpointErr
	}

	return &TCPConnection{
		endpoint: endpoint,
		dialer:   &net.Dialer{Timeout: conf.DialTimeoutMs.Duration()},
	}, nil
}

func NewTCPConnectionWithDialer(endpoint string, dialer TCPDialer) application.Connection {
	return &TCPConnection{
		endpoint: endpoint,
		dialer:   dialer,
	}
}

func (c *TCPConnection) Establish(ctx context.Context) (net.Conn, error) {
	conn, connErr := c.dialer.DialContext(ctx, "tcp", c.endpoint)
	if connErr != nil {
		return nil, connErr
	}

	return conn, nil
}
