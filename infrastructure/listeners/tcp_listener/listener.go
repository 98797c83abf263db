package tcp_listener

import (
	"context"
	"fmt"
	"net"
	"net/netip"
)

// Listener binds a TCP port and hands over exactly one accepted connection:
// the monitor serves a single sender per process run.
type Listener struct {
	addrPort netip.AddrPort
	inner    net.Listener
}

func NewListener(addrPort netip.AddrPort) *Listener {
	return &Listener{
		addrPort: addrPort,
	}
}

// Listen binds the socket and returns the actual bound address, which differs
// from the requested one when port 0 was asked for.
func (l *Listener) Listen(ctx context.Context) (netip.AddrPort, error) {
	config := net.ListenConfig{}
	inner, listenErr := config.Listen(ctx, "tcp", l.addrPort.String())
	if listenErr != nil {
		return netip.AddrPort{}, fmt.Errorf("failed to bind %s: %w", l.addrPort, listenErr)
	}

	l.inner = inner
	tcpAddr, ok := inner.Addr().(*net.TCPAddr)
	if !ok {
		_ = inner.Close()
		return netip.AddrPort{}, fmt.Errorf("unexpected listener address type %T", inner.Addr())
	}
	return tcpAddr.AddrPort(), nil
}

// AcceptOnce waits for the first sender and stops listening. Cancelling ctx
// unblocks the accept and returns ctx's error.
func (l *Listener) AcceptOnce(ctx context.Context) (net.Conn, error) {
	if l.inner == nil {
		return nil, fmt.Errorf("listener is not bound")
	}
	defer func() {
		_ = l.inner.Close()
	}()

	stop := context.AfterFunc(ctx, func() {
		_ = l.inner.Close()
	})
	defer stop()

	conn, acceptErr := l.inner.Accept()
	if acceptErr != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, acceptErr
	}
	return conn, nil
}
