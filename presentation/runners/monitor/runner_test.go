package monitor

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"strings"
	"sync"
	"testing"
	"time"

	"beatgo/application/logging"
	"beatgo/infrastructure/listeners/tcp_listener"
	"beatgo/infrastructure/network/heartbeat"
	"beatgo/infrastructure/settings"
)

type MonitorRunnerMockLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *MonitorRunnerMockLogger) Printf(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *MonitorRunnerMockLogger) Count(substring string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	var count int
	for _, line := range l.lines {
		if strings.Contains(line, substring) {
			count++
		}
	}
	return count
}

// MonitorRunnerMockDeps binds to an ephemeral loopback port regardless of the
// configured one, so tests never collide.
type MonitorRunnerMockDeps struct {
	conf     settings.Settings
	listener *tcp_listener.Listener
	logger   logging.Logger
}

func newMonitorRunnerMockDeps(logger logging.Logger) *MonitorRunnerMockDeps {
	host, _ := settings.NewHost("127.0.0.1")
	return &MonitorRunnerMockDeps{
		conf:     settings.NewDefaultSettings(host, 9999),
		listener: tcp_listener.NewListener(netip.MustParseAddrPort("127.0.0.1:0")),
		logger:   logger,
	}
}

func (d *MonitorRunnerMockDeps) Initialize() error { return nil }

func (d *MonitorRunnerMockDeps) Configuration() settings.Settings { return d.conf }

func (d *MonitorRunnerMockDeps) Listener() *tcp_listener.Listener { return d.listener }

func (d *MonitorRunnerMockDeps) Logger() logging.Logger { return d.logger }

func boundAddrFromLog(t *testing.T, logger *MonitorRunnerMockLogger) string {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		logger.mu.Lock()
		for _, line := range logger.lines {
			if strings.HasPrefix(line, "listening for heartbeats on ") {
				addr := strings.TrimPrefix(line, "listening for heartbeats on ")
				logger.mu.Unlock()
				return addr
			}
		}
		logger.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("listener address was never logged")
	return ""
}

func TestRunner_Run_ReadsThreeBeatsThenPeerCloses(t *testing.T) {
	logger := &MonitorRunnerMockLogger{}
	deps := newMonitorRunnerMockDeps(logger)

	done := make(chan error, 1)
	go func() {
		done <- NewRunner(deps).Run(context.Background())
	}()

	addr := boundAddrFromLog(t, logger)
	conn, dialErr := net.Dial("tcp", addr)
	if dialErr != nil {
		t.Fatalf("unexpected dial error: %v", dialErr)
	}
	for i := 0; i < 3; i++ {
		if _, err := conn.Write(heartbeat.Token()); err != nil {
			t.Fatalf("unexpected write error: %v", err)
		}
	}
	_ = conn.Close()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected normal termination, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop after peer close")
	}

	if got := logger.Count("heartbeat received"); got != 3 {
		t.Fatalf("expected 3 received heartbeats, got %d (lines: %v)", got, logger.lines)
	}
	if logger.Count("heartbeat sender disconnected") != 1 {
		t.Fatalf("expected disconnect log, got %v", logger.lines)
	}
}

func TestRunner_Run_InterruptWhileWaitingForPeer(t *testing.T) {
	logger := &MonitorRunnerMockLogger{}
	deps := newMonitorRunnerMockDeps(logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewRunner(deps).Run(ctx)
	}()

	boundAddrFromLog(t, logger)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected normal termination, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("runner did not stop after cancel")
	}
	if logger.Count("interrupted") != 1 {
		t.Fatalf("expected interrupt log, got %v", logger.lines)
	}
}

func TestDependencies_Initialize(t *testing.T) {
	host, _ := settings.NewHost("127.0.0.1")
	deps := NewDependencies(settings.NewDefaultSettings(host, 53717), &MonitorRunnerMockLogger{})
	if err := deps.Initialize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deps.Listener() == nil {
		t.Fatal("expected listener to be built")
	}

	domainHost, _ := settings.NewHost("example.org")
	badDeps := NewDependencies(settings.NewDefaultSettings(domainHost, 53717), &MonitorRunnerMockLogger{})
	if err := badDeps.Initialize(); err == nil {
		t.Fatal("expected error for non-IP bind host")
	}
}
