package sender

import (
	"context"
	"errors"
	"fmt"

	"beatgo/infrastructure/network/heartbeat"
)

type Runner struct {
	deps AppDependencies
}

func NewRunner(deps AppDependencies) *Runner {
	return &Runner{
		deps: deps,
	}
}

// Run makes the single connection attempt and drives the heartbeat loop to
// its end. Peer disconnect and operator interrupt terminate normally; a
// failed connect is returned to the caller as a fatal error.
func (r *Runner) Run(ctx context.Context) error {
	logger := r.deps.Logger()
	conf := r.deps.Configuration()

	conn, connErr := r.deps.Connection().Establish(ctx)
	if connErr != nil {
		return fmt.Errorf("could not connect to %s:%d: %w", conf.Host, conf.Port, connErr)
	}
	defer func() {
		_ = conn.Close()
	}()

	logger.Printf("connected to %s:%d, sending heartbeats", conf.Host, conf.Port)

	sendCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// close unblocks a write stuck on a dead peer once the context ends
	go func() {
		<-sendCtx.Done()
		_ = conn.Close()
	}()

	beatSender := heartbeat.NewSender(conn, conf.BeatIntervalMs.Duration())
	runErr := beatSender.Run(sendCtx)
	switch {
	case errors.Is(runErr, context.Canceled):
		logger.Printf("interrupted, exiting")
		return nil
	case heartbeat.IsDisconnect(runErr):
		logger.Printf("lost connection to peer, exiting")
		return nil
	default:
		return runErr
	}
}
