package monitor

import (
	"context"
	"errors"
	"fmt"

	"beatgo/infrastructure/network/heartbeat"
	"beatgo/infrastructure/settings"

	"golang.org/x/sync/errgroup"
)

type Runner struct {
	deps AppDependencies
}

func NewRunner(deps AppDependencies) *Runner {
	return &Runner{
		deps: deps,
	}
}

// Run binds the port, waits for a single sender, and reports its heartbeats
// until it disconnects or goes silent.
func (r *Runner) Run(ctx context.Context) error {
	logger := r.deps.Logger()

	bound, listenErr := r.deps.Listener().Listen(ctx)
	if listenErr != nil {
		return listenErr
	}
	logger.Printf("listening for heartbeats on %s", bound)

	conn, acceptErr := r.deps.Listener().AcceptOnce(ctx)
	if acceptErr != nil {
		if errors.Is(acceptErr, context.Canceled) {
			logger.Printf("interrupted, exiting")
			return nil
		}
		return fmt.Errorf("accept failed: %w", acceptErr)
	}
	logger.Printf("heartbeat sender connected from %s", conn.RemoteAddr())

	sessionCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, egCtx := errgroup.WithContext(sessionCtx)
	eg.Go(func() error {
		defer cancel()
		beatMonitor := heartbeat.NewMonitor(conn, settings.PeerReadTimeout, logger)
		return beatMonitor.Run(egCtx)
	})
	// close unblocks a read stuck past the session end
	eg.Go(func() error {
		<-egCtx.Done()
		_ = conn.Close()
		return nil
	})

	runErr := eg.Wait()
	if errors.Is(runErr, context.Canceled) {
		logger.Printf("interrupted, exiting")
		return nil
	}
	return runErr
}
