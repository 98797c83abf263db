//go:build !windows

package signal

import (
	"os"

	"golang.org/x/sys/unix"
)

type DefaultProvider struct {
}

func NewDefaultProvider() *DefaultProvider {
	return &DefaultProvider{}
}

func (p *DefaultProvider) ShutdownSignals() []os.Signal {
	return []os.Signal{
		os.Interrupt, // SIGINT
		unix.SIGTERM, // TERM
		unix.SIGHUP,  // HUP
	}
}
