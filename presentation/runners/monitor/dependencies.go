package monitor

import (
	"net/netip"

	"beatgo/application/logging"
	"beatgo/infrastructure/listeners/tcp_listener"
	"beatgo/infrastructure/settings"
)

type AppDependencies interface {
	Initialize() error
	Configuration() settings.Settings
	Listener() *tcp_listener.Listener
	Logger() logging.Logger
}

type Dependencies struct {
	conf     settings.Settings
	listener *tcp_listener.Listener
	logger   logging.Logger
}

func NewDependencies(conf settings.Settings, logger logging.Logger) AppDependencies {
	return &Dependencies{
		conf:   conf,
		logger: logger,
	}
}

func (d *Dependencies) Initialize() error {
	addrPort, addrPortErr := d.listenAddrPort()
	if addrPortErr != nil {
		return addrPortErr
	}

	d.listener = tcp_listener.NewListener(addrPort)
	return nil
}

func (d *Dependencies) Configuration() settings.Settings {
	return d.conf
}

func (d *Dependencies) Listener() *tcp_listener.Listener {
	return d.listener
}

func (d *Dependencies) Logger() logging.Logger {
	return d.logger
}

func (d *Dependencies) listenAddrPort() (netip.AddrPort, error) {
	return d.conf.Host.ListenAddrPort(d.conf.Port, settings.DefaultListenIP)
}
