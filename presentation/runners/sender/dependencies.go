package sender

import (
	"beatgo/application"
	"beatgo/application/logging"
	"beatgo/infrastructure/network/tcp"
	"beatgo/infrastructure/settings"
)

type AppDependencies interface {
	Initialize() error
	Configuration() settings.Settings
	Connection() application.Connection
	Logger() logging.Logger
}

type Dependencies struct {
	conf   settings.Settings
	conn   application.Connection
	logger logging.Logger
}

func NewDependencies(conf settings.Settings, logger logging.Logger) AppDependencies {
	return &Dependencies{
		conf:   conf,
		logger: logger,
	}
}

func (d *Dependencies) Initialize() error {
	conn, connErr := tcp.NewTCPConnection(d.conf)
	if connErr != nil {
		return connErr
	}

	d.conn = conn
	return nil
}

func (d *Dependencies) Configuration() settings.Settings {
	return d.conf
}

func (d *Dependencies) Connection() application.Connection {
	return d.conn
}

func (d *Dependencies) Logger() logging.Logger {
	return d.logger
}
