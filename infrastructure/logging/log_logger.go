package logging

import (
	"log"

	"beatgo/application/logging"
)

type LogLogger struct {
}

func NewLogLogger() logging.Logger {
	return &LogLogger{}
}

func (l LogLogger) Printf(format string, v ...any) {
	log.Printf(format, v...)
}
