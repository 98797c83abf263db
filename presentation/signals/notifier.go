package signals

import (
	"os"
	"os/signal"
)

type Notifier interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

// Handler reacts to subscribed signals until the application context ends.
type Handler interface {
	Handle()
}

type DefaultNotifier struct {
}

func NewDefaultNotifier() DefaultNotifier {
	return DefaultNotifier{}
}

func (n DefaultNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

func (n DefaultNotifier) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}
