package mode_selection

import "beatgo/domain/mode"

// AppMode resolves the application's runtime mode.
type AppMode interface {
	Mode() (mode.Mode, error)
}
