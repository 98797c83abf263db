package endpoint_selection

import "errors"

// ErrHostRequired is returned when send mode is asked for without a peer host.
var ErrHostRequired = errors.New("--host is required in send mode")
