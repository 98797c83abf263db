package endpoint_selection

import (
	"beatgo/domain/mode"
	"beatgo/infrastructure/settings"
)

// SelectableEndpoint resolves the endpoint args-first and falls back to the
// interactive prompt when no flags were given.
type SelectableEndpoint struct {
	args   *ArgsEndpoint
	prompt *PromptEndpoint
}

func NewSelectableEndpoint(arguments []string) *SelectableEndpoint {
	return &SelectableEndpoint{
		args:   NewArgsEndpoint(arguments),
		prompt: NewPromptEndpoint(),
	}
}

func (s *SelectableEndpoint) Select(selectedMode mode.Mode) (settings.Settings, error) {
	var host settings.Host
	var port int
	var err error

	if s.args.HasFlags() {
		host, port, err = s.args.Endpoint()
	} else {
		host, port, err = s.prompt.Endpoint(selectedMode)
	}
	if err != nil {
		return settings.Settings{}, err
	}

	if host.IsZero() && selectedMode == mode.Send {
		return settings.Settings{}, ErrHostRequired
	}

	return settings.NewDefaultSettings(host, port), nil
}
