package endpoint_selection

import (
	"fmt"
	"strconv"
	"strings"

	"beatgo/infrastructure/settings"
)

// ArgsEndpoint extracts --host and --port from argv. Both `--flag value` and
// `--flag=value` forms are accepted; a leading mode argument is skipped.
type ArgsEndpoint struct {
	arguments []string
}

func NewArgsEndpoint(arguments []string) *ArgsEndpoint {
	return &ArgsEndpoint{
		arguments: arguments,
	}
}

// HasFlags reports whether argv carries any endpoint flags at all. Without
// them the caller falls back to the interactive prompt.
func (a *ArgsEndpoint) HasFlags() bool {
	for _, argument := range a.flagArguments() {
		if strings.HasPrefix(argument, "--") {
			return true
		}
	}
	return false
}

func (a *ArgsEndpoint) Endpoint() (settings.Host, int, error) {
	var hostRaw, portRaw string
	var hostSet, portSet bool

	flagArguments := a.flagArguments()
	for i := 0; i < len(flagArguments); i++ {
		argument := flagArguments[i]
		name, value, valueInline := splitFlag(argument)
		switch name {
		case "--host":
			if !valueInline {
				if i+1 >= len(flagArguments) {
					return settings.Host{}, 0, fmt.Errorf("--host requires a value")
				}
				i++
				value = flagArguments[i]
			}
			hostRaw, hostSet = value, true
		case "--port":
			if !valueInline {
				if i+1 >= len(flagArguments) {
					return settings.Host{}, 0, fmt.Errorf("--port requires a value")
				}
				i++
				value = flagArguments[i]
			}
			portRaw, portSet = value, true
		default:
			return settings.Host{}, 0, fmt.Errorf("unknown argument %q", argument)
		}
	}

	if !portSet {
		return settings.Host{}, 0, fmt.Errorf("--port is required")
	}
	port, portErr := strconv.Atoi(strings.TrimSpace(portRaw))
	if portErr != nil {
		return settings.Host{}, 0, fmt.Errorf("invalid --port value %q", portRaw)
	}
	if validateErr := settings.ValidatePort(port); validateErr != nil {
		return settings.Host{}, 0, validateErr
	}

	var host settings.Host
	if hostSet {
		parsed, parseErr := settings.NewHost(hostRaw)
		if parseErr != nil {
			return settings.Host{}, 0, parseErr
		}
		host = parsed
	}

	return host, port, nil
}

// flagArguments strips the binary path and an optional leading mode argument.
func (a *ArgsEndpoint) flagArguments() []string {
	if len(a.arguments) < 2 {
		return nil
	}
	rest := a.arguments[1:]
	if !strings.HasPrefix(rest[0], "--") {
		rest = rest[1:]
	}
	return rest
}

func splitFlag(argument string) (name, value string, valueInline bool) {
	if eq := strings.Index(argument, "="); eq >= 0 {
		return argument[:eq], argument[eq+1:], true
	}
	return argument, "", false
}
