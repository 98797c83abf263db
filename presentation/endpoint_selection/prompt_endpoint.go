package endpoint_selection

import (
	"fmt"
	"strconv"
	"strings"

	"beatgo/domain/mode"
	"beatgo/infrastructure/settings"
	"beatgo/presentation/bubble_tea"

	tea "github.com/charmbracelet/bubbletea"
)

// PromptEndpoint asks for host and port interactively when argv carries no
// endpoint flags.
type PromptEndpoint struct {
	runInput func(placeholder string) (string, error)
}

func NewPromptEndpoint() *PromptEndpoint {
	return &PromptEndpoint{
		runInput: runTextInput,
	}
}

func (p *PromptEndpoint) Endpoint(selectedMode mode.Mode) (settings.Host, int, error) {
	hostPlaceholder := "Peer host (IP or domain)"
	if selectedMode == mode.Listen {
		hostPlaceholder = "Bind address (empty for all interfaces)"
	}

	hostRaw, hostInputErr := p.runInput(hostPlaceholder)
	if hostInputErr != nil {
		return settings.Host{}, 0, hostInputErr
	}
	host, hostErr := settings.NewHost(hostRaw)
	if hostErr != nil {
		return settings.Host{}, 0, hostErr
	}
	if host.IsZero() && selectedMode == mode.Send {
		return settings.Host{}, 0, fmt.Errorf("host is required")
	}

	portRaw, portInputErr := p.runInput("Peer port (1-65535)")
	if portInputErr != nil {
		return settings.Host{}, 0, portInputErr
	}
	port, portErr := strconv.Atoi(strings.TrimSpace(portRaw))
	if portErr != nil {
		return settings.Host{}, 0, fmt.Errorf("invalid port value %q", portRaw)
	}
	if validateErr := settings.ValidatePort(port); validateErr != nil {
		return settings.Host{}, 0, validateErr
	}

	return host, port, nil
}

func runTextInput(placeholder string) (string, error) {
	input := bubble_tea.NewTextInput(placeholder)
	program, programErr := tea.NewProgram(input).Run()
	if programErr != nil {
		return "", programErr
	}

	result, ok := program.(*bubble_tea.TextInput)
	if !ok {
		return "", fmt.Errorf("unexpected text input model")
	}
	if result.Cancelled() {
		return "", fmt.Errorf("input cancelled")
	}
	return result.Value(), nil
}
