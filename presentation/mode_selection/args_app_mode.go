package mode_selection

import (
	"strings"

	"beatgo/domain/mode"
)

type ArgsAppMode struct {
	arguments []string
}

func NewArgsAppMode(arguments []string) AppMode {
	return &ArgsAppMode{
		arguments: arguments,
	}
}

func (a *ArgsAppMode) Mode() (mode.Mode, error) {
	if len(a.arguments) == 0 {
		return mode.Unknown, mode.NewInvalidExecPathProvided()
	}

	if len(a.arguments) < 2 {
		return mode.Unknown, mode.NewNoModeProvided()
	}

	modeArgument := strings.TrimSpace(strings.ToLower(a.arguments[1]))
	switch modeArgument {
	case "s", "send":
		return mode.Send, nil
	case "l", "listen":
		return mode.Listen, nil
	default:
		// bare flag form (`--host H --port P`) implies send mode
		if strings.HasPrefix(modeArgument, "--") {
			return mode.Send, nil
		}
		return mode.Unknown, mode.NewInvalidModeProvided(modeArgument)
	}
}
