package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"beatgo/domain/mode"
	palSignal "beatgo/infrastructure/PAL/signal"
	"beatgo/infrastructure/logging"
	"beatgo/presentation/endpoint_selection"
	"beatgo/presentation/mode_selection"
	"beatgo/presentation/runners/monitor"
	"beatgo/presentation/runners/sender"
	"beatgo/presentation/signals"
	"beatgo/presentation/signals/shutdown"
)

const (
	PackageName = "beatgo"
	SendMode    = "s"
	ListenMode  = "l"
)

func main() {
	appCtx, appCtxCancel := context.WithCancel(context.Background())
	defer appCtxCancel()

	shutdownHandler := shutdown.NewHandler(
		appCtx,
		appCtxCancel,
		palSignal.NewDefaultProvider(),
		signals.NewDefaultNotifier(),
	)
	shutdownHandler.Handle()

	appMode := mode_selection.NewTeaAppMode(os.Args)
	selectedMode, selectedModeErr := appMode.Mode()
	if selectedModeErr != nil {
		fmt.Println(selectedModeErr)
		printUsage()
		os.Exit(1)
	}

	endpoint := endpoint_selection.NewSelectableEndpoint(os.Args)
	conf, confErr := endpoint.Select(selectedMode)
	if confErr != nil {
		fmt.Println(confErr)
		printUsage()
		os.Exit(1)
	}

	logger := logging.NewLogLogger()

	var runErr error
	switch selectedMode {
	case mode.Send:
		deps := sender.NewDependencies(conf, logger)
		if initErr := deps.Initialize(); initErr != nil {
			log.Fatalf("failed to initialize sender: %v", initErr)
		}
		runErr = sender.NewRunner(deps).Run(appCtx)
	case mode.Listen:
		deps := monitor.NewDependencies(conf, logger)
		if initErr := deps.Initialize(); initErr != nil {
			log.Fatalf("failed to initialize monitor: %v", initErr)
		}
		runErr = monitor.NewRunner(deps).Run(appCtx)
	default:
		printUsage()
		os.Exit(1)
	}

	if runErr != nil {
		log.Printf("%v", runErr)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`Usage: %s [mode] --host <address> --port <port>
Modes:
  %s  - send heartbeats to a peer (default when only flags are given)
  %s  - listen for a single peer's heartbeats (--host optional, binds all interfaces)
`, PackageName, SendMode, ListenMode)
}
