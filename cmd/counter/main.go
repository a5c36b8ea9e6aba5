package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"counter/internal/app"
	"counter/internal/shutdown"

	fyneapp "fyne.io/fyne/v2/app"
)

func main() {
	os.Exit(exitCode(os.Stderr, run()))
}

// exitCode reports err on w independently of the configured log level.
func exitCode(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(w, "%s: %v\n", app.AppName, err)
	return 1
}

func run() error {
	config, configErr := app.ConfigFromEnv()
	log := config.NewLogger()
	if configErr != nil {
		log.Warning("Main", "ignoring invalid environment setting", map[string]interface{}{
			"error": configErr.Error(),
		})
	}

	log.Info("Main", "starting", map[string]interface{}{
		"version":    app.AppVersion,
		"go_version": runtime.Version(),
	})

	application, err := app.New(fyneapp.NewWithID(app.AppID), config, log)
	if err != nil {
		log.Error("Main", err, nil)
		return err
	}

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register(application)
	shutdownManager.Listen()

	if err := application.Run(); err != nil {
		log.Error("Main", err, nil)
		return err
	}

	shutdownManager.Shutdown()
	log.Info("Main", "application terminated", map[string]interface{}{
		"value": application.Value(),
	})
	return nil
}
