package app

import (
	"fmt"
	"sync"

	"counter/internal/gui"
	"counter/internal/logger"
	"counter/internal/models"

	"fyne.io/fyne/v2"
)

const (
	AppName    = "Counter"
	AppID      = "io.github.counter"
	AppVersion = "1.0.0"
)

// Application owns the counter state and connects it to the window.
type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	logger     logger.Logger
	config     Config

	counter models.Counter
	stop    sync.Once
}

func New(fyneApp fyne.App, config Config, log logger.Logger) (*Application, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	window := fyneApp.NewWindow(config.Title)
	window.Resize(config.WindowSize)
	window.SetPadded(false)
	window.CenterOnScreen()
	window.SetMaster()

	counter := models.NewCounter()
	guiManager := gui.NewManager(gui.View(counter), config.MinWindowSize, log)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		logger:     log,
		config:     config,
		counter:    counter,
	}

	guiManager.SetMessageHandler(application.dispatch)
	window.SetContent(guiManager.Content())
	application.setupWindowEvents()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  config.WindowSize.Width,
		"window_height": config.WindowSize.Height,
		"value":         counter.Value(),
	})

	return application, nil
}

func (a *Application) Title() string {
	return a.config.Title
}

func (a *Application) Value() int8 {
	return a.counter.Value()
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) GUI() *gui.Manager {
	return a.guiManager
}

// dispatch applies one message and re-renders. Fyne calls it on the main
// goroutine, one tap at a time.
func (a *Application) dispatch(msg models.Message) {
	previous := a.counter
	a.counter = a.counter.Update(msg)

	a.logger.Debug("Application", "state updated", map[string]interface{}{
		"message":  msg.String(),
		"previous": previous.Value(),
		"value":    a.counter.Value(),
	})

	if err := a.guiManager.Render(gui.View(a.counter)); err != nil {
		a.logger.Error("Application", err, map[string]interface{}{
			"message": msg.String(),
		})
	}
}

func (a *Application) setupWindowEvents() {
	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", map[string]interface{}{
			"value": a.counter.Value(),
		})
	})
}

// Run shows the window and blocks until the event loop ends. A panic from
// the GUI host is returned as an error.
func (a *Application) Run() (err error) {
	defer func() {
		a.stop.Do(func() {})
		if r := recover(); r != nil {
			err = fmt.Errorf("gui host failed: %v", r)
		}
	}()

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// Shutdown asks the event loop to exit. Safe to call from any goroutine, more than once.
func (a *Application) Shutdown() {
	a.stop.Do(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		fyne.Do(func() {
			a.guiManager.Shutdown()
			a.fyneApp.Quit()
		})
	})
}
