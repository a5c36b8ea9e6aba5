package gui

import (
	"fmt"

	"counter/internal/gui/components"
	guilayout "counter/internal/gui/layout"
	"counter/internal/logger"
	"counter/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
)

// Manager materializes a Tree into Fyne widgets once and re-applies later
// trees of the same shape onto them.
type Manager struct {
	logger     logger.Logger
	isShutdown bool

	regions  []Region
	buttons  map[int]*components.LabeledButton
	displays map[int]*components.ValueDisplay
	content  *fyne.Container

	messageHandler func(models.Message)
}

func NewManager(initial Tree, minSize fyne.Size, log logger.Logger) *Manager {
	m := &Manager{
		logger:   log,
		regions:  append([]Region(nil), initial.Regions...),
		buttons:  make(map[int]*components.LabeledButton),
		displays: make(map[int]*components.ValueDisplay),
	}

	objects := make([]fyne.CanvasObject, len(initial.Regions))
	for i, region := range initial.Regions {
		switch region.Kind {
		case RegionButton:
			index := i
			button := components.NewLabeledButton(region.Text, region.TextSize, func() {
				m.onPressed(index)
			})
			button.SetDisabled(region.Disabled)
			m.buttons[i] = button
			objects[i] = button.GetContainer()
		default:
			display := components.NewValueDisplay(region.Text, region.TextSize)
			m.displays[i] = display
			objects[i] = display.GetContainer()
		}
	}

	pad := initial.Padding
	column := container.New(guilayout.NewPortionLayout(initial.weights()...), objects...)
	padded := container.New(layout.NewCustomPaddedLayout(pad, pad, pad, pad), column)
	m.content = container.New(guilayout.NewMinSizeLayout(minSize), padded)

	log.Info("GUIManager", "content built", map[string]interface{}{
		"regions": len(initial.Regions),
		"padding": pad,
	})

	return m
}

func (m *Manager) Content() fyne.CanvasObject {
	return m.content
}

// SetMessageHandler receives exactly one message per enabled button tap.
func (m *Manager) SetMessageHandler(handler func(models.Message)) {
	m.messageHandler = handler
}

// Render applies tree onto the existing widgets. The tree must have the
// same region kinds, in the same order, as the one the Manager was built from.
func (m *Manager) Render(tree Tree) error {
	if len(tree.Regions) != len(m.regions) {
		return fmt.Errorf("render: got %d regions, built with %d", len(tree.Regions), len(m.regions))
	}
	for i, region := range tree.Regions {
		if region.Kind != m.regions[i].Kind {
			return fmt.Errorf("render: region %d changed kind", i)
		}
	}

	for i, region := range tree.Regions {
		if button, ok := m.buttons[i]; ok {
			button.SetLabel(region.Text, region.TextSize)
			button.SetDisabled(region.Disabled)
		}
		if display, ok := m.displays[i]; ok {
			display.SetText(region.Text, region.TextSize)
		}
	}
	m.regions = append(m.regions[:0], tree.Regions...)

	return nil
}

// ButtonFor returns the button emitting msg, or nil.
func (m *Manager) ButtonFor(msg models.Message) *components.LabeledButton {
	for i, region := range m.regions {
		if region.Kind == RegionButton && region.OnPress == msg {
			return m.buttons[i]
		}
	}
	return nil
}

// DisplayText returns the text of the first text region.
func (m *Manager) DisplayText() string {
	for i, region := range m.regions {
		if region.Kind == RegionText {
			return m.displays[i].Text()
		}
	}
	return ""
}

func (m *Manager) onPressed(index int) {
	if m.isShutdown || index >= len(m.regions) {
		return
	}

	region := m.regions[index]
	if region.Disabled {
		return
	}

	m.logger.Debug("GUIManager", "button pressed", map[string]interface{}{
		"message": region.OnPress.String(),
	})

	if m.messageHandler != nil {
		m.messageHandler(region.OnPress)
	}
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}

	m.isShutdown = true
	m.logger.Info("GUIManager", "shutdown initiated", nil)
}
