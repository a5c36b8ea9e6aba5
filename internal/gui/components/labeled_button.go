package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LabeledButton is a full-size button with a Caption drawn over it, so the
// caption can use any text size.
type LabeledButton struct {
	Button    *widget.Button
	label     *Caption
	container *fyne.Container
}

func NewLabeledButton(text string, textSize float32, tapped func()) *LabeledButton {
	label := NewCaption(text, textSize)
	button := widget.NewButton("", tapped)

	return &LabeledButton{
		Button:    button,
		label:     label,
		container: container.NewStack(button, label),
	}
}

func (lb *LabeledButton) GetContainer() *fyne.Container {
	return lb.container
}

func (lb *LabeledButton) Label() string {
	return lb.label.Text
}

func (lb *LabeledButton) TextSize() float32 {
	return lb.label.TextSize
}

func (lb *LabeledButton) SetLabel(text string, textSize float32) {
	if lb.label.Text == text && lb.label.TextSize == textSize {
		return
	}
	lb.label.Text = text
	lb.label.TextSize = textSize
	lb.label.Refresh()
}

// SetDisabled toggles interactivity; the caption is dimmed while disabled.
func (lb *LabeledButton) SetDisabled(disabled bool) {
	if lb.Button.Disabled() == disabled {
		return
	}

	if disabled {
		lb.Button.Disable()
	} else {
		lb.Button.Enable()
	}
	lb.label.Dimmed = disabled
	lb.label.Refresh()
}
