package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// ValueDisplay shows a single line of large centered text.
type ValueDisplay struct {
	text      *Caption
	container *fyne.Container
}

func NewValueDisplay(text string, textSize float32) *ValueDisplay {
	caption := NewCaption(text, textSize)

	return &ValueDisplay{
		text:      caption,
		container: container.NewStack(caption),
	}
}

func (vd *ValueDisplay) GetContainer() *fyne.Container {
	return vd.container
}

func (vd *ValueDisplay) Text() string {
	return vd.text.Text
}

func (vd *ValueDisplay) TextSize() float32 {
	return vd.text.TextSize
}

func (vd *ValueDisplay) SetText(text string, textSize float32) {
	if vd.text.Text == text && vd.text.TextSize == textSize {
		return
	}
	vd.text.Text = text
	vd.text.TextSize = textSize
	vd.text.Refresh()
}
