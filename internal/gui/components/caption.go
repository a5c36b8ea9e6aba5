package components

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Caption is a single centered line of text at an arbitrary size. Its colour
// is looked up from the current theme on every refresh.
type Caption struct {
	widget.BaseWidget

	Text     string
	TextSize float32
	Dimmed   bool
}

func NewCaption(text string, textSize float32) *Caption {
	c := &Caption{Text: text, TextSize: textSize}
	c.ExtendBaseWidget(c)
	return c
}

func (c *Caption) color() color.Color {
	name := theme.ColorNameForeground
	if c.Dimmed {
		name = theme.ColorNameDisabled
	}
	return theme.ColorForWidget(name, c)
}

func (c *Caption) CreateRenderer() fyne.WidgetRenderer {
	c.ExtendBaseWidget(c)

	text := canvas.NewText(c.Text, c.color())
	text.Alignment = fyne.TextAlignCenter
	text.TextSize = c.TextSize

	return &captionRenderer{caption: c, text: text}
}

type captionRenderer struct {
	caption *Caption
	text    *canvas.Text
}

func (r *captionRenderer) Layout(size fyne.Size) {
	textHeight := r.text.MinSize().Height
	r.text.Move(fyne.NewPos(0, (size.Height-textHeight)/2))
	r.text.Resize(fyne.NewSize(size.Width, textHeight))
}

func (r *captionRenderer) MinSize() fyne.Size {
	return r.text.MinSize()
}

func (r *captionRenderer) Refresh() {
	r.text.Text = r.caption.Text
	r.text.TextSize = r.caption.TextSize
	r.text.Color = r.caption.color()
	r.Layout(r.caption.Size())
	r.text.Refresh()
}

func (r *captionRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.text}
}

func (r *captionRenderer) Destroy() {}
