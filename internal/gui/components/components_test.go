package components

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redTheme draws foreground text in red and otherwise defers to the default theme.
type redTheme struct {
	fyne.Theme
}

var red = color.NRGBA{R: 0xff, A: 0xff}

func (r redTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameForeground {
		return red
	}
	return r.Theme.Color(name, variant)
}

func renderedText(t *testing.T, c *Caption) *captionRenderer {
	t.Helper()

	renderer, ok := test.TempWidgetRenderer(t, c).(*captionRenderer)
	require.True(t, ok)
	return renderer
}

func TestLabeledButtonTapAndDisable(t *testing.T) {
	test.NewTempApp(t)

	taps := 0
	b := NewLabeledButton("+", 30, func() { taps++ })
	assert.Equal(t, "+", b.Label())
	assert.Equal(t, float32(30), b.TextSize())

	test.Tap(b.Button)
	assert.Equal(t, 1, taps)

	b.SetDisabled(true)
	assert.True(t, b.Button.Disabled())
	assert.True(t, b.label.Dimmed)
	assert.Equal(t, theme.ColorForWidget(theme.ColorNameDisabled, b.label), renderedText(t, b.label).text.Color)

	test.Tap(b.Button)
	assert.Equal(t, 1, taps, "disabled button must not fire")

	b.SetDisabled(false)
	assert.False(t, b.Button.Disabled())
	assert.False(t, b.label.Dimmed)
	assert.Equal(t, theme.ColorForWidget(theme.ColorNameForeground, b.label), renderedText(t, b.label).text.Color)

	test.Tap(b.Button)
	assert.Equal(t, 2, taps)
}

func TestLabeledButtonSetLabel(t *testing.T) {
	test.NewTempApp(t)

	b := NewLabeledButton("+", 30, nil)
	b.SetLabel("-", 20)

	assert.Equal(t, "-", b.Label())
	assert.Equal(t, float32(20), b.TextSize())

	r := renderedText(t, b.label)
	assert.Equal(t, "-", r.text.Text)
	assert.Equal(t, float32(20), r.text.TextSize)
}

func TestValueDisplay(t *testing.T) {
	test.NewTempApp(t)

	d := NewValueDisplay("0", 50)
	assert.Equal(t, "0", d.Text())
	assert.Equal(t, float32(50), d.TextSize())

	d.SetText("-5", 50)
	assert.Equal(t, "-5", d.Text())
	assert.Equal(t, "-5", renderedText(t, d.text).text.Text)
}

func TestCaptionFollowsThemeChange(t *testing.T) {
	a := test.NewTempApp(t)

	c := NewCaption("0", 50)
	r := renderedText(t, c)
	assert.NotEqual(t, color.Color(red), r.text.Color)

	a.Settings().SetTheme(redTheme{Theme: theme.DefaultTheme()})
	c.Refresh()

	assert.Equal(t, color.Color(red), r.text.Color)
}

func TestCaptionCentersVertically(t *testing.T) {
	test.NewTempApp(t)

	c := NewCaption("+", 30)
	r := renderedText(t, c)
	c.Resize(fyne.NewSize(200, 300))

	textHeight := r.text.MinSize().Height
	assert.Equal(t, float32(200), r.text.Size().Width)
	assert.InDelta(t, (300-textHeight)/2, r.text.Position().Y, 0.01)
}
