package layout

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func rect(minW, minH float32) *canvas.Rectangle {
	r := canvas.NewRectangle(color.Transparent)
	r.SetMinSize(fyne.NewSize(minW, minH))
	return r
}

func TestPortionLayoutSplitsByWeight(t *testing.T) {
	test.NewTempApp(t)

	top, middle, bottom := rect(10, 10), rect(10, 10), rect(10, 10)
	objects := []fyne.CanvasObject{top, middle, bottom}

	NewPortionLayout(2, 3, 2).Layout(objects, fyne.NewSize(400, 700))

	assert.Equal(t, fyne.NewSize(400, 200), top.Size())
	assert.Equal(t, fyne.NewPos(0, 0), top.Position())
	assert.Equal(t, fyne.NewSize(400, 300), middle.Size())
	assert.Equal(t, fyne.NewPos(0, 200), middle.Position())
	assert.Equal(t, fyne.NewSize(400, 200), bottom.Size())
	assert.Equal(t, fyne.NewPos(0, 500), bottom.Position())
}

func TestPortionLayoutDefaultsMissingWeights(t *testing.T) {
	test.NewTempApp(t)

	a, b := rect(0, 0), rect(0, 0)

	NewPortionLayout(3).Layout([]fyne.CanvasObject{a, b}, fyne.NewSize(100, 400))

	assert.Equal(t, float32(300), a.Size().Height)
	assert.Equal(t, float32(100), b.Size().Height)
	assert.Equal(t, float32(300), b.Position().Y)
}

func TestPortionLayoutSkipsHidden(t *testing.T) {
	test.NewTempApp(t)

	a, hidden, c := rect(0, 0), rect(0, 0), rect(0, 0)
	hidden.Hide()

	NewPortionLayout(1, 5, 1).Layout([]fyne.CanvasObject{a, hidden, c}, fyne.NewSize(50, 100))

	assert.Equal(t, float32(50), a.Size().Height)
	assert.Equal(t, float32(50), c.Size().Height)
	assert.Equal(t, float32(50), c.Position().Y)
}

func TestPortionLayoutMinSize(t *testing.T) {
	test.NewTempApp(t)

	tests := []struct {
		name    string
		weights []int
		objects []fyne.CanvasObject
		want    fyne.Size
	}{
		{
			name:    "middle region dominates",
			weights: []int{2, 3, 2},
			objects: []fyne.CanvasObject{rect(20, 30), rect(60, 60), rect(40, 30)},
			want:    fyne.NewSize(60, 140),
		},
		{
			name:    "light region with tall minimum",
			weights: []int{1, 3},
			objects: []fyne.CanvasObject{rect(10, 50), rect(10, 30)},
			want:    fyne.NewSize(10, 200),
		},
		{
			name:    "empty",
			weights: []int{1},
			objects: nil,
			want:    fyne.NewSize(0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPortionLayout(tt.weights...).MinSize(tt.objects))
		})
	}
}

func TestPortionLayoutMinSizeKeepsEveryMinimum(t *testing.T) {
	test.NewTempApp(t)

	objects := []fyne.CanvasObject{rect(10, 50), rect(10, 30), rect(10, 10)}
	l := NewPortionLayout(1, 3, 1)

	size := l.MinSize(objects)
	l.Layout(objects, size)

	for i, obj := range objects {
		assert.GreaterOrEqual(t, obj.Size().Height, obj.MinSize().Height, "object %d", i)
	}
}

func TestMinSizeLayoutEnforcesFloor(t *testing.T) {
	test.NewTempApp(t)

	floor := fyne.NewSize(300, 400)
	l := NewMinSizeLayout(floor)

	assert.Equal(t, floor, l.MinSize([]fyne.CanvasObject{rect(100, 100)}))
	assert.Equal(t, fyne.NewSize(350, 400), l.MinSize([]fyne.CanvasObject{rect(350, 10)}))
}

func TestMinSizeLayoutFills(t *testing.T) {
	test.NewTempApp(t)

	child := rect(10, 10)
	NewMinSizeLayout(fyne.NewSize(300, 400)).Layout([]fyne.CanvasObject{child}, fyne.NewSize(450, 600))

	assert.Equal(t, fyne.NewSize(450, 600), child.Size())
	assert.Equal(t, fyne.NewPos(0, 0), child.Position())
}
