package layout

import (
	"fyne.io/fyne/v2"
)

// PortionLayout stacks objects vertically at full width, splitting the
// height between them in proportion to their weights. Objects without a
// weight (index past the end of weights) get weight 1.
type PortionLayout struct {
	weights []int
}

func NewPortionLayout(weights ...int) *PortionLayout {
	return &PortionLayout{weights: weights}
}

func (pl *PortionLayout) weight(index int) int {
	if index < len(pl.weights) && pl.weights[index] > 0 {
		return pl.weights[index]
	}
	return 1
}

func (pl *PortionLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	total := 0
	for i, obj := range objects {
		if obj.Visible() {
			total += pl.weight(i)
		}
	}
	if total == 0 {
		return
	}

	unit := containerSize.Height / float32(total)
	y := float32(0)
	for i, obj := range objects {
		if !obj.Visible() {
			continue
		}

		height := unit * float32(pl.weight(i))
		obj.Resize(fyne.NewSize(containerSize.Width, height))
		obj.Move(fyne.NewPos(0, y))
		y += height
	}
}

// MinSize is the smallest height at which every object still gets its own
// minimum height from the weighted split: max(minHeight/weight) * total weight.
func (pl *PortionLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	minWidth := float32(0)
	unit := float32(0)
	total := 0

	for i, obj := range objects {
		if !obj.Visible() {
			continue
		}

		objMin := obj.MinSize()
		if objMin.Width > minWidth {
			minWidth = objMin.Width
		}

		weight := pl.weight(i)
		total += weight
		if perUnit := objMin.Height / float32(weight); perUnit > unit {
			unit = perUnit
		}
	}

	return fyne.NewSize(minWidth, unit*float32(total))
}

// MinSizeLayout fills the container with every object and never reports a
// minimum below floor. A window holding it cannot be shrunk under floor.
type MinSizeLayout struct {
	floor fyne.Size
}

func NewMinSizeLayout(floor fyne.Size) *MinSizeLayout {
	return &MinSizeLayout{floor: floor}
}

func (ml *MinSizeLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for _, obj := range objects {
		obj.Resize(containerSize)
		obj.Move(fyne.NewPos(0, 0))
	}
}

func (ml *MinSizeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	size := ml.floor
	for _, obj := range objects {
		if !obj.Visible() {
			continue
		}
		size = size.Max(obj.MinSize())
	}
	return size
}
