package gui

import (
	"counter/internal/models"
)

const (
	Padding         float32 = 25
	ButtonTextSize  float32 = 30
	DisplayTextSize float32 = 50
	ButtonWeight            = 2
	DisplayWeight           = 3
)

type RegionKind int

const (
	RegionButton RegionKind = iota
	RegionText
)

// Region is one full-width band of the window.
type Region struct {
	Kind     RegionKind
	Text     string
	TextSize float32
	Weight   int
	Disabled bool
	// OnPress is the message a button emits; unused for text regions.
	OnPress models.Message
}

// Tree is the declarative description of the window content.
type Tree struct {
	Padding float32
	Regions []Region
}

// View describes the content for c: increment button, value, decrement button.
func View(c models.Counter) Tree {
	return Tree{
		Padding: Padding,
		Regions: []Region{
			{
				Kind:     RegionButton,
				Text:     "+",
				TextSize: ButtonTextSize,
				Weight:   ButtonWeight,
				Disabled: !c.CanIncrement(),
				OnPress:  models.Increment,
			},
			{
				Kind:     RegionText,
				Text:     c.String(),
				TextSize: DisplayTextSize,
				Weight:   DisplayWeight,
			},
			{
				Kind:     RegionButton,
				Text:     "-",
				TextSize: ButtonTextSize,
				Weight:   ButtonWeight,
				Disabled: !c.CanDecrement(),
				OnPress:  models.Decrement,
			},
		},
	}
}

func (t Tree) weights() []int {
	weights := make([]int, len(t.Regions))
	for i, r := range t.Regions {
		weights[i] = r.Weight
	}
	return weights
}
