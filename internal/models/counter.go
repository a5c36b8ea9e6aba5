package models

import (
	"math"
	"strconv"
)

const (
	MinValue int8 = math.MinInt8
	MaxValue int8 = math.MaxInt8
)

// Message is a discrete UI event delivered to Counter.Update.
type Message int

const (
	Increment Message = iota + 1
	Decrement
)

func (m Message) String() string {
	switch m {
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	default:
		return "unknown"
	}
}

// Counter holds a saturating 8-bit signed value. The zero value is a counter at 0.
type Counter struct {
	value int8
}

func NewCounter() Counter {
	return Counter{}
}

func (c Counter) Value() int8 {
	return c.value
}

// Update returns the state that follows c after msg. Increments stop at
// MaxValue and decrements stop at MinValue; unknown messages are ignored.
func (c Counter) Update(msg Message) Counter {
	switch msg {
	case Increment:
		if c.value < MaxValue {
			c.value++
		}
	case Decrement:
		if c.value > MinValue {
			c.value--
		}
	}
	return c
}

func (c Counter) CanIncrement() bool {
	return c.value != MaxValue
}

func (c Counter) CanDecrement() bool {
	return c.value != MinValue
}

// String renders the value as decimal text.
func (c Counter) String() string {
	return strconv.Itoa(int(c.value))
}
