package domain

import "github.com/google/uuid"

const (
	MaxWheelChoices = 100
	DefaultWeight   = 1
)

// Choice is one slice of the spin wheel. A bigger weight means a bigger slice.
type Choice struct {
	ID     uuid.UUID
	Label  string
	Weight uint32
}

// Wheel keeps active choices and the ones set aside after being drawn.
type Wheel struct {
	Choices []Choice
	Removed []Choice
}

func TotalWeight(choices []Choice) uint64 {
	var total uint64
	for _, c := range choices {
		total += uint64(c.Weight)
	}
	return total
}
