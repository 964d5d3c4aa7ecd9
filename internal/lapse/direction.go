package lapse

import "math/rand"

// Direction is one of the four arrow keys.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every valid Direction in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "invalid"
}

func randomDirection(rng *rand.Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}
