package lapse

// Arrow is a falling token. Position is the distance below the bar.
type Arrow struct {
	Direction Direction
	Position  float64
}

// Queue holds arrows in spawn order; only the front may be matched.
type Queue struct {
	arrows []Arrow
}

func (q *Queue) Len() int {
	return len(q.arrows)
}

// Push appends a new arrow at the bar.
func (q *Queue) Push(d Direction) {
	q.arrows = append(q.arrows, Arrow{Direction: d})
}

// Front returns the arrow that must be pressed next.
func (q *Queue) Front() (Arrow, bool) {
	if len(q.arrows) == 0 {
		return Arrow{}, false
	}
	return q.arrows[0], true
}

// Pop removes the front arrow. It reports false on an empty queue.
func (q *Queue) Pop() bool {
	if len(q.arrows) == 0 {
		return false
	}
	q.arrows[0] = Arrow{}
	q.arrows = q.arrows[1:]
	return true
}

// Advance moves every arrow down by speed and reports whether any of
// them is now past the floor.
func (q *Queue) Advance(speed float64) (crossed bool) {
	for i := range q.arrows {
		q.arrows[i].Position += speed
		if q.arrows[i].Position > FloorDistance {
			crossed = true
		}
	}
	return crossed
}

// Clear drops every arrow.
func (q *Queue) Clear() {
	q.arrows = nil
}

// Snapshot copies the arrows, front first.
func (q *Queue) Snapshot() []Arrow {
	out := make([]Arrow, len(q.arrows))
	copy(out, q.arrows)
	return out
}
