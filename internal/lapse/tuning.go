package lapse

import "time"

const (
	StartSpeed      = 2.5  // units per step at the start of a session
	SpeedIncrement  = 0.05 // added on every spawn
	SpawnEverySteps = 35
	FloorDistance   = 300.0 // horizon bar to bottom edge
	StepsPerSecond  = 60
)

// Rank thresholds, lower bound inclusive.
const (
	RankSAfter = 180 * time.Second
	RankAAfter = 120 * time.Second
	RankBAfter = 60 * time.Second
	RankCAfter = 30 * time.Second
)
