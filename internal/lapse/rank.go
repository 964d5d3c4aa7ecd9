package lapse

import (
	"fmt"
	"time"
)

// Rank is a survival tier. RankNone marks an early fail.
type Rank int

const (
	RankNone Rank = iota
	RankC
	RankB
	RankA
	RankS
)

func (r Rank) String() string {
	switch r {
	case RankC:
		return "C"
	case RankB:
		return "B"
	case RankA:
		return "A"
	case RankS:
		return "S"
	}
	return ""
}

// OutcomeKind tells how a session finished, if it has.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeEarlyFail
	OutcomeRanked
)

// Outcome is the result of a finished session.
type Outcome struct {
	Kind OutcomeKind
	Rank Rank // RankNone unless Kind == OutcomeRanked
}

// Tier orders outcomes: 0 for no outcome or an early fail, 1 (C) up to 4 (S).
func (o Outcome) Tier() int {
	if o.Kind != OutcomeRanked {
		return 0
	}
	return int(o.Rank)
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeEarlyFail:
		return "early fail"
	case OutcomeRanked:
		return fmt.Sprintf("rank %s", o.Rank)
	}
	return "none"
}

// Evaluate maps survival time to an outcome. Higher tiers are checked
// first so an exact threshold lands in the upper tier.
func Evaluate(elapsed time.Duration) Outcome {
	switch {
	case elapsed >= RankSAfter:
		return Outcome{Kind: OutcomeRanked, Rank: RankS}
	case elapsed >= RankAAfter:
		return Outcome{Kind: OutcomeRanked, Rank: RankA}
	case elapsed >= RankBAfter:
		return Outcome{Kind: OutcomeRanked, Rank: RankB}
	case elapsed >= RankCAfter:
		return Outcome{Kind: OutcomeRanked, Rank: RankC}
	}
	return Outcome{Kind: OutcomeEarlyFail}
}
