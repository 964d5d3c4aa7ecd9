package lapse

import (
	"testing"
	"time"
)

func TestEvaluateBoundaries(t *testing.T) {
	ranked := func(r Rank) Outcome { return Outcome{Kind: OutcomeRanked, Rank: r} }
	cases := []struct {
		elapsed time.Duration
		want    Outcome
	}{
		{0, Outcome{Kind: OutcomeEarlyFail}},
		{29999 * time.Millisecond, Outcome{Kind: OutcomeEarlyFail}},
		{30 * time.Second, ranked(RankC)},
		{59999 * time.Millisecond, ranked(RankC)},
		{60 * time.Second, ranked(RankB)},
		{119999 * time.Millisecond, ranked(RankB)},
		{120 * time.Second, ranked(RankA)},
		{179999 * time.Millisecond, ranked(RankA)},
		{180 * time.Second, ranked(RankS)},
		{time.Hour, ranked(RankS)},
	}
	for _, c := range cases {
		if got := Evaluate(c.elapsed); got != c.want {
			t.Errorf("Evaluate(%v) = %v, want %v", c.elapsed, got, c.want)
		}
	}
}

func TestEvaluateMonotonic(t *testing.T) {
	prev := Evaluate(0).Tier()
	for d := 250 * time.Millisecond; d <= 200*time.Second; d += 250 * time.Millisecond {
		tier := Evaluate(d).Tier()
		if tier < prev {
			t.Fatalf("tier dropped from %d to %d at %v", prev, tier, d)
		}
		prev = tier
	}
	if prev != int(RankS) {
		t.Fatalf("final tier = %d, want %d", prev, RankS)
	}
}

func TestOutcomeString(t *testing.T) {
	if got := Evaluate(45 * time.Second).String(); got != "rank C" {
		t.Fatalf("got %q, want %q", got, "rank C")
	}
	if got := Evaluate(time.Second).String(); got != "early fail" {
		t.Fatalf("got %q, want %q", got, "early fail")
	}
}
