package lapse

import (
	"math/rand"
	"time"
)

type State int

const (
	NotStarted State = iota
	Playing
	GameOver
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// StepResult reports what happened during one Step.
type StepResult struct {
	Ended   bool // the session went from Playing to GameOver this step
	Cleared int  // arrows matched this step
	Spawned bool
}

// Snapshot is the read-only view handed to a front end once per step.
type Snapshot struct {
	State   State
	Elapsed time.Duration
	Speed   float64
	Outcome Outcome
	Arrows  []Arrow
}

// Session is one run of the game, from the title screen through any
// number of replays. It is not safe for concurrent use; the loop that
// owns it must be the only caller.
type Session struct {
	clock Clock
	rng   *rand.Rand

	state        State
	start        time.Time
	elapsedAtEnd time.Duration
	speed        float64
	spawnAcc     int
	outcome      Outcome
	queue        Queue
}

// NewSession returns a session waiting for Start. A nil clock means the
// system clock, a nil rng a time-seeded one.
func NewSession(clock Clock, rng *rand.Rand) *Session {
	if clock == nil {
		clock = SystemClock{}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Session{
		clock: clock,
		rng:   rng,
		state: NotStarted,
		speed: StartSpeed,
	}
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Speed() float64 {
	return s.speed
}

func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Elapsed is wall time since Start while playing, and the frozen
// survival time once the session is over.
func (s *Session) Elapsed() time.Duration {
	switch s.state {
	case Playing:
		return s.clock.Now().Sub(s.start)
	case GameOver:
		return s.elapsedAtEnd
	}
	return 0
}

// Start begins the first run. It is ignored unless the session has not
// started yet.
func (s *Session) Start() bool {
	if s.state != NotStarted {
		return false
	}
	s.reset()
	return true
}

// PlayAgain begins a fresh run after a game over and is ignored otherwise.
func (s *Session) PlayAgain() bool {
	if s.state != GameOver {
		return false
	}
	s.reset()
	return true
}

func (s *Session) reset() {
	s.queue.Clear()
	s.speed = StartSpeed
	s.spawnAcc = 0
	s.outcome = Outcome{}
	s.elapsedAtEnd = 0
	s.start = s.clock.Now()
	s.state = Playing
}

// Step advances the simulation by one fixed step. Presses are resolved
// in order against the queue head; once a press ends the session the
// rest are dropped and nothing spawns or moves.
func (s *Session) Step(presses []Direction) StepResult {
	var res StepResult
	if s.state != Playing {
		return res
	}
	for _, d := range presses {
		if s.state != Playing {
			break
		}
		if s.press(d) {
			res.Cleared++
		}
	}
	if s.state == Playing {
		res.Spawned = s.spawnTick()
		s.advanceTick()
	}
	res.Ended = s.state == GameOver
	return res
}

// Snapshot copies the current state for drawing.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:   s.state,
		Elapsed: s.Elapsed(),
		Speed:   s.speed,
		Outcome: s.outcome,
		Arrows:  s.queue.Snapshot(),
	}
}

// press resolves one key press and reports whether it cleared an arrow.
func (s *Session) press(d Direction) bool {
	if s.state != Playing || !d.Valid() {
		return false
	}
	front, ok := s.queue.Front()
	if !ok {
		return false
	}
	if front.Direction != d {
		s.end()
		return false
	}
	s.queue.Pop()
	return true
}

func (s *Session) spawnTick() bool {
	if s.state != Playing {
		return false
	}
	s.spawnAcc++
	if s.spawnAcc < SpawnEverySteps {
		return false
	}
	s.queue.Push(randomDirection(s.rng))
	s.spawnAcc = 0
	s.speed += SpeedIncrement
	return true
}

func (s *Session) advanceTick() {
	if s.state != Playing {
		return
	}
	if s.queue.Advance(s.speed) {
		s.end()
	}
}

// end freezes the clock and ranks the run. The outcome is computed once.
func (s *Session) end() {
	if s.state != Playing {
		return
	}
	s.elapsedAtEnd = s.clock.Now().Sub(s.start)
	s.outcome = Evaluate(s.elapsedAtEnd)
	s.state = GameOver
}
