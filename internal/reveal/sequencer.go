package reveal

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/DoyleJ11/sosphone-backend/internal/clock"
)

const DefaultUnit = time.Second

// Source draws dice faces.
type Source interface {
	NextInRange(min, max int) int
}

type randSource struct {
	r *rand.Rand
}

// NewRandSource returns a PCG source seeded from crypto/rand.
func NewRandSource() Source {
	var b [16]byte
	_, _ = crand.Read(b[:])
	seed1 := binary.LittleEndian.Uint64(b[:8])
	seed2 := binary.LittleEndian.Uint64(b[8:])
	return randSource{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (s randSource) NextInRange(min, max int) int {
	return min + s.r.IntN(max-min+1)
}

// Sequencer drives one Session through Plan on a scheduler. It is not safe for concurrent
// use: Start, Stop and the scheduled callbacks must all run on the owner's goroutine, which
// is what clock.Posted is for.
type Sequencer struct {
	sched   clock.Scheduler
	src     Source
	unit    time.Duration
	observe func(Event)

	session Session
	timers  []clock.Timer
	gen     int
}

func NewSequencer(sched clock.Scheduler, src Source, unit time.Duration, observe func(Event)) *Sequencer {
	if unit <= 0 {
		unit = DefaultUnit
	}
	if observe == nil {
		observe = func(Event) {}
	}
	return &Sequencer{
		sched:   sched,
		src:     src,
		unit:    unit,
		observe: observe,
		session: NewIdleSession(),
	}
}

// Start validates the target and arms every step of Plan. Nothing is scheduled on error.
func (q *Sequencer) Start(target int) error {
	events, next, err := Apply(q.session, Command{Type: CmdStart, Target: target})
	if err != nil {
		return err
	}

	q.session = next
	q.gen++
	gen := q.gen
	q.timers = q.timers[:0]
	for _, step := range Plan {
		t := q.sched.After(time.Duration(step.At)*q.unit, func() { q.fire(gen, step) })
		q.timers = append(q.timers, t)
	}

	q.emit(events)
	return nil
}

// Stop cancels pending steps. Callbacks already handed to the owner are dropped by generation.
func (q *Sequencer) Stop() {
	for _, t := range q.timers {
		t.Stop()
	}
	q.timers = q.timers[:0]
	q.gen++
	if q.session.Phase == PhaseRolling {
		q.session.Phase = PhaseIdle
	}
}

func (q *Sequencer) Active() bool {
	return q.session.Phase == PhaseRolling
}

func (q *Sequencer) Session() Session {
	return q.session
}

func (q *Sequencer) fire(gen int, step Step) {
	if gen != q.gen {
		return
	}

	var cmd Command
	switch step.Kind {
	case StepRoll:
		cmd = Command{Type: CmdRoll, Roll: q.draw()}
	case StepEvaluate:
		cmd = Command{Type: CmdEvaluate}
	}

	events, next, err := Apply(q.session, cmd)
	if err != nil {
		return
	}
	q.session = next
	if next.Phase != PhaseRolling {
		q.timers = q.timers[:0]
	}
	q.emit(events)
}

func (q *Sequencer) draw() Triple {
	var t Triple
	for i := range t {
		t[i] = q.src.NextInRange(MinFace, MaxFace)
	}
	return t
}

func (q *Sequencer) emit(events []Event) {
	for _, e := range events {
		q.observe(e)
	}
}
