package reveal

import (
	"errors"
	"slices"

	"github.com/samber/lo"
)

var ErrTargetOutOfRange = errors.New("target out of range")
var ErrSequenceActive = errors.New("sequence already active")
var ErrNotRolling = errors.New("no active sequence")
var ErrOutOfOrder = errors.New("step out of order")
var ErrInvalidRoll = errors.New("invalid roll")
var ErrUnsupportedCommand = errors.New("unsupported command")

const (
	MinTarget = 3
	MaxTarget = 18
	MinFace   = 1
	MaxFace   = 6
)

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRolling Phase = "rolling"
)

// Triple is one throw of the three dice.
type Triple [3]int

func (t Triple) Sum() int {
	return lo.Sum(t[:])
}

func (t Triple) valid() bool {
	return lo.EveryBy(t[:], func(v int) bool { return v >= MinFace && v <= MaxFace })
}

type Session struct {
	Phase      Phase
	Target     int
	Rolls      []Triple
	Current    Triple
	CurrentSum int
	Cursor     int
}

type CommandType string

const (
	CmdStart    CommandType = "Start"
	CmdRoll     CommandType = "Roll"
	CmdEvaluate CommandType = "Evaluate"
)

/*
	CmdStart    -> EvtStarted
	CmdRoll     -> EvtRolled          (plan steps 1..5, each replaces the current triple)
	CmdEvaluate -> EvtWon | EvtLost   (only the last triple counts, session goes back to idle)
*/

type Command struct {
	Type   CommandType
	Target int
	Roll   Triple
}

type EventType string

const (
	EvtStarted EventType = "Started"
	EvtRolled  EventType = "Rolled"
	EvtWon     EventType = "Won"
	EvtLost    EventType = "Lost"
)

type Event struct {
	Type   EventType
	Target int
	Step   int
	Roll   Triple
	Sum    int
}

func Apply(s Session, cmd Command) ([]Event, Session, error) {
	switch cmd.Type {
	case CmdStart:
		if s.Phase == PhaseRolling {
			return nil, s, ErrSequenceActive
		}
		if !InRange(cmd.Target) {
			return nil, s, ErrTargetOutOfRange
		}

		newState := Session{Phase: PhaseRolling, Target: cmd.Target}
		return []Event{{Type: EvtStarted, Target: cmd.Target}}, newState, nil

	case CmdRoll:
		step, err := expectStep(s, StepRoll)
		if err != nil {
			return nil, s, err
		}
		if !cmd.Roll.valid() {
			return nil, s, ErrInvalidRoll
		}

		newState := s
		newState.Rolls = append(slices.Clone(s.Rolls), cmd.Roll)
		newState.Current = cmd.Roll
		newState.CurrentSum = cmd.Roll.Sum()
		newState.Cursor++

		events := []Event{
			{Type: EvtRolled, Target: s.Target, Step: step.Index, Roll: cmd.Roll, Sum: newState.CurrentSum},
		}
		return events, newState, nil

	case CmdEvaluate:
		if _, err := expectStep(s, StepEvaluate); err != nil {
			return nil, s, err
		}

		newState := s
		newState.Phase = PhaseIdle
		newState.Cursor++

		evt := Event{Type: EvtLost, Target: s.Target, Roll: s.Current, Sum: s.CurrentSum}
		if s.CurrentSum == s.Target {
			evt.Type = EvtWon
		}
		return []Event{evt}, newState, nil

	default:
		return nil, s, ErrUnsupportedCommand
	}
}

func expectStep(s Session, kind StepKind) (Step, error) {
	if s.Phase != PhaseRolling {
		return Step{}, ErrNotRolling
	}
	step, done := currentStep(s)
	if done || step.Kind != kind {
		return Step{}, ErrOutOfOrder
	}
	return step, nil
}

func currentStep(s Session) (Step, bool) {
	if s.Cursor >= len(Plan) {
		return Step{}, true
	}
	return Plan[s.Cursor], false
}
