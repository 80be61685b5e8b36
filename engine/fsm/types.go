package fsm

import (
	"errors"
	"time"
)

// StateID is a unique identifier for a node
type StateID int

// EventID identifies an external event; EventTick marks automatic transitions
type EventID int

const (
	StateNone StateID = 0
	EventTick EventID = 0
)

// ErrIllegalTransition is returned when the active state has no transition for an event
var ErrIllegalTransition = errors.New("fsm: illegal transition")

// Machine is a flat finite state machine with timed auto-transitions.
// T is the context passed to guards and actions.
type Machine[T any] struct {
	// Graph data, immutable after Init
	nodes      map[StateID]*Node[T]
	eventNames map[EventID]string

	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	timeInState   time.Duration
}

// Node is a state with lifecycle actions and outgoing transitions
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter  []ActionFunc[T]
	OnUpdate []ActionFunc[T]
	OnExit   []ActionFunc[T]

	// Evaluated in insertion order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    EventID      // EventTick = evaluated on Update
	Guard    GuardFunc[T] // nil = always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
