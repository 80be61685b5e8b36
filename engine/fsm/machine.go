package fsm

import (
	"fmt"
	"time"
)

func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:      make(map[StateID]*Node[T]),
		eventNames: make(map[EventID]string),
	}
}

// StateTimeExceeds builds a guard that passes once the active state has lasted d
func StateTimeExceeds[T any](m *Machine[T], d time.Duration) GuardFunc[T] {
	return func(T) bool {
		return m.timeInState >= d
	}
}

// Init validates the graph and enters the initial state
func (m *Machine[T]) Init(ctx T) error {
	if err := m.Validate(); err != nil {
		return err
	}
	m.activeStateID = StateNone
	m.enter(ctx, m.InitialStateID)
	return nil
}

// Update advances time in state, runs OnUpdate actions, then takes the first
// passing tick transition
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}
	m.timeInState += dt

	node := m.nodes[m.activeStateID]
	for _, fn := range node.OnUpdate {
		fn(ctx)
	}

	// OnUpdate may have fired an event
	node = m.nodes[m.activeStateID]
	for _, t := range node.Transitions {
		if t.Event == EventTick && (t.Guard == nil || t.Guard(ctx)) {
			m.transition(ctx, t.TargetID)
			return
		}
	}
}

// Fire routes ev through the active state's transitions
func (m *Machine[T]) Fire(ctx T, ev EventID) error {
	if m.activeStateID == StateNone {
		return fmt.Errorf("%w: machine not initialized", ErrIllegalTransition)
	}
	node := m.nodes[m.activeStateID]
	for _, t := range node.Transitions {
		if t.Event == ev && ev != EventTick && (t.Guard == nil || t.Guard(ctx)) {
			m.transition(ctx, t.TargetID)
			return nil
		}
	}
	return fmt.Errorf("%w: %s in %s", ErrIllegalTransition, m.eventName(ev), node.Name)
}

// Can reports whether ev has an unguarded or passing transition from the active state
func (m *Machine[T]) Can(ctx T, ev EventID) bool {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return false
	}
	for _, t := range node.Transitions {
		if t.Event == ev && (t.Guard == nil || t.Guard(ctx)) {
			return true
		}
	}
	return false
}

// transition exits the active state and enters target; self-targets re-enter
// and restart the state timer
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if node, ok := m.nodes[m.activeStateID]; ok {
		for _, fn := range node.OnExit {
			fn(ctx)
		}
	}
	m.enter(ctx, targetID)
}

func (m *Machine[T]) enter(ctx T, id StateID) {
	m.activeStateID = id
	m.timeInState = 0
	for _, fn := range m.nodes[id].OnEnter {
		fn(ctx)
	}
}

func (m *Machine[T]) Current() StateID { return m.activeStateID }

func (m *Machine[T]) TimeInState() time.Duration { return m.timeInState }

// StateName returns the name of id, or "none"
func (m *Machine[T]) StateName(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return "none"
}

func (m *Machine[T]) eventName(ev EventID) string {
	if name, ok := m.eventNames[ev]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", ev)
}
