package fsm

import "fmt"

// AddState adds a node; re-adding an ID replaces it
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:   id,
		Name: name,
	}
	m.nodes[id] = node
	return node
}

// AddTransition appends a transition to sourceID
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// On is shorthand for an unguarded event transition
func (m *Machine[T]) On(sourceID StateID, ev EventID, targetID StateID) {
	m.AddTransition(sourceID, Transition[T]{TargetID: targetID, Event: ev})
}

// OnEnter registers fn to run on entering id
func (m *Machine[T]) OnEnter(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnEnter = append(node.OnEnter, fn)
	}
}

// OnUpdate registers fn to run on every Update while id is active
func (m *Machine[T]) OnUpdate(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnUpdate = append(node.OnUpdate, fn)
	}
}

// OnExit registers fn to run on leaving id
func (m *Machine[T]) OnExit(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnExit = append(node.OnExit, fn)
	}
}

// NameEvent sets the display name used in errors
func (m *Machine[T]) NameEvent(ev EventID, name string) {
	m.eventNames[ev] = name
}

// Validate checks every transition target exists
func (m *Machine[T]) Validate() error {
	if _, ok := m.nodes[m.InitialStateID]; !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}
	for id, node := range m.nodes {
		for _, t := range node.Transitions {
			if _, ok := m.nodes[t.TargetID]; !ok {
				return fmt.Errorf("state %d (%s) targets missing state %d", id, node.Name, t.TargetID)
			}
		}
	}
	return nil
}
