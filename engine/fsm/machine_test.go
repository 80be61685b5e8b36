package fsm

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const (
	stIdle StateID = iota + 1
	stRun
	stDone
)

const (
	evGo EventID = iota + 1
	evStop
	evAgain
)

type trace struct {
	log   []string
	allow bool
}

func (tr *trace) add(s string) { tr.log = append(tr.log, s) }

func buildMachine(t *testing.T) (*Machine[*trace], *trace) {
	t.Helper()
	m := NewMachine[*trace]()
	m.AddState(stIdle, "Idle")
	m.AddState(stRun, "Run")
	m.AddState(stDone, "Done")
	m.NameEvent(evGo, "Go")
	m.InitialStateID = stIdle

	m.On(stIdle, evGo, stRun)
	m.AddTransition(stRun, Transition[*trace]{
		TargetID: stDone,
		Event:    evStop,
		Guard:    func(tr *trace) bool { return tr.allow },
	})
	m.AddTransition(stRun, Transition[*trace]{
		TargetID: stDone,
		Event:    EventTick,
		Guard:    StateTimeExceeds(m, time.Second),
	})
	m.On(stRun, evAgain, stRun)

	m.OnEnter(stRun, func(tr *trace) { tr.add("enter run") })
	m.OnUpdate(stRun, func(tr *trace) { tr.add("update run") })
	m.OnExit(stRun, func(tr *trace) { tr.add("exit run") })
	m.OnEnter(stDone, func(tr *trace) { tr.add("enter done") })

	tr := &trace{}
	if err := m.Init(tr); err != nil {
		t.Fatalf("init: %v", err)
	}
	return m, tr
}

func TestMachine_FireAndActions(t *testing.T) {
	m, tr := buildMachine(t)
	if m.Current() != stIdle {
		t.Fatalf("initial = %s", m.StateName(m.Current()))
	}
	if err := m.Fire(tr, evGo); err != nil {
		t.Fatal(err)
	}
	m.Update(tr, 10*time.Millisecond)

	tr.allow = true
	if err := m.Fire(tr, evStop); err != nil {
		t.Fatal(err)
	}
	want := []string{"enter run", "update run", "exit run", "enter done"}
	if strings.Join(tr.log, ",") != strings.Join(want, ",") {
		t.Errorf("actions = %v, want %v", tr.log, want)
	}
}

func TestMachine_IllegalEvent(t *testing.T) {
	m, tr := buildMachine(t)
	err := m.Fire(tr, evStop)
	if !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("err = %v, want ErrIllegalTransition", err)
	}
	if !strings.Contains(err.Error(), "Idle") {
		t.Errorf("error %q does not name the state", err)
	}

	// Unnamed events still format
	err = m.Fire(tr, EventID(99))
	if err == nil || !strings.Contains(err.Error(), "event(99)") {
		t.Errorf("err = %v", err)
	}
	if m.Current() != stIdle {
		t.Errorf("illegal event moved machine to %s", m.StateName(m.Current()))
	}
}

func TestMachine_GuardBlocks(t *testing.T) {
	m, tr := buildMachine(t)
	m.Fire(tr, evGo)
	if m.Can(tr, evStop) {
		t.Error("Can ignored guard")
	}
	if err := m.Fire(tr, evStop); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("guarded event err = %v", err)
	}
	tr.allow = true
	if !m.Can(tr, evStop) {
		t.Error("Can rejected passing guard")
	}
}

func TestMachine_TickTransitionAndSelfReentry(t *testing.T) {
	m, tr := buildMachine(t)
	m.Fire(tr, evGo)

	m.Update(tr, 600*time.Millisecond)
	if err := m.Fire(tr, evAgain); err != nil {
		t.Fatal(err)
	}
	if m.TimeInState() != 0 {
		t.Errorf("self transition kept timer at %v", m.TimeInState())
	}

	m.Update(tr, 600*time.Millisecond)
	if m.Current() != stRun {
		t.Fatalf("timer not restarted, in %s", m.StateName(m.Current()))
	}
	m.Update(tr, 400*time.Millisecond)
	if m.Current() != stDone {
		t.Errorf("tick transition not taken, in %s", m.StateName(m.Current()))
	}

	// EventTick cannot be fired by hand
	if err := m.Fire(tr, EventTick); err == nil {
		t.Error("EventTick fired externally")
	}
}

func TestMachine_Validate(t *testing.T) {
	m := NewMachine[*trace]()
	m.AddState(stIdle, "Idle")
	m.InitialStateID = stIdle
	m.On(stIdle, evGo, stDone)
	if err := m.Init(&trace{}); err == nil {
		t.Error("missing target accepted")
	}

	m = NewMachine[*trace]()
	m.InitialStateID = stRun
	if err := m.Validate(); err == nil {
		t.Error("missing initial state accepted")
	}

	var zero Machine[*trace]
	if err := zero.Fire(&trace{}, evGo); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("uninitialized fire err = %v", err)
	}
}
