package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/tilt-maze/engine/fsm"
	"github.com/lixenwraith/tilt-maze/input"
	"github.com/lixenwraith/tilt-maze/maze"
	"github.com/lixenwraith/tilt-maze/navigation"
	"github.com/lixenwraith/tilt-maze/parameter"
	"github.com/lixenwraith/tilt-maze/physics"
	"github.com/lixenwraith/tilt-maze/status"
)

const noticeDuration = 2 * time.Second

// Config selects presets, starting difficulty and randomness for a Game
type Config struct {
	Presets    parameter.Presets
	Difficulty parameter.Difficulty
	// Seed 0 draws a time-based seed; any other value makes every round reproducible
	Seed     uint64
	Time     TimeSource
	Registry *status.Registry
}

// Game is the gameplay controller. It owns the round (grid, start, marble),
// the lifecycle machine and the tilt that feeds the simulator.
// A Game is not safe for concurrent use; one goroutine drives it.
type Game struct {
	presets    parameter.Presets
	difficulty parameter.Difficulty
	preset     parameter.Preset
	rng        maze.Rand
	time       TimeSource

	grid      *maze.Grid
	start     maze.Point
	distances *navigation.DistanceField
	sim       *physics.Simulator
	applied   physics.Tilt

	tilt    *input.TiltController
	machine *fsm.Machine[*Game]
	clock   *Clock

	registry *status.Registry
	round    *status.Round

	victoryListeners   []func(status.Stats)
	bounceListeners    []func(speed float64)
	autopilotListeners []func(engaged bool)
	playingListeners   []func(active bool)

	notice     string
	noticeLeft time.Duration
}

// NewGame builds a controller in StartMenu with a preview board for cfg.Difficulty
func NewGame(cfg Config) (*Game, error) {
	if cfg.Presets == nil {
		cfg.Presets = parameter.DefaultPresets()
	}
	if cfg.Time == nil {
		cfg.Time = NewTimeProvider()
	}
	if cfg.Registry == nil {
		cfg.Registry = status.NewRegistry()
	}

	g := &Game{
		presets:  cfg.Presets,
		rng:      maze.NewRand(cfg.Seed),
		time:     cfg.Time,
		tilt:     input.NewTiltController(),
		clock:    NewClock(parameter.TickInterval, parameter.MaxTicksPerFrame),
		registry: cfg.Registry,
		round:    status.NewRound(cfg.Registry),
	}

	if err := g.buildBoard(cfg.Difficulty); err != nil {
		return nil, err
	}

	g.machine = NewLifecycle[*Game]()
	g.machine.OnEnter(StateStartMenu, (*Game).enterMenu)
	g.machine.OnEnter(StatePlaying, (*Game).enterPlaying)
	g.machine.OnExit(StatePlaying, (*Game).exitPlaying)
	g.machine.OnEnter(StatePaused, (*Game).enterPaused)
	g.machine.OnExit(StatePaused, (*Game).exitPaused)
	g.machine.OnEnter(StateVictory, (*Game).enterVictory)
	if err := g.machine.Init(g); err != nil {
		return nil, fmt.Errorf("lifecycle: %w", err)
	}
	return g, nil
}

// buildBoard generates a grid for d and places an idle marble on it
func (g *Game) buildBoard(d parameter.Difficulty) error {
	preset, err := g.presets.Get(d)
	if err != nil {
		return err
	}
	grid, err := maze.Generate(preset.GridSize, preset.LoopChance, g.rng)
	if err != nil {
		return fmt.Errorf("generate %s maze: %w", d, err)
	}

	g.difficulty = d
	g.preset = preset
	g.grid = grid
	g.start = navigation.SelectStart(grid, g.rng)
	g.distances = navigation.Distances(grid)
	g.sim = physics.NewSimulator(grid, g.start, g.onWin)
	g.tilt.Reset()
	g.applied = physics.Tilt{}
	g.clock.Reset()
	return nil
}

// NewRound generates a fresh maze for d, drops a new marble at a new start and
// enters Intro. From StartMenu this is Start, from anywhere else Reset.
func (g *Game) NewRound(d parameter.Difficulty) error {
	ev := EventReset
	if g.State() == StateStartMenu {
		ev = EventStart
	}
	if !g.machine.Can(g, ev) {
		return fmt.Errorf("%w: %s in %s", ErrIllegalTransition, eventNames[ev], StateName(g.State()))
	}
	if err := g.buildBoard(d); err != nil {
		return err
	}
	g.round.Begin()
	g.notify("")
	if err := g.machine.Fire(g, ev); err != nil {
		return err
	}
	log.Printf("round %d: %s %dx%d start=%v path=%d", g.round.Rounds(), d,
		g.grid.Width, g.grid.Height, g.start, g.distances.At(g.start))
	return nil
}

// Start begins a round at the current difficulty
func (g *Game) Start() error {
	return g.NewRound(g.difficulty)
}

// SelectDifficulty changes the preset. On the menu it swaps the preview board,
// during play it starts a new round.
func (g *Game) SelectDifficulty(d parameter.Difficulty) error {
	if g.State() != StateStartMenu {
		return g.NewRound(d)
	}
	return g.buildBoard(d)
}

// SkipIntro ends the intro countdown early
func (g *Game) SkipIntro() error {
	return g.machine.Fire(g, EventIntroDone)
}

// TogglePause flips Playing and Paused; other states return ErrIllegalTransition
func (g *Game) TogglePause() error {
	if g.State() == StatePaused {
		return g.machine.Fire(g, EventResume)
	}
	return g.machine.Fire(g, EventPause)
}

// Menu returns to StartMenu from any state
func (g *Game) Menu() error {
	return g.machine.Fire(g, EventMenu)
}

// EngageAutopilot solves from the marble's current cell and hands steering to
// the simulator. It reports false outside Playing or when no path exists.
func (g *Game) EngageAutopilot() bool {
	if g.State() != StatePlaying {
		return false
	}
	from := g.sim.Marble().Cell(g.grid)
	path := navigation.Solve(g.grid, from)
	if !g.sim.EngageAutopilot(path) {
		g.notify("autopilot unavailable")
		log.Printf("autopilot unavailable from %v", from)
		return false
	}
	g.tilt.ReleaseAll()
	g.round.SetAutopilot(true)
	g.notify("autopilot engaged")
	log.Printf("autopilot engaged from %v, %d waypoints", from, len(path))
	for _, fn := range g.autopilotListeners {
		fn(true)
	}
	return true
}

// DisengageAutopilot returns control to manual tilt
func (g *Game) DisengageAutopilot() {
	if !g.sim.Marble().Autopilot.Active {
		return
	}
	g.sim.DisengageAutopilot()
	g.round.SetAutopilot(false)
	g.notify("manual control")
	for _, fn := range g.autopilotListeners {
		fn(false)
	}
}

// ToggleAutopilot engages or disengages and reports whether it is now active
func (g *Game) ToggleAutopilot() bool {
	if g.sim.Marble().Autopilot.Active {
		g.DisengageAutopilot()
		return false
	}
	return g.EngageAutopilot()
}

// manualControl reports whether player input may write the tilt
func (g *Game) manualControl() bool {
	return g.State() == StatePlaying && !g.sim.Marble().Autopilot.Active
}

// PressDirection registers a tilt key press or repeat
func (g *Game) PressDirection(d input.Direction) {
	if !g.manualControl() {
		return
	}
	g.tilt.Press(d, g.time.Now())
}

// SetPointer maps a normalized pointer offset from the board center to tilt
func (g *Game) SetPointer(nx, ny float64) {
	if !g.manualControl() {
		return
	}
	g.applied = g.tilt.SetPointer(nx, ny)
}

// ReleasePointer ends a pointer drag so the tilt relaxes
func (g *Game) ReleasePointer() {
	g.tilt.ReleasePointer()
}

// OnVictory registers fn to run once per won round
func (g *Game) OnVictory(fn func(status.Stats)) {
	g.victoryListeners = append(g.victoryListeners, fn)
}

// OnBounce registers fn to run for every wall hit with the impact speed
func (g *Game) OnBounce(fn func(speed float64)) {
	g.bounceListeners = append(g.bounceListeners, fn)
}

// OnAutopilot registers fn to run when autopilot is engaged or released
func (g *Game) OnAutopilot(fn func(engaged bool)) {
	g.autopilotListeners = append(g.autopilotListeners, fn)
}

// OnPlaying registers fn to run when Playing is entered (true) and left (false)
func (g *Game) OnPlaying(fn func(active bool)) {
	g.playingListeners = append(g.playingListeners, fn)
}

// Tick advances the lifecycle by dt and runs the fixed physics ticks it covers
func (g *Game) Tick(dt time.Duration) {
	g.machine.Update(g, dt)

	if g.noticeLeft > 0 {
		g.noticeLeft -= dt
		if g.noticeLeft <= 0 {
			g.notice = ""
		}
	}

	n := g.clock.Advance(dt)
	now := g.time.Now()
	for i := 0; i < n; i++ {
		switch g.State() {
		case StatePlaying:
			g.stepPhysics(now)
		case StateVictory:
			g.applied = g.tilt.Relax(parameter.VictoryTiltDecay)
		}
	}
}

func (g *Game) stepPhysics(now time.Time) {
	autopilot := g.sim.Marble().Autopilot.Active
	tilt := g.tilt.Tilt()
	if !autopilot {
		tilt = g.tilt.Update(now)
	}

	res := g.sim.Step(physics.Input{
		Tilt:     tilt,
		Gravity:  g.preset.Gravity,
		Friction: g.preset.Friction,
	})
	g.applied = res.Tilt
	if res.AutopilotLost {
		g.round.SetAutopilot(false)
		g.notify("autopilot unavailable")
		log.Printf("autopilot lost its route at %v", g.sim.Marble().Cell(g.grid))
		for _, fn := range g.autopilotListeners {
			fn(false)
		}
	} else if autopilot {
		// Mirror the steering command so manual control resumes from it
		g.tilt.Set(res.Tilt)
	}

	g.round.Tick(g.clock.Step(), autopilot)
	if res.Bounced {
		g.round.Bounce(res.BounceSpeed)
		for _, fn := range g.bounceListeners {
			fn(res.BounceSpeed)
		}
	}
}

// onWin is the simulator's victory callback, fired once per round
func (g *Game) onWin() {
	if err := g.machine.Fire(g, EventWin); err != nil {
		log.Printf("victory ignored: %v", err)
		return
	}
	g.round.Win()
	stats := g.round.Snapshot()
	log.Printf("victory in %s: %d ticks, %d bounces, assisted=%v",
		stats.Elapsed.Round(time.Millisecond), stats.Ticks, stats.Bounces, stats.Assisted)
	for _, fn := range g.victoryListeners {
		fn(stats)
	}
}

func (g *Game) enterMenu() {
	g.sim.DisengageAutopilot()
	g.round.SetAutopilot(false)
	g.tilt.Reset()
	g.applied = physics.Tilt{}
}

func (g *Game) enterPlaying() {
	g.sim.Activate()
	g.clock.Reset()
	for _, fn := range g.playingListeners {
		fn(true)
	}
}

func (g *Game) exitPlaying() {
	for _, fn := range g.playingListeners {
		fn(false)
	}
}

func (g *Game) enterPaused() {
	g.tilt.ReleaseAll()
}

func (g *Game) exitPaused() {
	g.clock.Reset()
}

func (g *Game) enterVictory() {
	g.tilt.ReleaseAll()
}

// notify shows msg in the HUD for a short while; empty clears it
func (g *Game) notify(msg string) {
	g.notice = msg
	g.noticeLeft = 0
	if msg != "" {
		g.noticeLeft = noticeDuration
	}
}

// State returns the current lifecycle state
func (g *Game) State() State {
	return g.machine.Current()
}

func (g *Game) Difficulty() parameter.Difficulty { return g.difficulty }

func (g *Game) Registry() *status.Registry { return g.registry }
