package status

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"
)

// Metric keys written by the game controller
const (
	KeyTicks          = "round.ticks"
	KeyBounces        = "round.bounces"
	KeyAutopilotTicks = "round.autopilot_ticks"
	KeyRounds         = "session.rounds"
	KeyWins           = "session.wins"
	KeyElapsed        = "round.elapsed_s"
	KeyHardestHit     = "round.hardest_hit"
	KeyAutopilot      = "round.autopilot"
	KeyAssisted       = "round.assisted"
)

// Registry is the metrics facade shared by the controller and the HUD
// Writers cache pointers once; the render loop reads the same atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry returns a registry with empty bool, int and float maps
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount sums registered keys across the three maps
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Summary renders every metric as key=value, sorted by key, for the exit log
func (r *Registry) Summary() string {
	fields := make([]string, 0, r.TotalCount())
	r.Bools.Range(func(k string, v *atomic.Bool) {
		fields = append(fields, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		fields = append(fields, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		fields = append(fields, fmt.Sprintf("%s=%.3f", k, v.Get()))
	})
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

// Stats is a point-in-time copy of one round's metrics
type Stats struct {
	Ticks          int64
	Bounces        int64
	AutopilotTicks int64
	Elapsed        time.Duration
	HardestHit     float64
	// Assisted is set once autopilot has been engaged during the round
	Assisted bool
}

// Round caches the per-round metric cells
type Round struct {
	ticks          *atomic.Int64
	bounces        *atomic.Int64
	autopilotTicks *atomic.Int64
	rounds         *atomic.Int64
	wins           *atomic.Int64
	elapsed        *AtomicFloat
	hardestHit     *AtomicFloat
	autopilot      *atomic.Bool
	assisted       *atomic.Bool
}

// NewRound binds round counters to r
func NewRound(r *Registry) *Round {
	return &Round{
		ticks:          r.Ints.Get(KeyTicks),
		bounces:        r.Ints.Get(KeyBounces),
		autopilotTicks: r.Ints.Get(KeyAutopilotTicks),
		rounds:         r.Ints.Get(KeyRounds),
		wins:           r.Ints.Get(KeyWins),
		elapsed:        r.Floats.Get(KeyElapsed),
		hardestHit:     r.Floats.Get(KeyHardestHit),
		autopilot:      r.Bools.Get(KeyAutopilot),
		assisted:       r.Bools.Get(KeyAssisted),
	}
}

// Begin zeroes round counters and counts a new round; session counters survive
func (rd *Round) Begin() {
	rd.ticks.Store(0)
	rd.bounces.Store(0)
	rd.autopilotTicks.Store(0)
	rd.elapsed.Set(0)
	rd.hardestHit.Set(0)
	rd.autopilot.Store(false)
	rd.assisted.Store(false)
	rd.rounds.Add(1)
}

// Tick records one physics step of length dt
func (rd *Round) Tick(dt time.Duration, autopilot bool) {
	rd.ticks.Add(1)
	rd.elapsed.Add(dt.Seconds())
	if autopilot {
		rd.autopilotTicks.Add(1)
	}
}

func (rd *Round) Bounce(speed float64) {
	rd.bounces.Add(1)
	rd.hardestHit.Max(speed)
}

func (rd *Round) SetAutopilot(on bool) {
	rd.autopilot.Store(on)
	if on {
		rd.assisted.Store(true)
	}
}

func (rd *Round) Win() {
	rd.wins.Add(1)
	rd.autopilot.Store(false)
}

func (rd *Round) Rounds() int64 { return rd.rounds.Load() }
func (rd *Round) Wins() int64   { return rd.wins.Load() }

func (rd *Round) Snapshot() Stats {
	return Stats{
		Ticks:          rd.ticks.Load(),
		Bounces:        rd.bounces.Load(),
		AutopilotTicks: rd.autopilotTicks.Load(),
		Elapsed:        time.Duration(rd.elapsed.Get() * float64(time.Second)),
		HardestHit:     rd.hardestHit.Get(),
		Assisted:       rd.assisted.Load(),
	}
}
