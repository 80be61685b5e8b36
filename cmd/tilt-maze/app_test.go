package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tilt-maze/audio"
	"github.com/lixenwraith/tilt-maze/engine"
	"github.com/lixenwraith/tilt-maze/input"
	"github.com/lixenwraith/tilt-maze/parameter"
	"github.com/lixenwraith/tilt-maze/render"
)

func newTestApp(t *testing.T) (*App, *engine.MockTimeProvider) {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, scr.Init())
	scr.SetSize(100, 40)
	t.Cleanup(scr.Fini)

	clock := engine.NewMockTimeProvider(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	game, err := engine.NewGame(engine.Config{Difficulty: parameter.Easy, Seed: 11, Time: clock})
	require.NoError(t, err)

	cfg := audio.DefaultAudioConfig()
	cfg.Enabled = false
	return NewApp(scr, game, input.NewDecoder(nil), audio.NewSoundManager(cfg)), clock
}

func key(r rune) tcell.Event {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestApp_KeyFlow(t *testing.T) {
	app, _ := newTestApp(t)
	feed := func(ev tcell.Event) bool { return app.handle(app.decoder.Decode(ev)) }

	require.True(t, feed(key('3')))
	require.Equal(t, parameter.Hard, app.game.Difficulty())
	require.Equal(t, engine.StateStartMenu, app.game.State())

	require.True(t, feed(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	require.Equal(t, engine.StateIntro, app.game.State())

	require.True(t, feed(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)), "enter skips intro")
	require.Equal(t, engine.StatePlaying, app.game.State())

	require.True(t, feed(key('p')))
	require.Equal(t, engine.StatePaused, app.game.State())
	require.True(t, feed(key('p')))
	require.Equal(t, engine.StatePlaying, app.game.State())

	require.True(t, feed(key(' ')))
	require.True(t, app.game.Snapshot().Autopilot)

	require.True(t, feed(key('r')))
	require.Equal(t, engine.StateIntro, app.game.State())
	require.False(t, app.game.Snapshot().Autopilot)

	require.True(t, feed(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	require.Equal(t, engine.StateStartMenu, app.game.State())

	require.False(t, feed(key('q')), "q quits")
}

func TestApp_IllegalIntentsKeepRunning(t *testing.T) {
	app, _ := newTestApp(t)
	require.True(t, app.handle(input.Intent{Type: input.IntentPause}))
	require.True(t, app.handle(input.Intent{Type: input.IntentAutopilot}))
	require.Equal(t, engine.StateStartMenu, app.game.State())
}

func TestApp_PointerTiltsBoard(t *testing.T) {
	app, clock := newTestApp(t)
	require.NoError(t, app.game.Start())
	require.NoError(t, app.game.SkipIntro())
	app.frame(0)

	l := app.renderer.Layout()
	require.True(t, l.Fits())

	// Far right edge of the board, vertically centered
	x := l.OriginX + l.Cols - 1
	y := l.OriginY + l.Rows/2
	require.True(t, app.handle(input.Intent{Type: input.IntentPointer, X: x, Y: y}))

	for i := 0; i < 10; i++ {
		app.frame(clock.Advance(parameter.TickInterval))
	}
	tilt := app.game.Snapshot().Tilt
	require.Less(t, tilt.Roll, -0.8*parameter.MaxTilt, "pointer right pushes the marble +X")

	require.True(t, app.handle(input.Intent{Type: input.IntentRelease}))
	for i := 0; i < 60; i++ {
		app.frame(clock.Advance(parameter.TickInterval))
	}
	require.InDelta(t, 0, app.game.Snapshot().Tilt.Roll, 0.01)
}

func TestApp_MuteToggle(t *testing.T) {
	app, _ := newTestApp(t)
	require.True(t, app.sound.Muted())
	require.True(t, app.handle(input.Intent{Type: input.IntentToggleMute}))
	require.False(t, app.sound.Muted())
}

func TestApp_AppearanceKeys(t *testing.T) {
	app, _ := newTestApp(t)
	feed := func(ev tcell.Event) bool { return app.handle(app.decoder.Decode(ev)) }

	require.Equal(t, render.ThemeWood, app.renderer.Theme())
	require.True(t, feed(key('b')))
	require.Equal(t, render.ThemeMetal, app.renderer.Theme())
	require.True(t, feed(key('b')))
	require.Equal(t, render.ThemeWood, app.renderer.Theme(), "theme wraps around")

	require.Equal(t, render.MarbleBlue, app.renderer.MarbleColor())
	require.True(t, feed(key('c')))
	require.Equal(t, render.MarbleRed, app.renderer.MarbleColor())
	require.Equal(t, engine.StateStartMenu, app.game.State(), "appearance keys leave the lifecycle alone")
}
