package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilt-maze/audio"
	"github.com/lixenwraith/tilt-maze/engine"
	"github.com/lixenwraith/tilt-maze/input"
	"github.com/lixenwraith/tilt-maze/parameter"
	"github.com/lixenwraith/tilt-maze/render"
	"github.com/lixenwraith/tilt-maze/status"
)

// App connects the terminal, the game controller, sound and rendering
type App struct {
	screen   tcell.Screen
	game     *engine.Game
	decoder  *input.Decoder
	sound    *audio.SoundManager
	renderer *render.Renderer
}

func NewApp(screen tcell.Screen, game *engine.Game, decoder *input.Decoder, sound *audio.SoundManager) *App {
	a := &App{
		screen:   screen,
		game:     game,
		decoder:  decoder,
		sound:    sound,
		renderer: render.NewRenderer(),
	}

	game.OnVictory(func(status.Stats) { a.sound.PlayFanfare() })
	game.OnBounce(a.sound.PlayKnock)
	game.OnPlaying(a.sound.SetMusic)
	game.OnAutopilot(func(engaged bool) {
		if engaged {
			a.sound.PlayEngage()
		}
	})
	return a
}

// Run polls input on its own goroutine and drives the game from a frame ticker
// until a quit intent or the screen closes
func (a *App) Run() {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	a.frame(0)
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if !a.handle(a.decoder.Decode(ev)) {
				return
			}

		case now := <-ticker.C:
			a.frame(now.Sub(last))
			last = now
		}
	}
}

// frame advances the game by dt and redraws
func (a *App) frame(dt time.Duration) {
	a.game.Tick(dt)
	a.renderer.Draw(a.screen, a.game.Snapshot())
}

// handle applies one intent and reports whether the app keeps running
func (a *App) handle(in input.Intent) bool {
	g := a.game
	var err error

	switch in.Type {
	case input.IntentQuit:
		return false

	case input.IntentToggleMute:
		log.Printf("sound muted=%v", a.sound.ToggleMute())

	case input.IntentResize:
		a.screen.Sync()

	case input.IntentStart:
		switch g.State() {
		case engine.StateStartMenu:
			err = g.Start()
		case engine.StateIntro:
			err = g.SkipIntro()
		case engine.StateVictory:
			err = g.NewRound(g.Difficulty())
		}

	case input.IntentPause:
		err = g.TogglePause()

	case input.IntentReset:
		if g.State() == engine.StateStartMenu {
			err = g.Start()
		} else {
			err = g.NewRound(g.Difficulty())
		}

	case input.IntentMenu:
		err = g.Menu()

	case input.IntentDifficulty:
		err = g.SelectDifficulty(in.Difficulty)

	case input.IntentTheme:
		log.Printf("board theme %s", a.renderer.CycleTheme())

	case input.IntentMarbleColor:
		log.Printf("marble color %s", a.renderer.CycleMarbleColor())

	case input.IntentTilt:
		g.PressDirection(in.Dir)

	case input.IntentAutopilot:
		g.ToggleAutopilot()

	case input.IntentPointer:
		if nx, ny, ok := a.renderer.Pointer(in.X, in.Y); ok {
			g.SetPointer(nx, ny)
		}

	case input.IntentRelease:
		g.ReleasePointer()
	}

	if err != nil {
		log.Printf("intent %d ignored: %v", in.Type, err)
	}
	return true
}
