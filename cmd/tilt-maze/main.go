package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tilt-maze/audio"
	"github.com/lixenwraith/tilt-maze/engine"
	"github.com/lixenwraith/tilt-maze/input"
	"github.com/lixenwraith/tilt-maze/parameter"
	"github.com/lixenwraith/tilt-maze/render"
)

const (
	logDir      = "logs"
	logFileName = "tilt-maze.log"
	maxLogSize  = 10 * 1024 * 1024
)

var (
	difficultyFlag = flag.String("difficulty", "easy", "Starting difficulty: easy, medium, hard")
	seedFlag       = flag.Uint64("seed", 0, "Maze seed, 0 for a random seed")
	presetsFlag    = flag.String("presets", "", "YAML file overriding difficulty presets")
	keymapFlag     = flag.String("keymap", "", "YAML file overriding key bindings")
	debugFlag      = flag.Bool("debug", false, "Write a debug log to "+filepath.Join(logDir, logFileName))
	muteFlag       = flag.Bool("mute", false, "Start with sound muted")
	themeFlag      = flag.String("theme", "wood", "Board theme: wood, metal")
	marbleFlag     = flag.String("marble", "blue", "Marble color: red, green, yellow, blue")
)

// setupLogging sends the standard logger to a rotated file in debug mode and
// discards it otherwise, the terminal belongs to the game
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("tilt-maze-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func main() {
	flag.Parse()

	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	difficulty, err := parameter.ParseDifficulty(*difficultyFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
	theme, ok := render.ParseTheme(*themeFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown theme %q\n", *themeFlag)
		os.Exit(2)
	}
	marble, ok := render.ParseMarbleColor(*marbleFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown marble color %q\n", *marbleFlag)
		os.Exit(2)
	}
	presets, err := parameter.LoadPresets(*presetsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load presets: %v\n", err)
		os.Exit(1)
	}
	keys, err := input.LoadKeyTable(*keymapFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load keymap: %v\n", err)
		os.Exit(1)
	}

	game, err := engine.NewGame(engine.Config{
		Presets:    presets,
		Difficulty: difficulty,
		Seed:       *seedFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mTILT-MAZE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	audioCfg := audio.LoadAudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()

	app := NewApp(screen, game, input.NewDecoder(keys), sound)
	app.renderer.SetTheme(theme)
	app.renderer.SetMarbleColor(marble)
	log.Printf("tilt-maze started: difficulty=%s seed=%d", difficulty, *seedFlag)
	app.Run()
	log.Printf("tilt-maze exiting: %s", game.Registry().Summary())
}
