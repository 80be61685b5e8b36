package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/tilt-maze/maze"
	"github.com/lixenwraith/tilt-maze/navigation"
	"github.com/lixenwraith/tilt-maze/parameter"
)

var (
	difficultyFlag  = flag.String("difficulty", "", "Use a preset's size and loop chance: easy, medium, hard")
	sizeFlag        = flag.Int("size", 21, "Grid size, even values are raised to odd")
	loopsFlag       = flag.Float64("loops", 0.1, "Chance of knocking out an extra wall, <= 0 for a perfect maze")
	seedFlag        = flag.Uint64("seed", 0, "Generator seed, 0 for a random seed")
	countFlag       = flag.Int("n", 1, "Number of mazes to print")
	noPathFlag      = flag.Bool("nopath", false, "Hide the solution overlay")
	interactiveFlag = flag.Bool("i", false, "Prompt for parameters in a loop")
)

type options struct {
	size  int
	loops float64
	seed  uint64
	path  bool
}

func main() {
	flag.Parse()

	opts := options{size: *sizeFlag, loops: *loopsFlag, seed: *seedFlag, path: !*noPathFlag}
	if *difficultyFlag != "" {
		d, err := parameter.ParseDifficulty(*difficultyFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		p, _ := parameter.DefaultPresets().Get(d)
		opts.size, opts.loops = p.GridSize, p.LoopChance
	}

	if *interactiveFlag {
		interactive(bufio.NewReader(os.Stdin), os.Stdout, opts)
		return
	}

	rng := maze.NewRand(opts.seed)
	for i := 0; i < *countFlag; i++ {
		if err := generate(os.Stdout, opts, rng); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func interactive(reader *bufio.Reader, out io.Writer, opts options) {
	rng := maze.NewRand(opts.seed)
	for {
		fmt.Fprintln(out, "\n=== TILT MAZE GENERATOR ===")

		opts.size = getInt(reader, out, fmt.Sprintf("Size [odd preferred] (default %d): ", opts.size), opts.size)
		opts.loops = getFloat(reader, out, fmt.Sprintf("Loop chance [0.0 - 1.0] (default %.2f): ", opts.loops), opts.loops)

		if err := generate(out, opts, rng); err != nil {
			fmt.Fprintln(out, err)
		}

		fmt.Fprint(out, "\nGenerate another? [Y/n]: ")
		cont, err := reader.ReadString('\n')
		if err != nil || strings.ToLower(strings.TrimSpace(cont)) == "n" {
			return
		}
	}
}

// generate builds one maze, picks a start and prints it with its solution
func generate(out io.Writer, opts options, rng maze.Rand) error {
	startT := time.Now()
	g, err := maze.Generate(opts.size, opts.loops, rng)
	if err != nil {
		return err
	}
	start := navigation.SelectStart(g, rng)
	path := navigation.Solve(g, start)
	dur := time.Since(startT)

	fmt.Fprintf(out, "Done in %v\n", dur)
	fmt.Fprintf(out, "Grid Dimensions: %dx%d\n", g.Width, g.Height)
	if len(path) > 0 {
		fmt.Fprintf(out, "Solution Path Length: %d steps\n", len(path))
	} else {
		fmt.Fprintln(out, "Status: Unsolvable (Isolated Start)")
	}

	if !opts.path {
		path = nil
	}
	draw(out, g, start, path)
	return nil
}

// draw prints S for the start, O for the goal hole, • along the path
func draw(out io.Writer, g *maze.Grid, start maze.Point, path navigation.Path) {
	pathMap := make(map[maze.Point]bool, len(path))
	for _, p := range path {
		pathMap[p] = true
	}

	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := maze.Point{X: x, Y: y}
			switch {
			case p == start:
				sb.WriteString("S")
			case p == g.Center():
				sb.WriteString("O")
			case g.IsWall(p):
				sb.WriteString("█")
			case pathMap[p]:
				sb.WriteString("•")
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteByte('\n')
	}
	io.WriteString(out, sb.String())
}

// --- Input Helpers ---

func getInt(r *bufio.Reader, out io.Writer, prompt string, def int) int {
	fmt.Fprint(out, prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

func getFloat(r *bufio.Reader, out io.Writer, prompt string, def float64) float64 {
	fmt.Fprint(out, prompt)
	s, _ := r.ReadString('\n')
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	// Clamp
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}
