package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/profile"

	"pong"
	"pong/audio"
	"pong/engine"
	"pong/input"
	"pong/options"
	"pong/render"
)

const frameInterval = 16 * time.Millisecond

var (
	profileFlag = flag.String("profile", "", "Profiling: cpu or mem")
	seedFlag    = flag.Int64("seed", 0, "Seed for randomized serves, 0 keeps the fixed serve")
	fontFlag    = flag.String("font", "", "Path to a score font file")
	muteFlag    = flag.Bool("mute", false, "Disable sound")
)

func main() {
	flag.Parse()

	switch *profileFlag {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the trace so it
	// stays readable after a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nPONG CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	opts := options.DefaultOptions()
	if *seedFlag != 0 {
		opts.Ball.StartVelocity = randomServe(*seedFlag)
	}
	if opts.ScoreDisplay != nil {
		opts.ScoreDisplay.FontPath = *fontFlag
	}

	ctx := engine.NewGameContext(screen, opts)
	game, err := pong.Register(ctx)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start game: %v\n", err)
		os.Exit(1)
	}

	// Audio is best-effort: a headless or audio-less host still plays
	if !*muteFlag {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err == nil {
			ctx.Router.Register(audio.NewEventHandler(sounds))
			defer sounds.Cleanup()
		}
	}

	renderer := render.NewRenderer(screen, opts, game.Font())

	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return
				}
				if ev.Rune() == 'q' {
					return
				}
				if ev.Rune() == 'r' {
					game.ResetMatch()
					continue
				}
				ctx.Keyboard.Press(input.FromEvent(ev), time.Now())
			case *tcell.EventResize:
				ctx.HandleResize()
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if dt > 4*frameInterval {
				dt = 4 * frameInterval
			}
			ctx.Tick(dt)
			renderer.Draw(ctx.World)
		}
	}
}

// randomServe returns a generator that serves at the default speed in a
// random direction, biased toward the goal lines so rallies start promptly
func randomServe(seed int64) func() (float64, float64) {
	rng := rand.New(rand.NewSource(seed))
	speed := math.Hypot(30, 15)
	return func() (float64, float64) {
		angle := (rng.Float64() - 0.5) * math.Pi / 3
		vx := speed * math.Cos(angle)
		vy := speed * math.Sin(angle)
		if rng.Intn(2) == 0 {
			vx = -vx
		}
		return vx, vy
	}
}
