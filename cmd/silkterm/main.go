// Command silkterm shows the animated silk backdrop in a true-colour
// terminal.
//
// Keys: r toggles reduced motion, 1/2/3 select the low/medium/high tier,
// q or Esc quits. Focus changes pause and resume the animation.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/silk"
	"github.com/gogpu/silk/backdrop"
	"github.com/gogpu/silk/integration/tcellview"
	"github.com/gogpu/silk/probe"
)

func main() {
	var (
		quality  = flag.String("quality", "medium", "quality tier: low, medium or high")
		rotation = flag.Float64("rotation", 2, "rotation in radians")
		logFile  = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		silk.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	q, err := silk.ParseQuality(*quality)
	if err != nil {
		log.Fatal(err)
	}
	params := silk.DefaultParams()
	params.Quality = q
	params.Rotation = *rotation

	if err := run(params); err != nil {
		log.Fatal(err)
	}
}

func run(params silk.Params) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	p := probe.New()
	defer p.Close()
	p.Attach(tcellview.FocusSource(screen))

	b, err := backdrop.New(backdrop.WithParams(params), backdrop.WithProbe(p))
	if err != nil {
		return err
	}
	defer b.Close()

	view := tcellview.New(b, p)
	view.Resize(screen.Size())

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS display rate
	defer ticker.Stop()

	reduced := false
	for {
		select {
		case ev := <-events:
			if view.HandleEvent(ev) {
				continue
			}
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			switch {
			case key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC:
				return nil
			case key.Key() != tcell.KeyRune:
			case key.Rune() == 'q':
				return nil
			case key.Rune() == 'r':
				reduced = !reduced
				p.SetReducedMotion(reduced)
			case key.Rune() >= '1' && key.Rune() <= '3':
				params.Quality = silk.Quality(key.Rune() - '1')
				if err := b.SetParams(params); err != nil {
					silk.Logger().Warn("silkterm: params rejected", "err", err)
				}
			}

		case now := <-ticker.C:
			if view.Tick(now) {
				view.Draw(screen)
			}
		}
	}
}
