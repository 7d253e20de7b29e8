// Command silkdemo renders frames of the silk backdrop to PNG files under a
// simulated host capability.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/silk"
	"github.com/gogpu/silk/backdrop"
)

func main() {
	var (
		width    = flag.Int("width", 640, "container width")
		height   = flag.Int("height", 360, "container height")
		frames   = flag.Int("frames", 1, "number of frames to write")
		fps      = flag.Int("fps", 60, "simulated display refresh rate")
		quality  = flag.String("quality", "low", "quality tier: low, medium or high")
		color    = flag.String("color", "#7B7481", "base color")
		speed    = flag.Float64("speed", 5, "base speed")
		scale    = flag.Float64("scale", 1, "base scale")
		noise    = flag.Float64("noise", 1.5, "base noise")
		rotation = flag.Float64("rotation", 2, "rotation in radians")
		mobile   = flag.Bool("mobile", false, "simulate a mobile viewport")
		reduced  = flag.Bool("reduced-motion", false, "simulate a reduced-motion preference")
		outDir   = flag.String("out", ".", "output directory")
	)
	flag.Parse()

	q, err := silk.ParseQuality(*quality)
	if err != nil {
		log.Fatal(err)
	}
	c, err := silk.ParseHex(*color)
	if err != nil {
		log.Fatal(err)
	}
	params := silk.Params{
		Quality:  q,
		Speed:    *speed,
		Scale:    *scale,
		Noise:    *noise,
		Color:    c,
		Rotation: *rotation,
	}

	b, err := backdrop.New(
		backdrop.WithParams(params),
		backdrop.WithSize(*width, *height),
		backdrop.WithCapability(silk.Capability{
			Mobile:        *mobile,
			ReducedMotion: *reduced,
			PageVisible:   true,
			InViewport:    true,
		}),
	)
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	prof := b.Profile()
	log.Printf("profile: %d Hz cap, time scale %.2f, density %.1f, noise %.2f",
		prof.FrameRateCap, prof.TimeScale, prof.PixelDensity, prof.Noise)

	// Feed display-rate deltas and keep the frames the throttle lets through.
	delta := time.Second / time.Duration(max(*fps, 1))
	written := 0
	for i := 0; written < *frames; i++ {
		if i > 0 && !b.Frame(delta) {
			if prof.TimeScale == 0 && i > *fps {
				// The clock is frozen; every further frame is identical.
				break
			}
			continue
		}
		path := filepath.Join(*outDir, fmt.Sprintf("silk_%03d.png", written))
		if err := savePNG(path, b.Snapshot()); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		written++
	}

	pw, ph := b.PixelSize()
	log.Printf("Wrote %d frame(s) to %s (%dx%d pixels, t=%.3fs)", written, *outDir, pw, ph, b.Time())
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
