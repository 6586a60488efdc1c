// path-plot runs a scene headless, samples entity positions every frame,
// and renders the top-down (XZ) trajectories into a WebP image. Handy for
// eyeballing wander and flutter tuning without a live viewport.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"os"

	"github.com/HugoSmits86/nativewebp"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/kinema/config"
	"github.com/lixenwraith/kinema/logging"
	"github.com/lixenwraith/kinema/physics"
	"github.com/lixenwraith/kinema/runtime"
	"github.com/lixenwraith/kinema/scene"
)

var pathPalette = []color.RGBA{
	{0x4e, 0xc9, 0xb0, 0xff},
	{0xd7, 0xba, 0x7d, 0xff},
	{0xc5, 0x86, 0xc0, 0xff},
	{0x9c, 0xdc, 0xfe, 0xff},
	{0xce, 0x91, 0x78, 0xff},
	{0x6a, 0x99, 0x55, 0xff},
}

func main() {
	scenePath := flag.String("scene", "", "scene document to run")
	outPath := flag.String("out", "path.webp", "output image")
	configDir := flag.String("config", ".", "directory holding kinema.toml")
	frames := flag.Int("frames", 0, "frame count override")
	size := flag.Int("size", 512, "image width and height in pixels")
	seed := flag.Int64("seed", 1, "wander randomness seed")
	flag.Parse()

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "usage: path-plot -scene <file> [-out file.webp] [-frames n]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logging.Stderr(cfg.LogLevel, cfg.LogConsole)

	data, err := os.ReadFile(*scenePath)
	if err != nil {
		log.Fatal().Err(err).Msg("read scene")
	}
	doc, err := scene.ParseDocument(data)
	if err != nil {
		log.Fatal().Err(err).Msg("parse scene")
	}

	world := physics.NewKineticWorld(physics.WorldConfig{
		Gravity:        mgl64.Vec3{0, cfg.World.Gravity, 0},
		LinearDamping:  cfg.World.LinearDamping,
		AngularDamping: cfg.World.AngularDamping,
		GroundPlane:    cfg.World.GroundPlane,
	})
	loader := scene.Load(doc, scene.Deps{
		World:  world,
		Rand:   rand.New(rand.NewSource(*seed)),
		Logger: log,
	})
	defer loader.Unload()

	loop := runtime.NewLoop(loader, nil, log)

	n := cfg.Run.Frames
	if *frames > 0 {
		n = *frames
	}

	ids := loader.Registry().IDs()
	tracks := make(map[string][]mgl64.Vec3, len(ids))
	for i := 0; i < n; i++ {
		loop.Frame(cfg.Run.Delta)
		for id, pose := range loader.Registry().AllPoses() {
			tracks[id] = append(tracks[id], pose.Position)
		}
	}

	img := render(ids, tracks, *size)

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatal().Err(err).Msg("create output")
	}
	defer f.Close()
	if err := nativewebp.Encode(f, img, nil); err != nil {
		log.Fatal().Err(err).Msg("encode webp")
	}
	log.Info().Str("out", *outPath).Int("frames", n).Int("entities", len(ids)).Msg("plot written")
}

// render maps every track into one square viewport with a shared scale
// and 10% margin, drawing each entity's XZ polyline in its palette color.
func render(ids []string, tracks map[string][]mgl64.Vec3, size int) *image.RGBA {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for _, track := range tracks {
		for _, p := range track {
			minX, maxX = math.Min(minX, p.X()), math.Max(maxX, p.X())
			minZ, maxZ = math.Min(minZ, p.Z()), math.Max(maxZ, p.Z())
		}
	}
	span := math.Max(maxX-minX, maxZ-minZ)
	if span <= 0 || math.IsInf(span, 0) {
		span = 1
	}
	scale := float64(size) * 0.8 / span
	offX := (float64(size) - (maxX-minX)*scale) / 2
	offZ := (float64(size) - (maxZ-minZ)*scale) / 2

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	bg := color.RGBA{0x1e, 0x1e, 0x1e, 0xff}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, bg)
		}
	}

	for i, id := range ids {
		track := tracks[id]
		c := pathPalette[i%len(pathPalette)]
		var prevX, prevY int
		for j, p := range track {
			px := int((p.X()-minX)*scale + offX)
			py := int((p.Z()-minZ)*scale + offZ)
			if j > 0 {
				drawLine(img, prevX, prevY, px, py, c)
			}
			prevX, prevY = px, py
		}
	}
	return img
}

// drawLine is a basic Bresenham segment clipped to the image bounds.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if image.Pt(x0, y0).In(img.Rect) {
			img.SetRGBA(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
