package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/morphx666/FluidSimND/pkg/config"
	"github.com/morphx666/FluidSimND/pkg/fluid"
	"github.com/morphx666/FluidSimND/pkg/render"
)

type Game struct {
	sim   *fluid.Shared
	index render.IndexFunc
	dim   fluid.Dimension
	size  int
	z     int // slice shown in 3D
	zoom  int
	input config.InputSettings

	mode    render.Mode
	img     *image.RGBA
	density []float32

	drawing      bool
	lastX, lastY int
}

func NewGame(f *fluid.Fluid, sim *fluid.Shared, s config.Settings, mode render.Mode) *Game {
	return &Game{
		sim:   sim,
		index: f.Index,
		dim:   f.Dim(),
		size:  f.Size(),
		z:     f.Size() / 2,
		zoom:  s.Window.Zoom,
		input: s.Input,
		mode:  mode,
		img:   image.NewRGBA(image.Rect(0, 0, f.Size(), f.Size())),
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.mode = g.mode.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.SetPaused(!g.sim.Paused())
	}

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.drawing = false
		return nil
	}
	x, y := ebiten.CursorPosition()
	if !g.drawing {
		g.drawing = true
		g.lastX, g.lastY = x, y
	}
	// Negative cells are undefined for the simulation.
	if x >= 0 && y >= 0 {
		// Velocity follows the drag distance in screen pixels.
		vx := float32((x-g.lastX)*g.zoom) * g.input.VelocityScale
		vy := float32((y-g.lastY)*g.zoom) * g.input.VelocityScale
		g.sim.AddDensity(x, y, g.z, g.input.DensityAmount)
		g.sim.AddVelocity(x, y, g.z, vx, vy, 0)
	}
	g.lastX, g.lastY = x, y
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.density = g.sim.CopyDensity(g.density)
	render.Paint(g.img, g.density, g.size, g.z, g.index, g.mode)
	screen.WritePixels(g.img.Pix)

	status := ""
	if g.sim.Paused() {
		status = " (paused)"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FluidSim %s - %s%s\nFPS: %0.2f  steps: %d",
		g.dim, g.mode, status, ebiten.ActualFPS(), g.sim.Steps()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (w, h int) {
	return g.size, g.size
}

func main() {
	var (
		configPath = flag.String("config", "settings.json", "settings file; defaults are used when it does not exist")
		dim        = flag.Int("dim", 0, "2 or 3 dimensions")
		size       = flag.Int("size", 0, "grid side length")
		zoom       = flag.Int("zoom", 0, "screen pixels per cell")
		mode       = flag.String("mode", "", "colour mode: gray or sci")
		verbose    = flag.Bool("v", false, "debug logging")
		headless   = flag.Bool("headless", false, "run without a window and write a PNG")
		steps      = flag.Int("steps", 200, "steps to run in headless mode")
		out        = flag.String("out", "fluid.png", "PNG written in headless mode")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	fluid.SetLogger(log)

	settings, loaded, err := config.Load(*configPath)
	if err != nil {
		log.Error("loading settings", "err", err)
		os.Exit(1)
	}
	if !loaded {
		log.Debug("no settings file, using defaults", "path", *configPath)
	}
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "dim":
			settings.Simulation.Dimension = *dim
		case "size":
			settings.Simulation.Size = *size
		case "zoom":
			settings.Window.Zoom = *zoom
		case "mode":
			settings.Render.Mode = *mode
		}
	})
	if err := settings.Validate(); err != nil {
		log.Error("invalid settings", "err", err)
		os.Exit(1)
	}
	colourMode, err := render.ParseMode(settings.Render.Mode)
	if err != nil {
		log.Error("invalid settings", "err", err)
		os.Exit(1)
	}

	sim := settings.Simulation
	f, err := fluid.New(fluid.Dimension(sim.Dimension), sim.Size, sim.Diffusion, sim.Viscosity, sim.TimeStep,
		fluid.WithIterations(sim.Iterations))
	if err != nil {
		log.Error("creating simulation", "err", err)
		os.Exit(1)
	}

	if *headless {
		if err := runHeadless(f, settings, colourMode, *steps, *out); err != nil {
			log.Error("headless run", "err", err)
			os.Exit(1)
		}
		log.Info("snapshot written", "path", *out, "steps", *steps)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shared := fluid.NewShared(f)
	go func() {
		if err := shared.Run(ctx, sim.Tick()); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("tick loop", "err", err)
		}
	}()

	ebiten.SetWindowSize(sim.Size*settings.Window.Zoom, sim.Size*settings.Window.Zoom)
	ebiten.SetWindowTitle(fmt.Sprintf("%s %s", settings.Window.Title, f.Dim()))

	if err := ebiten.RunGame(NewGame(f, shared, settings, colourMode)); err != nil {
		log.Error("game loop", "err", err)
		stop()
		os.Exit(1)
	}
}
