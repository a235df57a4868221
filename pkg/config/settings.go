// Package config holds the settings of the fluid demo: simulation constants,
// window and input scaling, and the colour mode.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// ErrInvalid is returned by Validate; the wrapped message names the field.
var ErrInvalid = errors.New("config: invalid settings")

type Settings struct {
	Simulation SimulationSettings `json:"simulation"`
	Window     WindowSettings     `json:"window"`
	Input      InputSettings      `json:"input"`
	Render     RenderSettings     `json:"render"`
}

type SimulationSettings struct {
	Dimension  int     `json:"dimension"`
	Size       int     `json:"size"`
	Diffusion  float32 `json:"diffusion"`
	Viscosity  float32 `json:"viscosity"`
	TimeStep   float32 `json:"timeStep"`
	Iterations int     `json:"iterations"`
	TickMs     int     `json:"tickMs"` // 0 steps back to back
}

type WindowSettings struct {
	Zoom  int    `json:"zoom"`
	Title string `json:"title"`
}

type InputSettings struct {
	DensityAmount float32 `json:"densityAmount"`
	VelocityScale float32 `json:"velocityScale"`
}

type RenderSettings struct {
	Mode string `json:"mode"`
}

// Default returns the settings the demo ships with.
func Default() Settings {
	return Settings{
		Simulation: SimulationSettings{
			Dimension:  2,
			Size:       96,
			Diffusion:  0.000005,
			Viscosity:  0.0000001,
			TimeStep:   0.02,
			Iterations: 2,
			TickMs:     1,
		},
		Window: WindowSettings{
			Zoom:  7,
			Title: "FluidSim",
		},
		Input: InputSettings{
			DensityAmount: 3.0,
			VelocityScale: 0.5,
		},
		Render: RenderSettings{
			Mode: "gray",
		},
	}
}

// Load reads settings from a JSON file on top of the defaults. A missing
// file is not an error: the defaults are returned and loaded is false.
func Load(path string) (s Settings, loaded bool, err error) {
	s = Default()
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, false, nil
		}
		return s, false, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&s); err != nil {
		return Default(), false, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return s, true, nil
}

// Validate checks the fields the demo relies on. Physical constants are
// checked again by fluid.New.
func (s Settings) Validate() error {
	sim := s.Simulation
	switch {
	case sim.Dimension != 2 && sim.Dimension != 3:
		return fmt.Errorf("%w: dimension %d, want 2 or 3", ErrInvalid, sim.Dimension)
	case sim.Size < 3:
		return fmt.Errorf("%w: size %d, want at least 3", ErrInvalid, sim.Size)
	case sim.Iterations < 1:
		return fmt.Errorf("%w: iterations %d, want at least 1", ErrInvalid, sim.Iterations)
	case sim.TickMs < 0:
		return fmt.Errorf("%w: tickMs %d, want 0 or more", ErrInvalid, sim.TickMs)
	case s.Window.Zoom < 1:
		return fmt.Errorf("%w: zoom %d, want at least 1", ErrInvalid, s.Window.Zoom)
	}
	return nil
}

// Tick is the interval between two background simulation steps.
func (s SimulationSettings) Tick() time.Duration {
	return time.Duration(s.TickMs) * time.Millisecond
}
