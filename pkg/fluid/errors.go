package fluid

import "errors"

// Sentinel errors returned by New and the read views. Construction wraps them
// with the offending value; match with errors.Is.
var (
	// ErrDimension is returned when the requested dimension is neither 2 nor 3.
	ErrDimension = errors.New("fluid: dimension must be 2 or 3")

	// ErrSize is returned when the grid side length is smaller than 3.
	ErrSize = errors.New("fluid: side length must be at least 3")

	// ErrTimeStep is returned for a non-positive or non-finite time step.
	ErrTimeStep = errors.New("fluid: time step must be positive and finite")

	// ErrDiffusion is returned for a negative or non-finite diffusion rate.
	ErrDiffusion = errors.New("fluid: diffusion rate must be non-negative and finite")

	// ErrViscosity is returned for a negative or non-finite viscosity.
	ErrViscosity = errors.New("fluid: viscosity must be non-negative and finite")

	// ErrOutOfRange is returned by the bounds-checked field readers.
	ErrOutOfRange = errors.New("fluid: coordinate out of range")
)
