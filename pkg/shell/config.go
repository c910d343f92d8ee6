package shell

import "github.com/kjkrol/gokw/internal/platform"

// SurfaceConfig describes the rendering surface the backend creates its
// context with. It is immutable for the lifetime of that context.
type SurfaceConfig struct {
	ColorBits    int
	DepthBits    int
	DoubleBuffer bool
	VSync        bool
}

// DefaultSurfaceConfig is the surface every backend must support: 32-bit
// RGBA color, 16-bit depth, double buffered, vsync best-effort.
func DefaultSurfaceConfig() SurfaceConfig {
	return SurfaceConfig{
		ColorBits:    32,
		DepthBits:    16,
		DoubleBuffer: true,
		VSync:        true,
	}
}

type WindowConfig struct {
	PositionX int
	PositionY int
	Width     int
	Height    int
	Title     string
	Surface   SurfaceConfig
}

func (c WindowConfig) convert() platform.Config {
	surface := c.Surface
	if surface == (SurfaceConfig{}) {
		surface = DefaultSurfaceConfig()
	}
	width, height := c.Width, c.Height
	if width <= 0 {
		width = 640
	}
	if height <= 0 {
		height = 480
	}
	return platform.Config{
		PositionX: c.PositionX,
		PositionY: c.PositionY,
		Width:     width,
		Height:    height,
		Title:     c.Title,
		Surface: platform.SurfaceSpec{
			ColorBits:    surface.ColorBits,
			DepthBits:    surface.DepthBits,
			DoubleBuffer: surface.DoubleBuffer,
			VSync:        surface.VSync,
		},
	}
}
