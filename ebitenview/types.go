package ebitenview

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to a premultiplied color.RGBA for the vector package.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// dim returns c with its alpha scaled by f.
func (c Color) dim(f float64) Color {
	c.A *= f
	return c
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Palette holds the colors a View draws with.
type Palette struct {
	Track  Color // track background
	Fill   Color // track area behind the cursor
	Cursor Color
	Tick   Color // completion mark drawn over the cursor
	Failed Color // flash drawn on the cursor after a failed slide
}

// DefaultPalette returns a dark track with a green fill.
func DefaultPalette() Palette {
	return Palette{
		Track:  Color{0.16, 0.17, 0.2, 1},
		Fill:   Color{0.2, 0.62, 0.36, 1},
		Cursor: Color{0.93, 0.94, 0.96, 1},
		Tick:   Color{0.2, 0.62, 0.36, 1},
		Failed: Color{0.85, 0.25, 0.25, 1},
	}
}

// Rect is an axis-aligned rectangle in screen space. The origin is the
// top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}
