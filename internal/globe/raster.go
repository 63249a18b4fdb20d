package globe

import "math"

// Braille block base. A pattern codepoint is the base ORed with an 8-bit
// dot mask.
const brailleBase = 0x2800

// Dot layout within one character cell, 2 columns by 4 rows. The Unicode
// Braille block assigns bits 0-2 to the left column's top three rows,
// bits 3-5 to the right column's top three rows, and bits 6/7 to the
// bottom row.
//
//	bit 0  bit 3
//	bit 1  bit 4
//	bit 2  bit 5
//	bit 6  bit 7
func dotBit(col, row int) uint8 {
	if row == 3 {
		return 1 << uint(6+col)
	}
	return 1 << uint(row+3*col)
}

// dotPos is the inverse of dotBit.
func dotPos(bit int) (col, row int) {
	if bit >= 6 {
		return bit - 6, 3
	}
	return bit / 3, bit % 3
}

// Lighting directions. Day light comes from the upper right, slightly
// toward the viewer; night mode mirrors it so the terminator sweeps the
// far side. Both are unit vectors.
var (
	lightDay   = normalize(Vec3{X: 0.7, Y: 0.3, Z: 0.6})
	lightNight = normalize(Vec3{X: -0.7, Y: -0.3, Z: 0.6})
)

func normalize(v Vec3) Vec3 {
	n := math.Sqrt(v.Dot(v))
	return Vec3{v.X / n, v.Y / n, v.Z / n}
}

// Ocean specular highlight: a stationary disc in normalized device
// coordinates, lit only where the surface is already bright.
const (
	specularCenterX   = 0.35
	specularCenterY   = 0.35
	specularRadius    = 0.25
	specularThreshold = 0.5
)

const nightDimming = 0.2

// cellAccum gathers the per-cell state produced by the rasterizer: one dot
// mask, intensity sum and sample count per channel, plus the polar and
// specular flags. Land and polar samples share the land channel; polar is
// distinguished only by the flag.
type cellAccum struct {
	landMask  uint8
	oceanMask uint8
	landSum   float64
	oceanSum  float64
	landN     int
	oceanN    int
	polar     bool
	specular  bool
}

// Renderer turns a land index, a city table and a palette into frames.
// It holds no per-frame state: Render is a pure function of its inputs
// and the index may be shared across goroutines once built.
type Renderer struct {
	Land    *LandIndex
	Cities  []GeoPoint
	Palette Palette

	// CharAspect is the visual height/width ratio of one terminal cell,
	// used to keep the projected disc circular. Zero means 2.0.
	CharAspect float64
}

// NewRenderer wires a renderer with the default palette and aspect ratio.
func NewRenderer(land *LandIndex, cities []GeoPoint) *Renderer {
	return &Renderer{
		Land:       land,
		Cities:     cities,
		Palette:    DefaultPalette(),
		CharAspect: 2.0,
	}
}

func (r *Renderer) charAspect() float64 {
	if r.CharAspect <= 0 {
		return 2.0
	}
	return r.CharAspect
}

// projection describes the screen placement of the globe disc for one
// frame: the disc center in character coordinates and the two radii that
// keep it circular despite tall cells.
type projection struct {
	centerX, centerY float64
	radiusX, radiusY float64
}

// Margin kept clear around the disc, in character cells.
const (
	padX = 2.0
	padY = 1.0
)

func (r *Renderer) project(width, height int) projection {
	aspect := r.charAspect()
	availW := float64(width)/2 - padX
	availH := (float64(height)/2 - padY) * aspect
	radiusX := math.Min(availW, availH)
	if radiusX < 1 {
		radiusX = 1
	}
	return projection{
		centerX: float64(width) / 2,
		centerY: float64(height) / 2,
		radiusX: radiusX,
		radiusY: radiusX / aspect,
	}
}

// ndc converts a sub-pixel screen position to normalized device
// coordinates with +Y up.
func (p projection) ndc(px, py float64) (nx, ny float64) {
	return (px - p.centerX) / p.radiusX, (p.centerY - py) / p.radiusY
}

// rasterize samples every Braille slot of every cell. Each slot is probed
// at view.Detail offsets along its diagonal; every probe that lands inside
// the unit disc is inverse-projected, classified in the material frame and
// lit in the view frame.
func (r *Renderer) rasterize(view ViewState, width, height int, proj projection) [][]cellAccum {
	grid := make([][]cellAccum, height)
	for y := range grid {
		grid[y] = make([]cellAccum, width)
	}

	light := lightDay
	if view.Night {
		light = lightNight
	}
	detail := clampDetail(view.Detail)

	for cy := 0; cy < height; cy++ {
		for cx := 0; cx < width; cx++ {
			acc := &grid[cy][cx]
			for bit := 0; bit < 8; bit++ {
				col, row := dotPos(bit)
				for k := 0; k < detail; k++ {
					f := (float64(k) + 0.5) / float64(detail)
					px := float64(cx) + (float64(col)+f)/2
					py := float64(cy) + (float64(row)+f)/4
					r.sample(acc, view, proj, light, px, py, dotBit(col, row))
				}
			}
		}
	}
	return grid
}

// sample processes one sub-pixel probe. Probes outside the disc or facing
// away contribute nothing; numerical domain violations are clamped, never
// surfaced.
func (r *Renderer) sample(acc *cellAccum, view ViewState, proj projection, light Vec3, px, py float64, bit uint8) {
	nx, ny := proj.ndc(px, py)
	r2 := nx*nx + ny*ny
	if r2 > 1 {
		return
	}
	nz := 1 - r2
	if nz < 0 {
		nz = 0
	}
	// Positive root: the front hemisphere. The far side is never sampled,
	// which is the whole back-face cull.
	viewPt := Vec3{X: nx, Y: math.Sqrt(nz), Z: ny}
	material := viewPt.RotatePolar(-view.Rotation)
	lat, lon := material.LatLon()

	intensity := viewPt.Dot(light)
	if intensity < 0 {
		intensity = 0
	}
	if view.Night {
		intensity -= nightDimming
		if intensity < 0 {
			intensity = 0
		}
	}

	switch {
	case view.PolarIce && IsPolar(lat):
		acc.polar = true
		acc.landMask |= bit
		acc.landSum += intensity
		acc.landN++
	case r.Land != nil && r.Land.IsLand(lat, lon):
		acc.landMask |= bit
		acc.landSum += intensity
		acc.landN++
	default:
		acc.oceanMask |= bit
		acc.oceanSum += intensity
		acc.oceanN++
		if view.OceanSpecular && intensity > specularThreshold {
			dx := nx - specularCenterX
			dy := ny - specularCenterY
			if dx*dx+dy*dy <= specularRadius*specularRadius {
				acc.specular = true
			}
		}
	}
}
