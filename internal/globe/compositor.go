package globe

import (
	"math"
	"strings"
)

// Cell is one resolved character-grid position.
type Cell struct {
	Glyph   rune
	Color   RGB
	Colored bool
}

// Frame is a fully composited W x H grid. It is rebuilt from scratch on
// every render; nothing is cached across frames.
type Frame struct {
	Width, Height int
	cells         [][]Cell
}

// Cell returns the resolved cell at (x, y).
func (f *Frame) Cell(x, y int) Cell {
	return f.cells[y][x]
}

// String renders the frame as Height lines. Every non-blank cell is
// wrapped in a truecolor set/reset escape pair; stripped of escapes each
// line is exactly Width code points.
func (f *Frame) String() string {
	var sb strings.Builder
	for y := 0; y < f.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < f.Width; x++ {
			c := f.cells[y][x]
			if c.Colored {
				sb.WriteString(c.Color.escape())
				sb.WriteRune(c.Glyph)
				sb.WriteString(colorReset)
			} else {
				sb.WriteRune(c.Glyph)
			}
		}
	}
	return sb.String()
}

// Render produces one frame. The land index is read-only, so concurrent
// renders from the same Renderer are safe as long as each call gets its
// own ViewState value.
func (r *Renderer) Render(view ViewState, width, height int) *Frame {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	proj := r.project(width, height)
	grid := r.rasterize(view, width, height, proj)

	frame := &Frame{Width: width, Height: height, cells: make([][]Cell, height)}
	for y := 0; y < height; y++ {
		frame.cells[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			frame.cells[y][x] = r.compose(view, &grid[y][x])
		}
	}

	r.overlayCityLights(view, proj, frame)
	r.overlayAtmosphere(view, proj, frame)
	return frame
}

// compose resolves one cell from its accumulators. Land wins over ocean
// when both channels collected samples; a cell with neither stays blank
// and remains eligible for the atmosphere pass.
func (r *Renderer) compose(view ViewState, acc *cellAccum) Cell {
	switch {
	case acc.landMask != 0:
		avg := acc.landSum / float64(acc.landN)
		color := r.landColor(view, acc, avg)
		return Cell{Glyph: rune(brailleBase | int(acc.landMask)), Color: color, Colored: true}
	case acc.oceanMask != 0:
		avg := acc.oceanSum / float64(acc.oceanN)
		color := r.Palette.Ocean[band(avg)]
		if acc.specular {
			color = r.Palette.Specular
		}
		return Cell{Glyph: rune(brailleBase | int(acc.oceanMask)), Color: color, Colored: true}
	default:
		return Cell{Glyph: ' '}
	}
}

func (r *Renderer) landColor(view ViewState, acc *cellAccum, avg float64) RGB {
	if acc.polar && view.PolarIce {
		return r.Palette.Ice
	}
	if view.Night {
		return r.Palette.LandNight[band(avg)]
	}
	return r.Palette.LandDay[band(avg)]
}

// City-light overlay constants: minimum view-frame depth for a city to be
// visible at all, and the local light level above which it is considered
// still sunlit.
const (
	cityDepthMin    = 0.15
	citySunlitLevel = 0.3
)

// overlayCityLights lights one whole cell per visible night-side city.
// The full 8-dot pattern is force-set regardless of the cell's prior
// content; sub-pixel placement is deliberately not attempted.
func (r *Renderer) overlayCityLights(view ViewState, proj projection, frame *Frame) {
	if !view.Night || !view.CityLights {
		return
	}
	for _, city := range r.Cities {
		viewPt := ToCartesian(city.Lat, city.Lon).RotatePolar(view.Rotation)
		if viewPt.Y < cityDepthMin {
			continue
		}
		if viewPt.Dot(lightNight) > citySunlitLevel {
			continue
		}
		px := proj.centerX + viewPt.X*proj.radiusX
		py := proj.centerY - viewPt.Z*proj.radiusY
		cx := int(math.Floor(px))
		cy := int(math.Floor(py))
		if cx < 0 || cx >= frame.Width || cy < 0 || cy >= frame.Height {
			continue
		}
		frame.cells[cy][cx] = Cell{
			Glyph:   rune(brailleBase | 0xFF),
			Color:   r.Palette.CityLight,
			Colored: true,
		}
	}
}

// Atmospheric glow band just outside the unit disc, densest at the limb.
const (
	atmosphereOuter = 1.15
	atmosphereMid   = 1.10
	atmosphereInner = 1.05
)

var glowMasks = [3]uint8{0x02, 0x12, 0x36} // 1, 2 and 4 dots

// overlayAtmosphere fills cells still blank after the base and city
// passes. Cells whose center radius falls outside the band stay blank.
func (r *Renderer) overlayAtmosphere(view ViewState, proj projection, frame *Frame) {
	if !view.Atmosphere {
		return
	}
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			if frame.cells[y][x].Glyph != ' ' {
				continue
			}
			nx, ny := proj.ndc(float64(x)+0.5, float64(y)+0.5)
			rad := math.Hypot(nx, ny)
			if rad <= 1 || rad > atmosphereOuter {
				continue
			}
			var mask uint8
			switch {
			case rad > atmosphereMid:
				mask = glowMasks[0]
			case rad > atmosphereInner:
				mask = glowMasks[1]
			default:
				mask = glowMasks[2]
			}
			frame.cells[y][x] = Cell{
				Glyph:   rune(brailleBase | int(mask)),
				Color:   r.Palette.Atmosphere,
				Colored: true,
			}
		}
	}
}
