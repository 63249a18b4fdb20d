package globe

import (
	"math"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestRenderOutputShape(t *testing.T) {
	idx, _ := BuildLandIndex([]Boundary{square("patch", -20, -30, 20, 30)}, nil)
	r := NewRenderer(idx, nil)

	tests := []struct {
		name          string
		width, height int
		view          ViewState
	}{
		{"small-day", 20, 10, ViewState{Detail: 1}},
		{"typical", 80, 40, DefaultViewState()},
		{"night", 100, 30, ViewState{Night: true, CityLights: true, Detail: 2}},
		{"narrow", 5, 3, ViewState{Detail: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Render(tt.view, tt.width, tt.height).String()
			lines := strings.Split(out, "\n")
			if len(lines) != tt.height {
				t.Fatalf("got %d lines, want %d", len(lines), tt.height)
			}
			for i, line := range lines {
				plain := ansiEscape.ReplaceAllString(line, "")
				if n := utf8.RuneCountInString(plain); n != tt.width {
					t.Errorf("line %d: %d code points after stripping escapes, want %d", i, n, tt.width)
				}
				for _, ch := range plain {
					if ch != ' ' && (ch < brailleBase || ch > brailleBase+0xFF) {
						t.Errorf("line %d: unexpected glyph %q", i, ch)
					}
				}
			}
		})
	}
}

func TestAtmosphereOnlyTouchesBlankCells(t *testing.T) {
	idx, _ := BuildLandIndex([]Boundary{square("patch", -10, -10, 10, 10)}, nil)
	r := NewRenderer(idx, nil)

	base := ViewState{Detail: 2, OceanSpecular: true, PolarIce: true}
	with := base
	with.Atmosphere = true

	off := r.Render(base, 80, 40)
	on := r.Render(with, 80, 40)

	changed := 0
	for y := 0; y < off.Height; y++ {
		for x := 0; x < off.Width; x++ {
			a, b := off.Cell(x, y), on.Cell(x, y)
			if a == b {
				continue
			}
			changed++
			if a.Glyph != ' ' {
				t.Fatalf("cell (%d,%d) was %q before the atmosphere pass and still changed", x, y, a.Glyph)
			}
			if b.Color != r.Palette.Atmosphere {
				t.Fatalf("cell (%d,%d) changed to a non-atmosphere color", x, y)
			}
		}
	}
	if changed == 0 {
		t.Error("atmosphere toggle changed nothing; glow band missing")
	}
}

func TestCityLightOverwritesCell(t *testing.T) {
	idx, _ := BuildLandIndex([]Boundary{square("patch", -5, -5, 5, 5)}, nil)
	r := NewRenderer(idx, []GeoPoint{{Lat: 0, Lon: 0}})

	frame := r.Render(ViewState{Night: true, CityLights: true, Detail: 1}, 80, 40)

	// The city projects onto one whole cell: all 8 dots forced, prior land
	// content discarded.
	found := false
	for y := 0; y < frame.Height && !found; y++ {
		for x := 0; x < frame.Width; x++ {
			c := frame.Cell(x, y)
			if c.Colored && c.Color == r.Palette.CityLight {
				if c.Glyph != rune(brailleBase|0xFF) {
					t.Fatalf("city cell glyph = %#x, want full 8-dot pattern", c.Glyph)
				}
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no city-light cell rendered for a front-facing night-side city")
	}
}

func TestCityLightHiddenBehindGlobe(t *testing.T) {
	idx, _ := BuildLandIndex(nil, nil)
	r := NewRenderer(idx, []GeoPoint{{Lat: 0, Lon: 180}})

	frame := r.Render(ViewState{Night: true, CityLights: true, Detail: 1}, 80, 40)
	if hasColor(frame, r.Palette.CityLight) {
		t.Error("city on the far hemisphere rendered a light")
	}
}

func TestCityLightsRequireNightMode(t *testing.T) {
	idx, _ := BuildLandIndex(nil, nil)
	r := NewRenderer(idx, []GeoPoint{{Lat: 0, Lon: 0}})

	frame := r.Render(ViewState{CityLights: true, Detail: 1}, 80, 40)
	if hasColor(frame, r.Palette.CityLight) {
		t.Error("city light rendered in day mode")
	}
}

func TestNightModeUsesNightPalette(t *testing.T) {
	r := landOnlyRenderer(t)
	frame := r.Render(ViewState{Night: true, Detail: 1}, 80, 40)

	cell := frame.Cell(40, 20)
	if !cell.Colored {
		t.Fatal("center cell is blank")
	}
	for _, band := range r.Palette.LandDay {
		if cell.Color == band {
			t.Fatalf("center cell uses day palette color %+v in night mode", cell.Color)
		}
	}
	inNight := false
	for _, band := range r.Palette.LandNight {
		if cell.Color == band {
			inNight = true
		}
	}
	if !inNight {
		t.Errorf("center cell color %+v not in the night land palette", cell.Color)
	}
}

func TestPolarIceOverride(t *testing.T) {
	idx, _ := BuildLandIndex(nil, nil)
	r := NewRenderer(idx, nil)

	with := r.Render(ViewState{Detail: 2, PolarIce: true}, 80, 40)
	if !hasColor(with, r.Palette.Ice) {
		t.Error("no ice cell near the poles with polar ice enabled")
	}

	without := r.Render(ViewState{Detail: 2}, 80, 40)
	if hasColor(without, r.Palette.Ice) {
		t.Error("ice rendered with the feature disabled")
	}
}

func TestLandWinsOverOceanInSharedCell(t *testing.T) {
	// A one-cell-wide land strip guarantees cells whose samples split
	// between land and ocean; those cells must resolve as land.
	idx, _ := BuildLandIndex([]Boundary{square("strip", -2, -2, 2, 2)}, nil)
	r := NewRenderer(idx, nil)
	frame := r.Render(ViewState{Detail: 1}, 80, 40)

	mixed := 0
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			if isLandDayColor(r.Palette, frame.Cell(x, y)) {
				mixed++
			}
		}
	}
	if mixed == 0 {
		t.Error("no land cells rendered for the strip")
	}
}

func TestRotationMovesTerrain(t *testing.T) {
	r := landOnlyRenderer(t)
	a := r.Render(ViewState{Detail: 1}, 80, 40)
	b := r.Render(ViewState{Detail: 1, Rotation: math.Pi / 2}, 80, 40)

	if a.String() == b.String() {
		t.Error("quarter-turn rotation produced an identical frame")
	}
}

func TestFrameIsRecomputedPerCall(t *testing.T) {
	r := landOnlyRenderer(t)
	view := ViewState{Detail: 3, Atmosphere: true, OceanSpecular: true}
	a := r.Render(view, 60, 30)
	b := r.Render(view, 60, 30)
	if a.String() != b.String() {
		t.Error("identical inputs produced different frames")
	}
	if c := r.Render(view, 40, 20); c.Width != 40 || c.Height != 20 {
		t.Errorf("resize not honored: got %dx%d", c.Width, c.Height)
	}
}
