package globe

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color carried through the frame. The viewer maps it onto
// tcell colors; Frame.String emits it as a truecolor escape.
type RGB struct {
	R, G, B uint8
}

func (c RGB) escape() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

const colorReset = "\x1b[0m"

// Palette holds the five-band shading ramps plus the fixed overlay colors.
// Bands run dark to bright; band selection is floor(intensity*5) clamped.
type Palette struct {
	LandDay    [5]RGB
	LandNight  [5]RGB
	Ocean      [5]RGB
	Ice        RGB
	Specular   RGB
	Atmosphere RGB
	CityLight  RGB
}

// ramp blends between two anchor colors in Lab space, which keeps the
// perceived brightness steps even across the five bands.
func ramp(dark, bright string) [5]RGB {
	var out [5]RGB
	d, err := colorful.Hex(dark)
	if err != nil {
		panic(err)
	}
	b, err := colorful.Hex(bright)
	if err != nil {
		panic(err)
	}
	for i := 0; i < 5; i++ {
		t := float64(i) / 4
		c := d.BlendLab(b, t).Clamped()
		r, g, bl := c.RGB255()
		out[i] = RGB{r, g, bl}
	}
	return out
}

func hexRGB(hex string) RGB {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}
}

// DefaultPalette mirrors the classic day-globe look: green land by day,
// amber by night, deep blue oceans, white ice, cyan limb, yellow cities.
func DefaultPalette() Palette {
	return Palette{
		LandDay:    ramp("#005f00", "#00ff00"),
		LandNight:  ramp("#5f5f00", "#d7af00"),
		Ocean:      ramp("#00005f", "#0087d7"),
		Ice:        hexRGB("#ffffff"),
		Specular:   hexRGB("#5fd7ff"),
		Atmosphere: hexRGB("#00afff"),
		CityLight:  hexRGB("#ffff00"),
	}
}

// band maps an average intensity onto a ramp index.
func band(intensity float64) int {
	i := int(intensity * 5)
	if i < 0 {
		i = 0
	}
	if i > 4 {
		i = 4
	}
	return i
}
