package globe

// ViewState is the full per-frame input: rotation, lighting mode, feature
// toggles and sampling detail. It is owned and mutated only by the caller
// between frames; the renderer treats it as a read-only value.
type ViewState struct {
	Rotation float64 // radians around the spin axis, interpreted mod 2pi
	Night    bool

	Atmosphere    bool
	CityLights    bool
	OceanSpecular bool
	PolarIce      bool

	Detail int // 1..4 sub-sample density per Braille slot
}

// DefaultViewState enables every feature at full detail in day mode.
func DefaultViewState() ViewState {
	return ViewState{
		Atmosphere:    true,
		CityLights:    true,
		OceanSpecular: true,
		PolarIce:      true,
		Detail:        4,
	}
}

// clampDetail keeps the per-slot sample count in the supported 1..4 range.
func clampDetail(d int) int {
	if d < 1 {
		return 1
	}
	if d > 4 {
		return 4
	}
	return d
}
