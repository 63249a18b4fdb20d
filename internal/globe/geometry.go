package globe

import "math"

// Vec3 is a point on the unit sphere. X points right on screen, Y toward
// the viewer, Z along the spin axis (north up). A point is on the visible
// hemisphere when Y > 0.
type Vec3 struct {
	X, Y, Z float64
}

// ToCartesian converts latitude/longitude in degrees to a unit vector.
// Longitude 0 faces the viewer when the rotation angle is zero.
func ToCartesian(latDeg, lonDeg float64) Vec3 {
	lat := latDeg * math.Pi / 180
	lon := lonDeg * math.Pi / 180
	return Vec3{
		X: math.Cos(lat) * math.Sin(lon),
		Y: math.Cos(lat) * math.Cos(lon),
		Z: math.Sin(lat),
	}
}

// LatLon recovers latitude/longitude in degrees. The arcsine argument is
// clamped so accumulated floating error can never take it out of domain.
func (v Vec3) LatLon() (latDeg, lonDeg float64) {
	z := v.Z
	if z > 1 {
		z = 1
	}
	if z < -1 {
		z = -1
	}
	latDeg = math.Asin(z) * 180 / math.Pi
	lonDeg = math.Atan2(v.X, v.Y) * 180 / math.Pi
	return latDeg, lonDeg
}

// RotatePolar rotates the point by theta radians around the spin axis.
// The rasterizer applies -theta to map a view-space sample back into the
// sphere's material frame; overlays apply +theta to bring material-frame
// coordinates into view space.
func (v Vec3) RotatePolar(theta float64) Vec3 {
	cos := math.Cos(theta)
	sin := math.Sin(theta)
	return Vec3{
		X: cos*v.X - sin*v.Y,
		Y: sin*v.X + cos*v.Y,
		Z: v.Z,
	}
}

// Dot returns the dot product with w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// normalizeLon wraps any longitude into (-180, 180].
func normalizeLon(lon float64) float64 {
	lon = math.Mod(lon, 360)
	if lon > 180 {
		lon -= 360
	} else if lon <= -180 {
		lon += 360
	}
	return lon
}
