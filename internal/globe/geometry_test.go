package globe

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestToCartesianRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
	}{
		{"origin", 0, 0},
		{"greenwich-north", 51.5, 0},
		{"date-line-west", 10, -180},
		{"eastern", 35.7, 139.7},
		{"western", 40.7, -74.0},
		{"southern", -33.9, 151.2},
		{"near-north-pole", 89.5, 45},
		{"near-south-pole", -89.5, -120},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon := ToCartesian(tt.lat, tt.lon).LatLon()
			if math.Abs(lat-tt.lat) > 1e-6 {
				t.Errorf("lat = %v, want %v", lat, tt.lat)
			}
			dlon := math.Abs(normalizeLon(lon - tt.lon))
			if dlon > 1e-6 && math.Abs(dlon-360) > 1e-6 {
				t.Errorf("lon = %v, want %v", lon, tt.lon)
			}
		})
	}
}

func TestToCartesianRoundTripGrid(t *testing.T) {
	for lat := -85.0; lat <= 85.0; lat += 17 {
		for lon := -180.0; lon < 180.0; lon += 23 {
			gotLat, gotLon := ToCartesian(lat, lon).LatLon()
			if math.Abs(gotLat-lat) > 1e-6 || math.Abs(normalizeLon(gotLon-lon)) > 1e-6 {
				t.Fatalf("round trip (%v,%v) = (%v,%v)", lat, lon, gotLat, gotLon)
			}
		}
	}
}

func TestLatLonClampsArcsine(t *testing.T) {
	// Accumulated floating error can push Z marginally out of [-1,1];
	// LatLon must clamp instead of returning NaN.
	lat, _ := Vec3{Z: 1.0000000002}.LatLon()
	if math.IsNaN(lat) || lat != 90 {
		t.Errorf("lat = %v, want 90", lat)
	}
	lat, _ = Vec3{Z: -1.0000000002}.LatLon()
	if math.IsNaN(lat) || lat != -90 {
		t.Errorf("lat = %v, want -90", lat)
	}
}

func TestRotatePolarInverse(t *testing.T) {
	v := ToCartesian(37.5, -122.4)
	for _, theta := range []float64{0, 0.1, math.Pi / 3, math.Pi, 5.5, -2.25} {
		got := v.RotatePolar(theta).RotatePolar(-theta)
		if math.Abs(got.X-v.X) > epsilon || math.Abs(got.Y-v.Y) > epsilon || math.Abs(got.Z-v.Z) > epsilon {
			t.Errorf("theta %v: rotate/unrotate drifted: %+v vs %+v", theta, got, v)
		}
	}
}

func TestRotatePolarPreservesLatitude(t *testing.T) {
	v := ToCartesian(55, 30)
	rotated := v.RotatePolar(1.7)
	lat, _ := rotated.LatLon()
	if math.Abs(lat-55) > 1e-6 {
		t.Errorf("lat after polar rotation = %v, want 55", lat)
	}
}

func TestNormalizeLon(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{181, -179},
		{-190, 170},
		{360, 0},
		{540, 180},
		{-720, 0},
	}
	for _, tt := range tests {
		if got := normalizeLon(tt.in); math.Abs(got-tt.want) > epsilon {
			t.Errorf("normalizeLon(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
