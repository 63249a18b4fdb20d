package globe

import (
	"log"
	"math"
	"sort"
)

// GeoPoint is a latitude/longitude pair in degrees. Longitude may be any
// real number; it is wrapped into (-180, 180] at query time.
type GeoPoint struct {
	Lat, Lon float64
}

// Boundary is a named closed polygon of at least three points. The last
// point implicitly connects back to the first.
type Boundary struct {
	Name   string
	Points []GeoPoint
}

// Polar ice cap extents. The southern cap reaches further toward the
// equator than the northern one.
const (
	northIceLat = 70.0
	southIceLat = -60.0
)

const (
	latCells = 181 // -90..90 inclusive
	lonCells = 360 // -179..180, wrapping
)

// LandIndex is a dense 1-degree land/ocean classifier built once from a
// set of boundary polygons and never mutated afterwards. The dense grid
// trades ~64KB for branch-free lookups on the hot rasterizer path.
type LandIndex struct {
	cells [latCells][lonCells]bool
}

// BuildReport summarizes index construction for the caller. Skipped counts
// malformed boundaries (fewer than three points); they degrade coverage
// but never fail the build.
type BuildReport struct {
	Boundaries int
	Skipped    int
	LandCells  int
}

// BuildLandIndex rasterizes every boundary into the index. Construction is
// deterministic for a given input order. Each polygon gets a scanline
// even-odd fill at integer latitudes plus an edge trace that marks every
// coastline cell and its eight neighbors, so thin islands survive the
// 1-degree quantization. The logger may be nil.
func BuildLandIndex(boundaries []Boundary, logger *log.Logger) (*LandIndex, BuildReport) {
	idx := &LandIndex{}
	report := BuildReport{Boundaries: len(boundaries)}

	for _, b := range boundaries {
		if len(b.Points) < 3 {
			report.Skipped++
			if logger != nil {
				logger.Printf("land index: skipping malformed boundary %q (%d points)", b.Name, len(b.Points))
			}
			continue
		}
		idx.fillBoundary(b)
		idx.traceEdges(b)
	}

	for i := range idx.cells {
		for j := range idx.cells[i] {
			if idx.cells[i][j] {
				report.LandCells++
			}
		}
	}
	if logger != nil {
		logger.Printf("land index: %d boundaries, %d skipped, %d land cells",
			report.Boundaries, report.Skipped, report.LandCells)
	}
	return idx, report
}

// fillBoundary runs an even-odd scanline fill at every integer latitude
// inside the polygon's bounding box.
func (idx *LandIndex) fillBoundary(b Boundary) {
	minLat, maxLat := b.Points[0].Lat, b.Points[0].Lat
	for _, p := range b.Points[1:] {
		minLat = math.Min(minLat, p.Lat)
		maxLat = math.Max(maxLat, p.Lat)
	}
	lo := int(math.Floor(minLat)) - 1
	hi := int(math.Ceil(maxLat)) + 1
	if lo < -90 {
		lo = -90
	}
	if hi > 90 {
		hi = 90
	}

	n := len(b.Points)
	for lat := lo; lat <= hi; lat++ {
		y := float64(lat)
		var crossings []float64
		for i := 0; i < n; i++ {
			p1 := b.Points[i]
			p2 := b.Points[(i+1)%n]
			y1, y2 := p1.Lat, p2.Lat
			if y1 == y2 {
				continue // horizontal edge, zero-length latitude interval
			}
			// Half-open interval so a vertex exactly on the scanline is
			// counted by only one of its two edges.
			if y < math.Min(y1, y2) || y >= math.Max(y1, y2) {
				continue
			}
			t := (y - y1) / (y2 - y1)
			crossings = append(crossings, p1.Lon+t*(p2.Lon-p1.Lon))
		}
		sort.Float64s(crossings)
		for i := 0; i+1 < len(crossings); i += 2 {
			start := int(math.Ceil(crossings[i]))
			end := int(math.Floor(crossings[i+1]))
			for lon := start; lon <= end; lon++ {
				idx.mark(lat, lon)
			}
		}
	}
}

// traceEdges walks every edge at integer steps proportional to its length
// and marks each interpolated cell plus its eight neighbors.
func (idx *LandIndex) traceEdges(b Boundary) {
	n := len(b.Points)
	for i := 0; i < n; i++ {
		p1 := b.Points[i]
		p2 := b.Points[(i+1)%n]
		steps := int(math.Hypot(p2.Lat-p1.Lat, p2.Lon-p1.Lon)) + 1
		for s := 0; s <= steps; s++ {
			t := float64(s) / float64(steps)
			lat := int(math.Round(p1.Lat + t*(p2.Lat-p1.Lat)))
			lon := int(math.Round(p1.Lon + t*(p2.Lon-p1.Lon)))
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					idx.mark(lat+dy, lon+dx)
				}
			}
		}
	}
}

func (idx *LandIndex) mark(lat, lon int) {
	if lat < -90 || lat > 90 {
		return
	}
	idx.cells[lat+90][lonIndex(lon)] = true
}

// lonIndex maps any integer longitude onto the wrapping cell range, with
// -180 and 180 sharing a cell.
func lonIndex(lon int) int {
	i := (lon + 179) % 360
	if i < 0 {
		i += 360
	}
	return i
}

// IsLand reports whether the 1-degree cell containing the coordinate was
// marked during construction. Longitude wraps, so lon and lon+360 always
// agree.
func (idx *LandIndex) IsLand(lat, lon float64) bool {
	la := int(math.Round(lat))
	if la < -90 || la > 90 {
		return false
	}
	lo := int(math.Round(normalizeLon(lon)))
	return idx.cells[la+90][lonIndex(lo)]
}

// IsPolar reports whether the latitude falls inside one of the ice caps.
func IsPolar(lat float64) bool {
	return lat > northIceLat || lat < southIceLat
}
