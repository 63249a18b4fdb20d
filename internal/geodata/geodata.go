// Package geodata carries the built-in boundary rings and city table fed
// to the renderer. The rings are deliberately coarse closed polygons at
// roughly continental resolution; the 1-degree land index plus its
// 8-neighbor coastline trace absorbs the imprecision.
package geodata

import "braille-planet/internal/globe"

func ring(name string, pts ...[2]float64) globe.Boundary {
	points := make([]globe.GeoPoint, len(pts))
	for i, p := range pts {
		points[i] = globe.GeoPoint{Lat: p[0], Lon: p[1]}
	}
	return globe.Boundary{Name: name, Points: points}
}

// Boundaries returns the full built-in boundary set. The slice is freshly
// allocated per call; callers may reorder or filter it freely.
func Boundaries() []globe.Boundary {
	return []globe.Boundary{
		ring("north-america",
			[2]float64{60, -165}, [2]float64{68, -166}, [2]float64{71, -156},
			[2]float64{69, -130}, [2]float64{68, -110}, [2]float64{66, -95},
			[2]float64{64, -78}, [2]float64{58, -68}, [2]float64{52, -56},
			[2]float64{47, -60}, [2]float64{45, -66}, [2]float64{40, -74},
			[2]float64{35, -76}, [2]float64{31, -81}, [2]float64{25, -80},
			[2]float64{29, -84}, [2]float64{30, -90}, [2]float64{26, -97},
			[2]float64{21, -97}, [2]float64{18, -95}, [2]float64{16, -100},
			[2]float64{20, -105}, [2]float64{23, -110}, [2]float64{28, -114},
			[2]float64{33, -118}, [2]float64{37, -122}, [2]float64{43, -124},
			[2]float64{48, -125}, [2]float64{55, -132}, [2]float64{59, -140},
			[2]float64{59, -152}),
		ring("central-america",
			[2]float64{17, -95}, [2]float64{15, -92}, [2]float64{12, -87},
			[2]float64{9, -83}, [2]float64{8, -80}, [2]float64{9, -78},
			[2]float64{11, -84}, [2]float64{14, -91}, [2]float64{16, -94}),
		ring("greenland",
			[2]float64{83, -35}, [2]float64{81, -25}, [2]float64{76, -20},
			[2]float64{70, -22}, [2]float64{60, -43}, [2]float64{65, -52},
			[2]float64{70, -54}, [2]float64{76, -60}, [2]float64{78, -68},
			[2]float64{82, -55}),
		ring("south-america",
			[2]float64{12, -71}, [2]float64{10, -62}, [2]float64{5, -52},
			[2]float64{0, -50}, [2]float64{-5, -35}, [2]float64{-13, -38},
			[2]float64{-23, -41}, [2]float64{-34, -53}, [2]float64{-39, -62},
			[2]float64{-47, -66}, [2]float64{-54, -68}, [2]float64{-53, -72},
			[2]float64{-46, -74}, [2]float64{-37, -73}, [2]float64{-30, -71},
			[2]float64{-18, -70}, [2]float64{-12, -77}, [2]float64{-4, -81},
			[2]float64{1, -79}, [2]float64{7, -78}, [2]float64{9, -76}),
		ring("africa",
			[2]float64{37, 10}, [2]float64{33, 12}, [2]float64{31, 20},
			[2]float64{31, 32}, [2]float64{27, 34}, [2]float64{15, 39},
			[2]float64{11, 43}, [2]float64{11, 51}, [2]float64{2, 46},
			[2]float64{-1, 41}, [2]float64{-10, 40}, [2]float64{-15, 40},
			[2]float64{-26, 33}, [2]float64{-34, 26}, [2]float64{-34, 19},
			[2]float64{-29, 16}, [2]float64{-23, 14}, [2]float64{-17, 12},
			[2]float64{-8, 13}, [2]float64{-1, 9}, [2]float64{4, 6},
			[2]float64{5, -7}, [2]float64{7, -13}, [2]float64{12, -17},
			[2]float64{21, -17}, [2]float64{28, -13}, [2]float64{31, -10},
			[2]float64{35, -6}, [2]float64{36, 0}),
		ring("eurasia",
			[2]float64{36, -9}, [2]float64{43, -9}, [2]float64{44, -1},
			[2]float64{48, -5}, [2]float64{51, 2}, [2]float64{53, 9},
			[2]float64{58, 7}, [2]float64{62, 5}, [2]float64{68, 14},
			[2]float64{71, 26}, [2]float64{68, 41}, [2]float64{70, 70},
			[2]float64{73, 80}, [2]float64{76, 100}, [2]float64{73, 113},
			[2]float64{71, 130}, [2]float64{69, 160}, [2]float64{66, 178},
			[2]float64{61, 163}, [2]float64{56, 162}, [2]float64{51, 157},
			[2]float64{59, 153}, [2]float64{54, 135}, [2]float64{43, 132},
			[2]float64{39, 128}, [2]float64{38, 118}, [2]float64{34, 120},
			[2]float64{30, 122}, [2]float64{24, 118}, [2]float64{21, 110},
			[2]float64{16, 108}, [2]float64{10, 107}, [2]float64{9, 105},
			[2]float64{13, 100}, [2]float64{7, 100}, [2]float64{1, 104},
			[2]float64{8, 98}, [2]float64{14, 98}, [2]float64{16, 94},
			[2]float64{22, 91}, [2]float64{21, 88}, [2]float64{16, 82},
			[2]float64{10, 80}, [2]float64{8, 77}, [2]float64{15, 74},
			[2]float64{21, 70}, [2]float64{24, 67}, [2]float64{25, 61},
			[2]float64{23, 59}, [2]float64{17, 55}, [2]float64{13, 45},
			[2]float64{16, 42}, [2]float64{21, 39}, [2]float64{28, 35},
			[2]float64{31, 34}, [2]float64{36, 36}, [2]float64{37, 31},
			[2]float64{38, 27}, [2]float64{40, 23}, [2]float64{40, 19},
			[2]float64{41, 17}, [2]float64{40, 18}, [2]float64{38, 16},
			[2]float64{40, 15}, [2]float64{42, 12}, [2]float64{44, 9},
			[2]float64{43, 7}, [2]float64{42, 3}, [2]float64{40, 0},
			[2]float64{37, -2}, [2]float64{36, -5}),
		ring("britain",
			[2]float64{58, -5}, [2]float64{57, -2}, [2]float64{53, 0},
			[2]float64{51, 1}, [2]float64{50, -5}, [2]float64{53, -4},
			[2]float64{56, -6}),
		ring("ireland",
			[2]float64{55, -7}, [2]float64{52, -6}, [2]float64{51, -10},
			[2]float64{54, -10}),
		ring("iceland",
			[2]float64{66, -22}, [2]float64{66, -15}, [2]float64{64, -14},
			[2]float64{63, -20}, [2]float64{65, -23}),
		ring("cuba",
			[2]float64{23, -83}, [2]float64{22, -78}, [2]float64{20, -74},
			[2]float64{21, -77}, [2]float64{22, -81}, [2]float64{23, -84}),
		ring("hispaniola",
			[2]float64{20, -73}, [2]float64{19, -69}, [2]float64{18, -72},
			[2]float64{18, -74}),
		ring("japan",
			[2]float64{45, 142}, [2]float64{43, 145}, [2]float64{38, 141},
			[2]float64{35, 140}, [2]float64{33, 135}, [2]float64{31, 131},
			[2]float64{34, 131}, [2]float64{37, 137}, [2]float64{41, 140},
			[2]float64{44, 140}),
		ring("sri-lanka",
			[2]float64{9, 80}, [2]float64{7, 82}, [2]float64{6, 81},
			[2]float64{7, 80}),
		ring("sumatra",
			[2]float64{5, 95}, [2]float64{0, 100}, [2]float64{-4, 104},
			[2]float64{-6, 106}, [2]float64{-3, 102}, [2]float64{2, 97}),
		ring("java",
			[2]float64{-6, 106}, [2]float64{-7, 112}, [2]float64{-8, 115},
			[2]float64{-8, 110}, [2]float64{-7, 106}),
		ring("borneo",
			[2]float64{7, 117}, [2]float64{2, 118}, [2]float64{-3, 116},
			[2]float64{-4, 112}, [2]float64{-1, 109}, [2]float64{3, 109},
			[2]float64{6, 114}),
		ring("new-guinea",
			[2]float64{-1, 131}, [2]float64{-2, 137}, [2]float64{-4, 141},
			[2]float64{-6, 147}, [2]float64{-9, 149}, [2]float64{-9, 143},
			[2]float64{-7, 139}, [2]float64{-5, 135}, [2]float64{-2, 132}),
		ring("luzon",
			[2]float64{18, 121}, [2]float64{16, 122}, [2]float64{13, 124},
			[2]float64{14, 120}, [2]float64{17, 120}),
		ring("australia",
			[2]float64{-12, 131}, [2]float64{-11, 132}, [2]float64{-12, 136},
			[2]float64{-17, 139}, [2]float64{-14, 141}, [2]float64{-11, 142},
			[2]float64{-16, 146}, [2]float64{-20, 149}, [2]float64{-25, 153},
			[2]float64{-32, 153}, [2]float64{-37, 150}, [2]float64{-39, 146},
			[2]float64{-38, 141}, [2]float64{-35, 138}, [2]float64{-33, 129},
			[2]float64{-34, 124}, [2]float64{-34, 119}, [2]float64{-31, 115},
			[2]float64{-26, 114}, [2]float64{-22, 114}, [2]float64{-18, 122},
			[2]float64{-14, 127}),
		ring("tasmania",
			[2]float64{-41, 145}, [2]float64{-41, 148}, [2]float64{-43, 148},
			[2]float64{-43, 146}),
		ring("new-zealand-north",
			[2]float64{-34, 173}, [2]float64{-37, 176}, [2]float64{-39, 177},
			[2]float64{-41, 175}, [2]float64{-39, 174}, [2]float64{-36, 174}),
		ring("new-zealand-south",
			[2]float64{-41, 174}, [2]float64{-42, 173}, [2]float64{-44, 171},
			[2]float64{-46, 170}, [2]float64{-46, 167}, [2]float64{-43, 170},
			[2]float64{-41, 172}),
		ring("madagascar",
			[2]float64{-12, 49}, [2]float64{-16, 50}, [2]float64{-22, 48},
			[2]float64{-25, 47}, [2]float64{-25, 45}, [2]float64{-20, 44},
			[2]float64{-16, 44}, [2]float64{-13, 48}),
		ring("antarctica",
			[2]float64{-66, -179}, [2]float64{-66, -120}, [2]float64{-66, -60},
			[2]float64{-66, 0}, [2]float64{-66, 60}, [2]float64{-66, 120},
			[2]float64{-66, 179}, [2]float64{-89, 179}, [2]float64{-89, 60},
			[2]float64{-89, -60}, [2]float64{-89, -179}),
	}
}

// Cities returns the night-light city table, roughly the largest metro
// areas per region.
func Cities() []globe.GeoPoint {
	return []globe.GeoPoint{
		{Lat: 40.7, Lon: -74.0},   // New York
		{Lat: 34.0, Lon: -118.2},  // Los Angeles
		{Lat: 41.9, Lon: -87.6},   // Chicago
		{Lat: 29.8, Lon: -95.4},   // Houston
		{Lat: 33.4, Lon: -112.1},  // Phoenix
		{Lat: 39.7, Lon: -105.0},  // Denver
		{Lat: 37.8, Lon: -122.4},  // San Francisco
		{Lat: 47.6, Lon: -122.3},  // Seattle
		{Lat: 25.8, Lon: -80.2},   // Miami
		{Lat: 51.5, Lon: -0.1},    // London
		{Lat: 48.9, Lon: 2.4},     // Paris
		{Lat: 52.5, Lon: 13.4},    // Berlin
		{Lat: 41.9, Lon: 12.5},    // Rome
		{Lat: 40.4, Lon: -3.7},    // Madrid
		{Lat: 55.8, Lon: 37.6},    // Moscow
		{Lat: 59.9, Lon: 30.3},    // St Petersburg
		{Lat: 35.7, Lon: 51.4},    // Tehran
		{Lat: 30.0, Lon: 31.2},    // Cairo
		{Lat: -33.9, Lon: 18.4},   // Cape Town
		{Lat: -26.2, Lon: 28.0},   // Johannesburg
		{Lat: 19.4, Lon: -99.1},   // Mexico City
		{Lat: -23.5, Lon: -46.6},  // Sao Paulo
		{Lat: -34.6, Lon: -58.4},  // Buenos Aires
		{Lat: -22.9, Lon: -43.2},  // Rio de Janeiro
		{Lat: 28.6, Lon: 77.2},    // Delhi
		{Lat: 19.1, Lon: 72.9},    // Mumbai
		{Lat: 13.1, Lon: 80.3},    // Chennai
		{Lat: 22.6, Lon: 88.4},    // Kolkata
		{Lat: 31.2, Lon: 121.5},   // Shanghai
		{Lat: 39.9, Lon: 116.4},   // Beijing
		{Lat: 23.1, Lon: 113.3},   // Guangzhou
		{Lat: 22.3, Lon: 114.2},   // Hong Kong
		{Lat: 35.7, Lon: 139.7},   // Tokyo
		{Lat: 34.7, Lon: 135.5},   // Osaka
		{Lat: 37.6, Lon: 126.9},   // Seoul
		{Lat: -33.9, Lon: 151.2},  // Sydney
		{Lat: -37.8, Lon: 144.9},  // Melbourne
		{Lat: -27.5, Lon: 153.0},  // Brisbane
		{Lat: 1.4, Lon: 103.8},    // Singapore
		{Lat: 13.8, Lon: 100.5},   // Bangkok
		{Lat: -6.2, Lon: 106.8},   // Jakarta
		{Lat: 14.6, Lon: 121.0},   // Manila
	}
}
