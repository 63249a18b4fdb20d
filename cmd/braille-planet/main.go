package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"net"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/oschwald/geoip2-golang"

	"braille-planet/internal/geodata"
	"braille-planet/internal/globe"
)

var debugLogger *log.Logger

func debugLog(format string, v ...interface{}) {
	if debugLogger != nil {
		debugLogger.Printf(format, v...)
	}
}

// ============================================================================
// CONFIG FILE SUPPORT
// ============================================================================

type Config struct {
	Display struct {
		AspectRatio    float64 `toml:"aspect_ratio"`
		RotationPeriod int     `toml:"rotation_period"`
		RefreshRate    int     `toml:"refresh_rate"`
		Detail         int     `toml:"detail"`
	} `toml:"display"`

	Features struct {
		Atmosphere    bool `toml:"atmosphere"`
		CityLights    bool `toml:"city_lights"`
		OceanSpecular bool `toml:"ocean_specular"`
		PolarIce      bool `toml:"polar_ice"`
	} `toml:"features"`

	GeoIP struct {
		Database string `toml:"database"`
		Markers  string `toml:"markers"`
	} `toml:"geoip"`
}

func LoadConfig(path string) (*Config, error) {
	config := &Config{}
	config.Features.Atmosphere = true
	config.Features.CityLights = true
	config.Features.OceanSpecular = true
	config.Features.PolarIce = true

	if path == "" {
		return config, nil
	}
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}
	return config, nil
}

// ============================================================================
// GEOIP MARKER OVERLAY
// ============================================================================

// loadMarkers resolves a file of IP addresses into coordinates and feeds
// them to the renderer as extra night-light points. Unresolvable lines are
// logged and dropped.
func loadMarkers(dbPath, listPath string) ([]globe.GeoPoint, error) {
	db, err := geoip2.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open geoip database: %w", err)
	}
	defer db.Close()

	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open marker list: %w", err)
	}
	defer file.Close()

	var points []globe.GeoPoint
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ip := net.ParseIP(line)
		if ip == nil {
			debugLog("markers: not an IP address: %q", line)
			continue
		}
		rec, err := db.City(ip)
		if err != nil || (rec.Location.Latitude == 0 && rec.Location.Longitude == 0) {
			debugLog("markers: no location for %s: %v", ip, err)
			continue
		}
		points = append(points, globe.GeoPoint{
			Lat: rec.Location.Latitude,
			Lon: rec.Location.Longitude,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	debugLog("markers: resolved %d points from %s", len(points), listPath)
	return points, nil
}

// ============================================================================
// VIEW CONTROLLER
// ============================================================================

// viewController owns the ViewState between frames. The renderer never
// mutates it; the key-poll goroutine and the main loop coordinate here.
type viewController struct {
	mutex     sync.RWMutex
	view      globe.ViewState
	paused    bool
	spinSpeed float64
}

func newViewController(view globe.ViewState) *viewController {
	return &viewController{view: view, spinSpeed: 1.0}
}

// advance accumulates rotation incrementally so pause toggles and speed
// changes never make the globe jump.
func (vc *viewController) advance(dt, period float64) (globe.ViewState, bool) {
	vc.mutex.Lock()
	defer vc.mutex.Unlock()
	if !vc.paused {
		vc.view.Rotation += (dt / period) * 2 * math.Pi * vc.spinSpeed
	}
	return vc.view, vc.paused
}

func (vc *viewController) update(fn func(*viewController)) {
	vc.mutex.Lock()
	fn(vc)
	vc.mutex.Unlock()
}

// ============================================================================
// TUI
// ============================================================================

func drawFrame(screen tcell.Screen, frame *globe.Frame) {
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			cell := frame.Cell(x, y)
			style := tcell.StyleDefault
			if cell.Colored {
				style = style.Foreground(tcell.NewRGBColor(
					int32(cell.Color.R), int32(cell.Color.G), int32(cell.Color.B)))
			}
			screen.SetContent(x, y, cell.Glyph, nil, style)
		}
	}
}

func statusLine(view globe.ViewState, paused bool) string {
	mode := "Day"
	if view.Night {
		mode = "Night"
	}
	quality := [...]string{"Low", "Medium", "High", "Ultra"}[view.Detail-1]
	var features []string
	if view.Atmosphere {
		features = append(features, "Atmo")
	}
	if view.CityLights && view.Night {
		features = append(features, "Cities")
	}
	if view.OceanSpecular {
		features = append(features, "Specular")
	}
	if view.PolarIce {
		features = append(features, "Ice")
	}
	state := "Playing"
	if paused {
		state = "Paused"
	}
	deg := math.Mod(view.Rotation*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	return fmt.Sprintf(" %s | %s | %s | th=%.0f | %s | n:night a:atmo l:lights s:spec i:ice 1-4:detail space:pause q:quit",
		mode, quality, strings.Join(features, "+"), deg, state)
}

func drawStatus(screen tcell.Screen, width, height int, text string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	y := height - 1
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(text) {
			r = rune(text[x])
		}
		screen.SetContent(x, y, r, nil, style)
	}
}

func pollEvents(screen tcell.Screen, vc *viewController) chan bool {
	quit := make(chan bool, 1)
	go func() {
		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyCtrlC, tcell.KeyEscape:
					quit <- true
					return
				case tcell.KeyLeft:
					vc.update(func(vc *viewController) { vc.view.Rotation -= 0.15 })
				case tcell.KeyRight:
					vc.update(func(vc *viewController) { vc.view.Rotation += 0.15 })
				case tcell.KeyRune:
					switch r := ev.Rune(); r {
					case 'q', 'Q', 'x', 'X':
						quit <- true
						return
					case ' ':
						vc.update(func(vc *viewController) { vc.paused = !vc.paused })
					case 'n', 'N':
						vc.update(func(vc *viewController) { vc.view.Night = !vc.view.Night })
					case 'a', 'A':
						vc.update(func(vc *viewController) { vc.view.Atmosphere = !vc.view.Atmosphere })
					case 'l', 'L':
						vc.update(func(vc *viewController) { vc.view.CityLights = !vc.view.CityLights })
					case 's', 'S':
						vc.update(func(vc *viewController) { vc.view.OceanSpecular = !vc.view.OceanSpecular })
					case 'i', 'I':
						vc.update(func(vc *viewController) { vc.view.PolarIce = !vc.view.PolarIce })
					case '1', '2', '3', '4':
						vc.update(func(vc *viewController) { vc.view.Detail = int(r - '0') })
					case '[':
						vc.update(func(vc *viewController) { vc.spinSpeed = math.Max(0.1, vc.spinSpeed-0.1) })
					case ']':
						vc.update(func(vc *viewController) { vc.spinSpeed = math.Min(5.0, vc.spinSpeed+0.1) })
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()
	return quit
}

// ============================================================================
// ENTRY POINT
// ============================================================================

func showHelp() {
	fmt.Printf(`braille-planet - rotating Braille globe for the terminal

USAGE:
    braille-planet [OPTIONS]

OPTIONS:
    -h                Show this help message
    -d <filename>     Enable debug logging to specified file
    -s <seconds>      Rotation period in seconds (default: 30)
    -r <milliseconds> Refresh rate in milliseconds (default: 100)
    -a <ratio>        Character aspect ratio (default: 2.0)
    -detail <1-4>     Sub-sample density (default: 4)
    -night            Start in night mode
    -once             Render a single frame to stdout and exit
    -config <file>    Load settings from TOML config file
    -geoip-db <file>  MaxMind City database for the marker overlay
    -markers <file>   File of IP addresses to plot as night lights

INTERACTIVE CONTROLS:
    Space    - Pause/Resume rotation
    Arrows   - Nudge rotation
    [/]      - Decrease/Increase spin speed
    N        - Toggle day/night
    A/L/S/I  - Toggle atmosphere, city lights, specular, polar ice
    1-4      - Detail level
    Q/X/Esc  - Exit
`)
}

func main() {
	var debugFile = flag.String("d", "", "Debug log filename")
	var showHelpFlag = flag.Bool("h", false, "Show help")
	var rotationPeriod = flag.Int("s", 30, "Rotation period in seconds")
	var refreshRate = flag.Int("r", 100, "Refresh rate in milliseconds")
	var aspectRatio = flag.Float64("a", 2.0, "Character aspect ratio")
	var detail = flag.Int("detail", 0, "Sub-sample density 1-4")
	var night = flag.Bool("night", false, "Start in night mode")
	var once = flag.Bool("once", false, "Render a single frame to stdout and exit")
	var configFile = flag.String("config", "", "Load from TOML config file")
	var geoipDB = flag.String("geoip-db", "", "MaxMind City database for markers")
	var markerFile = flag.String("markers", "", "File of IP addresses to plot")
	flag.Parse()

	if *showHelpFlag {
		showHelp()
		os.Exit(0)
	}

	if *debugFile != "" {
		file, err := os.OpenFile(*debugFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		debugLogger = log.New(file, "", log.LstdFlags|log.Lmicroseconds)
		debugLog("braille-planet starting")
	}

	config, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if config.Display.AspectRatio > 0 && *aspectRatio == 2.0 {
		*aspectRatio = config.Display.AspectRatio
	}
	if config.Display.RotationPeriod > 0 && *rotationPeriod == 30 {
		*rotationPeriod = config.Display.RotationPeriod
	}
	if config.Display.RefreshRate > 0 && *refreshRate == 100 {
		*refreshRate = config.Display.RefreshRate
	}
	if *detail == 0 {
		if config.Display.Detail > 0 {
			*detail = config.Display.Detail
		} else {
			*detail = 4
		}
	}
	if *geoipDB == "" {
		*geoipDB = config.GeoIP.Database
	}
	if *markerFile == "" {
		*markerFile = config.GeoIP.Markers
	}

	if *rotationPeriod < 5 || *rotationPeriod > 600 {
		fmt.Fprintf(os.Stderr, "Error: rotation period must be between 5 and 600 seconds\n")
		os.Exit(1)
	}
	if *detail < 1 || *detail > 4 {
		fmt.Fprintf(os.Stderr, "Error: detail must be between 1 and 4\n")
		os.Exit(1)
	}

	boundaries := geodata.Boundaries()
	index, report := globe.BuildLandIndex(boundaries, debugLogger)
	if report.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d malformed boundaries skipped\n", report.Skipped)
	}

	cities := geodata.Cities()
	if *geoipDB != "" && *markerFile != "" {
		markers, err := loadMarkers(*geoipDB, *markerFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading markers: %v\n", err)
			os.Exit(1)
		}
		cities = append(cities, markers...)
	}

	renderer := globe.NewRenderer(index, cities)
	renderer.CharAspect = *aspectRatio

	view := globe.ViewState{
		Night:         *night,
		Atmosphere:    config.Features.Atmosphere,
		CityLights:    config.Features.CityLights,
		OceanSpecular: config.Features.OceanSpecular,
		PolarIce:      config.Features.PolarIce,
		Detail:        *detail,
	}

	if *once {
		fmt.Println(renderer.Render(view, 100, 48).String())
		return
	}

	fmt.Printf("braille-planet: %d boundaries, %d land cells, %d cities\n",
		report.Boundaries-report.Skipped, report.LandCells, len(cities))
	time.Sleep(1 * time.Second)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()
	defer screen.Fini()

	vc := newViewController(view)
	quit := pollEvents(screen, vc)
	lastFrame := time.Now()

	for {
		select {
		case <-quit:
			debugLog("shutting down")
			return
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now

		// Terminal dimensions are re-read every frame; resizes just work.
		width, height := screen.Size()
		if height > 1 {
			current, paused := vc.advance(dt, float64(*rotationPeriod))
			frame := renderer.Render(current, width, height-1)
			drawFrame(screen, frame)
			drawStatus(screen, width, height, statusLine(current, paused))
			screen.Show()
		}

		time.Sleep(time.Duration(*refreshRate) * time.Millisecond)
	}
}
