// Package preview is an interactive viewer for the animated noise field,
// with sliders for each layer and the permutation seed.
package preview

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/perlin/camera"
	"github.com/pthm-cable/perlin/config"
	"github.com/pthm-cable/perlin/noise"
	"github.com/pthm-cable/perlin/render"
	"github.com/pthm-cable/perlin/telemetry"
	"github.com/pthm-cable/perlin/ui"
)

const (
	// PanelWidth is the width of the control panel right of the preview.
	PanelWidth    = 320
	profileHeight = 90
	margin        = 10
	sliderLayers  = 3 // Layers beyond this keep their configured values
)

// Options configure a viewer.
type Options struct {
	Seed      int64  // Non-zero overrides noise.seed
	OutputDir string // CSV output and saved frames; empty = no CSV, frames to working dir
	LogStats  bool
}

// Viewer owns the field, the frame buffers and the GPU texture.
type Viewer struct {
	cfg  *config.Config
	opts Options

	field    *render.Field
	defaults []config.LayerConfig
	seed     int64

	grid    *Grid
	pixels  []color.RGBA
	profile []float64
	texture rl.Texture2D

	area rl.Rectangle // Field area in window coordinates
	cam  *camera.Camera

	time     float32
	paused   bool
	ramp     bool
	frame    int
	needsGen bool

	perf     *telemetry.PerfCollector
	lastPerf telemetry.PerfStats
	out      *telemetry.OutputManager
	ui       *ui.Renderer
}

// WindowSize returns the window dimensions for cfg.
func WindowSize(cfg *config.Config) (int32, int32) {
	return int32(cfg.Preview.Width + PanelWidth), int32(cfg.Preview.Height)
}

// NewViewer creates a viewer. The raylib window must already be open.
func NewViewer(cfg *config.Config, opts Options) (*Viewer, error) {
	seed := cfg.Noise.Seed
	if opts.Seed != 0 {
		seed = opts.Seed
	}

	field, err := render.NewField(noise.TableFor(seed), cfg.Preview.Layers)
	if err != nil {
		return nil, fmt.Errorf("building field: %w", err)
	}

	out, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := out.WriteConfig(cfg); err != nil {
		out.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	size := cfg.Preview.TextureSize
	area := rl.Rectangle{
		X:      margin,
		Y:      margin,
		Width:  float32(cfg.Preview.Width - 2*margin),
		Height: float32(cfg.Preview.Height - profileHeight - 3*margin),
	}

	img := rl.GenImageColor(size, size, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)

	defaults := make([]config.LayerConfig, len(cfg.Preview.Layers))
	copy(defaults, cfg.Preview.Layers)

	v := &Viewer{
		cfg:      cfg,
		opts:     opts,
		field:    field,
		defaults: defaults,
		seed:     seed,
		grid:     NewGrid(size),
		pixels:   make([]color.RGBA, size*size),
		profile:  make([]float64, int(area.Width)),
		texture:  texture,
		area:     area,
		cam:      camera.New(area.Width, area.Height),
		needsGen: true,
		perf:     telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		out:      out,
		ui:       ui.NewRenderer(),
	}

	slog.Info("preview started",
		"seed", seed,
		"texture_size", size,
		"layers", len(cfg.Preview.Layers),
	)
	return v, nil
}

// Frame returns the number of frames updated so far.
func (v *Viewer) Frame() int {
	return v.frame
}

// Update advances time and regenerates the field when anything changed.
func (v *Viewer) Update() {
	v.perf.StartFrame()

	if !v.paused {
		v.time += rl.GetFrameTime()
		v.needsGen = true
	}

	v.handleInput()

	if v.needsGen {
		ox, oy := v.cam.Origin()
		step := 1 / v.cam.Zoom
		size := float32(v.grid.Size)

		v.perf.StartPhase(telemetry.PhaseNoise3)
		v.grid.Fill(v.field, ox, oy, v.area.Width/size*step, v.area.Height/size*step, v.time)

		v.perf.StartPhase(telemetry.PhaseRender)
		v.grid.Colorize(v.pixels, v.ramp)

		v.perf.StartPhase(telemetry.PhaseUpload)
		rl.UpdateTexture(v.texture, v.pixels)

		v.perf.StartPhase(telemetry.PhaseNoise1)
		Profile(v.field, v.profile, float64(ox), float64(step))

		v.needsGen = false
	}

	v.perf.EndFrame()
	v.frame++

	if window := v.cfg.Telemetry.PerfCollectorWindow; window > 0 && v.frame%window == 0 {
		stats := v.perf.Stats()
		v.lastPerf = stats
		if v.opts.LogStats {
			slog.Info("perf", "frame", v.frame, "stats", stats)
		}
		if err := v.out.WritePerf(stats, v.frame); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// Draw renders the field, the 1D profile and the control panel.
func (v *Viewer) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	size := float32(v.grid.Size)
	rl.DrawTexturePro(
		v.texture,
		rl.Rectangle{X: 0, Y: 0, Width: size, Height: size},
		v.area,
		rl.Vector2{X: 0, Y: 0},
		0,
		rl.White,
	)
	rl.DrawRectangleLinesEx(v.area, 1, rl.DarkGray)

	v.drawProfile()
	v.drawPanel()

	rl.EndDrawing()
	v.perf.RecordPresent()
}

func (v *Viewer) drawProfile() {
	top := v.area.Y + v.area.Height + margin
	box := rl.Rectangle{X: v.area.X, Y: top, Width: v.area.Width, Height: profileHeight}
	rl.DrawRectangleLinesEx(box, 1, rl.LightGray)

	mid := top + profileHeight/2
	rl.DrawLine(int32(box.X), int32(mid), int32(box.X+box.Width), int32(mid), rl.LightGray)

	half := float32(profileHeight/2 - 2)
	for i := 1; i < len(v.profile); i++ {
		y0 := mid - float32(v.profile[i-1])*half
		y1 := mid - float32(v.profile[i])*half
		rl.DrawLine(int32(box.X)+int32(i-1), int32(y0), int32(box.X)+int32(i), int32(y1), rl.Maroon)
	}
}

func (v *Viewer) drawPanel() {
	panelX := float32(v.cfg.Preview.Width + margin)
	panelY := float32(margin)
	sliderWidth := float32(PanelWidth - 90)

	rl.DrawText("Noise Field", int32(panelX), int32(panelY), 20, rl.DarkGray)
	panelY += 30

	data := v.readout()
	panelY = float32(v.ui.DrawSection(int32(panelX), int32(panelY), fieldSection, data, PanelWidth-2*margin)) + 6

	slider := func(label, format string, value, lo, hi float32) float32 {
		rl.DrawText(label, int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 16
		nv := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: sliderWidth, Height: 18},
			"", "",
			value, lo, hi,
		)
		rl.DrawText(fmt.Sprintf(format, value), int32(panelX+sliderWidth+8), int32(panelY+2), 14, rl.DarkGray)
		panelY += 26
		return nv
	}

	layers := v.field.Layers()
	for i := 0; i < len(layers) && i < sliderLayers; i++ {
		l := layers[i]
		scale := slider(fmt.Sprintf("Layer %d scale", i+1), "%.1f", float32(l.Scale), scaleMin, scaleMax)
		weight := slider(fmt.Sprintf("Layer %d weight", i+1), "%.2f", float32(l.Weight), weightMin, weightMax)
		speed := slider(fmt.Sprintf("Layer %d time speed", i+1), "%.2f", float32(l.TimeSpeed), speedMin, speedMax)
		if nl, ok := layerEdit(l, scale, weight, speed); ok {
			v.setLayer(i, nl)
		}
		panelY += 4
	}

	got := slider("Seed (0 = reference)", "%.0f", float32(v.seed), seedMin, seedMax)
	if seed, ok := seedEdit(v.seed, got); ok {
		v.setSeed(seed)
	}
	panelY += 10

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 28}, toggleText(v.paused, "Play", "Pause")) {
		v.paused = !v.paused
	}
	if gui.Button(rl.Rectangle{X: panelX + 150, Y: panelY, Width: 140, Height: 28}, "Reset Time") {
		v.time = 0
		v.needsGen = true
	}
	panelY += 36

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 28}, "Random Seed") {
		v.setSeed(int64(rl.GetRandomValue(1, seedMax)))
	}
	if gui.Button(rl.Rectangle{X: panelX + 150, Y: panelY, Width: 140, Height: 28}, "Reset Layers") {
		v.resetLayers()
	}
	panelY += 36

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 28}, toggleText(v.ramp, "Grayscale", "Colour")) {
		v.ramp = !v.ramp
		v.needsGen = true
	}
	if gui.Button(rl.Rectangle{X: panelX + 150, Y: panelY, Width: 140, Height: 28}, "Save PNG") {
		v.save()
	}
	panelY += 36

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 28}, "Reset View") {
		v.cam.Reset()
		v.needsGen = true
	}
	panelY += 44

	v.ui.DrawSection(int32(panelX), int32(panelY), perfSection, data, PanelWidth-2*margin)

	rl.DrawText("Drag: pan  Wheel: zoom  R: reset  S: save", int32(panelX), int32(v.cfg.Preview.Height-24), 12, rl.LightGray)
}

// handleInput pans with a left drag and zooms with the wheel over the field area.
func (v *Viewer) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		v.paused = !v.paused
	}
	if rl.IsKeyPressed(rl.KeyS) {
		v.save()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		v.cam.Reset()
		v.needsGen = true
	}

	mouse := rl.GetMousePosition()
	mx, my := mouse.X-v.area.X, mouse.Y-v.area.Y
	if !v.cam.Contains(mx, my) {
		return
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.cam.ZoomAt(float32(math.Pow(1.1, float64(wheel))), mx, my)
		v.needsGen = true
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
			v.cam.Pan(-d.X, -d.Y)
			v.needsGen = true
		}
	}
}

func (v *Viewer) readout() *Readout {
	lo, hi, mean := v.grid.Range()
	return &Readout{
		Min:  lo,
		Max:  hi,
		Mean: mean,
		Time: v.time,
		Zoom: v.cam.Zoom,
		Seed: v.seed,
		FPS:  rl.GetFPS(),
		Perf: v.lastPerf,
	}
}

func (v *Viewer) setLayer(i int, l config.LayerConfig) {
	if err := v.field.SetLayer(i, l); err != nil {
		slog.Debug("layer rejected", "layer", i, "error", err)
		return
	}
	v.needsGen = true
}

func (v *Viewer) setSeed(seed int64) {
	v.seed = seed
	v.field.SetTable(noise.TableFor(seed))
	v.needsGen = true
	slog.Info("seed changed", "seed", seed)
}

func (v *Viewer) resetLayers() {
	for i, l := range v.defaults {
		v.setLayer(i, l)
	}
}

// save writes the current frame as a grayscale PNG.
func (v *Viewer) save() {
	dir := v.opts.OutputDir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, fmt.Sprintf("preview_%06d.png", v.frame))

	if err := render.WriteImage(path, v.grid.Image()); err != nil {
		slog.Error("failed to save frame", "path", path, "error", err)
		return
	}
	slog.Info("frame saved", "path", path, "seed", v.seed, "time", v.time)
}

// Unload releases the texture and closes output files.
func (v *Viewer) Unload() {
	rl.UnloadTexture(v.texture)
	if err := v.out.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
