package gui

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lokwai/hkaqi/internal/anim"
	"github.com/lokwai/hkaqi/internal/aqi"
	"github.com/lokwai/hkaqi/internal/config"
	"github.com/lokwai/hkaqi/internal/dataset"
	"github.com/lokwai/hkaqi/internal/particles"
)

// Theme colors, matching the night-sky palette of the terminal view.
var (
	colBg        = rl.NewColor(10, 10, 30, 255)
	colGraphBg   = rl.NewColor(20, 20, 40, 255)
	colGrid      = rl.NewColor(40, 40, 60, 255)
	colText      = rl.NewColor(255, 255, 255, 255)
	colTextDim   = rl.NewColor(180, 180, 180, 255)
	colTextFaint = rl.NewColor(160, 160, 160, 255)
	colHighlight = rl.NewColor(255, 215, 0, 255)
	colBorder    = rl.NewColor(100, 100, 100, 255)
)

// App owns all mutable visualization state. A single loop thread creates it,
// mutates it every tick, and draws it; nothing here is shared.
type App struct {
	cfg        *config.Config
	yearly     map[int]dataset.YearlySample
	byDistrict map[string]map[int]dataset.YearlySample

	ctrl     *anim.Controller
	field    *particles.Field
	timeline *Graph

	selected int // district index, -1 when none
	font     rl.Font
	quit     bool
}

func initWindow(cfg *config.Config) {
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono from the system path, falling back to the
// raylib default font when unavailable. Loaded once; draw calls reuse it.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	if font.Texture.ID == 0 {
		return rl.GetFontDefault()
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(cfg *config.Config) *App {
	seed := cfg.Seed
	if seed <= 0 {
		seed = time.Now().UnixNano()
	}

	gen := dataset.New(seed)
	yearly := gen.Yearly()
	byDistrict := gen.ByDistrict()

	ctrl := anim.NewController(cfg.Animation.TransitionRate, cfg.Animation.AutoplayTicks)
	props := aqi.PropsForValue(anim.InterpolateAt(yearly, ctrl.CurrentYear()))

	w, h := cfg.Window.Width, cfg.Window.Height
	rng := rand.New(rand.NewSource(seed + 1))

	return &App{
		cfg:        cfg,
		yearly:     yearly,
		byDistrict: byDistrict,
		ctrl:       ctrl,
		field:      particles.NewField(cfg.Particles, float64(w), float64(h), rng, props),
		timeline:   NewGraph(150, h-200, w-300, 150),
		selected:   -1,
		font:       loadFont(),
	}
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(cfg *config.Config) {
	initWindow(cfg)
	defer rl.CloseWindow()
	app := NewApp(cfg)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		a.ctrl.StepTarget(1)
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		a.ctrl.StepTarget(-1)
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		// Space only restarts the autoplay countdown; the animation keeps
		// running.
		a.ctrl.ResetAutoplay()
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		pos := rl.GetMousePosition()
		if idx := HitTest(int(pos.X), int(pos.Y), a.cfg.Window.Width); idx >= 0 {
			a.selected = idx
		}
	}

	a.ctrl.Tick()
	overall := anim.InterpolateAt(a.yearly, a.ctrl.CurrentYear())
	a.field.SetProps(aqi.PropsForValue(overall))
	a.field.Update(rl.GetTime())
}

// Draw renders back to front: district grid, timeline, particles, then the
// fixed header/legend/event overlays.
func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	a.drawDistricts()
	a.timeline.Draw(a.yearly, a.font)
	a.drawParticles()
	a.drawHeader()
	a.drawLegend()
	a.drawEvent()

	rl.EndDrawing()
}

func (a *App) drawParticles() {
	order := a.field.DepthOrder()
	props := a.field.Props

	for _, i := range order {
		p := a.field.P[i]
		depth := particles.DepthFactor(p.Z)
		size := float32(props.Size * (0.5 + 0.5*depth))
		shade := 0.7 + 0.3*depth
		col := rl.NewColor(
			uint8(float64(props.Color.R)*shade),
			uint8(float64(props.Color.G)*shade),
			uint8(float64(props.Color.B)*shade),
			255,
		)
		rl.DrawCircleV(rl.NewVector2(float32(p.X), float32(p.Y)), size, col)
	}

	// Glow pass: additive blending is order independent, so one blend block
	// covers the whole field.
	rl.BeginBlendMode(rl.BlendAdditive)
	for _, i := range order {
		p := a.field.P[i]
		depth := particles.DepthFactor(p.Z)
		size := float32(props.Size * (0.5 + 0.5*depth))
		shade := 0.7 + 0.3*depth
		glow := rl.NewColor(
			uint8(float64(props.Color.R)*shade),
			uint8(float64(props.Color.G)*shade),
			uint8(float64(props.Color.B)*shade),
			50,
		)
		rl.DrawCircleV(rl.NewVector2(float32(p.X), float32(p.Y)), size*2, glow)
	}
	rl.EndBlendMode()
}

func (a *App) drawHeader() {
	overall := anim.InterpolateAt(a.yearly, a.ctrl.CurrentYear())
	drawText(a.font, fmt.Sprintf("Year: %d", int(a.ctrl.CurrentYear())), 10, 10, 36, colText)
	drawText(a.font, fmt.Sprintf("Hong Kong Average AQI: %d", int(overall)), 10, 50, 36, colText)
}

func (a *App) drawEvent() {
	year := int(a.ctrl.CurrentYear())
	ev, ok := dataset.Events[year]
	if !ok {
		return
	}

	w, h := a.cfg.Window.Width, a.cfg.Window.Height
	rl.DrawRectangle(10, int32(h-110), int32(w-20), 100, rl.NewColor(20, 20, 40, 200))
	drawText(a.font, fmt.Sprintf("%d - %s", year, ev.Title), 20, h-100, 30, colHighlight)
	drawText(a.font, ev.Desc, 20, h-65, 18, colText)
}

func drawText(font rl.Font, text string, x, y, size int, col rl.Color) {
	rl.DrawTextEx(font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, col)
}
