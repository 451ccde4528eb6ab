package gui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/camadj/internal/camera"
	"github.com/san-kum/camadj/internal/config"
	"github.com/san-kum/camadj/internal/raster"
	"github.com/san-kum/camadj/internal/render"
	"github.com/san-kum/camadj/internal/scene"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

const (
	initialWidth  = 1024
	initialHeight = 768
	fontSize      = 16
)

type App struct {
	Config *config.Config
	Opts   render.Options

	tex      rl.Texture2D
	texW     int
	texH     int
	hasTex   bool
	rgba     []color.RGBA
	lastRect string
}

func initWindow() {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(initialWidth, initialHeight, "camadj")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func NewApp(cfg *config.Config) *App {
	return &App{
		Config: cfg,
		Opts: render.Options{
			Workers: cfg.Render.Workers,
			Border:  cfg.Render.Border,
		},
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) {
	initWindow()
	defer rl.CloseWindow()
	app := NewApp(cfg)
	defer app.unload()
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyEscape) {
			return
		}
		applyInput(&a.Config.Camera, rl.IsKeyDown, float64(rl.GetFrameTime()))
		a.Draw()
	}
}

func (a *App) Draw() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	res, err := render.Frame(context.Background(), a.Config.Camera, w, h, a.Opts)

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(ColBg)

	switch {
	case errors.Is(err, render.ErrEmptyViewport):
		// nothing fits this window size
	case err != nil:
		slog.Error("render frame", "error", err)
	default:
		a.upload(res.Buffer)
		rl.DrawTexture(a.tex, int32(res.Rect.Imin), int32(res.Rect.Jmin), rl.White)
		if rect := res.Rect.String(); rect != a.lastRect {
			slog.Debug("viewport", "rect", rect)
			a.lastRect = rect
		}
	}
	a.drawHUD()
}

// upload copies buf into the texture, reallocating it when the size changes.
func (a *App) upload(buf *raster.PixelBuffer) {
	if !a.hasTex || a.texW != buf.Width || a.texH != buf.Height {
		a.unload()
		img := rl.NewImageFromImage(buf.Image())
		a.tex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		a.texW, a.texH, a.hasTex = buf.Width, buf.Height, true
		a.rgba = make([]color.RGBA, buf.Width*buf.Height)
		return
	}
	for i := range a.rgba {
		o := 4 * i
		a.rgba[i] = color.RGBA{buf.Pix[o], buf.Pix[o+1], buf.Pix[o+2], buf.Pix[o+3]}
	}
	rl.UpdateTexture(a.tex, a.rgba)
}

func (a *App) unload() {
	if a.hasTex {
		rl.UnloadTexture(a.tex)
		a.hasTex = false
	}
}

func (a *App) drawHUD() {
	p := a.Config.Camera
	lines := []string{
		fmt.Sprintf("elevation %.1f", p.Elevation),
		fmt.Sprintf("azimuth   %.1f", p.Azimuth),
		fmt.Sprintf("roll      %.1f", p.Roll),
		fmt.Sprintf("camera    %.3f", p.FocalCameraDistance),
	}
	for i, l := range lines {
		rl.DrawText(l, 10, int32(10+i*(fontSize+4)), fontSize, ColText)
	}

	y := int32(rl.GetScreenHeight() - 2*(fontSize+4))
	x := int32(10)
	for _, e := range []struct {
		label string
		c     raster.Color
	}{{"- x", scene.XAxisColor}, {"- y", scene.YAxisColor}, {"- z", scene.ZAxisColor}} {
		rl.DrawText(e.label, x, y, fontSize, rl.NewColor(e.c.R, e.c.G, e.c.B, e.c.A))
		x += rl.MeasureText(e.label, fontSize) + 16
	}
	rl.DrawText("arrows: elevation/azimuth  Q/E: roll  W/S: distance  esc: quit", 10, y+fontSize+4, fontSize, ColTextDim)
}

// keyDown reports whether a key is held.
type keyDown func(key int32) bool

const (
	angleRate    = 60.0 // degrees per second
	distanceRate = 1.0  // factor e per second
)

// applyInput updates p from held keys, scaled by the frame time dt.
func applyInput(p *camera.Params, down keyDown, dt float64) {
	step := angleRate * dt
	if down(rl.KeyUp) {
		p.Elevation += step
	}
	if down(rl.KeyDown) {
		p.Elevation -= step
	}
	if down(rl.KeyRight) {
		p.Azimuth += step
	}
	if down(rl.KeyLeft) {
		p.Azimuth -= step
	}
	if down(rl.KeyE) {
		p.Roll += step
	}
	if down(rl.KeyQ) {
		p.Roll -= step
	}
	if down(rl.KeyW) {
		p.FocalCameraDistance *= 1 - distanceRate*dt/(1+distanceRate*dt)
	}
	if down(rl.KeyS) {
		p.FocalCameraDistance *= 1 + distanceRate*dt
	}
}
