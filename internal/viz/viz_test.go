package viz

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/camadj/internal/config"
	"github.com/san-kum/camadj/internal/raster"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0, raster.Color{R: 10})
	c.Set(1, 3, raster.Color{R: 200, G: 200})
	c.Set(3, 0, raster.Color{B: 1})
	c.Set(-1, 0, raster.Color{R: 255})
	c.Set(4, 0, raster.Color{R: 255})

	if c.Grid[0][0] != rune(blank|0x1|0x80) {
		t.Errorf("unexpected first cell %U", c.Grid[0][0])
	}
	if c.Colors[0][0] != (raster.Color{R: 200, G: 200}) {
		t.Errorf("expected brightest colour, got %v", c.Colors[0][0])
	}
	if c.Grid[0][1] != rune(blank|0x8) {
		t.Errorf("unexpected second cell %U", c.Grid[0][1])
	}
}

func TestFromBuffer(t *testing.T) {
	buf := raster.NewPixelBuffer(5, 5)
	buf.Set(0, 0, raster.Color{R: 255, A: 255})
	buf.Set(4, 4, raster.Color{G: 255, A: 30})

	c := FromBuffer(buf, 64)
	if c.Width != 3 || c.Height != 2 {
		t.Fatalf("expected 3x2 cells, got %dx%d", c.Width, c.Height)
	}
	// logical (0,0) is the bottom-left pixel, storage row 4
	if c.Grid[1][0] != rune(blank|0x1) {
		t.Errorf("expected bottom-left dot, got %U", c.Grid[1][0])
	}
	if c.Grid[0][2] != blank {
		t.Error("dim pixel should stay below threshold")
	}
	if !strings.Contains(c.String(), string(rune(blank|0x1))) {
		t.Error("string view missing dot")
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		c    raster.Color
		want string
	}{
		{raster.Color{R: 255, G: 215, B: 0}, "#ffd700"},
		{raster.Color{R: 1, G: 16, B: 171}, "#0110ab"},
		{raster.Color{}, "#000000"},
	}
	for _, tt := range tests {
		if got := hexColor(tt.c); got != tt.want {
			t.Errorf("hexColor(%v): expected %s, got %s", tt.c, tt.want, got)
		}
	}
}

func TestLegend(t *testing.T) {
	legend := Legend()
	for _, label := range []string{"- x", "- y", "- z"} {
		if !strings.Contains(legend, label) {
			t.Errorf("legend missing %q", label)
		}
	}
}

func TestCoverageProfile(t *testing.T) {
	data := CoverageProfile(8, 33)
	if len(data) != 33 {
		t.Fatalf("expected 33 samples, got %d", len(data))
	}
	if data[0] < 0.99 || data[32] > 0.01 {
		t.Errorf("unexpected profile ends %f %f", data[0], data[32])
	}
	if math.Abs(data[12]-0.5) > 1e-12 {
		t.Errorf("expected half coverage at the stroke width, got %f", data[12])
	}
	if ProfilePlot(8, 40, 5) == "" {
		t.Error("expected a plot")
	}
}

func TestAdjusterKeys(t *testing.T) {
	a := NewAdjuster(config.DefaultConfig())
	press := func(s string) {
		var msg tea.KeyMsg
		switch s {
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
		}
		a.Update(msg)
	}

	press("right")
	if a.cfg.Camera.Elevation != angleStep {
		t.Errorf("expected elevation %f, got %f", angleStep, a.cfg.Camera.Elevation)
	}

	for i := 0; i < 4; i++ {
		press("j")
	}
	press("left")
	want := config.DefaultFocalCameraDistance / scaleUp
	if math.Abs(a.cfg.Camera.FocalCameraDistance-want) > 1e-12 {
		t.Errorf("expected camera distance %f, got %f", want, a.cfg.Camera.FocalCameraDistance)
	}

	press("r")
	if a.cfg != a.initial {
		t.Error("reset should restore the initial config")
	}

	press("p")
	if a.cfg.Camera != config.Presets[config.ListPresets()[0]] {
		t.Error("expected first preset")
	}
}

func TestAdjusterView(t *testing.T) {
	a := NewAdjuster(config.DefaultConfig())
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	view := a.View()
	for _, want := range []string{"elevation", "box_size_z", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if a.canvas.Width != 120-panelWidth-4 {
		t.Errorf("unexpected canvas width %d", a.canvas.Width)
	}
}
