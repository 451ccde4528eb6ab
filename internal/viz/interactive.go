package viz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/camadj/internal/codegen"
	"github.com/san-kum/camadj/internal/config"
	"github.com/san-kum/camadj/internal/render"
)

const (
	panelWidth    = 44
	angleStep     = 5.0
	scaleUp       = 1.05
	defaultCols   = 80
	defaultRows   = 24
	dotThreshold  = 64
	reservedLines = 3
)

// param is one adjustable field. Angles change additively, sizes and
// distances multiplicatively so they stay positive.
type param struct {
	name  string
	angle bool
	ptr   func(*config.Config) *float64
}

var params = []param{
	{"elevation", true, func(c *config.Config) *float64 { return &c.Camera.Elevation }},
	{"azimuth", true, func(c *config.Config) *float64 { return &c.Camera.Azimuth }},
	{"roll", true, func(c *config.Config) *float64 { return &c.Camera.Roll }},
	{"focal_screen_distance", false, func(c *config.Config) *float64 { return &c.Camera.FocalScreenDistance }},
	{"focal_camera_distance", false, func(c *config.Config) *float64 { return &c.Camera.FocalCameraDistance }},
	{"screen_width", false, func(c *config.Config) *float64 { return &c.Camera.ScreenWidth }},
	{"screen_height", false, func(c *config.Config) *float64 { return &c.Camera.ScreenHeight }},
	{"box_size_x", false, func(c *config.Config) *float64 { return &c.Camera.BoxSizeX }},
	{"box_size_y", false, func(c *config.Config) *float64 { return &c.Camera.BoxSizeY }},
	{"box_size_z", false, func(c *config.Config) *float64 { return &c.Camera.BoxSizeZ }},
}

// Adjuster is a terminal camera adjuster: every key press updates one
// parameter and re-renders the wireframe as braille.
type Adjuster struct {
	cfg         config.Config
	initial     config.Config
	selected    int
	cols, rows  int
	canvas      *Canvas
	err         error
	showSnippet bool
	presetIdx   int
}

func NewAdjuster(cfg *config.Config) *Adjuster {
	a := &Adjuster{cfg: *cfg, initial: *cfg, cols: defaultCols, rows: defaultRows, presetIdx: -1}
	a.draw()
	return a
}

// Config returns the current parameters.
func (a *Adjuster) Config() *config.Config {
	c := a.cfg
	return &c
}

func (a *Adjuster) Init() tea.Cmd { return nil }

func (a *Adjuster) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.cols, a.rows = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return a, tea.Quit
		case "tab", "down", "j":
			a.selected = (a.selected + 1) % len(params)
			return a, nil
		case "shift+tab", "up", "k":
			a.selected = (a.selected + len(params) - 1) % len(params)
			return a, nil
		case "right", "l", "+", "=":
			a.adjust(1)
		case "left", "h", "-", "_":
			a.adjust(-1)
		case "r":
			a.cfg = a.initial
		case "p":
			names := config.ListPresets()
			a.presetIdx = (a.presetIdx + 1) % len(names)
			a.cfg.Camera = config.Presets[names[a.presetIdx]]
		case "s":
			a.showSnippet = !a.showSnippet
		default:
			return a, nil
		}
	}
	a.draw()
	return a, nil
}

func (a *Adjuster) adjust(dir float64) {
	p := params[a.selected]
	v := p.ptr(&a.cfg)
	if p.angle {
		*v += dir * angleStep
		return
	}
	if dir > 0 {
		*v *= scaleUp
	} else {
		*v /= scaleUp
	}
}

// draw re-renders the wireframe for the canvas area left of the panel.
func (a *Adjuster) draw() {
	cells := max(a.cols-panelWidth-4, 1)
	lines := max(a.rows-reservedLines, 1)
	opts := render.Options{Workers: a.cfg.Render.Workers, Border: a.cfg.Render.Border}
	surface, err := render.Composite(context.Background(), a.cfg.Camera, cells*2, lines*4, opts)
	a.err = err
	if err != nil {
		a.canvas = NewCanvas(cells, lines)
		return
	}
	a.canvas = FromBuffer(surface, dotThreshold)
}

func (a *Adjuster) View() string {
	var panel strings.Builder
	panel.WriteString(headerStyle.Render("camera"))
	panel.WriteString("\n")
	for i, p := range params {
		label := labelStyle.Render(p.name)
		value := fmt.Sprintf("%.4g", *p.ptr(&a.cfg))
		if i == a.selected {
			panel.WriteString(activeStyle.Render("> ") + label + activeStyle.Render(value))
		} else {
			panel.WriteString("  " + label + valueStyle.Render(value))
		}
		panel.WriteString("\n")
	}
	panel.WriteString("\n" + Legend() + "\n")
	if a.err != nil {
		panel.WriteString(errorStyle.Render(a.err.Error()) + "\n")
	}
	if err := a.cfg.Validate(); err != nil {
		panel.WriteString(errorStyle.Render(err.Error()) + "\n")
	}
	if a.showSnippet {
		if s, err := codegen.Snippet(a.cfg.Camera, a.cfg.Render.PixelsPerUnit); err == nil {
			panel.WriteString("\n" + valueStyle.Render(s))
		}
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		a.canvas.Render(),
		panelStyle.Width(panelWidth).Render(panel.String()),
	)
	help := helpStyle.Render("j/k select  h/l adjust  p preset  r reset  s snippet  q quit")
	return body + "\n" + help
}

// RunAdjuster runs the adjuster full screen and returns the final parameters.
func RunAdjuster(cfg *config.Config) (*config.Config, error) {
	a := NewAdjuster(cfg)
	final, err := tea.NewProgram(a, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}
	return final.(*Adjuster).Config(), nil
}
