package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/camadj/internal/raster"
	"github.com/san-kum/camadj/internal/scene"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(22)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// Legend is the axis colour key.
func Legend() string {
	entries := []struct {
		label string
		color raster.Color
	}{
		{"- x", scene.XAxisColor},
		{"- y", scene.YAxisColor},
		{"- z", scene.ZAxisColor},
	}
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hexColor(e.color))).Render(e.label))
	}
	return b.String()
}

func hexColor(c raster.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
