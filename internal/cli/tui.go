package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pinpress/pinpress/pkg/placement"
	"github.com/pinpress/pinpress/pkg/units"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// Nudge and zoom steps for the placement editor.
const (
	nudgeStep     = 2.0  // pixels per arrow press
	nudgeStepFast = 10.0 // pixels per shift+arrow press
	zoomStep      = 1.05 // multiplicative zoom per +/- press
)

// =============================================================================
// PlacementModel - Interactive artwork positioning
// =============================================================================

// PlacementModel is the bubbletea model for interactively positioning
// artwork inside a button template. Arrow keys nudge the offset, +/-
// zoom, r resets to the centered cover placement.
type PlacementModel struct {
	Placement placement.Placement
	Accepted  bool
}

// NewPlacementModel creates a placement editor starting from p.
func NewPlacementModel(p placement.Placement) PlacementModel {
	return PlacementModel{Placement: p}
}

func (m PlacementModel) Init() tea.Cmd {
	return nil
}

func (m PlacementModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up":
			m.Placement.OffsetY -= nudgeStep
		case "down":
			m.Placement.OffsetY += nudgeStep
		case "left":
			m.Placement.OffsetX -= nudgeStep
		case "right":
			m.Placement.OffsetX += nudgeStep
		case "shift+up":
			m.Placement.OffsetY -= nudgeStepFast
		case "shift+down":
			m.Placement.OffsetY += nudgeStepFast
		case "shift+left":
			m.Placement.OffsetX -= nudgeStepFast
		case "shift+right":
			m.Placement.OffsetX += nudgeStepFast
		case "+", "=":
			m.Placement.Scale *= zoomStep
		case "-", "_":
			m.Placement.Scale /= zoomStep
		case "r":
			m.Placement = placement.New(m.Placement.Image, m.Placement.Size)
		case "enter":
			m.Accepted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PlacementModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Position artwork · %s button", m.Placement.Size.Name)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("arrows nudge (shift: faster)  +/- zoom  r reset  ⏎ accept  q cancel"))
	b.WriteString("\n\n")

	cut := units.InchesToPixels(m.Placement.Size.CutLineDiameter)
	bounds := m.Placement.Image.Bounds()

	b.WriteString(kvLine("Image", fmt.Sprintf("%dx%d px", bounds.Dx(), bounds.Dy())))
	b.WriteString(kvLine("Zoom", fmt.Sprintf("%.3f (%.0fx%.0f px on page)",
		m.Placement.Scale, m.Placement.ScaledWidth(), m.Placement.ScaledHeight())))
	b.WriteString(kvLine("Offset", fmt.Sprintf("%.1f, %.1f px", m.Placement.OffsetX, m.Placement.OffsetY)))
	b.WriteString(kvLine("Cut circle", fmt.Sprintf("%.0f px (%.3f in)",
		cut, float64(m.Placement.Size.CutLineDiameter))))

	if !m.covers() {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render("! artwork no longer covers the cut circle"))
	}

	b.WriteString("\n")
	return b.String()
}

// covers reports whether the scaled, offset image still covers the whole
// cut circle. It compares the circle's bounding box against the image
// rectangle, a conservative check that never reports a false positive.
func (m PlacementModel) covers() bool {
	r := units.InchesToPixels(m.Placement.Size.CutLineDiameter) / 2
	halfW := m.Placement.ScaledWidth() / 2
	halfH := m.Placement.ScaledHeight() / 2
	return m.Placement.OffsetX-halfW <= -r && m.Placement.OffsetX+halfW >= r &&
		m.Placement.OffsetY-halfH <= -r && m.Placement.OffsetY+halfH >= r
}

func kvLine(key, value string) string {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	return keyStyle.Render(key) + " " + StyleValue.Render(value) + "\n"
}
