// Package tui is the terminal live view: the particle field drawn on a
// braille canvas next to a stats panel.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/ndelcros/vitrine/internal/config"
	"github.com/ndelcros/vitrine/internal/field"
)

const (
	canvasWidth     = 70
	canvasHeight    = 22
	historyCapacity = 240
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model steps the field in terminal sub-pixel space and renders it each
// tick. The pointer orbits the center so the repulsion is visible without a
// mouse; P toggles it away.
type Model struct {
	cfg    *config.Config
	f      *field.Field
	t      float64
	dt     float64
	canvas *Canvas

	running      bool
	pointerOn    bool
	speedHistory []float64
	linkCount    int
}

// NewModel builds the live view over a fresh field sized to the canvas
// sub-pixel space.
func NewModel(cfg *config.Config) Model {
	w := float64(canvasWidth * 2)
	h := float64(canvasHeight * 4)

	count := cfg.Field.Count
	if count == 0 {
		// The braille canvas is always "narrow".
		count = field.NarrowCount
	}
	f := field.NewWithCount(w, h, count, cfg.Seed)
	f.SetDrift(field.NewDrift(cfg.Field.DriftScale, cfg.Field.DriftRate, cfg.Field.DriftStrength, cfg.Seed))

	return Model{
		cfg:          cfg,
		f:            f,
		dt:           1.0 / float64(cfg.Window.FPS),
		canvas:       NewCanvas(canvasWidth, canvasHeight),
		running:      true,
		pointerOn:    true,
		speedHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.Window.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "p":
			m.pointerOn = !m.pointerOn
		case "r":
			m.f = field.NewWithCount(m.f.Width, m.f.Height, len(m.f.Particles), m.cfg.Seed)
			m.t = 0
			m.speedHistory = m.speedHistory[:0]
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tea.Tick(time.Second/time.Duration(m.cfg.Window.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// pointer returns the simulated orbiting pointer.
func (m *Model) pointer() field.Pointer {
	if !m.pointerOn {
		return field.NoPointer()
	}
	cx, cy := m.f.Width/2, m.f.Height/2
	r := math.Min(m.f.Width, m.f.Height) * 0.3
	return field.PointerAt(cx+math.Cos(m.t*0.8)*r, cy+math.Sin(m.t*0.8)*r)
}

func (m *Model) step() {
	m.f.Step(m.pointer(), m.t)
	m.t += m.dt

	sum := 0.0
	for _, p := range m.f.Particles {
		sum += math.Hypot(p.VX, p.VY)
	}
	avg := 0.0
	if len(m.f.Particles) > 0 {
		avg = sum / float64(len(m.f.Particles))
	}
	m.speedHistory = append(m.speedHistory, avg)
	if len(m.speedHistory) > historyCapacity {
		m.speedHistory = m.speedHistory[1:]
	}
	m.linkCount = len(m.f.Links())
}

func (m *Model) draw() {
	m.canvas.Clear()
	for _, l := range m.f.Links() {
		// Faint links would be invisible in a two-tone cell anyway.
		if l.Alpha < field.LinkMaxAlpha/2 {
			continue
		}
		a, b := m.f.Particles[l.A], m.f.Particles[l.B]
		m.canvas.DrawLine(int(a.X), int(a.Y), int(b.X), int(b.Y))
	}
	for _, p := range m.f.Particles {
		m.canvas.Set(int(p.X), int(p.Y))
	}
	if ptr := m.pointer(); ptr.Present {
		m.canvas.Set(int(ptr.X), int(ptr.Y))
	}
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("PARTICLE FIELD") + "\n")
	s.WriteString(status + "\n\n")

	if len(m.speedHistory) > 1 {
		chart := asciigraph.Plot(m.speedHistory,
			asciigraph.Height(4),
			asciigraph.Width(28),
			asciigraph.Caption("avg speed"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	avg := 0.0
	if len(m.speedHistory) > 0 {
		avg = m.speedHistory[len(m.speedHistory)-1]
	}
	pointer := "orbiting"
	if !m.pointerOn {
		pointer = "absent"
	}
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.1fs", m.t)) + "\n")
	s.WriteString(labelStyle.Render("Particles") + valueStyle.Render(fmt.Sprintf("%d", len(m.f.Particles))) + "\n")
	s.WriteString(labelStyle.Render("Links") + valueStyle.Render(fmt.Sprintf("%d", m.linkCount)) + "\n")
	s.WriteString(labelStyle.Render("Avg speed") + valueStyle.Render(fmt.Sprintf("%.2f", avg)) + "\n")
	s.WriteString(labelStyle.Render("Pointer") + valueStyle.Render(pointer) + "\n")

	s.WriteString(helpStyle.Render("\n──────────────────\nSP:Pause R:Reset\nP:Pointer Q:Quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}
