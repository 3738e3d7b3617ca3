// Package tui renders the radius sweep of the correlation-dimension
// estimator as a live terminal view: the log-log curve grows radius by
// radius and the fitted slope updates alongside it.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/takens/internal/embed"
	"github.com/san-kum/takens/internal/fractal"
)

const (
	graphWidth  = 60
	graphHeight = 12
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	slopeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model holds the point cloud and the partially computed radius curve.
type Model struct {
	points    []embed.Point
	cfg       fractal.Config
	dimension int
	delay     int
	seriesLen int

	curve   []fractal.RadiusCorrelation
	slope   float64
	running bool
	done    bool
}

func NewModel(points []embed.Point, dimension, delay, seriesLen int, cfg fractal.Config) Model {
	return Model{
		points:    points,
		cfg:       cfg,
		dimension: dimension,
		delay:     delay,
		seriesLen: seriesLen,
		curve:     make([]fractal.RadiusCorrelation, 0, cfg.NumRadii),
		running:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update advances one radius per tick while running.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.curve = m.curve[:0]
			m.slope = 0
			m.done = false
			m.running = true
		}
		return m, nil

	case TickMsg:
		if m.running && !m.done {
			m = m.step()
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) step() Model {
	k := len(m.curve) + 1
	if k > m.cfg.NumRadii {
		m.done = true
		return m
	}

	r := m.cfg.MaxRadius * float64(k) / float64(m.cfg.NumRadii)
	m.curve = append(m.curve, fractal.RadiusCorrelation{
		Radius:   r,
		Fraction: fractal.CorrelationSum(m.points, r),
	})
	if len(m.curve) >= 2 {
		m.slope = fractal.FitSlope(m.curve)
	}
	if len(m.curve) == m.cfg.NumRadii {
		m.done = true
	}
	return m
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("takens · correlation dimension sweep"))
	b.WriteString("\n")

	rows := []struct{ label, value string }{
		{"points", fmt.Sprintf("%d (from %d samples)", len(m.points), m.seriesLen)},
		{"dimension", fmt.Sprintf("%d", m.dimension)},
		{"delay", fmt.Sprintf("%d", m.delay)},
		{"radii", fmt.Sprintf("%d / %d (max %.3g)", len(m.curve), m.cfg.NumRadii, m.cfg.MaxRadius)},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}

	b.WriteString(labelStyle.Render("slope"))
	b.WriteString(slopeStyle.Render(fmt.Sprintf("%.4f", m.slope)))
	if m.done {
		b.WriteString(valueStyle.Render("  (final)"))
	}
	b.WriteString("\n")

	if len(m.curve) >= 2 {
		logC := make([]float64, len(m.curve))
		for i, rc := range m.curve {
			logC[i] = math.Log10(rc.Fraction)
		}
		plot := asciigraph.Plot(logC,
			asciigraph.Width(graphWidth),
			asciigraph.Height(graphHeight),
			asciigraph.Caption("log10 C(r) across the radius sweep"),
		)
		b.WriteString(graphStyle.Render(plot))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("space pause · r restart · q quit"))
	b.WriteString("\n")
	return b.String()
}

// Run blocks until the user quits the live view.
func Run(points []embed.Point, dimension, delay, seriesLen int, cfg fractal.Config) error {
	p := tea.NewProgram(NewModel(points, dimension, delay, seriesLen, cfg))
	_, err := p.Run()
	return err
}
