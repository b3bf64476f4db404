package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/hexfield/internal/render"
	"github.com/san-kum/hexfield/internal/world"
)

const (
	panelWidth      = 36
	historyCapacity = 120
	minCells        = 1
)

type TickMsg time.Time

// Options controls how the terminal maps onto the world viewport.
type Options struct {
	// Width and Height fix the viewport; a negative value fits that
	// dimension to the terminal.
	Width, Height float64
	CellScale     float64
	Theme         string
}

// Model contains the world, its Braille surface and panel state.
type Model struct {
	params  world.Params
	opts    Options
	theme   Theme
	world   *world.World
	canvas  *render.Canvas
	latency []float64
	ready   bool
	termW   int
	termH   int
}

func NewModel(params world.Params, opts Options) Model {
	if opts.CellScale <= 0 {
		opts.CellScale = 1
	}
	m := Model{
		params:  params,
		opts:    opts,
		theme:   GetTheme(opts.Theme),
		latency: make([]float64, 0, historyCapacity),
	}
	if opts.Width >= 0 && opts.Height >= 0 {
		m.setup(m.fit(0, 0))
	}
	return m
}

// fit picks the canvas cells and viewport for a terminal of termCols by
// termRows, keeping whichever dimensions the options fix.
func (m Model) fit(termCols, termRows int) (cols, rows int, width, height float64) {
	unitW, unitH := 2*m.opts.CellScale, 4*m.opts.CellScale

	cols, width = termCols, float64(termCols)*unitW
	if m.opts.Width >= 0 {
		cols, width = cellsFor(m.opts.Width, unitW), m.opts.Width
	}
	rows, height = termRows, float64(termRows)*unitH
	if m.opts.Height >= 0 {
		rows, height = cellsFor(m.opts.Height, unitH), m.opts.Height
	}
	return cols, rows, width, height
}

// Init starts ticking right away when the viewport is fixed; otherwise the
// first tea.WindowSizeMsg sizes the world and starts the ticks.
func (m Model) Init() tea.Cmd {
	if m.ready {
		return m.tick()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		if m.ready {
			return m, nil
		}
		m.setup(m.fit(max(msg.Width-panelWidth-4, minCells), max(msg.Height-2, minCells)))
		return m, m.tick()
	case TickMsg:
		if !m.ready {
			return m, nil
		}
		start := time.Now()
		m.world.Animate()
		m.observe(time.Since(start))
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) setup(cols, rows int, width, height float64) {
	m.canvas = render.NewCanvas(cols, rows, m.opts.CellScale)
	m.world = world.New(m.canvas, width, height, m.params)
	m.world.Init()
	m.ready = true
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.params.Interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *Model) observe(d time.Duration) {
	m.latency = append(m.latency, float64(d.Microseconds())/1000)
	if len(m.latency) > historyCapacity {
		m.latency = m.latency[1:]
	}
}

// World exposes the running world; nil until the view is sized.
func (m Model) World() *world.World { return m.world }

func (m Model) View() string {
	if !m.ready {
		return "sizing viewport..."
	}

	field := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.params.DotColor.Hex())).
		Background(lipgloss.Color(m.params.Background.Hex())).
		Padding(0, 1).
		Render(m.canvas.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, field, m.panel())
}

func (m Model) panel() string {
	label := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(12)
	value := lipgloss.NewStyle().Foreground(m.theme.Text)
	row := func(k, v string) string { return label.Render(k) + value.Render(v) + "\n" }

	w, h := m.world.Size()
	var s strings.Builder
	s.WriteString(lipgloss.NewStyle().Foreground(m.theme.Title).Bold(true).MarginBottom(1).Render("HEXFIELD") + "\n")
	s.WriteString(row("Tick", fmt.Sprintf("%d", m.world.Ticks())))
	s.WriteString(row("Viewport", fmt.Sprintf("%.0fx%.0f", w, h)))
	s.WriteString(row("Lattice", fmt.Sprintf("%d pts", len(m.world.Grid()))))
	s.WriteString(row("Dots", fmt.Sprintf("%d (%.0f%%)", len(m.world.Dots()), m.params.DotRatio*100)))
	s.WriteString(row("Hex size", fmt.Sprintf("%.1f", m.params.HexSize)))
	s.WriteString(row("Interval", m.params.Interval.String()))
	s.WriteString(row("Seed", fmt.Sprintf("%d", m.params.Seed)))

	if len(m.latency) > 1 {
		chart := asciigraph.Plot(m.latency,
			asciigraph.Height(4),
			asciigraph.Width(panelWidth-12),
			asciigraph.Precision(2),
			asciigraph.Caption("tick ms"))
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Graph).Render(chart) + "\n")
	}

	s.WriteString(lipgloss.NewStyle().Foreground(m.theme.Muted).MarginTop(1).Render("q: quit"))

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(m.theme.Border).
		Padding(0, 2).
		Width(panelWidth).
		Render(s.String())
}

// Run starts the terminal view and blocks until the user quits.
func Run(params world.Params, opts Options) error {
	p := tea.NewProgram(NewModel(params, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func cellsFor(extent, unitsPerCell float64) int {
	n := int(extent/unitsPerCell + 0.999999)
	return max(n, minCells)
}
