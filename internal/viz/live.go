package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitx/internal/orbit"
	"github.com/san-kum/orbitx/internal/sim"
)

const (
	historyCapacity = 600
	stepsPerFrame   = 50
)

type TickMsg time.Time

// Model drives a simulation from the terminal, graphing the osculating
// semi-major axis of the first tracked body against its running bounds.
type Model struct {
	simulator *sim.Simulator
	dt        float64
	tracked   int
	history   []float64
	running   bool
	steps     int
}

// NewModel picks the first opted-in body as the graphed one.
func NewModel(simulator *sim.Simulator, dt float64) Model {
	tracked := -1
	g := simulator.Simulation()
	for i := 1; i < g.NActive(); i++ {
		if g.Bodies[i].AxisBounds != nil {
			tracked = i
			break
		}
	}
	return Model{
		simulator: simulator,
		dt:        dt,
		tracked:   tracked,
		history:   make([]float64, 0, historyCapacity),
		running:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case TickMsg:
		if m.running {
			for i := 0; i < stepsPerFrame; i++ {
				m.simulator.Step(m.dt)
				m.steps++
			}
			m.sample()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) sample() {
	if m.tracked < 0 {
		return
	}
	g := m.simulator.Simulation()
	o, err := orbit.FromState(g.G, g.Bodies[m.tracked], *g.Primary())
	if err != nil {
		return
	}
	m.history = append(m.history, o.A)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m Model) View() string {
	g := m.simulator.Simulation()

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("orbitx live"))
	sb.WriteString("\n")

	if len(m.history) >= 2 {
		graph := asciigraph.Plot(m.history,
			asciigraph.Height(12),
			asciigraph.Width(70),
		)
		sb.WriteString(graphStyle.Render(graph))
		sb.WriteString("\n")
	}

	stats := []string{
		labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%.3f", g.T)),
		labelStyle.Render("steps") + valueStyle.Render(fmt.Sprintf("%d", m.steps)),
		labelStyle.Render("bodies") + valueStyle.Render(fmt.Sprintf("%d (+%d var)", g.NActive(), g.NVar)),
	}
	if m.tracked >= 0 {
		if b := g.Bodies[m.tracked].AxisBounds; b != nil {
			stats = append(stats,
				labelStyle.Render("min_a")+valueStyle.Render(fmt.Sprintf("%.6f", b.MinA)),
				labelStyle.Render("max_a")+valueStyle.Render(fmt.Sprintf("%.6f", b.MaxA)),
			)
		}
	}
	sb.WriteString(statsStyle.Render(strings.Join(stats, "\n")))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("space pause/resume  q quit"))
	return sb.String()
}

// RunLive blocks until the user quits the live view.
func RunLive(simulator *sim.Simulator, dt float64) error {
	p := tea.NewProgram(NewModel(simulator, dt))
	_, err := p.Run()
	return err
}
