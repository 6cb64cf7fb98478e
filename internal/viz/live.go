package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/halfcar/internal/dynamo"
	"github.com/san-kum/halfcar/internal/vehicle"
)

const (
	canvasWidth     = 60
	canvasHeight    = 14
	historyCapacity = 110

	// Vertical exaggeration: ride motions are millimeters to centimeters,
	// far below one character cell at true scale.
	verticalScale = 90.0
)

type TickMsg time.Time

// Model steps the half-car in real time and renders a side view plus the
// speed history.
type Model struct {
	dyn   *vehicle.Model
	integ dynamo.Integrator
	cyc   dynamo.Cycle

	x      dynamo.State
	u      dynamo.Control
	t, dt  float64
	v, pos float64

	steps         int
	maxSteps      int
	stepsPerFrame int
	running       bool
	done          bool

	speedHist []float64
	canvas    [][]rune
}

func NewModel(dyn *vehicle.Model, integ dynamo.Integrator, cyc dynamo.Cycle, dt float64, maxSteps int) Model {
	canvas := make([][]rune, canvasHeight)
	for i := range canvas {
		canvas[i] = make([]rune, canvasWidth)
	}

	stepsPerFrame := int(1.0 / 30.0 / dt)
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}

	return Model{
		dyn:           dyn,
		integ:         integ,
		cyc:           cyc,
		x:             make(dynamo.State, dyn.StateDim()),
		u:             make(dynamo.Control, 1),
		dt:            dt,
		maxSteps:      maxSteps,
		stepsPerFrame: stepsPerFrame,
		running:       true,
		speedHist:     make([]float64, 0, historyCapacity),
		canvas:        canvas,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
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
		case "r":
			m.reset()
		case "+", "=":
			m.stepsPerFrame *= 2
		case "-":
			if m.stepsPerFrame > 1 {
				m.stepsPerFrame /= 2
			}
		}
	case TickMsg:
		if m.running && !m.done {
			m.advance()
		}
		return m, tick()
	}
	return m, nil
}

// advance replays the simulation driver's inner loop for one frame.
func (m *Model) advance() {
	for i := 0; i < m.stepsPerFrame; i++ {
		if m.steps >= m.maxSteps {
			m.done = true
			return
		}

		accel := m.cyc.Accel(m.t, m.v)
		if lim, ok := m.cyc.(dynamo.SpeedLimiter); ok {
			m.v = lim.LimitSpeed(m.v)
		}
		m.u[0] = accel

		m.x = m.integ.Step(m.dyn, m.x, m.u, m.t, m.dt)
		m.v += accel * m.dt
		m.pos += m.v * m.dt
		m.t += m.dt
		m.steps++
	}

	m.speedHist = append(m.speedHist, m.v*3.6)
	if len(m.speedHist) > historyCapacity {
		m.speedHist = m.speedHist[1:]
	}
}

func (m *Model) reset() {
	m.x = make(dynamo.State, m.dyn.StateDim())
	m.t, m.v, m.pos = 0, 0, 0
	m.steps = 0
	m.done = false
	m.speedHist = m.speedHist[:0]
	if r, ok := m.cyc.(dynamo.Resettable); ok {
		r.Reset()
	}
}

func (m *Model) clear() {
	for y := range m.canvas {
		for x := range m.canvas[y] {
			m.canvas[y][x] = ' '
		}
	}
}

func (m *Model) set(x, y int, c rune) {
	if x >= 0 && x < canvasWidth && y >= 0 && y < canvasHeight {
		m.canvas[y][x] = c
	}
}

func (m *Model) line(x1, y1, x2, y2 int, c rune) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	for {
		m.set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// drawCar renders the side view: ground, the two wheels at their unsprung
// displacements, and the body line between the suspension attachment
// points (heave plus pitch lever arms). Front is on the right.
func (m *Model) drawCar() {
	m.clear()

	p := m.dyn.Params()
	groundY := canvasHeight - 2
	bodyY := canvasHeight - 7

	for i := 0; i < canvasWidth; i++ {
		m.set(i, groundY+1, '=')
	}

	span := float64(canvasWidth) * 0.30
	cx := canvasWidth / 2
	frontX := cx + int(span*p.L1/(p.L1+p.L2))
	rearX := cx - int(span*p.L2/(p.L1+p.L2))

	ys, theta := m.x[vehicle.IdxHeave], m.x[vehicle.IdxPitch]
	yu1, yu2 := m.x[vehicle.IdxFront], m.x[vehicle.IdxRear]

	frontWheelY := groundY - 1 - int(yu1*verticalScale)
	rearWheelY := groundY - 1 - int(yu2*verticalScale)
	m.set(frontX, frontWheelY, 'O')
	m.set(rearX, rearWheelY, 'O')

	frontBodyY := bodyY - int((ys-p.L1*theta)*verticalScale)
	rearBodyY := bodyY - int((ys+p.L2*theta)*verticalScale)
	m.line(rearX, rearBodyY, frontX, frontBodyY, '#')
	m.set(cx, (frontBodyY+rearBodyY)/2, 'X')

	m.line(frontX, frontBodyY+1, frontX, frontWheelY-1, '|')
	m.line(rearX, rearBodyY+1, rearX, rearWheelY-1, '|')
}

func (m Model) View() string {
	m.drawCar()

	var canvas strings.Builder
	for _, row := range m.canvas {
		canvas.WriteString(string(row))
		canvas.WriteByte('\n')
	}

	phase := "coasting"
	switch {
	case m.done:
		phase = "finished"
	case m.u[0] > 0:
		phase = "accelerating"
	case m.u[0] < 0:
		phase = "braking"
	case m.v == 0 && m.t > 0:
		phase = "stopped"
	}

	stats := strings.Join([]string{
		headerStyle.Render(m.dyn.Params().Name),
		labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%8.2f s", m.t)),
		labelStyle.Render("speed") + valueStyle.Render(fmt.Sprintf("%8.1f km/h", m.v*3.6)),
		labelStyle.Render("position") + valueStyle.Render(fmt.Sprintf("%8.1f m", m.pos)),
		labelStyle.Render("heave") + valueStyle.Render(fmt.Sprintf("%8.1f mm", m.x[vehicle.IdxHeave]*1000)),
		labelStyle.Render("pitch") + valueStyle.Render(fmt.Sprintf("%8.2f deg", m.x[vehicle.IdxPitch]*180/math.Pi)),
		labelStyle.Render("phase") + phaseStyle.Render(phase),
	}, "\n")

	var graph string
	if len(m.speedHist) > 1 {
		graph = graphStyle.Render(asciigraph.Plot(m.speedHist,
			asciigraph.Height(6),
			asciigraph.Width(historyCapacity),
			asciigraph.Caption("speed [km/h]")))
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(canvas.String()),
		statsStyle.Render(stats))

	help := helpStyle.Render("space pause · r reset · +/- speed · q quit")

	return main + "\n" + graph + help + "\n"
}

// Run starts the live view and blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
