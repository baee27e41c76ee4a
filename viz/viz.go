package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Amnesia06/Generate-rows/field"
)

// Options tunes the replay.
type Options struct {
	// FPS is the number of lane-steps animated per second.
	FPS int
}

// DefaultOptions returns a replay at 12 lane-steps per second.
func DefaultOptions() Options { return Options{FPS: 12} }

// tickMsg advances the replay by one lane-step.
type tickMsg time.Time

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleUnsown = lipgloss.NewStyle().Foreground(lipgloss.Color("94"))
	styleSown   = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	styleRover  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	styleExit   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	styleHelp   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model for a path replay.
type Model struct {
	spec field.GridSpec
	segs []field.Segment
	opts Options

	seg       int
	rover     field.Waypoint
	exit      field.Waypoint
	sown      map[field.Waypoint]bool
	sownDist  float64
	totalSown float64
	bar       progress.Model
	done      bool
}

// New builds a replay model for a finished path.
func New(spec field.GridSpec, p field.Path, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = DefaultOptions().FPS
	}
	segs := p.Segments()
	m := Model{
		spec:      spec,
		segs:      segs,
		opts:      opts,
		sown:      make(map[field.Waypoint]bool),
		totalSown: p.TotalSown(),
		bar:       progress.New(progress.WithDefaultGradient()),
	}
	m.bar.Width = 40
	if len(segs) > 0 {
		m.rover = laneOf(spec, segs[0].From)
		m.exit = laneOf(spec, segs[len(segs)-1].To)
	} else {
		m.done = true
	}
	return m
}

// Done reports whether the replay has consumed the whole path.
func (m Model) Done() bool { return m.done }

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	if m.done {
		return nil
	}
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update advances one lane-step per tick and handles quit keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if w := msg.Width - 8; w > 10 {
			m.bar.Width = w
		}
		return m, nil
	case tickMsg:
		if m.done {
			return m, nil
		}
		m.advance()
		if m.done {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

// advance moves the rover one lane-step along the current segment, marking
// soil sown under SOW segments.
func (m *Model) advance() {
	for m.seg < len(m.segs) {
		s := m.segs[m.seg]
		target := laneOf(m.spec, s.To)
		if s.Action == field.Sow {
			m.sown[m.rover] = true
		}
		if m.rover == target {
			m.seg++
			continue
		}
		var step float64
		if dx := sign(target.LaneX - m.rover.LaneX); dx != 0 {
			m.rover.LaneX += dx
			step = m.spec.SpacingX
		} else {
			m.rover.LaneY += sign(target.LaneY - m.rover.LaneY)
			step = m.spec.SpacingY
		}
		if s.Action == field.Sow {
			m.sown[m.rover] = true
			m.sownDist += step
		}
		return
	}
	m.sownDist = m.totalSown
	m.done = true
}

// View renders the lane grid top row first, with the rover, exit marker,
// sown and unsown soil, plus the sowing progress bar.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Generate-rows — mission replay"))
	b.WriteString("\n\n")
	for y := m.spec.YMax; y >= 0; y-- {
		for x := 0; x <= m.spec.XMax; x++ {
			w := field.Waypoint{LaneX: x, LaneY: y}
			switch {
			case w == m.rover && !m.done:
				b.WriteString(styleRover.Render("◈"))
			case w == m.exit:
				b.WriteString(styleExit.Render("⚑"))
			case m.sown[w]:
				b.WriteString(styleSown.Render("▴"))
			default:
				b.WriteString(styleUnsown.Render("·"))
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	ratio := 1.0
	if m.totalSown > 0 {
		ratio = math.Min(1, m.sownDist/m.totalSown)
	}
	b.WriteString(m.bar.ViewAs(ratio))
	b.WriteByte('\n')
	if m.done {
		b.WriteString(styleHelp.Render("replay complete — press q to quit"))
	} else if m.seg < len(m.segs) {
		s := m.segs[m.seg]
		b.WriteString(styleHelp.Render(fmt.Sprintf("step %d/%d  %s  %s — q: quit",
			s.Step, len(m.segs), s.Label, s.Action)))
	}
	b.WriteByte('\n')
	return b.String()
}

// Run replays the path in an alternate-screen program and blocks until the
// user quits.
func Run(spec field.GridSpec, p field.Path, opts Options) error {
	_, err := tea.NewProgram(New(spec, p, opts), tea.WithAltScreen()).Run()
	return err
}

// laneOf snaps a meter-space point back to its lane cell.
func laneOf(spec field.GridSpec, p field.Point) field.Waypoint {
	return field.Waypoint{
		LaneX: int(math.Round(p.X / spec.SpacingX)),
		LaneY: int(math.Round(p.Y / spec.SpacingY)),
	}
}

// sign returns -1, 0 or 1.
func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
