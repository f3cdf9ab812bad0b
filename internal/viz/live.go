package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/lokwai/hkaqi/internal/anim"
	"github.com/lokwai/hkaqi/internal/aqi"
	"github.com/lokwai/hkaqi/internal/config"
	"github.com/lokwai/hkaqi/internal/dataset"
)

const gridCols = 3

type TickMsg time.Time

// Model drives the terminal rendition of the animation. The same controller
// type used by the GUI advances the fractional year; only the drawing differs.
type Model struct {
	yearly     map[int]dataset.YearlySample
	byDistrict map[string]map[int]dataset.YearlySample
	ctrl       *anim.Controller
	fps        int
	selected   int
	showHelp   bool
}

func NewModel(cfg *config.Config, seed int64) Model {
	gen := dataset.New(seed)
	return Model{
		yearly:     gen.Yearly(),
		byDistrict: gen.ByDistrict(),
		ctrl:       anim.NewController(cfg.Animation.TransitionRate, cfg.Animation.AutoplayTicks),
		fps:        cfg.Window.FPS,
		selected:   -1,
	}
}

// RunLive starts the terminal animation and blocks until the user quits.
func RunLive(cfg *config.Config, seed int64) error {
	p := tea.NewProgram(NewModel(cfg, seed))
	_, err := p.Run()
	return err
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "right", "l":
			m.ctrl.StepTarget(1)
		case "left", "h":
			m.ctrl.StepTarget(-1)
		case " ":
			// Restarts the autoplay countdown only; animation keeps going.
			m.ctrl.ResetAutoplay()
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			m.selected = int(msg.String()[0] - '1')
		case "0":
			m.selected = -1
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		m.ctrl.Tick()
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	year := m.ctrl.CurrentYear()
	overall := anim.InterpolateAt(m.yearly, year)

	var s strings.Builder
	s.WriteString(headerStyle.Render("HONG KONG AIR QUALITY 1993-2023") + "\n")
	s.WriteString(labelStyle.Render("Year") + valueStyle.Render(fmt.Sprintf("%d", int(year))) + "\n")
	s.WriteString(labelStyle.Render("Average AQI") + valueStyle.Render(fmt.Sprintf("%d", int(overall))) + "\n")
	s.WriteString(labelStyle.Render("Target") + valueStyle.Render(fmt.Sprintf("%d", m.ctrl.TargetYear())) + "\n")

	means := make([]float64, 0, dataset.LastYear-dataset.FirstYear+1)
	for y := dataset.FirstYear; y <= dataset.LastYear; y++ {
		means = append(means, m.yearly[y].Mean())
	}
	chart := asciigraph.Plot(means,
		asciigraph.Height(8),
		asciigraph.Width(66),
		asciigraph.Caption("yearly mean AQI"),
	)
	s.WriteString(graphStyle.Render(chart) + "\n\n")

	s.WriteString(m.districtGrid(year) + "\n")

	if ev, ok := dataset.Events[int(year)]; ok {
		s.WriteString("\n" + eventTitleStyle.Render(fmt.Sprintf("%d - %s", int(year), ev.Title)) + "\n")
		s.WriteString(eventDescStyle.Render(ev.Desc) + "\n")
	}

	if m.showHelp {
		s.WriteString(helpStyle.Render("←/→: change year  1-9: select district  0: clear  SPACE: restart autoplay  Q: quit"))
	} else {
		s.WriteString(helpStyle.Render("?: help  Q: quit"))
	}
	return s.String()
}

// districtGrid renders the 3x3 heat grid; each cell's background follows the
// district's interpolated AQI, the digit-selected cell gets a border.
func (m Model) districtGrid(year float64) string {
	rows := make([]string, 0, gridCols)

	for row := 0; row < gridCols; row++ {
		cells := make([]string, 0, gridCols)
		for col := 0; col < gridCols; col++ {
			i := row*gridCols + col
			district := dataset.Districts[i]
			value := anim.InterpolateAt(m.byDistrict[district], year)
			c := aqi.ColorForValue(value, dataset.MinAQI, dataset.MaxAQI)

			style := cellStyle
			if i == m.selected {
				style = selectedCellStyle
			}
			cell := style.
				Background(lipgloss.Color(c.Hex())).
				Render(fmt.Sprintf("%s\nAQI: %d", district, int(value)))
			cells = append(cells, cell)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
