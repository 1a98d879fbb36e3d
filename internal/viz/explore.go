package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Explorer is an interactive grid browser: arrow keys move a cursor over the
// (R, z) grid, p toggles a profile plot through the cursor.
type Explorer struct {
	rs, zs, vals []float64
	curR, curZ   int
	showProfile  bool
	alongR       bool
}

func NewExplorer(Rs, zs, vals []float64) Explorer {
	return Explorer{rs: Rs, zs: zs, vals: vals}
}

// RunExplorer launches the interactive browser and blocks until quit.
func RunExplorer(Rs, zs, vals []float64) error {
	_, err := tea.NewProgram(NewExplorer(Rs, zs, vals)).Run()
	return err
}

func (m Explorer) Init() tea.Cmd { return nil }

func (m Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.curR > 0 {
				m.curR--
			}
		case "down", "j":
			if m.curR < len(m.rs)-1 {
				m.curR++
			}
		case "left", "h":
			if m.curZ > 0 {
				m.curZ--
			}
		case "right", "l":
			if m.curZ < len(m.zs)-1 {
				m.curZ++
			}
		case "p":
			m.showProfile = !m.showProfile
		case "a":
			m.alongR = !m.alongR
		}
	}
	return m, nil
}

func (m Explorer) View() string {
	var b strings.Builder
	b.WriteString(Heatmap(m.rs, m.zs, m.vals))
	b.WriteByte('\n')

	v := m.vals[m.curR*len(m.zs)+m.curZ]
	b.WriteString(labelStyle.Render("cursor "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("R=%.3f z=%.3f phi=%.6g", m.rs[m.curR], m.zs[m.curZ], v)))
	b.WriteByte('\n')

	if m.showProfile {
		if m.alongR {
			b.WriteString(ColumnProfile(m.rs, m.zs, m.vals, m.curZ))
		} else {
			b.WriteString(RowProfile(m.rs, m.zs, m.vals, m.curR))
		}
		b.WriteByte('\n')
	}

	b.WriteString(helpStyle.Render("arrows/hjkl move · p profile · a axis · q quit"))
	return b.String()
}
