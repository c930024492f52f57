// Package tui renders the recording view. It owns nothing but the
// cancellation signal and frame pacing; capture and encoding never depend
// on it.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leandrodaf/midirec/internal/recorder"
)

// frameInterval caps the refresh rate. Its only job is bounding how long a
// quit keypress waits to be observed without busy-spinning.
const frameInterval = time.Second / 60

type tickMsg time.Time

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model displays recording progress and quits on q, esc or ctrl+c.
type Model struct {
	rec      *recorder.Recorder
	quitting bool
}

func NewModel(rec *recorder.Recorder) Model {
	return Model{rec: rec}
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return frame()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}

	case tickMsg:
		return m, frame()
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	elapsed := time.Since(m.rec.Started()).Truncate(time.Second)
	header := headerStyle.Render("● recording")
	stats := statStyle.Render(fmt.Sprintf("%s  %d events", elapsed, m.rec.EventCount()))
	help := dimStyle.Render("q/esc: stop and save")

	return fmt.Sprintf("\n %s  %s\n\n %s\n", header, stats, help)
}
