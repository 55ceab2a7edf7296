package watch

import (
	"fmt"
	"strings"
	"time"

	"redemption-index/internal/domain"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const pollInterval = 30 * time.Second

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#d2a8ff")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8b949e")).
			Width(14)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c9d1d9"))

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7ee787"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f85149"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#484f58")).
			MarginTop(1)

	lowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7ee787"))
	midStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffa657"))
	highStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f85149"))
)

var metricLabels = map[domain.MetricKey]string{
	domain.MetricPoverty:     "Poverty",
	domain.MetricChutzpah:    "Chutzpah",
	domain.MetricWisdomDecay: "Wisdom Decay",
	domain.MetricDistraction: "Distraction",
}

// ReportLoaded carries one poll result back into the model.
type ReportLoaded struct {
	Report domain.IndexReport
	Err    error
}

type pollTick time.Time

func schedulePoll() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return pollTick(t)
	})
}

// Model is the root Bubble Tea model for the watch dashboard. It does not
// talk to the API directly; fetchReport returns a Cmd that resolves to a
// ReportLoaded message.
type Model struct {
	fetchReport func() tea.Cmd

	spinner   spinner.Model
	report    *domain.IndexReport
	err       error
	fetchedAt time.Time
	width     int
	loading   bool
}

func NewModel(fetchReport func() tea.Cmd) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#d2a8ff"))
	return Model{fetchReport: fetchReport, spinner: s}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, schedulePoll()}
	if m.fetchReport != nil {
		m.loading = true
		cmds = append(cmds, m.fetchReport())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if m.fetchReport != nil && !m.loading {
				m.loading = true
				return m, m.fetchReport()
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case ReportLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		report := msg.Report
		m.report = &report
		m.err = nil
		m.fetchedAt = time.Now()
		return m, nil

	case pollTick:
		if m.fetchReport != nil && !m.loading {
			m.loading = true
			return m, tea.Batch(m.fetchReport(), schedulePoll())
		}
		return m, schedulePoll()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Redemption Index"))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	case m.report == nil:
		b.WriteString(m.spinner.View() + " loading...")
		b.WriteString("\n")
	default:
		b.WriteString(m.renderReport())
	}

	help := "r refresh · q quit"
	if m.loading && m.report != nil {
		help = m.spinner.View() + " refreshing · " + help
	}
	b.WriteString(helpStyle.Render(help))

	return b.String()
}

func (m Model) renderReport() string {
	r := m.report
	var b strings.Builder

	if r.Status != "" {
		b.WriteString(statusStyle.Render(r.Status))
		b.WriteString("\n\n")
	}

	score := fmt.Sprintf("%d / %d", r.TotalScore, r.MaxScore)
	b.WriteString(scoreStyle(r.TotalScore, 100).Bold(true).Render(score))
	b.WriteString("  ")
	b.WriteString(renderBar(r.TotalScore, 100, 40))
	b.WriteString("\n\n")

	for _, key := range domain.MetricKeys {
		metric, ok := r.Metrics[key]
		if !ok {
			continue
		}
		b.WriteString(labelStyle.Render(metricLabels[key]))
		b.WriteString(scoreStyle(metric.Score, domain.MaxSubScore).Render(fmt.Sprintf("%3d", metric.Score)))
		b.WriteString("  ")
		b.WriteString(renderBar(metric.Score, domain.MaxSubScore, 25))
		b.WriteString("  ")
		b.WriteString(summaryStyle.Render(metric.Summary))
		b.WriteString("\n")
	}

	if !m.fetchedAt.IsZero() {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("fetched " + m.fetchedAt.Format("15:04:05") +
			" · next update " + r.NextUpdate.Format("15:04:05")))
		b.WriteString("\n")
	}

	return b.String()
}

func scoreStyle(score, max int) lipgloss.Style {
	if max <= 0 {
		return lowStyle
	}
	switch ratio := float64(score) / float64(max); {
	case ratio >= 0.6:
		return highStyle
	case ratio >= 0.3:
		return midStyle
	default:
		return lowStyle
	}
}

func renderBar(score, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	filled := score * width / max
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return scoreStyle(score, max).Render(bar)
}
