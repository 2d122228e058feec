package dashboard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	activitydto "pustaka/internal/modules/activity/dto"
	"pustaka/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type Port interface {
	Dashboard(ctx context.Context) (activitydto.DashboardOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Out activitydto.DashboardOutput
	Err error
}

var monthLabels = [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the Bubble Tea model for the Dasbor tab. The dashboard is an
// admin surface; loading fails with a login prompt until Require passes.
type Model struct {
	port    Port
	body    viewport.Model
	spinner spinner.Model
	out     activitydto.DashboardOutput
	loaded  bool
	loading bool
	errText string
	width   int
	height  int
}

func New(port Port) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Green)

	return Model{port: port, body: vp, spinner: sp}
}

// Init is a no-op: the dashboard only loads on demand, once an admin is
// logged in.
func (m Model) Init() tea.Cmd { return nil }

// Refresh reloads the dashboard counters.
func (m *Model) Refresh() tea.Cmd {
	if m.port == nil {
		return nil
	}
	m.loading = true
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = m.width - 4
		m.body.Height = m.height - 4
		if m.loaded {
			m.body.SetContent(m.renderDashboard())
		}

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.loaded = false
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.loaded = true
		m.errText = ""
		m.out = msg.Out
		m.body.SetContent(m.renderDashboard())
		m.body.GotoTop()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var vCmd tea.Cmd
	m.body, vCmd = m.body.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Memuat dasbor…")
	}
	if m.errText != "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Bad.Render("Dasbor: "+m.errText)+"\n"+
				theme.Muted.Render("masuk sebagai admin lewat palet (admin:masuk)"))
	}
	if !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("Tekan d untuk memuat dasbor (perlu login admin)"))
	}
	return m.body.View()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderDashboard() string {
	out := m.out
	var sb strings.Builder

	cards := []string{
		theme.Card.Render(theme.Title.Render("Kunjungan") + "\n" + fmt.Sprintf("%d", out.TotalVisits)),
	}
	for _, category := range []string{"SD", "SMP", "SMA", "Lainnya"} {
		if count, ok := out.CategoryCounts[category]; ok {
			cards = append(cards, theme.Card.Render(theme.Title.Render(category)+"\n"+fmt.Sprintf("%d buku", count)))
		}
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n\n")

	sb.WriteString(theme.Title.Render("7 hari terakhir") + "\n")
	dayMax := maxOf(out.Daily[:])
	for i, count := range out.Daily {
		label := fmt.Sprintf("H-%d", 6-i)
		if i == 6 {
			label = "ini"
		}
		sb.WriteString(fmt.Sprintf(" %-4s %s %d\n", label, bar(count, dayMax, 30), count))
	}

	sb.WriteString("\n" + theme.Title.Render("Per bulan (tahun ini)") + "\n")
	monthMax := maxOf(out.Monthly[:])
	for i, count := range out.Monthly {
		sb.WriteString(fmt.Sprintf(" %-4s %s %d\n", monthLabels[i], bar(count, monthMax, 30), count))
	}

	if len(out.Yearly) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Per tahun") + "\n")
		counts := make([]int, len(out.Yearly))
		for i, y := range out.Yearly {
			counts[i] = y.Count
		}
		yearMax := maxOf(counts)
		for _, y := range out.Yearly {
			sb.WriteString(fmt.Sprintf(" %-4d %s %d\n", y.Year, bar(y.Count, yearMax, 30), y.Count))
		}
	}

	if len(out.Visitors) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Pengunjung terakhir") + "\n")
		start := len(out.Visitors) - 10
		if start < 0 {
			start = 0
		}
		for _, v := range out.Visitors[start:] {
			sb.WriteString(fmt.Sprintf(" %-24s %-12s %s\n", v.Name, v.Gender, theme.Muted.Render(v.LoginTime)))
		}
	}

	return sb.String()
}

func bar(count, max, width int) string {
	if max <= 0 || count <= 0 {
		return theme.Muted.Render(strings.Repeat("·", 1))
	}
	n := count * width / max
	if n < 1 {
		n = 1
	}
	return lipgloss.NewStyle().Foreground(theme.Sapphire).Render(strings.Repeat("█", n))
}

func maxOf(values []int) int {
	max := 0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Dashboard(context.Background())
		return LoadedMsg{Out: out, Err: err}
	}
}
