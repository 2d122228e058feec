package reports

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	plugindto "pustaka/internal/modules/plugin/dto"
	"pustaka/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the plugin use-case.
type Port interface {
	ListReports(ctx context.Context, pluginName string) ([]plugindto.ReportInfo, error)
	Render(ctx context.Context, input plugindto.RenderInput) (plugindto.RenderOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type reportsLoadedMsg struct {
	reports []plugindto.ReportInfo
	err     error
}

type renderDoneMsg struct {
	out plugindto.RenderOutput
	err error
}

// ─── list item ───────────────────────────────────────────────────────────────

type reportItem struct{ report plugindto.ReportInfo }

func (i reportItem) Title() string       { return i.report.Title }
func (i reportItem) Description() string { return "[" + i.report.Format + "] " + i.report.Description }
func (i reportItem) FilterValue() string { return i.report.ID + " " + i.report.Title }

// ─── model ───────────────────────────────────────────────────────────────────

// The tab walks three panes: type a plugin name, pick one of its
// reports, read the rendered output. esc steps back one pane.
type pane int

const (
	paneInput pane = iota
	paneReports
	paneOutput
)

type Model struct {
	port       Port
	pane       pane
	nameInput  textinput.Model
	reportList list.Model
	output     viewport.Model
	spinner    spinner.Model
	lastOut    plugindto.RenderOutput
	lastID     string
	loading    bool
	width      int
	height     int
}

func New(port Port) Model {
	ti := textinput.New()
	ti.Placeholder = "nama plugin (mis. referensi)"
	ti.Focus()
	ti.CharLimit = 80

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Laporan"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:       port,
		pane:       paneInput,
		nameInput:  ti,
		reportList: l,
		output:     vp,
		spinner:    sp,
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

// Filtering reports whether the report list's search filter is active.
func (m Model) Filtering() bool {
	return m.reportList.FilterState() == list.Filtering
}

// RenderReport renders the named report directly, bypassing the pane flow.
// Used by the command palette.
func (m *Model) RenderReport(pluginName, reportID string) tea.Cmd {
	m.loading = true
	m.nameInput.SetValue(pluginName)
	return tea.Batch(m.renderCmd(pluginName, reportID), m.spinner.Tick)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reportList.SetSize(m.width*4/10, m.height-3)
		m.output.Width = m.width - 4
		m.output.Height = m.height - 4
		return m, nil

	case reportsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.showError("Gagal memuat laporan: " + msg.err.Error())
		}
		items := make([]list.Item, len(msg.reports))
		for i, r := range msg.reports {
			items[i] = reportItem{report: r}
		}
		m.pane = paneReports
		return m, m.reportList.SetItems(items)

	case renderDoneMsg:
		m.loading = false
		if msg.err != nil {
			return m.showError("Gagal: " + msg.err.Error())
		}
		m.lastOut = msg.out
		m.lastID = msg.out.ReportID
		m.output.SetContent(m.renderOutput())
		m.output.GotoTop()
		m.pane = paneOutput
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	switch m.pane {
	case paneInput:
		return m.updateInput(msg)
	case paneReports:
		return m.updateReports(msg)
	default:
		return m.updateOutput(msg)
	}
}

func (m Model) updateInput(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" || m.port == nil {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.loadReportsCmd(name), m.spinner.Tick)
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) updateReports(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			item, ok := m.reportList.SelectedItem().(reportItem)
			if !ok || m.port == nil {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(
				m.renderCmd(strings.TrimSpace(m.nameInput.Value()), item.report.ID),
				m.spinner.Tick,
			)
		case "esc":
			m.pane = paneInput
			m.nameInput.Focus()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.reportList, cmd = m.reportList.Update(msg)
	return m, cmd
}

func (m Model) updateOutput(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.pane = paneReports
			return m, nil
		case "r":
			// Re-render the same report; the snapshot may have moved on.
			if m.lastID == "" || m.port == nil {
				return m, nil
			}
			m.loading = true
			return m, tea.Batch(
				m.renderCmd(strings.TrimSpace(m.nameInput.Value()), m.lastID),
				m.spinner.Tick,
			)
		}
	}
	var cmd tea.Cmd
	m.output, cmd = m.output.Update(msg)
	return m, cmd
}

func (m Model) showError(text string) (Model, tea.Cmd) {
	m.output.SetContent(theme.Bad.Render(text))
	m.output.GotoTop()
	m.pane = paneOutput
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Menyiapkan laporan…")
	}

	header := m.renderHeader()
	bodyH := m.height - lipgloss.Height(header)
	if bodyH < 1 {
		bodyH = 1
	}

	var body string
	switch m.pane {
	case paneInput:
		body = m.viewInput(bodyH)
	case paneReports:
		body = m.viewReports(bodyH)
	default:
		body = m.viewOutput(bodyH)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

func (m Model) viewInput(bodyH int) string {
	hint := theme.Muted.Render("Masukkan nama plugin lalu tekan enter untuk melihat laporannya.\n\n")
	input := lipgloss.NewStyle().Width(m.width - 4).Render(m.nameInput.View())
	return lipgloss.Place(m.width, bodyH, lipgloss.Left, lipgloss.Center, hint+input)
}

func (m Model) viewReports(bodyH int) string {
	listW := m.width * 4 / 10
	listPane := lipgloss.NewStyle().Width(listW).Height(bodyH).Render(m.reportList.View())
	hintPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).BorderForeground(theme.Surface1).
		Background(theme.Mantle).Width(m.width - listW - 2).Height(bodyH - 2).
		Render(theme.Muted.Render("enter: tampilkan  esc: ganti plugin"))
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, hintPane)
}

func (m Model) viewOutput(bodyH int) string {
	hint := theme.Muted.Render("esc: daftar  r: render ulang  ↑/↓: gulir\n")
	m.output.Height = bodyH - lipgloss.Height(hint)
	if m.output.Height < 1 {
		m.output.Height = 1
	}
	return lipgloss.JoinVertical(lipgloss.Left, hint, m.output.View())
}

func (m Model) renderHeader() string {
	name := m.nameInput.Value()
	if name == "" {
		name = "(belum dipilih)"
	}
	return theme.Title.Render("Laporan") + "  " +
		theme.Muted.Render("plugin: "+name) + "\n"
}

func (m Model) renderOutput() string {
	out := m.lastOut
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(out.PluginName+":"+out.ReportID) + "  " +
		theme.Muted.Render("["+out.Format+"]") + "\n\n")
	sb.WriteString(out.Content)
	return sb.String()
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) loadReportsCmd(pluginName string) tea.Cmd {
	return func() tea.Msg {
		reports, err := m.port.ListReports(context.Background(), pluginName)
		return reportsLoadedMsg{reports: reports, err: err}
	}
}

func (m Model) renderCmd(pluginName, reportID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Render(context.Background(), plugindto.RenderInput{
			PluginName: pluginName,
			ReportID:   reportID,
		})
		return renderDoneMsg{out: out, err: err}
	}
}
