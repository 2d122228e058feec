package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	accountdto "pustaka/internal/modules/account/dto"
	activitydto "pustaka/internal/modules/activity/dto"
	catalogdto "pustaka/internal/modules/catalog/dto"
	apperrors "pustaka/internal/platform/errors"
	"pustaka/internal/ui/components"
	"pustaka/internal/ui/theme"
	catalogview "pustaka/internal/ui/views/catalog"
	dashboardview "pustaka/internal/ui/views/dashboard"
	readerview "pustaka/internal/ui/views/reader"
	reportsview "pustaka/internal/ui/views/reports"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type catalogPort interface {
	ListBooks(ctx context.Context, input catalogdto.ListBooksInput) ([]catalogdto.BookOutput, error)
	GetBook(ctx context.Context, id string) (catalogdto.BookDetailOutput, error)
	DeleteBook(ctx context.Context, id string) error
	Reindex(ctx context.Context, input catalogdto.ReindexInput) error
}

type accountPort interface {
	RegisterVisitor(ctx context.Context, input accountdto.RegisterVisitorInput) (accountdto.VisitorOutput, error)
	Login(ctx context.Context, input accountdto.LoginInput) (accountdto.SessionOutput, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) (accountdto.SessionOutput, error)
}

type activityPort interface {
	Dashboard(ctx context.Context) (activitydto.DashboardOutput, error)
	Export(ctx context.Context, input activitydto.ExportInput) (string, error)
	Reindex(ctx context.Context, input activitydto.ReindexInput) error
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabCatalog tabID = iota
	tabReader
	tabDashboard
	tabReports
	tabCount
)

var tabLabels = [tabCount]string{
	"Katalog", "Baca", "Dasbor", "Laporan",
}

// ─── async messages ───────────────────────────────────────────────────────────

type adminStatusMsg struct {
	session accountdto.SessionOutput
	err     error
}

type loggedInMsg struct {
	session accountdto.SessionOutput
	err     error
}

type loggedOutMsg struct{ err error }

type visitRecordedMsg struct {
	visitor accountdto.VisitorOutput
	err     error
}

type exportDoneMsg struct {
	path string
	err  error
}

type bookDeletedMsg struct{ err error }

type reindexDoneMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
	Enter    key.Binding
	Bookmark key.Binding
	Level    key.Binding
	Dash     key.Binding
	PrevPg   key.Binding
	NextPg   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "tab berikut")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "bantuan")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palet")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "keluar")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "buka")),
		Bookmark: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "tanda halaman")),
		Level:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "ganti jenjang")),
		Dash:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "muat dasbor")),
		PrevPg:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "halaman")),
		NextPg:   key.NewBinding(key.WithKeys("right"), key.WithHelp("←/→", "halaman")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Enter, k.Bookmark},
		{k.Level, k.PrevPg, k.NextPg, k.Dash},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the admin
// session indicator, the global help overlay, and the command palette.
// All business logic is delegated to port interfaces; all rendering is
// delegated to sub-views.
type Model struct {
	libraryPath string

	// ports used at this orchestration level only
	catalog  catalogPort
	account  accountPort
	activity activityPort

	// sub-views (one per tab)
	catalogView   catalogview.Model
	readerView    readerview.Model
	dashboardView dashboardview.Model
	reportsView   reportsview.Model

	// global UI state
	activeTab  tabID
	keys       keyMap
	help       help.Model
	showHelp   bool
	palette    components.Palette
	adminEmail string
	status     string
	width      int
	height     int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	libraryPath string,
	catalog catalogPort,
	reader readerview.Port,
	account accountPort,
	activity activityPort,
	plugin reportsview.Port,
) Model {
	return Model{
		libraryPath:   libraryPath,
		catalog:       catalog,
		account:       account,
		activity:      activity,
		catalogView:   catalogview.New(catalog),
		readerView:    readerview.New(reader),
		dashboardView: dashboardview.New(activity),
		reportsView:   reportsview.New(plugin),
		activeTab:     tabCatalog,
		keys:          defaultKeys(),
		help:          help.New(),
		palette:       components.NewPalette(),
		status:        "siap",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.catalogView.Init(),
		m.reportsView.Init(),
		m.loadAdminStatusCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case adminStatusMsg:
		if msg.err != nil {
			m.adminEmail = ""
		} else {
			m.adminEmail = msg.session.Email
		}

	case loggedInMsg:
		if msg.err != nil {
			m.status = "login gagal: " + msg.err.Error()
		} else {
			m.adminEmail = msg.session.Email
			m.status = "masuk sebagai " + msg.session.Email
		}

	case loggedOutMsg:
		if msg.err != nil {
			m.status = "logout gagal: " + msg.err.Error()
		} else {
			m.adminEmail = ""
			m.status = "sesi admin ditutup"
		}

	case visitRecordedMsg:
		if msg.err != nil {
			m.status = "kunjungan gagal dicatat: " + msg.err.Error()
		} else {
			m.status = "selamat datang, " + msg.visitor.Name
		}

	case exportDoneMsg:
		if msg.err != nil {
			m.status = "ekspor gagal: " + msg.err.Error()
		} else {
			m.status = "statistik tersimpan: " + msg.path
		}

	case bookDeletedMsg:
		if msg.err != nil {
			m.status = "hapus gagal: " + msg.err.Error()
		} else {
			m.status = "buku dihapus"
			cmds = append(cmds, m.catalogView.Reload())
		}

	case reindexDoneMsg:
		if msg.err != nil {
			m.status = "bangun indeks gagal: " + msg.err.Error()
		} else {
			m.status = "indeks dibangun ulang"
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "siap"

	case dashboardview.LoadedMsg:
		// Dashboard load failures surface in the status bar too, since
		// they usually mean the admin window expired.
		if msg.Err != nil && errors.Is(msg.Err, apperrors.ErrSessionExpired) {
			m.adminEmail = ""
			m.status = "sesi admin kedaluwarsa, silakan masuk lagi"
		}
		var cmd tea.Cmd
		m.dashboardView, cmd = m.dashboardView.Update(msg)
		return m, cmd

	// OpenedMsg bubbles up through the top level so we can auto-switch to
	// the Baca tab and update status.
	case readerview.OpenedMsg:
		if msg.Err != nil {
			m.status = "baca: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("baca: %s (hlm %d/%d, %d%%)",
				msg.Session.Title, msg.Session.Page+1, msg.Session.TotalPages, msg.Session.Percent)
			m.activeTab = tabReader
		}
		var cmd tea.Cmd
		m.readerView, cmd = m.readerView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter or text input is active.
		if m.subViewTyping() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			if m.activeTab == tabDashboard {
				cmds = append(cmds, m.dashboardView.Refresh())
			}
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "enter":
			if m.activeTab == tabCatalog {
				if id, ok := m.catalogView.SelectedBookID(); ok {
					cmds = append(cmds, m.readerView.Open(id))
				}
			}
		case "b":
			if m.activeTab == tabReader {
				cmds = append(cmds, m.readerView.ToggleBookmark())
			}
		case "r":
			if m.activeTab == tabReader {
				cmds = append(cmds, m.readerView.Retry())
			}
		case "d":
			if m.activeTab == tabDashboard {
				cmds = append(cmds, m.dashboardView.Refresh())
			}
		case "c":
			if m.activeTab == tabCatalog {
				cmds = append(cmds, m.catalogView.CycleCategory())
			}
		case "left":
			if m.activeTab == tabReader {
				cmds = append(cmds, m.readerView.PrevPage())
			}
		case "right":
			if m.activeTab == tabReader {
				cmds = append(cmds, m.readerView.NextPage())
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabCatalog:
		m.catalogView, tabCmd = m.catalogView.Update(msg)
	case tabReader:
		m.readerView, tabCmd = m.readerView.Update(msg)
	case tabDashboard:
		m.dashboardView, tabCmd = m.dashboardView.Update(msg)
	case tabReports:
		m.reportsView, tabCmd = m.reportsView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabCatalog:
		return m.catalogView.View()
	case tabReader:
		return m.readerView.View()
	case tabDashboard:
		return m.dashboardView.View()
	case tabReports:
		return m.reportsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "pustaka  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.adminEmail != "" {
		left = theme.Hot.Render("● admin "+m.adminEmail) + "  " + left
	}
	right := theme.Muted.Render("?:bantuan  tab:pindah  :::palet  q:keluar")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	selected, _ := m.catalogView.SelectedBookID()

	switch parts[0] {
	case "kunjungan":
		if len(parts) < 3 {
			m.status = "pakai: kunjungan <nama> <L|P>"
			return m, nil
		}
		gender := parts[len(parts)-1]
		name := strings.Join(parts[1:len(parts)-1], " ")
		return m, m.recordVisitCmd(name, gender)

	case "katalog:jenjang":
		if len(parts) < 2 {
			m.status = "pakai: katalog:jenjang <SD|SMP|SMA|Lainnya|semua>"
			return m, nil
		}
		level := parts[1]
		if strings.EqualFold(level, "semua") {
			level = ""
		}
		m.activeTab = tabCatalog
		return m, m.catalogView.SetCategory(level)

	case "buku:buka":
		if selected == "" {
			m.status = "tidak ada buku terpilih"
			return m, nil
		}
		return m, m.readerView.Open(selected)

	case "buku:hapus":
		if selected == "" {
			m.status = "tidak ada buku terpilih"
			return m, nil
		}
		return m, m.deleteBookCmd(selected)

	case "baca:halaman":
		if len(parts) < 2 {
			m.status = "pakai: baca:halaman <n>"
			return m, nil
		}
		page, err := strconv.Atoi(parts[1])
		if err != nil || page < 1 {
			m.status = "halaman tidak valid"
			return m, nil
		}
		m.activeTab = tabReader
		return m, m.readerView.TurnTo(page - 1)

	case "baca:tanda":
		m.activeTab = tabReader
		return m, m.readerView.ToggleBookmark()

	case "baca:lompat":
		if len(parts) < 2 {
			m.status = "pakai: baca:lompat <halaman>"
			return m, nil
		}
		page, err := strconv.Atoi(parts[1])
		if err != nil || page < 1 {
			m.status = "halaman tidak valid"
			return m, nil
		}
		m.activeTab = tabReader
		return m, m.readerView.JumpTo(page - 1)

	case "admin:masuk":
		if len(parts) < 3 {
			m.status = "pakai: admin:masuk <email> <sandi>"
			return m, nil
		}
		return m, m.loginCmd(parts[1], parts[2])

	case "admin:keluar":
		return m, m.logoutCmd()

	case "admin:status":
		return m, m.loadAdminStatusCmd()

	case "dasbor:muat":
		m.activeTab = tabDashboard
		return m, m.dashboardView.Refresh()

	case "dasbor:ekspor":
		if len(parts) < 2 {
			m.status = "pakai: dasbor:ekspor <berkas.xlsx>"
			return m, nil
		}
		return m, m.exportCmd(parts[1])

	case "plugin:laporan":
		if len(parts) < 3 {
			m.status = "pakai: plugin:laporan <plugin> <laporan>"
			return m, nil
		}
		m.activeTab = tabReports
		return m, m.reportsView.RenderReport(parts[1], parts[2])

	case "indeks:bangun":
		return m, m.reindexCmd()

	default:
		m.status = "perintah tidak dikenal: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewTyping reports whether the active tab is capturing free-form
// text, in which case global key bindings must yield.
func (m Model) subViewTyping() bool {
	switch m.activeTab {
	case tabCatalog:
		return m.catalogView.Filtering()
	case tabReports:
		return m.reportsView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.catalogView, _ = m.catalogView.Update(sz)
	m.readerView, _ = m.readerView.Update(sz)
	m.dashboardView, _ = m.dashboardView.Update(sz)
	m.reportsView, _ = m.reportsView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadAdminStatusCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.account.Status(context.Background())
		return adminStatusMsg{session: session, err: err}
	}
}

func (m Model) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		session, err := m.account.Login(context.Background(), accountdto.LoginInput{
			Email:    email,
			Password: password,
		})
		return loggedInMsg{session: session, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.account.Logout(context.Background())}
	}
}

func (m Model) recordVisitCmd(name, gender string) tea.Cmd {
	return func() tea.Msg {
		visitor, err := m.account.RegisterVisitor(context.Background(), accountdto.RegisterVisitorInput{
			Name:   name,
			Gender: expandGender(gender),
		})
		return visitRecordedMsg{visitor: visitor, err: err}
	}
}

func (m Model) exportCmd(path string) tea.Cmd {
	return func() tea.Msg {
		saved, err := m.activity.Export(context.Background(), activitydto.ExportInput{Path: path})
		return exportDoneMsg{path: saved, err: err}
	}
}

func (m Model) deleteBookCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return bookDeletedMsg{err: m.catalog.DeleteBook(context.Background(), id)}
	}
}

func (m Model) reindexCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.catalog.Reindex(context.Background(), catalogdto.ReindexInput{}); err != nil {
			return reindexDoneMsg{err: err}
		}
		return reindexDoneMsg{err: m.activity.Reindex(context.Background(), activitydto.ReindexInput{})}
	}
}

func expandGender(short string) string {
	switch strings.ToUpper(short) {
	case "L":
		return "Laki-laki"
	case "P":
		return "Perempuan"
	}
	return short
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
