package reader

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	readerdto "pustaka/internal/modules/reader/dto"
	"pustaka/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the reader use-case.
type Port interface {
	OpenBook(ctx context.Context, input readerdto.OpenBookInput) (readerdto.SessionOutput, error)
	TurnPage(ctx context.Context, input readerdto.TurnPageInput) (readerdto.SessionOutput, error)
	AddBookmark(ctx context.Context, input readerdto.AddBookmarkInput) ([]int, error)
	JumpToBookmark(ctx context.Context, input readerdto.TurnPageInput) (readerdto.SessionOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// OpenedMsg is sent when a reading session changes state, whether from
// opening a book, turning a page, or jumping to a bookmark.
type OpenedMsg struct {
	Session readerdto.SessionOutput
	Err     error
}

// BookmarkedMsg is sent when a bookmark toggle finishes.
type BookmarkedMsg struct {
	Bookmarks []int
	Err       error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the self-contained Bubble Tea model for the Baca tab.
type Model struct {
	port     Port
	viewport viewport.Model
	spinner  spinner.Model
	session  readerdto.SessionOutput
	loading  bool
	width    int
	height   int
}

// New creates a reader Model backed by the given port.
func New(port Port) Model {
	vp := viewport.New(0, 0)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:     port,
		viewport: vp,
		spinner:  sp,
	}
}

// Init is a no-op: the reader is idle until Open is called.
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.session.BookID != "" {
			m.viewport.SetContent(m.renderContent())
		}

	case OpenedMsg:
		m.loading = false
		if msg.Session.BookID != "" {
			m.session = msg.Session
		}
		if msg.Err != nil && msg.Session.BookID == "" {
			m.viewport.SetContent(theme.Bad.Render("Gagal: " + msg.Err.Error()))
			return m, nil
		}
		m.viewport.SetContent(m.renderContent())
		m.viewport.GotoTop()

	case BookmarkedMsg:
		if msg.Err == nil {
			m.session.Bookmarks = msg.Bookmarks
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	header := m.renderHeader()
	headerH := lipgloss.Height(header)
	footerH := 1

	vpHeight := m.height - headerH - footerH
	if vpHeight < 1 {
		vpHeight = 1
	}
	vpView := m.viewportAt(vpHeight)

	if m.loading {
		loading := lipgloss.Place(m.width, vpHeight, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Membuka buku…")
		return lipgloss.JoinVertical(lipgloss.Left, header, loading)
	}

	footer := m.renderFooter()
	return lipgloss.JoinVertical(lipgloss.Left, header, vpView, footer)
}

// Open starts a reading session. The returned Cmd produces an OpenedMsg.
func (m *Model) Open(bookID string) tea.Cmd {
	m.loading = true
	return tea.Batch(m.openCmd(bookID), m.spinner.Tick)
}

// Retry reopens the current book after a render failure.
func (m *Model) Retry() tea.Cmd {
	if m.session.BookID == "" {
		return nil
	}
	return m.Open(m.session.BookID)
}

// NextPage advances one page.
func (m Model) NextPage() tea.Cmd {
	if !m.viewing() {
		return nil
	}
	return m.turnCmd(m.session.Page + 1)
}

// PrevPage goes back one page (floor: 0).
func (m Model) PrevPage() tea.Cmd {
	if !m.viewing() {
		return nil
	}
	page := m.session.Page - 1
	if page < 0 {
		page = 0
	}
	return m.turnCmd(page)
}

// TurnTo moves directly to the given zero-based page.
func (m Model) TurnTo(page int) tea.Cmd {
	if m.session.BookID == "" {
		return nil
	}
	return m.turnCmd(page)
}

// ToggleBookmark marks the current page.
func (m Model) ToggleBookmark() tea.Cmd {
	if !m.viewing() {
		return nil
	}
	return func() tea.Msg {
		marks, err := m.port.AddBookmark(context.Background(), readerdto.AddBookmarkInput{
			BookID: m.session.BookID,
			Page:   m.session.Page,
		})
		return BookmarkedMsg{Bookmarks: marks, Err: err}
	}
}

// JumpTo moves the session to a bookmarked page.
func (m Model) JumpTo(page int) tea.Cmd {
	if m.session.BookID == "" {
		return nil
	}
	return func() tea.Msg {
		session, err := m.port.JumpToBookmark(context.Background(), readerdto.TurnPageInput{
			BookID: m.session.BookID,
			Page:   page,
		})
		return OpenedMsg{Session: session, Err: err}
	}
}

// HasBook reports whether a session is loaded.
func (m Model) HasBook() bool { return m.session.BookID != "" }

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) viewing() bool {
	return m.session.BookID != "" && m.session.State == "viewing"
}

func (m *Model) resize() {
	m.viewport.Width = m.width
	// header ≈ 2 lines, footer = 1 line
	m.viewport.Height = m.height - 3
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
}

// viewportAt renders the viewport content at a temporary height without
// mutating the persisted viewport.Height set by resize().
func (m Model) viewportAt(h int) string {
	vp := m.viewport
	vp.Height = h
	return vp.View()
}

func (m Model) renderHeader() string {
	if m.session.BookID == "" {
		return theme.Title.Render("Baca") +
			theme.Muted.Render("  Buka buku dari tab Katalog (enter)") + "\n"
	}
	s := m.session
	parts := []string{
		theme.Title.Render(s.Title),
		theme.Muted.Render("[" + s.Category + "]"),
		theme.Muted.Render(fmt.Sprintf("hlm %d/%d", s.Page+1, s.TotalPages)),
		theme.Muted.Render(fmt.Sprintf("%d%%", s.Percent)),
	}
	switch s.State {
	case "fetch_error":
		parts = append(parts, theme.Bad.Render("gagal memuat"))
	case "render_error":
		parts = append(parts, theme.Bad.Render("gagal menampilkan (r: ulangi)"))
	}
	if len(s.Bookmarks) > 0 {
		marks := make([]string, len(s.Bookmarks))
		for i, p := range s.Bookmarks {
			marks[i] = strconv.Itoa(p + 1)
		}
		parts = append(parts, theme.Muted.Render("tanda: "+strings.Join(marks, ",")))
	}
	nav := theme.Muted.Render("  ←/→: halaman  b: tanda  ↑/↓: gulir")
	return strings.Join(parts, "  ") + nav + "\n"
}

func (m Model) renderFooter() string {
	return theme.Muted.Render(fmt.Sprintf("%.0f%%", m.viewport.ScrollPercent()*100))
}

func (m Model) renderContent() string {
	s := m.session
	switch s.State {
	case "fetch_error":
		return theme.Bad.Render("Buku tidak dapat dimuat.")
	case "render_error":
		return theme.Bad.Render("Halaman tidak dapat ditampilkan. Tekan r untuk mengulang.")
	}
	if s.Content == "" {
		return theme.Muted.Render("(halaman kosong)")
	}
	return s.Content
}

func (m Model) openCmd(bookID string) tea.Cmd {
	return func() tea.Msg {
		session, err := m.port.OpenBook(context.Background(), readerdto.OpenBookInput{BookID: bookID})
		return OpenedMsg{Session: session, Err: err}
	}
}

func (m Model) turnCmd(page int) tea.Cmd {
	return func() tea.Msg {
		session, err := m.port.TurnPage(context.Background(), readerdto.TurnPageInput{
			BookID: m.session.BookID,
			Page:   page,
		})
		return OpenedMsg{Session: session, Err: err}
	}
}
