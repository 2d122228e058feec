package catalog

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	catalogdto "pustaka/internal/modules/catalog/dto"
	"pustaka/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CatalogPort interface {
	ListBooks(ctx context.Context, input catalogdto.ListBooksInput) ([]catalogdto.BookOutput, error)
	GetBook(ctx context.Context, id string) (catalogdto.BookDetailOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// Messages stay package-private; the app model routes them through
// Update without inspecting them.

type booksLoadedMsg struct {
	books []catalogdto.BookOutput
	err   error
}

type detailLoadedMsg struct {
	detail catalogdto.BookDetailOutput
	err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type bookItem struct {
	book catalogdto.BookOutput
}

func (i bookItem) Title() string       { return i.book.Title }
func (i bookItem) Description() string { return i.book.Category + "  " + i.book.Author }
func (i bookItem) FilterValue() string { return i.book.Title + " " + i.book.Author }

// ─── model ───────────────────────────────────────────────────────────────────

// levels drives the filter strip above the list. Index 0 is "all".
var levels = []string{"", "SD", "SMP", "SMA", "Lainnya"}

type Model struct {
	port     CatalogPort
	list     list.Model
	detail   catalogdto.BookDetailOutput
	preview  viewport.Model
	spinner  spinner.Model
	levelIdx int
	loading  bool
	loadErr  error
	width    int
	height   int
}

func New(port CatalogPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Katalog"
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
		port:    port,
		list:    l,
		preview: vp,
		spinner: sp,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchBooks(), m.spinner.Tick)
}

// Reload refreshes the book list, keeping the active level filter.
func (m *Model) Reload() tea.Cmd {
	m.loading = true
	m.loadErr = nil
	return tea.Batch(m.fetchBooks(), m.spinner.Tick)
}

// SetCategory narrows the list to one school level; empty shows all.
// Unknown labels fall back to showing everything.
func (m *Model) SetCategory(category string) tea.Cmd {
	m.levelIdx = 0
	for i, lvl := range levels {
		if strings.EqualFold(lvl, category) {
			m.levelIdx = i
			break
		}
	}
	return m.Reload()
}

// CycleCategory advances the level strip by one position and reloads.
func (m *Model) CycleCategory() tea.Cmd {
	m.levelIdx = (m.levelIdx + 1) % len(levels)
	return m.Reload()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case booksLoadedMsg:
		return m.onBooksLoaded(msg)

	case detailLoadedMsg:
		if msg.err == nil {
			m.detail = msg.detail
			m.preview.SetContent(m.renderDetail())
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.loading {
		return m, nil
	}
	return m.forwardToPanes(msg)
}

func (m Model) onBooksLoaded(msg booksLoadedMsg) (Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.loadErr = msg.err
		return m, nil
	}
	items := make([]list.Item, len(msg.books))
	for i, b := range msg.books {
		items[i] = bookItem{book: b}
	}
	cmds := []tea.Cmd{m.list.SetItems(items)}
	if len(msg.books) > 0 {
		cmds = append(cmds, m.fetchDetail(msg.books[0].ID))
	} else {
		m.detail = catalogdto.BookDetailOutput{}
		m.preview.SetContent(m.renderDetail())
	}
	return m, tea.Batch(cmds...)
}

// forwardToPanes hands residual input to the list and the preview, and
// refreshes the detail pane when the list selection moved.
func (m Model) forwardToPanes(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	prevIdx := m.list.Index()
	var lCmd tea.Cmd
	m.list, lCmd = m.list.Update(msg)
	cmds = append(cmds, lCmd)
	if m.list.Index() != prevIdx {
		if item, ok := m.list.SelectedItem().(bookItem); ok {
			cmds = append(cmds, m.fetchDetail(item.book.ID))
		}
	}

	var vCmd tea.Cmd
	m.preview, vCmd = m.preview.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Memuat katalog…")
	}
	if m.loadErr != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Bad.Render("Katalog gagal dimuat: "+m.loadErr.Error()))
	}

	listW, detailW := m.split()

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.levelStrip(),
		m.list.View(),
	)
	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(left)

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedBookID returns the current selection's book ID, if any.
func (m Model) SelectedBookID() (string, bool) {
	if item, ok := m.list.SelectedItem().(bookItem); ok {
		return item.book.ID, true
	}
	return "", false
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) split() (listW, detailW int) {
	listW = m.width * 4 / 10
	return listW, m.width - listW
}

func (m *Model) resize() {
	listW, detailW := m.split()
	m.list.SetSize(listW, m.height-1)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

// levelStrip renders the school-level filter row, highlighting the
// active level.
func (m Model) levelStrip() string {
	parts := make([]string, len(levels))
	for i, lvl := range levels {
		label := lvl
		if label == "" {
			label = "Semua"
		}
		if i == m.levelIdx {
			parts[i] = theme.Hot.Render("[" + label + "]")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderDetail() string {
	d := m.detail
	if d.ID == "" {
		return theme.Muted.Render("Pilih buku untuk melihat detail")
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(d.Title) + "\n\n")
	sb.WriteString(theme.Muted.Render("id:      ") + d.ID + "\n")
	sb.WriteString(theme.Muted.Render("penulis: ") + d.Author + "\n")
	sb.WriteString(theme.Muted.Render("jenjang: ") + d.Category + "\n")
	if d.PDFPath != "" {
		sb.WriteString(theme.Muted.Render("pdf:     ") + d.PDFPath + "\n")
	}
	if d.CoverPath != "" {
		sb.WriteString(theme.Muted.Render("sampul:  ") + d.CoverPath + "\n")
	}
	if d.AddedAt != "" {
		sb.WriteString(theme.Muted.Render("masuk:   ") + d.AddedAt + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: buka di tab Baca  c: ganti jenjang"))
	return sb.String()
}

func (m Model) fetchBooks() tea.Cmd {
	category := levels[m.levelIdx]
	return func() tea.Msg {
		books, err := m.port.ListBooks(context.Background(), catalogdto.ListBooksInput{Category: category})
		return booksLoadedMsg{books: books, err: err}
	}
}

func (m Model) fetchDetail(id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := m.port.GetBook(context.Background(), id)
		return detailLoadedMsg{detail: detail, err: err}
	}
}
