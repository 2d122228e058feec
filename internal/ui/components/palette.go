package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pustaka/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

const maxHintRows = 6

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Peach).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

type hint struct {
	usage string
	desc  string
}

// Usages must stay in sync with the switch in app/model.go executePalette.
var paletteHints = []hint{
	{"kunjungan <nama> <L|P>", "catat pengunjung"},
	{"katalog:jenjang <SD|SMP|SMA|Lainnya|semua>", "saring katalog"},
	{"buku:buka", "buka buku terpilih"},
	{"buku:hapus", "hapus buku terpilih"},
	{"baca:halaman <n>", "pindah halaman"},
	{"baca:tanda", "tandai halaman ini"},
	{"baca:lompat <halaman>", "lompat ke penanda"},
	{"admin:masuk <email> <sandi>", "masuk admin"},
	{"admin:keluar", "tutup sesi admin"},
	{"admin:status", "cek sesi admin"},
	{"dasbor:muat", "muat statistik"},
	{"dasbor:ekspor <berkas.xlsx>", "ekspor statistik"},
	{"plugin:laporan <plugin> <laporan>", "jalankan laporan"},
	{"indeks:bangun", "bangun ulang indeks"},
}

// Palette is a command-palette overlay backed by bubbles/textinput.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
}

// NewPalette creates an inactive Palette ready to be opened.
func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "ketik perintah…"
	ti.CharLimit = 256
	return Palette{input: ti}
}

// Visible reports whether the palette is currently shown.
func (p Palette) Visible() bool { return p.visible }

// Open shows the palette, clears the input, and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	return p.input.Focus()
}

// SetWidth sets the render width for the overlay.
func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// matchHints filters the hint table on a case-insensitive substring of
// the command so "admin" finds every admin:* entry.
func matchHints(query string) []hint {
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]hint, 0, maxHintRows)
	for _, h := range paletteHints {
		if query != "" && !strings.Contains(h.usage, query) {
			continue
		}
		out = append(out, h)
		if len(out) == maxHintRows {
			break
		}
	}
	return out
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Palet Perintah") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")

	if matching := matchHints(p.input.Value()); len(matching) > 0 {
		usageW := 0
		for _, h := range matching {
			if len(h.usage) > usageW {
				usageW = len(h.usage)
			}
		}
		sb.WriteString("\n")
		for _, h := range matching {
			pad := strings.Repeat(" ", usageW-len(h.usage)+2)
			sb.WriteString(hintStyle.Render("  "+h.usage+pad+h.desc) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
