package ui

import (
	"strings"

	"github.com/abelbrown/noticias/internal/news"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// modalSize returns the outer modal size for a terminal of width x height.
func modalSize(width, height int) (int, int) {
	w := width * 4 / 5
	if w > 90 {
		w = 90
	}
	if w < minCardWidth {
		w = minCardWidth
	}
	h := height * 4 / 5
	if h < 8 {
		h = 8
	}
	return w, h
}

// modalBodySize is the viewport size inside a modal of outer size w x h,
// leaving room for the border (2), padding (4 wide, 2 tall), the title and
// the footer hint.
func modalBodySize(w, h int) (int, int) {
	bw, bh := w-6, h-4-3
	if bw < 1 {
		bw = 1
	}
	if bh < 1 {
		bh = 1
	}
	return bw, bh
}

// modalContent is the scrollable body of the detail view.
func modalContent(r news.Record, width int) string {
	var b strings.Builder
	meta := r.Fecha
	if r.EsPremium {
		meta = PremiumBadge.Render("PREMIUM") + " " + meta
	}
	b.WriteString(CardMeta.Render(meta))
	b.WriteString("\n")
	if r.Imagen != "" {
		b.WriteString(CardMeta.Render(r.Imagen))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Render(r.Descripcion))
	return b.String()
}

// newModalViewport builds the viewport for r inside a terminal of the given
// size.
func newModalViewport(r news.Record, width, height int) viewport.Model {
	bw, bh := modalBodySize(modalSize(width, height))
	vp := viewport.New(bw, bh)
	vp.SetContent(modalContent(r, bw))
	return vp
}

// RenderModal draws the selected record centered in a width x height area.
// It returns "" while the selection is hidden.
func RenderModal(sel Selection, vp viewport.Model, width, height int) string {
	if !sel.Visible || sel.Noticia == nil {
		return ""
	}
	w, h := modalSize(width, height)
	bw, bh := modalBodySize(w, h)
	vp.Width, vp.Height = bw, bh

	title := ModalTitle.Width(bw).Render(sel.Noticia.Titulo)
	hint := StatusBarKey.Render("Esc") + StatusBarText.Render(":cerrar ") +
		StatusBarKey.Render("j/k") + StatusBarText.Render(":desplazar")

	box := Modal.Width(w - 2).Render(lipgloss.JoinVertical(lipgloss.Left, title, vp.View(), hint))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
