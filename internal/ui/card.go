package ui

import (
	"path"
	"strings"

	"github.com/abelbrown/noticias/internal/news"
	"github.com/charmbracelet/lipgloss"
)

// minCardWidth keeps cards legible on very narrow terminals.
const minCardWidth = 24

// RenderCard renders one news record as a bordered card of the given outer
// width.
func RenderCard(r news.Record, selected bool, width int) string {
	if width < minCardWidth {
		width = minCardWidth
	}
	style := Card
	if selected {
		style = SelectedCard
	}
	// Border (2) and horizontal padding (2) come out of the outer width.
	inner := width - 4

	title := CardTitle.Render(r.Titulo)
	if r.EsPremium {
		title = PremiumBadge.Render("PREMIUM") + " " + title
	}

	meta := []string{r.Fecha}
	if r.Imagen != "" {
		meta = append(meta, imageLabel(r.Imagen))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(inner).Render(title),
		CardMeta.Width(inner).Render(strings.Join(meta, " · ")),
		CardBody.Width(inner).Render(r.DescripcionCorta),
	)
	return style.Width(width - 2).Render(body)
}

// imageLabel shortens an image URL or path to its file name.
func imageLabel(ref string) string {
	ref = strings.TrimRight(ref, "/")
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	return "imagen: " + path.Base(ref)
}

// visibleRange returns the half-open range of cards to draw so that the
// cursor card is on screen within height lines.
func visibleRange(heights []int, cursor, height int) (int, int) {
	if len(heights) == 0 {
		return 0, 0
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(heights) {
		cursor = len(heights) - 1
	}

	// Walk back from the cursor while earlier cards still fit.
	from := cursor
	used := heights[cursor]
	for from > 0 && used+heights[from-1] <= height {
		from--
		used += heights[from]
	}
	// Fill the remaining space below the cursor.
	to := cursor + 1
	for to < len(heights) && used+heights[to] <= height {
		used += heights[to]
		to++
	}
	return from, to
}
