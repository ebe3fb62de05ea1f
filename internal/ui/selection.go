package ui

import "github.com/abelbrown/noticias/internal/news"

// Selection is the modal state: Hidden, or Visible with one record.
type Selection struct {
	Noticia *news.Record
	Visible bool
}

// Hidden is the initial selection.
func Hidden() Selection {
	return Selection{}
}

// Select shows r, replacing any record already shown.
func (s Selection) Select(r news.Record) Selection {
	return Selection{Noticia: &r, Visible: true}
}

// Dismiss hides the modal.
func (s Selection) Dismiss() Selection {
	return Hidden()
}

// ID returns the selected record's id, if any.
func (s Selection) ID() (news.ID, bool) {
	if !s.Visible || s.Noticia == nil {
		return "", false
	}
	return s.Noticia.ID, true
}
