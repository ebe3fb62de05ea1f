package ui

import (
	"testing"

	"github.com/abelbrown/noticias/internal/news"
)

func TestSelectionTransitions(t *testing.T) {
	s := Hidden()
	if s.Visible || s.Noticia != nil {
		t.Fatalf("Hidden() = %+v", s)
	}
	if _, ok := s.ID(); ok {
		t.Error("hidden selection has no id")
	}

	s = s.Select(news.Record{ID: "1", Titulo: "Uno"})
	if id, ok := s.ID(); !ok || id != "1" {
		t.Errorf("after Select(1): id=%q ok=%v", id, ok)
	}

	s = s.Select(news.Record{ID: "2"})
	if id, _ := s.ID(); id != "2" || !s.Visible {
		t.Errorf("Visible(1) -> Select(2) = %+v", s)
	}

	s = s.Dismiss()
	if s != Hidden() {
		t.Errorf("Dismiss() = %+v, want Hidden", s)
	}
}

func TestSelectionCopiesRecord(t *testing.T) {
	r := news.Record{ID: "1", Titulo: "Uno"}
	s := Hidden().Select(r)
	r.Titulo = "cambiado"
	if s.Noticia.Titulo != "Uno" {
		t.Error("Select should hold its own copy of the record")
	}
}
