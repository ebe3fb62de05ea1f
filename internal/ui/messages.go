// Package ui provides the Bubble Tea screen that lists news cards and shows
// the selected one in a modal.
package ui

import "github.com/abelbrown/noticias/internal/news"

// NewsLoaded is sent when a load started by the App finishes.
// Err is a provider failure: Records is empty and nothing is committed.
// Warn carries per-record normalization problems; Records is still complete.
type NewsLoaded struct {
	Seq     int
	Records []news.Record
	Err     error
	Warn    error
}

// SelectNews asks the App to open the modal on the record with ID.
type SelectNews struct {
	ID news.ID
}

// DismissNews asks the App to hide the modal.
type DismissNews struct{}
