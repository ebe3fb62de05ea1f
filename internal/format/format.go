// Package format holds the pure text and time helpers used to turn raw news
// records into display strings.
package format

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Ellipsis is appended by Truncate.
const Ellipsis = "..."

// ErrUnparseableTime is returned by ParseTime when no known layout matches.
var ErrUnparseableTime = errors.New("unparseable time")

// TitleCase upper-cases the first rune of every space-delimited word.
// Only single spaces are treated as boundaries, so runs of spaces produce
// empty words which pass through untouched.
func TitleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError && size == 1 {
			continue
		}
		words[i] = strings.ToUpper(string(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// ElapsedMinutes returns the whole minutes between t and now, floored.
// A t in the future yields a negative count rounded toward negative infinity.
func ElapsedMinutes(now, t time.Time) int {
	ms := now.Sub(t).Milliseconds()
	const perMinute = int64(time.Minute / time.Millisecond)
	m := ms / perMinute
	if ms%perMinute != 0 && ms < 0 {
		m--
	}
	return int(m)
}

// RelativeMinutes renders an elapsed minute count for a card.
func RelativeMinutes(minutes int) string {
	return fmt.Sprintf("Hace %d minutos", minutes)
}

// Truncate returns the first n runes of s followed by Ellipsis.
// The marker is appended even when s is already shorter than n.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s + Ellipsis
	}
	runes := []rune(s)
	return string(runes[:n]) + Ellipsis
}
