package tui

import (
	"strings"
	"unicode/utf8"
)

// Matches reports whether value contains query, ignoring case. The query is
// matched literally; characters with special meaning in regular expressions
// have none here. An empty query matches everything.
func Matches(value, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}

// Filter returns the choices whose Value matches query, in their original
// order. The input slice is never modified.
func Filter(choices []Choice, query string) []Choice {
	if query == "" {
		out := make([]Choice, len(choices))
		copy(out, choices)
		return out
	}
	var out []Choice
	for _, c := range choices {
		if Matches(c.Value, query) {
			out = append(out, c)
		}
	}
	return out
}

// FilterValues is Filter for plain string lists.
func FilterValues(values []string, query string) []string {
	var out []string
	for _, v := range values {
		if Matches(v, query) {
			out = append(out, v)
		}
	}
	return out
}

// searchList is the state shared by both prompts: the immutable candidate
// list, the search query, the visible subsequence and the active index.
type searchList struct {
	candidates []Choice
	query      string
	visible    []Choice
	active     int
}

func newSearchList(candidates []Choice) searchList {
	owned := make([]Choice, len(candidates))
	copy(owned, candidates)
	return searchList{
		candidates: owned,
		visible:    Filter(owned, ""),
	}
}

// appendText extends the query and re-filters.
func (l *searchList) appendText(text string) {
	l.setQuery(l.query + text)
}

// deleteChar drops the last rune of the query and re-filters. Deleting from
// an empty query still re-filters, which leaves the list unchanged.
func (l *searchList) deleteChar() {
	q := l.query
	if q != "" {
		_, size := utf8.DecodeLastRuneInString(q)
		q = q[:len(q)-size]
	}
	l.setQuery(q)
}

// setQuery replaces the query, recomputes the visible list and resets the
// active index.
func (l *searchList) setQuery(q string) {
	l.query = q
	l.visible = Filter(l.candidates, q)
	l.active = 0
}

// move shifts the active index by delta, wrapping at both ends.
func (l *searchList) move(delta int) {
	n := len(l.visible)
	if n == 0 {
		return
	}
	l.active = ((l.active+delta)%n + n) % n
}

// current returns the active visible choice.
func (l searchList) current() (Choice, bool) {
	if l.active < 0 || l.active >= len(l.visible) {
		return Choice{}, false
	}
	return l.visible[l.active], true
}
