package service

import (
	"unicode"

	"github.com/tejukargal/smp-salary-board/internal/domain"
)

// MaxSuggestions caps the autocomplete result list.
const MaxSuggestions = 3

// SuggestionSegment is a run of a suggested name. Match marks the runs the
// UI renders emphasized; Text always carries the record's original casing.
type SuggestionSegment struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// Suggestion is one ranked autocomplete entry.
type Suggestion struct {
	Name     string              `json:"name"`
	Segments []SuggestionSegment `json:"segments"`
}

// SearchService provides incremental name lookup over the full snapshot,
// independent of any active filters.
type SearchService struct {
	repo domain.RecordRepository
}

// NewSearchService creates a new SearchService
func NewSearchService(repo domain.RecordRepository) *SearchService {
	return &SearchService{repo: repo}
}

// Suggest returns up to MaxSuggestions names containing the term,
// case-insensitively, ranked by first appearance in the canonical record
// order and deduplicated by exact name. An empty term yields nothing; the
// caller falls back to a plain filter application.
func (s *SearchService) Suggest(term string) []Suggestion {
	if term == "" {
		return nil
	}

	needle := foldRunes(term)
	seen := make(map[string]bool)
	var out []Suggestion
	for _, r := range s.repo.Snapshot() {
		if r.Name == "" || seen[r.Name] {
			continue
		}
		segs, matched := segment(r.Name, needle)
		if !matched {
			continue
		}
		seen[r.Name] = true
		out = append(out, Suggestion{Name: r.Name, Segments: segs})
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}

// foldRunes lowercases a term rune by rune for case-insensitive matching.
func foldRunes(s string) []rune {
	rs := []rune(s)
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}

// segment splits name into alternating plain/match runs, matching the needle
// case-insensitively while preserving the name's own casing. Matching is
// done rune by rune against the original string so names whose lowercase
// form has a different byte length still segment cleanly. The second return
// reports whether the needle occurred at all.
func segment(name string, needle []rune) ([]SuggestionSegment, bool) {
	runes := []rune(name)
	var segs []SuggestionSegment
	emit := func(run []rune, match bool) {
		if len(run) > 0 {
			segs = append(segs, SuggestionSegment{Text: string(run), Match: match})
		}
	}

	matched := false
	start := 0
	for i := 0; i <= len(runes)-len(needle); {
		if !needleAt(runes, needle, i) {
			i++
			continue
		}
		emit(runes[start:i], false)
		emit(runes[i:i+len(needle)], true)
		matched = true
		i += len(needle)
		start = i
	}
	emit(runes[start:], false)
	return segs, matched
}

// needleAt reports whether needle matches runes at position i, ignoring case.
func needleAt(runes, needle []rune, i int) bool {
	for j, r := range needle {
		if unicode.ToLower(runes[i+j]) != r {
			return false
		}
	}
	return true
}

// SuggestionCursor tracks the highlighted suggestion while the user arrows
// through the list. Movement wraps circularly; with no suggestions every
// move is a no-op and Index stays -1.
type SuggestionCursor struct {
	index int
	size  int
}

// NewSuggestionCursor creates a cursor over size suggestions with nothing
// highlighted yet.
func NewSuggestionCursor(size int) *SuggestionCursor {
	return &SuggestionCursor{index: -1, size: size}
}

// Index returns the highlighted position, or -1 when nothing is highlighted.
func (c *SuggestionCursor) Index() int {
	return c.index
}

// Next advances the highlight, wrapping past the last entry to the first.
func (c *SuggestionCursor) Next() int {
	if c.size == 0 {
		return c.index
	}
	c.index++
	if c.index >= c.size {
		c.index = 0
	}
	return c.index
}

// Prev moves the highlight back, wrapping before the first entry to the last.
func (c *SuggestionCursor) Prev() int {
	if c.size == 0 {
		return c.index
	}
	c.index--
	if c.index < 0 {
		c.index = c.size - 1
	}
	return c.index
}
