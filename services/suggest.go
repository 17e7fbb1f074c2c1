package services

import (
	"strings"

	"unistay/dto"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const (
	suggestMinQuery      = 2
	suggestPerKind       = 5
	suggestMax           = 8
	didYouMeanSimilarity = 0.6
)

type suggestEntry struct {
	normalized string
	suggestion dto.Suggestion
}

// Suggester answers search box autocomplete over cities and institutions
type Suggester struct {
	cities       []suggestEntry
	universities []suggestEntry
	byNormalized map[string]dto.Suggestion
	matcher      *closestmatch.ClosestMatch
}

func NewSuggester(cities, universities []string) *Suggester {
	s := &Suggester{byNormalized: make(map[string]dto.Suggestion)}
	s.cities = s.index(cities, dto.SuggestionCity)
	s.universities = s.index(universities, dto.SuggestionUniversity)

	keys := make([]string, 0, len(s.byNormalized))
	for k := range s.byNormalized {
		keys = append(keys, k)
	}
	s.matcher = createMatcher(keys)
	return s
}

func (s *Suggester) index(names []string, kind string) []suggestEntry {
	entries := make([]suggestEntry, 0, len(names))
	seen := make(map[string]bool)
	for _, name := range names {
		norm := normalizeInput(name)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		entry := suggestEntry{normalized: norm, suggestion: dto.Suggestion{Type: kind, Name: name}}
		entries = append(entries, entry)
		if _, ok := s.byNormalized[norm]; !ok {
			s.byNormalized[norm] = entry.suggestion
		}
	}
	return entries
}

// Suggest returns up to five cities then up to five institutions containing query,
// capped at eight; a near miss is offered as didYouMean when nothing matches
func (s *Suggester) Suggest(query string) dto.SuggestResponse {
	resp := dto.SuggestResponse{Query: query, Suggestions: []dto.Suggestion{}}

	q := normalizeInput(query)
	if len([]rune(q)) < suggestMinQuery {
		return resp
	}

	resp.Suggestions = append(resp.Suggestions, collect(s.cities, q, suggestPerKind)...)
	resp.Suggestions = append(resp.Suggestions, collect(s.universities, q, suggestPerKind)...)
	if len(resp.Suggestions) > suggestMax {
		resp.Suggestions = resp.Suggestions[:suggestMax]
	}

	if len(resp.Suggestions) == 0 {
		if best := s.matcher.Closest(q); best != "" && calculateSimilarity(q, best) >= didYouMeanSimilarity {
			suggestion := s.byNormalized[best]
			resp.DidYouMean = &suggestion
		}
	}
	return resp
}

func collect(entries []suggestEntry, q string, limit int) []dto.Suggestion {
	out := make([]dto.Suggestion, 0, limit)
	for _, e := range entries {
		if strings.Contains(e.normalized, q) {
			out = append(out, e.suggestion)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// normalizeInput lowercases and strips accents so "Zürich" matches "zurich"
func normalizeInput(input string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(input)))
}

func createMatcher(list []string) *closestmatch.ClosestMatch {
	bagSizes := []int{2, 3}
	return closestmatch.New(list, bagSizes)
}

// calculateSimilarity is 1 - levenshtein distance / longer length
func calculateSimilarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 1
	}
	distance := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	return 1 - float64(distance)/float64(longest)
}
