package service

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"greenroom/internal/database/repository"
)

// NoteSearch ranks notes against a free-text query. Substring hits rank
// first, then fuzzy title matches by edit distance.
type NoteSearch struct {
	Notes *repository.NoteRepo
}

// Match pairs a note with its score. Higher is better; scores are in [0, 1].
type Match struct {
	Note  repository.Note
	Score float64
}

// Search returns notes matching query, best first. An empty query matches
// nothing.
func (s *NoteSearch) Search(ctx context.Context, query string) ([]Match, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	notes, err := s.Notes.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []Match
	for _, n := range notes {
		score := scoreNote(n, query)
		if score <= 0 {
			continue
		}
		out = append(out, Match{Note: n, Score: score})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out, nil
}

func scoreNote(n repository.Note, query string) float64 {
	q := strings.ToUpper(query)
	title := strings.ToUpper(n.Title)
	if strings.Contains(title, q) {
		return 1
	}
	if strings.Contains(strings.ToUpper(n.Body), q) {
		return 0.8
	}
	dist := levenshtein.ComputeDistance(title, q)
	maxlen := len(title)
	if len(q) > maxlen {
		maxlen = len(q)
	}
	if maxlen == 0 {
		return 0
	}
	sim := 1 - float64(dist)/float64(maxlen)
	if sim < 0.5 {
		return 0
	}
	// fuzzy hits rank below any substring hit
	return sim * 0.7
}
