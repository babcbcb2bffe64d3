package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/go-andiamo/splitter"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository/user"
)

const (
	// MaxSearchResults caps the users returned by one search.
	MaxSearchResults = 40
	searchCandidates = 500
)

// SearchService finds users by name.
type SearchService struct {
	db    *sql.DB
	terms splitter.Splitter
}

// NewSearchService creates a new search service.
func NewSearchService(db *sql.DB) (*SearchService, error) {
	terms, err := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	if err != nil {
		return nil, fmt.Errorf("failed to create term splitter: %w", err)
	}
	return &SearchService{db: db, terms: terms}, nil
}

// SearchTerms splits a query on spaces; quoted phrases stay one term.
func (s *SearchService) SearchTerms(query string) []string {
	parts, err := s.terms.Split(query)
	if err != nil {
		// Unbalanced quotes.
		parts = strings.Fields(query)
	}

	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		term := strings.TrimSpace(strings.Trim(p, "\"“”"))
		if term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// SearchUsers returns users whose Discord name, in-game name or custom URL
// fuzzy matches every term, best matches first.
func (s *SearchService) SearchUsers(ctx context.Context, query string) ([]domain.UserSummary, error) {
	terms := s.SearchTerms(query)
	if len(terms) == 0 {
		return []domain.UserSummary{}, nil
	}

	longest := terms[0]
	for _, term := range terms[1:] {
		if len(term) > len(longest) {
			longest = term
		}
	}

	candidates, err := user.SearchCandidates(ctx, s.db, longest, searchCandidates)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	return RankUsers(terms, candidates, MaxSearchResults), nil
}

// RankUsers orders users by total fuzzy distance over all terms and drops
// users not matching every term.
func RankUsers(terms []string, users []domain.UserSummary, limit int) []domain.UserSummary {
	type scored struct {
		user  domain.UserSummary
		score int
	}

	matches := make([]scored, 0, len(users))
	for _, u := range users {
		fields := searchableFields(u)
		score, ok := 0, true
		for _, term := range terms {
			ranks := fuzzy.RankFindNormalizedFold(term, fields)
			if len(ranks) == 0 {
				ok = false
				break
			}
			sort.Sort(ranks)
			score += ranks[0].Distance
		}
		if ok {
			matches = append(matches, scored{user: u, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score < matches[j].score
		}
		return strings.ToLower(matches[i].user.DiscordName) < strings.ToLower(matches[j].user.DiscordName)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	result := make([]domain.UserSummary, 0, len(matches))
	for _, m := range matches {
		result = append(result, m.user)
	}
	return result
}

func searchableFields(u domain.UserSummary) []string {
	fields := []string{u.DiscordName}
	if u.InGameName != nil && *u.InGameName != "" {
		fields = append(fields, *u.InGameName)
	}
	if u.CustomURL != nil && *u.CustomURL != "" {
		fields = append(fields, *u.CustomURL)
	}
	return fields
}
