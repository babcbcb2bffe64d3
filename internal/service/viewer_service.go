package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository/session"
)

// ViewerService resolves session cookies to logged in users.
type ViewerService struct {
	db *sql.DB
}

// NewViewerService creates a new viewer service.
func NewViewerService(db *sql.DB) *ViewerService {
	return &ViewerService{db: db}
}

// ViewerBySession returns the logged in user of a session token, or nil for
// unknown tokens.
func (s *ViewerService) ViewerBySession(ctx context.Context, token string) (*domain.Viewer, error) {
	if token == "" {
		return nil, nil
	}

	v, err := session.ViewerByToken(ctx, s.db, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	return v, nil
}
