package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository/vod"
)

// VodService handles VOD lookups.
type VodService struct {
	db *sql.DB
}

// NewVodService creates a new VOD service.
func NewVodService(db *sql.DB) *VodService {
	return &VodService{db: db}
}

// GetVod returns a VOD with its matches.
func (s *VodService) GetVod(ctx context.Context, id int) (*domain.Vod, error) {
	v, err := vod.Get(ctx, s.db, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrVodNotFound
		}
		return nil, fmt.Errorf("failed to get vod: %w", err)
	}
	return v, nil
}
