package handler

import (
	"context"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/proxy"
	"github.com/sendou-ink/sendou-pages/internal/service"
)

// ProfileServiceInterface defines the interface for user profile operations.
type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, identifier string, viewer *domain.Viewer) (*service.UserProfile, error)
}

// SearchServiceInterface defines the interface for user search.
type SearchServiceInterface interface {
	SearchUsers(ctx context.Context, query string) ([]domain.UserSummary, error)
}

// BadgeServiceInterface defines the interface for badge operations.
type BadgeServiceInterface interface {
	ListBadges(ctx context.Context) ([]domain.Badge, error)
	GetBadge(ctx context.Context, id int) (*service.BadgeDetails, error)
}

// VodServiceInterface defines the interface for VOD operations.
type VodServiceInterface interface {
	GetVod(ctx context.Context, id int) (*domain.Vod, error)
}

// PlacementServiceInterface defines the interface for top 500 operations.
type PlacementServiceInterface interface {
	GetPlayerPlacements(ctx context.Context, playerID int) (*service.PlayerPlacements, error)
}

// TeamServiceInterface defines the interface for team operations.
type TeamServiceInterface interface {
	GetTeam(ctx context.Context, customURL string) (*domain.Team, error)
}

// GroupServiceInterface defines the interface for SendouQ group operations.
type GroupServiceInterface interface {
	GetPreparing(ctx context.Context, viewer *domain.Viewer) (*service.PreparingGroup, error)
	AddTrustedMember(ctx context.Context, viewer *domain.Viewer, userID int) (*domain.Group, error)
}

// AvatarProxyInterface defines the interface for fetching Discord avatars.
type AvatarProxyInterface interface {
	Fetch(ctx context.Context, discordID, avatar string) (*proxy.Avatar, error)
}

// Pinger checks that the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}
