package service

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/permissions"
	"github.com/sendou-ink/sendou-pages/internal/repository/art"
	"github.com/sendou-ink/sendou-pages/internal/repository/badge"
	"github.com/sendou-ink/sendou-pages/internal/repository/build"
	"github.com/sendou-ink/sendou-pages/internal/repository/calendar"
	"github.com/sendou-ink/sendou-pages/internal/repository/placement"
	"github.com/sendou-ink/sendou-pages/internal/repository/user"
	"github.com/sendou-ink/sendou-pages/internal/repository/vod"
)

// UserProfile is everything the profile pages show about a user.
// Banned and CSS shadow the user's own fields and are only set when the
// viewer may see them.
type UserProfile struct {
	domain.User
	DiscordUniqueName *string                                  `json:"discordUniqueName"`
	Banned            *bool                                    `json:"banned,omitempty"`
	CSS               *string                                  `json:"css,omitempty"`
	Badges            []domain.Badge                           `json:"badges"`
	Results           []domain.CalendarEventResult             `json:"results"`
	BuildsCount       int                                      `json:"buildsCount"`
	Vods              []domain.VodSummary                      `json:"vods"`
	ArtCount          int                                      `json:"artCount"`
	PlayerID          *int                                     `json:"playerId"`
	TopPlacements     map[domain.ModeShort]domain.TopPlacement `json:"topPlacements"`
}

// ProfileService loads user profiles.
type ProfileService struct {
	db     *sql.DB
	policy *permissions.Policy
}

// NewProfileService creates a new profile service.
func NewProfileService(db *sql.DB, policy *permissions.Policy) *ProfileService {
	return &ProfileService{db: db, policy: policy}
}

// GetProfile loads the profile of the user with the given Discord id or custom URL.
// Independent parts are fetched concurrently; the first failure cancels the rest.
func (s *ProfileService) GetProfile(ctx context.Context, identifier string, viewer *domain.Viewer) (*UserProfile, error) {
	u, err := user.FindByIdentifier(ctx, s.db, identifier)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	profile := &UserProfile{User: *u}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		weapons, err := user.Weapons(gctx, s.db, u.ID)
		profile.Weapons = weapons
		return err
	})
	g.Go(func() error {
		team, err := user.CurrentTeam(gctx, s.db, u.ID)
		profile.Team = team
		return err
	})
	g.Go(func() error {
		badges, err := badge.OwnedByUser(gctx, s.db, u.ID)
		profile.Badges = badges
		return err
	})
	g.Go(func() error {
		results, err := calendar.ResultsByUserID(gctx, s.db, u.ID)
		profile.Results = results
		return err
	})
	g.Go(func() error {
		count, err := build.CountByUserID(gctx, s.db, u.ID, viewer.ViewerID())
		profile.BuildsCount = count
		return err
	})
	g.Go(func() error {
		vods, err := vod.FindByUserID(gctx, s.db, u.ID)
		profile.Vods = vods
		return err
	})
	g.Go(func() error {
		count, err := art.CountByUserID(gctx, s.db, u.ID)
		profile.ArtCount = count
		return err
	})
	g.Go(func() error {
		playerID, top, err := s.userTopPlacements(gctx, u.ID)
		profile.PlayerID = playerID
		profile.TopPlacements = top
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	if u.ShowDiscordUniqueName {
		profile.DiscordUniqueName = u.DiscordUniqueName
	}
	if s.policy.IsAdmin(viewer) {
		banned := u.Banned
		profile.Banned = &banned
	}
	if s.policy.CanAddCustomizedColorsToUserProfile(u.PatronTier) {
		profile.CSS = u.CSS
	}
	// The embedded record is also used for meta tags.
	profile.User.Banned = false
	profile.User.CSS = nil

	return profile, nil
}

func (s *ProfileService) userTopPlacements(ctx context.Context, userID int) (*int, map[domain.ModeShort]domain.TopPlacement, error) {
	top := make(map[domain.ModeShort]domain.TopPlacement)

	playerID, err := placement.PlayerIDByUserID(ctx, s.db, userID)
	if err != nil || playerID == nil {
		return nil, top, err
	}

	placements, err := placement.FindByPlayerID(ctx, s.db, *playerID)
	if err != nil {
		return nil, nil, err
	}

	return playerID, TopPlacements(placements), nil
}

// TopPlacements returns the best placement per mode: highest power, lower
// rank breaking ties.
func TopPlacements(placements []domain.Placement) map[domain.ModeShort]domain.TopPlacement {
	top := make(map[domain.ModeShort]domain.TopPlacement)
	for _, p := range placements {
		current, ok := top[p.Mode]
		if !ok || p.Power > current.Power || (p.Power == current.Power && p.Rank < current.Rank) {
			top[p.Mode] = domain.TopPlacement{Rank: p.Rank, Power: p.Power}
		}
	}
	return top
}
