// Package seed loads fixture users, teams and SendouQ groups into a database.
package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository"
	"github.com/sendou-ink/sendou-pages/internal/repository/group"
	"github.com/sendou-ink/sendou-pages/internal/repository/user"
	"github.com/sendou-ink/sendou-pages/internal/service"
)

// Fixture is the content of a seed file.
type Fixture struct {
	Users  []UserFixture  `yaml:"users"`
	Teams  []TeamFixture  `yaml:"teams"`
	Groups []GroupFixture `yaml:"groups"`
}

// UserFixture describes one user.
type UserFixture struct {
	DiscordID  string  `yaml:"discordId"`
	Name       string  `yaml:"name"`
	CustomURL  *string `yaml:"customUrl,omitempty"`
	InGameName *string `yaml:"inGameName,omitempty"`
	Bio        *string `yaml:"bio,omitempty"`
	Country    *string `yaml:"country,omitempty"`
	Twitter    *string `yaml:"twitter,omitempty"`
	Twitch     *string `yaml:"twitch,omitempty"`
	Weapons    []int   `yaml:"weapons,omitempty"`
}

// TeamFixture describes one team. Members reference users by Discord id.
type TeamFixture struct {
	Name      string          `yaml:"name"`
	CustomURL string          `yaml:"customUrl"`
	Bio       *string         `yaml:"bio,omitempty"`
	Twitter   *string         `yaml:"twitter,omitempty"`
	Members   []MemberFixture `yaml:"members"`
}

// MemberFixture is a team member.
type MemberFixture struct {
	DiscordID string `yaml:"discordId"`
	Role      string `yaml:"role,omitempty"`
	Owner     bool   `yaml:"owner,omitempty"`
}

// GroupFixture is a PREPARING group with the players its owner trusts.
type GroupFixture struct {
	Owner  string   `yaml:"owner"`
	Trusts []string `yaml:"trusts,omitempty"`
}

// Result counts what was created and what already existed.
type Result struct {
	Users   int
	Teams   int
	Groups  int
	Trusts  int
	Skipped int
}

// Parse decodes a fixture. Unknown fields are errors.
func Parse(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	return &f, nil
}

// Seeder writes fixtures through the team and group services.
type Seeder struct {
	db     *sql.DB
	teams  *service.TeamService
	groups *service.GroupService
	logger *zap.Logger
}

// NewSeeder creates a new seeder.
func NewSeeder(db *sql.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		teams:  service.NewTeamService(db),
		groups: service.NewGroupService(db),
		logger: logger,
	}
}

// Apply creates everything in the fixture. Rows that already exist are
// skipped, so a fixture can be applied more than once.
func (s *Seeder) Apply(ctx context.Context, f *Fixture) (Result, error) {
	var res Result
	ids := make(map[string]int, len(f.Users))

	for _, uf := range f.Users {
		id, created, err := s.ensureUser(ctx, uf)
		if err != nil {
			return res, err
		}
		ids[uf.DiscordID] = id
		if created {
			res.Users++
		} else {
			res.Skipped++
		}
	}

	for _, tf := range f.Teams {
		created, err := s.createTeam(ctx, ids, tf)
		if err != nil {
			return res, err
		}
		if created {
			res.Teams++
		} else {
			res.Skipped++
		}
	}

	for _, gf := range f.Groups {
		ownerID, err := s.userID(ctx, ids, gf.Owner)
		if err != nil {
			return res, fmt.Errorf("group of %s: %w", gf.Owner, err)
		}

		for _, receiver := range gf.Trusts {
			receiverID, err := s.userID(ctx, ids, receiver)
			if err != nil {
				return res, fmt.Errorf("trust of %s: %w", gf.Owner, err)
			}
			if err := group.AddTrust(ctx, s.db, ownerID, receiverID); err != nil {
				if repository.IsUniqueViolation(err) {
					res.Skipped++
					continue
				}
				return res, err
			}
			res.Trusts++
		}

		_, err = group.FindPreparingByMember(ctx, s.db, ownerID)
		switch {
		case err == nil:
			s.logger.Info("group exists, skipping", zap.String("owner", gf.Owner))
			res.Skipped++
			continue
		case !errors.Is(err, sql.ErrNoRows):
			return res, fmt.Errorf("failed to find group of %s: %w", gf.Owner, err)
		}

		if _, err := s.groups.CreateGroup(ctx, ownerID); err != nil {
			return res, fmt.Errorf("group of %s: %w", gf.Owner, err)
		}
		res.Groups++
	}

	return res, nil
}

func (s *Seeder) ensureUser(ctx context.Context, uf UserFixture) (int, bool, error) {
	if uf.DiscordID == "" || uf.Name == "" {
		return 0, false, fmt.Errorf("user %q: discordId and name are required", uf.DiscordID)
	}

	u := &domain.User{
		DiscordID:             uf.DiscordID,
		DiscordName:           uf.Name,
		DiscordDiscriminator:  "0",
		ShowDiscordUniqueName: true,
		CustomURL:             uf.CustomURL,
		InGameName:            uf.InGameName,
		Bio:                   uf.Bio,
		Country:               uf.Country,
		Twitter:               uf.Twitter,
		Twitch:                uf.Twitch,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := user.Create(ctx, tx, u); err != nil {
		if !repository.IsUniqueViolation(err) {
			return 0, false, err
		}
		s.logger.Info("user exists, skipping", zap.String("discordId", uf.DiscordID))
		_ = tx.Rollback()
		id, err := s.userID(ctx, nil, uf.DiscordID)
		return id, false, err
	}

	weapons := make([]domain.UserWeapon, 0, len(uf.Weapons))
	for i, w := range uf.Weapons {
		weapons = append(weapons, domain.UserWeapon{WeaponSplID: w, IsFavorite: i == 0})
	}
	if err := user.SetWeapons(ctx, tx, u.ID, weapons); err != nil {
		return 0, false, err
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return u.ID, true, nil
}

func (s *Seeder) createTeam(ctx context.Context, ids map[string]int, tf TeamFixture) (bool, error) {
	t := &domain.Team{
		Name:      tf.Name,
		CustomURL: tf.CustomURL,
		Bio:       tf.Bio,
		Twitter:   tf.Twitter,
		Members:   make([]domain.TeamMember, 0, len(tf.Members)),
	}

	for _, mf := range tf.Members {
		id, err := s.userID(ctx, ids, mf.DiscordID)
		if err != nil {
			return false, fmt.Errorf("team %s: %w", tf.CustomURL, err)
		}

		member := domain.TeamMember{UserSummary: domain.UserSummary{ID: id}, IsOwner: mf.Owner}
		if mf.Role != "" {
			role := domain.TeamMemberRole(mf.Role)
			if !role.IsValid() {
				return false, fmt.Errorf("team %s: invalid role %q", tf.CustomURL, mf.Role)
			}
			member.Role = &role
		}
		t.Members = append(t.Members, member)
	}

	if err := s.teams.CreateTeam(ctx, t); err != nil {
		if errors.Is(err, service.ErrTeamExists) {
			s.logger.Info("team exists, skipping", zap.String("customUrl", tf.CustomURL))
			return false, nil
		}
		return false, fmt.Errorf("team %s: %w", tf.CustomURL, err)
	}
	return true, nil
}

// userID resolves a Discord id, first from users created in this run.
func (s *Seeder) userID(ctx context.Context, ids map[string]int, discordID string) (int, error) {
	if id, ok := ids[discordID]; ok {
		return id, nil
	}

	u, err := user.FindByIdentifier(ctx, s.db, discordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("user %s: %w", discordID, service.ErrUserNotFound)
		}
		return 0, err
	}
	return u.ID, nil
}
