package vod

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository"
)

// Get retrieves a VOD with its matches and point of view.
func Get(ctx context.Context, exec repository.DBTX, id int) (*domain.Vod, error) {
	query := `
		SELECT id, title, type, youtube_id, youtube_date, submitter_user_id
		FROM videos
		WHERE id = $1
	`
	var v domain.Vod
	err := exec.QueryRowContext(ctx, query, id).Scan(
		&v.ID,
		&v.Title,
		&v.Type,
		&v.YoutubeID,
		&v.YoutubeDate,
		&v.SubmitterUserID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get vod: %w", err)
	}

	matches, err := matchesByVideoID(ctx, exec, v.ID)
	if err != nil {
		return nil, err
	}
	for i := range matches {
		weapons, err := matchWeapons(ctx, exec, matches[i].ID)
		if err != nil {
			return nil, err
		}
		matches[i].Weapons = weapons
	}
	v.Matches = matches

	if v.Type != domain.VodTypeCast && len(matches) > 0 {
		pov, err := povOfMatch(ctx, exec, matches[0].ID)
		if err != nil {
			return nil, err
		}
		v.Pov = pov
	}

	return &v, nil
}

func matchesByVideoID(ctx context.Context, exec repository.DBTX, videoID int) ([]domain.VodMatch, error) {
	query := `
		SELECT id, mode, stage_id, starts_at
		FROM video_matches
		WHERE video_id = $1
		ORDER BY starts_at, id
	`
	rows, err := exec.QueryContext(ctx, query, videoID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vod matches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	matches := make([]domain.VodMatch, 0)
	for rows.Next() {
		var m domain.VodMatch
		if err := rows.Scan(&m.ID, &m.Mode, &m.StageID, &m.StartsAt); err != nil {
			return nil, fmt.Errorf("failed to scan vod match: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return matches, nil
}

func matchWeapons(ctx context.Context, exec repository.DBTX, matchID int) ([]int, error) {
	query := `
		SELECT weapon_spl_id
		FROM video_match_players
		WHERE video_match_id = $1
		ORDER BY player_order
	`
	rows, err := exec.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match weapons: %w", err)
	}
	defer func() { _ = rows.Close() }()

	weapons := make([]int, 0)
	for rows.Next() {
		var w int
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("failed to scan weapon: %w", err)
		}
		weapons = append(weapons, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return weapons, nil
}

func povOfMatch(ctx context.Context, exec repository.DBTX, matchID int) (*domain.VodPov, error) {
	query := `
		SELECT vmp.player_name, ` + repository.UserSummaryColumns("u") + `
		FROM video_match_players vmp
		LEFT JOIN users u ON u.id = vmp.player_user_id
		WHERE vmp.video_match_id = $1 AND vmp.player_order = 1
	`
	var (
		name sql.NullString
		id   sql.NullInt64
		user domain.UserSummary
		did  sql.NullString
		dn   sql.NullString
		disc sql.NullString
	)
	err := exec.QueryRowContext(ctx, query, matchID).Scan(
		&name, &id, &did, &dn, &disc, &user.DiscordAvatar, &user.CustomURL,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vod pov: %w", err)
	}

	if id.Valid {
		user.ID = int(id.Int64)
		user.DiscordID = did.String
		user.DiscordName = dn.String
		user.DiscordDiscriminator = disc.String
		return &domain.VodPov{User: &user}, nil
	}
	if name.Valid && name.String != "" {
		return &domain.VodPov{Name: name.String}, nil
	}
	return nil, nil
}

// FindByUserID lists VODs where the user is the point of view player, newest first.
func FindByUserID(ctx context.Context, exec repository.DBTX, userID int) ([]domain.VodSummary, error) {
	query := `
		SELECT DISTINCT v.id, v.title, v.type, v.youtube_id, v.youtube_date
		FROM videos v
		JOIN video_matches vm ON vm.video_id = v.id
		JOIN video_match_players vmp ON vmp.video_match_id = vm.id
		WHERE vmp.player_user_id = $1 AND vmp.player_order = 1 AND v.type <> 'CAST'
		ORDER BY v.youtube_date DESC, v.id DESC
	`
	rows, err := exec.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user vods: %w", err)
	}
	defer func() { _ = rows.Close() }()

	vods := make([]domain.VodSummary, 0)
	for rows.Next() {
		var v domain.VodSummary
		if err := rows.Scan(&v.ID, &v.Title, &v.Type, &v.YoutubeID, &v.YoutubeDate); err != nil {
			return nil, fmt.Errorf("failed to scan vod: %w", err)
		}
		vods = append(vods, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return vods, nil
}

// Create inserts a VOD with its matches. When the POV is set it is stored as
// player 1 of every match; Weapons are stored in order starting at player 1.
func Create(ctx context.Context, exec repository.DBTX, v *domain.Vod) error {
	query := `
		INSERT INTO videos (title, type, youtube_id, youtube_date, submitter_user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := exec.QueryRowContext(ctx, query, v.Title, v.Type, v.YoutubeID, v.YoutubeDate, v.SubmitterUserID).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("failed to create vod: %w", err)
	}

	for i := range v.Matches {
		m := &v.Matches[i]
		err := exec.QueryRowContext(ctx, `
			INSERT INTO video_matches (video_id, starts_at, stage_id, mode)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, v.ID, m.StartsAt, m.StageID, m.Mode).Scan(&m.ID)
		if err != nil {
			return fmt.Errorf("failed to create vod match: %w", err)
		}

		for order, weapon := range m.Weapons {
			var (
				playerUserID *int
				playerName   *string
			)
			if order == 0 && v.Pov != nil {
				playerUserID = v.Pov.UserID()
				if v.Pov.User == nil {
					playerName = &v.Pov.Name
				}
			}
			_, err := exec.ExecContext(ctx, `
				INSERT INTO video_match_players (video_match_id, player_order, weapon_spl_id, player_user_id, player_name)
				VALUES ($1, $2, $3, $4, $5)
			`, m.ID, order+1, weapon, playerUserID, playerName)
			if err != nil {
				return fmt.Errorf("failed to create vod match player: %w", err)
			}
		}
	}

	return nil
}
