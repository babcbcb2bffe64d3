package calendar

import (
	"context"
	"fmt"

	"github.com/sendou-ink/sendou-pages/internal/domain"
	"github.com/sendou-ink/sendou-pages/internal/repository"
)

// ResultsByUserID returns the user's event results, newest event first.
func ResultsByUserID(ctx context.Context, exec repository.DBTX, userID int) ([]domain.CalendarEventResult, error) {
	query := `
		SELECT e.id, e.name, r.team_name, r.placement, e.participant_count, e.start_time
		FROM calendar_event_results r
		JOIN calendar_events e ON e.id = r.event_id
		WHERE r.user_id = $1
		ORDER BY e.start_time DESC, e.id DESC
	`
	rows, err := exec.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	results := make([]domain.CalendarEventResult, 0)
	for rows.Next() {
		var r domain.CalendarEventResult
		if err := rows.Scan(
			&r.EventID,
			&r.EventName,
			&r.TeamName,
			&r.Placement,
			&r.ParticipantCount,
			&r.StartTime,
		); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return results, nil
}

// CreateEvent inserts a calendar event and returns its id.
func CreateEvent(ctx context.Context, exec repository.DBTX, name string, startTime int64, participantCount *int) (int, error) {
	query := `
		INSERT INTO calendar_events (name, start_time, participant_count)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int
	if err := exec.QueryRowContext(ctx, query, name, startTime, participantCount).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}
	return id, nil
}

// AddResult records the user's placement at an event.
func AddResult(ctx context.Context, exec repository.DBTX, eventID, userID int, teamName string, placement int) error {
	query := `
		INSERT INTO calendar_event_results (event_id, user_id, team_name, placement)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := exec.ExecContext(ctx, query, eventID, userID, teamName, placement); err != nil {
		return fmt.Errorf("failed to add result: %w", err)
	}
	return nil
}
