package domain

// CalendarEventResult is a user's placement at a calendar event.
type CalendarEventResult struct {
	EventID          int    `json:"eventId"`
	EventName        string `json:"eventName"`
	TeamName         string `json:"teamName"`
	Placement        int    `json:"placement"`
	ParticipantCount *int   `json:"participantCount"`
	StartTime        int64  `json:"startTime"`
}
