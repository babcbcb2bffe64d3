package domain

// VodType describes what kind of footage a VOD is.
type VodType string

// VOD type constants.
const (
	VodTypeTournament  VodType = "TOURNAMENT"
	VodTypeCast        VodType = "CAST"
	VodTypeScrim       VodType = "SCRIM"
	VodTypeMatchmaking VodType = "MATCHMAKING"
	VodTypeSendouQ     VodType = "SENDOUQ"
)

// Vod is a YouTube video split into matches.
type Vod struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	Type            VodType    `json:"type"`
	YoutubeID       string     `json:"youtubeId"`
	YoutubeDate     int64      `json:"youtubeDate"`
	SubmitterUserID int        `json:"submitterUserId"`
	Pov             *VodPov    `json:"pov,omitempty"`
	Matches         []VodMatch `json:"matches"`
}

// VodPov is the player whose point of view the video shows.
// Exactly one of User and Name is set.
type VodPov struct {
	User *UserSummary `json:"user,omitempty"`
	Name string       `json:"name,omitempty"`
}

// UserID returns the linked user's id or nil when the POV is a free-text name.
func (p *VodPov) UserID() *int {
	if p == nil || p.User == nil {
		return nil
	}
	id := p.User.ID
	return &id
}

// VodMatch is one match within a VOD.
type VodMatch struct {
	ID       int       `json:"id"`
	Mode     ModeShort `json:"mode"`
	StageID  int       `json:"stageId"`
	StartsAt int       `json:"startsAt"`
	Weapons  []int     `json:"weapons"`
}

// VodSummary is a VOD as listed on a user's profile.
type VodSummary struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Type        VodType `json:"type"`
	YoutubeID   string  `json:"youtubeId"`
	YoutubeDate int64   `json:"youtubeDate"`
}
