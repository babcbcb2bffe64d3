package domain

// User represents a registered user with everything shown on the profile page.
type User struct {
	ID                    int          `json:"id"`
	DiscordID             string       `json:"discordId"`
	DiscordName           string       `json:"discordName"`
	DiscordDiscriminator  string       `json:"discordDiscriminator"`
	DiscordAvatar         *string      `json:"discordAvatar"`
	DiscordUniqueName     *string      `json:"discordUniqueName"`
	ShowDiscordUniqueName bool         `json:"showDiscordUniqueName"`
	CustomURL             *string      `json:"customUrl"`
	InGameName            *string      `json:"inGameName"`
	Bio                   *string      `json:"bio"`
	Country               *string      `json:"country"`
	Twitch                *string      `json:"twitch"`
	Twitter               *string      `json:"twitter"`
	YoutubeID             *string      `json:"youtubeId"`
	MotionSens            *float64     `json:"motionSens"`
	StickSens             *float64     `json:"stickSens"`
	CSS                   *string      `json:"css"`
	Banned                bool         `json:"banned"`
	PatronTier            *int         `json:"patronTier"`
	CommissionsOpen       bool         `json:"commissionsOpen"`
	CommissionText        *string      `json:"commissionText"`
	Weapons               []UserWeapon `json:"weapons"`
	Team                  *UserTeam    `json:"team"`
}

// UserWeapon is one entry of a user's weapon pool.
type UserWeapon struct {
	WeaponSplID int  `json:"weaponSplId"`
	IsFavorite  bool `json:"isFavorite"`
}

// UserTeam is the team a user currently belongs to.
type UserTeam struct {
	Name      string          `json:"name"`
	CustomURL string          `json:"customUrl"`
	AvatarURL *string         `json:"avatarUrl"`
	Role      *TeamMemberRole `json:"role"`
}

// UserSummary is the subset of user fields needed to link to or display a user.
type UserSummary struct {
	ID                   int     `json:"id"`
	DiscordID            string  `json:"discordId"`
	DiscordName          string  `json:"discordName"`
	DiscordDiscriminator string  `json:"discordDiscriminator"`
	DiscordAvatar        *string `json:"discordAvatar"`
	CustomURL            *string `json:"customUrl"`
	InGameName           *string `json:"inGameName,omitempty"`
}

// Viewer is the logged in user making the request.
type Viewer struct {
	ID         int    `json:"id"`
	DiscordID  string `json:"discordId"`
	PatronTier *int   `json:"patronTier"`
}

// ViewerID returns the viewer's user id or nil for anonymous requests.
func (v *Viewer) ViewerID() *int {
	if v == nil {
		return nil
	}
	id := v.ID
	return &id
}
