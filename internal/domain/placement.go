package domain

// Placement is a single top 500 X rank placement.
type Placement struct {
	ID          int       `json:"id"`
	WeaponSplID int       `json:"weaponSplId"`
	Name        string    `json:"name"`
	Power       float64   `json:"power"`
	Rank        int       `json:"rank"`
	Mode        ModeShort `json:"mode"`
	Region      Region    `json:"region"`
	PlayerID    int       `json:"playerId"`
	Month       int       `json:"month"`
	Year        int       `json:"year"`
	DiscordID   *string   `json:"discordId"`
	CustomURL   *string   `json:"customUrl"`
}

// MonthYear identifies a calendar month.
type MonthYear struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Span is an inclusive range of months.
type Span struct {
	From MonthYear `json:"from"`
	To   MonthYear `json:"to"`
}

// TopPlacement is the best placement of a player in one mode.
type TopPlacement struct {
	Rank  int     `json:"rank"`
	Power float64 `json:"power"`
}
