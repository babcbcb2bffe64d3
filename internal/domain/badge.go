package domain

// Badge is an award shown on user profiles.
type Badge struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
	Hue         *int   `json:"hue"`
	Count       int    `json:"count,omitempty"`
}

// BadgeOwner is a user owning a badge, possibly more than once.
type BadgeOwner struct {
	UserSummary
	Count int `json:"count"`
}

// BadgeManager is a user allowed to edit the owners of a badge.
type BadgeManager struct {
	UserSummary
}
