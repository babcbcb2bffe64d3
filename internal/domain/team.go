package domain

import (
	"database/sql/driver"
	"fmt"
	"unicode/utf8"
)

// Team limits.
const (
	TeamNameMaxLength    = 64
	TeamNameMinLength    = 2
	TeamBioMaxLength     = 2000
	TeamTwitterMaxLength = 50
	TeamMaxMemberCount   = 8
)

// TeamMemberRole is the in-game role of a team member.
type TeamMemberRole string

// Team member roles.
const (
	RoleCaptain   TeamMemberRole = "CAPTAIN"
	RoleFrontline TeamMemberRole = "FRONTLINE"
	RoleSupport   TeamMemberRole = "SUPPORT"
	RoleMidline   TeamMemberRole = "MIDLINE"
	RoleBackline  TeamMemberRole = "BACKLINE"
	RoleFlex      TeamMemberRole = "FLEX"
	RoleCoach     TeamMemberRole = "COACH"
)

// TeamMemberRoles lists all roles in display order.
var TeamMemberRoles = []TeamMemberRole{
	RoleCaptain,
	RoleFrontline,
	RoleSupport,
	RoleMidline,
	RoleBackline,
	RoleFlex,
	RoleCoach,
}

// IsValid checks if the role is valid.
func (r TeamMemberRole) IsValid() bool {
	for _, role := range TeamMemberRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Scan implements sql.Scanner interface for automatic validation when reading from database.
func (r *TeamMemberRole) Scan(value any) error {
	str, err := scanString(value, "TeamMemberRole")
	if err != nil {
		return err
	}
	role := TeamMemberRole(str)
	if !role.IsValid() {
		return fmt.Errorf("invalid team member role: %s", str)
	}
	*r = role
	return nil
}

// Value implements driver.Valuer interface for writing to database.
func (r TeamMemberRole) Value() (driver.Value, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid TeamMemberRole value: %s", r)
	}
	return string(r), nil
}

// Team represents a competitive team.
type Team struct {
	ID        int          `json:"id"`
	Name      string       `json:"name"`
	CustomURL string       `json:"customUrl"`
	Bio       *string      `json:"bio"`
	Twitter   *string      `json:"twitter"`
	AvatarURL *string      `json:"avatarUrl"`
	Members   []TeamMember `json:"members"`
}

// TeamMember represents a user within a team.
type TeamMember struct {
	UserSummary
	Role    *TeamMemberRole `json:"role"`
	IsOwner bool            `json:"isOwner"`
}

// Validate checks the team against the team limits.
func (t *Team) Validate() error {
	nameLen := utf8.RuneCountInString(t.Name)
	if nameLen < TeamNameMinLength || nameLen > TeamNameMaxLength {
		return fmt.Errorf("team name must be between %d and %d characters", TeamNameMinLength, TeamNameMaxLength)
	}
	if t.Bio != nil && utf8.RuneCountInString(*t.Bio) > TeamBioMaxLength {
		return fmt.Errorf("team bio must be at most %d characters", TeamBioMaxLength)
	}
	if t.Twitter != nil && utf8.RuneCountInString(*t.Twitter) > TeamTwitterMaxLength {
		return fmt.Errorf("team twitter must be at most %d characters", TeamTwitterMaxLength)
	}
	if len(t.Members) > TeamMaxMemberCount {
		return fmt.Errorf("team can have at most %d members", TeamMaxMemberCount)
	}
	return nil
}
