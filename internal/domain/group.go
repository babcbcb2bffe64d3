package domain

import (
	"database/sql/driver"
	"fmt"
)

// FullGroupSize is the member count of a full SendouQ group.
const FullGroupSize = 4

// GroupStatus represents the lifecycle state of a SendouQ group.
type GroupStatus string

// Group status constants.
const (
	GroupStatusPreparing GroupStatus = "PREPARING"
	GroupStatusActive    GroupStatus = "ACTIVE"
	GroupStatusInactive  GroupStatus = "INACTIVE"
)

// IsValid checks if the status is valid.
func (s GroupStatus) IsValid() bool {
	return s == GroupStatusPreparing || s == GroupStatusActive || s == GroupStatusInactive
}

// Scan implements sql.Scanner interface for automatic validation when reading from database.
func (s *GroupStatus) Scan(value any) error {
	str, err := scanString(value, "GroupStatus")
	if err != nil {
		return err
	}
	status := GroupStatus(str)
	if !status.IsValid() {
		return fmt.Errorf("invalid group status: %s", str)
	}
	*s = status
	return nil
}

// Value implements driver.Valuer interface for writing to database.
func (s GroupStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid GroupStatus value: %s", s)
	}
	return string(s), nil
}

// GroupRole is the role of a member within a group.
type GroupRole string

// Group role constants.
const (
	GroupRoleOwner   GroupRole = "OWNER"
	GroupRoleManager GroupRole = "MANAGER"
	GroupRoleRegular GroupRole = "REGULAR"
)

// Group is a SendouQ group looking for a match.
type Group struct {
	ID         int           `json:"id"`
	InviteCode string        `json:"inviteCode"`
	Status     GroupStatus   `json:"status"`
	Members    []GroupMember `json:"members"`
}

// GroupMember is a user within a group.
type GroupMember struct {
	UserID      int       `json:"userId"`
	DiscordName string    `json:"discordName"`
	Role        GroupRole `json:"role"`
}

// IsFull reports whether the group has no room left.
func (g *Group) IsFull() bool {
	return len(g.Members) >= FullGroupSize
}

// HasMember reports whether the user is in the group.
func (g *Group) HasMember(userID int) bool {
	for _, m := range g.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// RoleOf returns the role of the user in the group.
func (g *Group) RoleOf(userID int) (GroupRole, bool) {
	for _, m := range g.Members {
		if m.UserID == userID {
			return m.Role, true
		}
	}
	return "", false
}

// TrustedPlayer is a user the viewer has played with before.
type TrustedPlayer struct {
	ID          int    `json:"id"`
	DiscordName string `json:"discordName"`
}
