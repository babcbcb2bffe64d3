package service

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrBadgeNotFound  = errors.New("badge not found")
	ErrVodNotFound    = errors.New("vod not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrTeamNotFound   = errors.New("team not found")
	ErrTeamExists     = errors.New("team already exists")
	ErrGroupNotFound  = errors.New("group not found")
	ErrGroupFull      = errors.New("group is full")
	ErrNotTrusted     = errors.New("user is not a trusted player")
	ErrNotManager     = errors.New("only the owner or a manager can add members")
	ErrNotLoggedIn    = errors.New("not logged in")
)
