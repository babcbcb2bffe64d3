package handler

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sendou-ink/sendou-pages/internal/proxy"
)

// UserPageRequest represents the path of GET /u/:identifier.
type UserPageRequest struct {
	Identifier string `uri:"identifier" binding:"required,max=100"`
}

// UserSearchRequest represents the query of GET /u.
type UserSearchRequest struct {
	Query string `form:"q" binding:"max=100"`
}

// IDRequest represents a numeric :id path parameter.
type IDRequest struct {
	ID int `uri:"id" binding:"required,min=1"`
}

// VodQuery represents the query of GET /vods/:id.
type VodQuery struct {
	Start int `form:"start" binding:"min=0"`
}

// TeamPageRequest represents the path of GET /t/:customUrl.
type TeamPageRequest struct {
	CustomURL string `uri:"customUrl" binding:"required,max=64"`
}

// DiscordAvatarRequest represents the path of GET /proxy/discord-pfp/:discordId/:discordAvatar.
type DiscordAvatarRequest struct {
	DiscordID     string `uri:"discordId" binding:"required,numeric,max=20"`
	DiscordAvatar string `uri:"discordAvatar" binding:"required,max=100,discord_avatar"`
}

// PreparingActionRequest represents the form of POST /q/preparing.
type PreparingActionRequest struct {
	Action string `form:"_action" binding:"required,oneof=ADD_TRUSTED"`
	ID     int    `form:"id" binding:"required,min=1"`
}

// RegisterValidators adds the custom binding tags used by the request types.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	return v.RegisterValidation("discord_avatar", func(fl validator.FieldLevel) bool {
		return proxy.ValidAvatar(fl.Field().String())
	})
}
