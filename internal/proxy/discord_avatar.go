// Package proxy fetches Discord avatars on behalf of the browser.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	ErrInvalidParams = errors.New("invalid avatar parameters")
	ErrRateLimited   = errors.New("avatar proxy rate limit exceeded")
	ErrUpstream      = errors.New("avatar upstream request failed")
)

var (
	discordIDPattern = regexp.MustCompile(`^[0-9]{1,20}$`)
	avatarPattern    = regexp.MustCompile(`^[A-Za-z0-9_]+(\.[A-Za-z0-9]+)?$`)
)

// passthroughHeaders are copied from the upstream response.
var passthroughHeaders = []string{
	"Content-Type",
	"Content-Length",
	"Cache-Control",
	"Expires",
	"Last-Modified",
	"ETag",
}

// ValidDiscordID reports whether s is a Discord snowflake.
func ValidDiscordID(s string) bool {
	return discordIDPattern.MatchString(s)
}

// ValidAvatar reports whether s is an avatar hash with an optional extension.
func ValidAvatar(s string) bool {
	return avatarPattern.MatchString(s)
}

// Options configures a DiscordAvatarClient. Zero values fall back to defaults.
type Options struct {
	BaseURL       string
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
}

// Avatar is an upstream response. The caller must close Body.
type Avatar struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}

// DiscordAvatarClient fetches avatars from the Discord CDN.
type DiscordAvatarClient struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewDiscordAvatarClient creates a new avatar client.
func NewDiscordAvatarClient(opts Options, logger *zap.Logger) *DiscordAvatarClient {
	if opts.BaseURL == "" {
		opts.BaseURL = discordgo.EndpointCDNAvatars
	}
	if !strings.HasSuffix(opts.BaseURL, "/") {
		opts.BaseURL += "/"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RatePerSecond <= 0 {
		opts.RatePerSecond = 20
	}
	if opts.Burst <= 0 {
		opts.Burst = 1
	}

	return &DiscordAvatarClient{
		baseURL: opts.BaseURL,
		client:  &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(rate.Limit(opts.RatePerSecond), opts.Burst),
		logger:  logger,
	}
}

// Fetch requests one avatar. Invalid parameters never reach the upstream.
func (c *DiscordAvatarClient) Fetch(ctx context.Context, discordID, avatar string) (*Avatar, error) {
	if !ValidDiscordID(discordID) || !ValidAvatar(avatar) {
		return nil, ErrInvalidParams
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
	}

	url := c.baseURL + discordID + "/" + avatar
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create avatar request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("avatar upstream request failed",
			zap.String("discord_id", discordID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	header := make(http.Header, len(passthroughHeaders))
	for _, key := range passthroughHeaders {
		if value := resp.Header.Get(key); value != "" {
			header.Set(key, value)
		}
	}

	return &Avatar{
		StatusCode: resp.StatusCode,
		Header:     header,
		Body:       resp.Body,
	}, nil
}
