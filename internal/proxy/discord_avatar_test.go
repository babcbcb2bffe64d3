package proxy

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValidParams(t *testing.T) {
	tests := []struct {
		name      string
		discordID string
		avatar    string
		want      bool
	}{
		{"hash with extension", "79237403620945920", "a_1234abcd.gif", true},
		{"hash without extension", "79237403620945920", "1234abcd", true},
		{"non numeric id", "abc", "1234abcd.png", false},
		{"empty avatar", "79237403620945920", "", false},
		{"path traversal", "79237403620945920", "..%2Fsecret", false},
		{"double extension", "79237403620945920", "abc.png.exe", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDiscordID(tt.discordID) && ValidAvatar(tt.avatar))
		})
	}
}

func TestDiscordAvatarClient_Fetch(t *testing.T) {
	var requests atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Path != "/avatars/123/abc.webp" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/webp")
		w.Header().Set("Cache-Control", "public, max-age=86400")
		w.Header().Set("X-Internal", "secret")
		_, _ = w.Write([]byte("image-bytes"))
	}))
	defer upstream.Close()

	client := NewDiscordAvatarClient(Options{BaseURL: upstream.URL + "/avatars", Timeout: time.Second, RatePerSecond: 100, Burst: 10}, zap.NewNop())

	t.Run("success - streams body and headers", func(t *testing.T) {
		avatar, err := client.Fetch(context.Background(), "123", "abc.webp")
		require.NoError(t, err)
		defer func() { _ = avatar.Body.Close() }()

		body, err := io.ReadAll(avatar.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, avatar.StatusCode)
		assert.Equal(t, "image-bytes", string(body))
		assert.Equal(t, "image/webp", avatar.Header.Get("Content-Type"))
		assert.Equal(t, "public, max-age=86400", avatar.Header.Get("Cache-Control"))
		assert.Empty(t, avatar.Header.Get("X-Internal"))
	})

	t.Run("success - upstream status passed through", func(t *testing.T) {
		avatar, err := client.Fetch(context.Background(), "123", "missing.png")
		require.NoError(t, err)
		defer func() { _ = avatar.Body.Close() }()

		assert.Equal(t, http.StatusNotFound, avatar.StatusCode)
	})

	t.Run("error - invalid params never reach upstream", func(t *testing.T) {
		before := requests.Load()
		_, err := client.Fetch(context.Background(), "not-a-number", "abc.webp")
		assert.ErrorIs(t, err, ErrInvalidParams)
		assert.Equal(t, before, requests.Load())
	})
}

func TestDiscordAvatarClient_FetchUpstreamDown(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := upstream.URL
	upstream.Close()

	client := NewDiscordAvatarClient(Options{BaseURL: url, Timeout: time.Second}, zap.NewNop())

	_, err := client.Fetch(context.Background(), "123", "abc.webp")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestDiscordAvatarClient_FetchRateLimited(t *testing.T) {
	client := NewDiscordAvatarClient(Options{BaseURL: "http://127.0.0.1:0", RatePerSecond: 0.001, Burst: 1}, zap.NewNop())
	// Drain the single token.
	require.True(t, client.limiter.Allow())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := client.Fetch(ctx, "123", "abc.webp")
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestNewDiscordAvatarClient_Defaults(t *testing.T) {
	client := NewDiscordAvatarClient(Options{}, zap.NewNop())
	assert.Equal(t, "https://cdn.discordapp.com/avatars/", client.baseURL)
	assert.Equal(t, 10*time.Second, client.client.Timeout)
}
