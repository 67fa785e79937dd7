//go:build unit

package dispatch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"event-reminder/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscordFixture(t *testing.T, handler http.HandlerFunc) *DiscordChannel {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewDiscordChannel(config.NotifyConfig{
		DiscordWebhookURL: srv.URL,
		ChannelTimeout:    time.Second,
	})
}

func TestDiscordSendPostsEmbed(t *testing.T) {
	var got discordMessage
	ch := newDiscordFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	err := ch.Send(context.Background(), sampleEvent(t), "1_day_before")
	require.NoError(t, err)

	require.Len(t, got.Embeds, 1)
	embed := got.Embeds[0]
	assert.Equal(t, "🎉 Recordatorio de Concierto", embed.Title)
	assert.Equal(t, 0xFF0000, embed.Color)
	assert.Equal(t, "Event ID: c-001 | 1 Day Before", embed.Footer.Text)

	require.NotEmpty(t, embed.Fields)
	assert.Equal(t, "🎤 Artista", embed.Fields[0].Name)
	assert.Equal(t, "Mastodon", embed.Fields[0].Value)

	_, err = time.Parse(time.RFC3339, embed.Timestamp)
	assert.NoError(t, err)
}

func TestDiscordSendRejectsNon2xx(t *testing.T) {
	ch := newDiscordFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	err := ch.Send(context.Background(), sampleEvent(t), "1_day_before")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestDiscordSendHonorsContext(t *testing.T) {
	ch := newDiscordFixture(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ch.Send(ctx, sampleEvent(t), "1_day_before")
	assert.Error(t, err)
}

func TestLabelTitle(t *testing.T) {
	assert.Equal(t, "1 Day Before", labelTitle("1_day_before"))
	assert.Equal(t, "2 Weeks Before", labelTitle("2_weeks_before"))
	assert.Equal(t, "1 Day Before 6pm", labelTitle("1_day_before_6pm"))
}
