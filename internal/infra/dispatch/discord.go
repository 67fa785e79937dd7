package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"event-reminder/internal/domain/event"
	"event-reminder/internal/pkg/config"
	"event-reminder/internal/pkg/errs"
)

// DiscordChannel posts an embed to a webhook. The HTTP client carries its
// own timeout on top of the dispatcher's per-send deadline.
type DiscordChannel struct {
	webhookURL string
	client     *http.Client
}

func NewDiscordChannel(cfg config.NotifyConfig) *DiscordChannel {
	return &DiscordChannel{
		webhookURL: cfg.DiscordWebhookURL,
		client:     &http.Client{Timeout: cfg.ChannelTimeout},
	}
}

func (c *DiscordChannel) Name() string { return "discord" }

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordEmbed struct {
	Title     string              `json:"title"`
	Color     int                 `json:"color"`
	Fields    []discordEmbedField `json:"fields"`
	Footer    discordFooter       `json:"footer"`
	Timestamp string              `json:"timestamp"`
}

type discordFooter struct {
	Text string `json:"text"`
}

type discordMessage struct {
	Embeds []discordEmbed `json:"embeds"`
}

func (c *DiscordChannel) Send(ctx context.Context, ev *event.Event, label string) error {
	payload, err := json.Marshal(c.buildMessage(ev, label))
	if err != nil {
		return errs.Wrap(err, "failed to encode discord message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build discord request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "discord webhook request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return errs.New(fmt.Sprintf("discord webhook returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}
	return nil
}

func (c *DiscordChannel) buildMessage(ev *event.Event, label string) discordMessage {
	profile := event.ProfileFor(ev.Category())

	fields := make([]discordEmbedField, 0, 8)
	for _, f := range profile.EmbedFields(ev) {
		fields = append(fields, discordEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}

	return discordMessage{
		Embeds: []discordEmbed{{
			Title:  profile.EmbedTitle(label),
			Color:  profile.EmbedColor(),
			Fields: fields,
			Footer: discordFooter{
				Text: fmt.Sprintf("Event ID: %s | %s", ev.ID(), labelTitle(label)),
			},
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}},
	}
}

// labelTitle turns "1_day_before" into "1 Day Before" for the footer.
func labelTitle(label string) string {
	words := strings.Split(label, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
