package discord

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const (
	colorError = 0xE74C3C
	colorInfo  = 0x3498DB
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("https://discord.com/api/webhooks/%s/%s", d.webhook.ID, d.webhook.Token)
}

// GetWebhookURL returns the full webhook URL.
func (d *discordImpl) GetWebhookURL() string {
	return d.webhookURL()
}

// SendMessage posts a plain content message.
func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.post(ctx, WebhookPayload{
		Content:  content,
		Username: d.config.DefaultUsername,
	})
}

// SendError posts an error embed.
func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := Embed{
		Title:       title,
		Description: description,
		Color:       colorError,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		embed.Fields = append(embed.Fields, EmbedField{Name: "Error", Value: err.Error()})
	}
	return d.post(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds:   []Embed{embed},
	})
}

// SendInfo posts an info embed.
func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.post(ctx, WebhookPayload{
		Username: d.config.DefaultUsername,
		Embeds: []Embed{{
			Title:       title,
			Description: description,
			Color:       colorInfo,
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
		}},
	})
}

// Close releases resources. Nothing to release for webhook delivery.
func (d *discordImpl) Close() error {
	return nil
}

func (d *discordImpl) post(ctx context.Context, payload WebhookPayload) error {
	body, status, err := d.client.Post(ctx, d.webhookURL(), payload, nil)
	if err != nil {
		return fmt.Errorf("discord webhook call failed: %w", err)
	}
	if status != http.StatusNoContent && status != http.StatusOK {
		return fmt.Errorf("discord webhook returned status %d: %s", status, string(body))
	}
	return nil
}
