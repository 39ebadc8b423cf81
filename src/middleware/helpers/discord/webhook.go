package discord

import (
	"encoding/json"
	"time"

	discordwebhook "github.com/bensch777/discord-webhook-golang"
)

// SendRetrievalWebhook posts an embed to the configured operations webhook
// whenever a code is served, so the account owner sees who pulled what.
func SendRetrievalWebhook(webhookURL, event, code, user string) error {
	hook := discordwebhook.Hook{
		Username: "Netflix Codes Bot",
		Embeds: []discordwebhook.Embed{
			{
				Title:     event,
				Color:     5662170,
				Timestamp: time.Now(),
				Fields: []discordwebhook.Field{
					{Name: "**User**", Value: user, Inline: true},
					{Name: "**Code**", Value: code, Inline: true},
				},
				Footer: discordwebhook.Footer{
					Text: "Netflix Codes Bot",
				},
			},
		},
	}

	payload, err := json.Marshal(hook)
	if err != nil {
		return err
	}
	return discordwebhook.ExecuteWebhook(webhookURL, payload)
}
