// Package slack delivers reminder notifications to Slack channels.
package slack

import (
	"context"
	"fmt"

	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	goslack "github.com/slack-go/slack"
)

type Notifier struct {
	client contract.SlackClient
}

var _ contract.Notifier = (*Notifier)(nil)

func NewNotifier(client contract.SlackClient) *Notifier {
	return &Notifier{client: client}
}

// Send posts text to the channel identified by chatID.
func (n *Notifier) Send(ctx context.Context, chatID entity.ChatID, text string) error {
	_, _, err := n.client.PostMessageContext(
		ctx,
		chatID.String(),
		goslack.MsgOptionText(text, false),
		goslack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}
	return nil
}
