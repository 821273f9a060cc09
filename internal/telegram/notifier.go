// Package telegram delivers reminder notifications through the Telegram Bot API.
package telegram

import (
	"context"
	"fmt"
	"strconv"

	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/go-telegram/bot"
)

type Notifier struct {
	client contract.TelegramClient
}

var _ contract.Notifier = (*Notifier)(nil)

func NewNotifier(client contract.TelegramClient) *Notifier {
	return &Notifier{client: client}
}

func (n *Notifier) Send(ctx context.Context, chatID entity.ChatID, text string) error {
	_, err := n.client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: apiChatID(chatID),
		Text:   text,
	})
	if err != nil {
		return fmt.Errorf("failed to send Telegram message: %w", err)
	}
	return nil
}

// apiChatID passes numeric ids as integers and channel usernames as is.
func apiChatID(chatID entity.ChatID) any {
	if id, err := strconv.ParseInt(chatID.String(), 10, 64); err == nil {
		return id
	}
	return chatID.String()
}
