package contract

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

//go:generate mockgen -source=telegram.go -destination=../../../mocks/telegram.go -package=mocks

// TelegramClient is the subset of *bot.Bot the bot relies on.
type TelegramClient interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}
