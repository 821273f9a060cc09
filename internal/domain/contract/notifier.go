package contract

import (
	"context"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain/entity"
)

//go:generate mockgen -source=notifier.go -destination=../../../mocks/notifier.go -package=mocks

// Notifier delivers a text message to a chat on the active transport.
type Notifier interface {
	Send(ctx context.Context, chatID entity.ChatID, text string) error
}

// WakeupScheduler registers one-shot callbacks. The returned function cancels
// the wake-up if it has not fired yet.
type WakeupScheduler interface {
	Start()
	Stop() context.Context
	Schedule(at time.Time, fn func()) (cancel func())
}
