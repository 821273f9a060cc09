package handlers

import (
	"context"
	"strconv"

	"github.com/diegoclair/reminder-bot/internal/domain/command"
	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/mudler/xlog"
)

const telegramFormatHelpCommand = "/add_reminder"

// TelegramHandler answers bot commands and turns five-field messages into
// reminders. Replies go back to the chat the update came from.
type TelegramHandler struct {
	client          contract.TelegramClient
	reminderService contract.ReminderService
}

func NewTelegramHandler(client contract.TelegramClient, reminderService contract.ReminderService) *TelegramHandler {
	return &TelegramHandler{
		client:          client,
		reminderService: reminderService,
	}
}

func (h *TelegramHandler) HandleUpdate(ctx context.Context, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.Text == "" {
		return
	}

	msg := update.Message
	chatID := msg.Chat.ID

	if cmd, ok := command.ParseCommand(msg.Text); ok {
		h.handleCommand(ctx, chatID, cmd)
		return
	}

	fields, ok := entity.SplitReminderFields(msg.Text)
	if !ok {
		return
	}
	h.handleCreateReminder(ctx, chatID, fields)
}

func (h *TelegramHandler) handleCommand(ctx context.Context, chatID int64, cmd *command.Command) {
	switch cmd.Type {
	case command.CmdStart, command.CmdHelp:
		h.reply(ctx, chatID, command.GetWelcomeText())
	case command.CmdAddReminder:
		h.reply(ctx, chatID, command.GetAddReminderText())
	case command.CmdListReminders:
		h.handleListReminders(ctx, chatID)
	default:
		xlog.Debug("Ignoring unknown command", "chat_id", chatID, "command", cmd.Raw)
	}
}

func (h *TelegramHandler) handleListReminders(ctx context.Context, chatID int64) {
	reminders, err := h.reminderService.GetRemindersByChat(telegramChatID(chatID))
	if err != nil {
		xlog.Error("Failed to list reminders", "chat_id", chatID, "error", err)
		return
	}
	h.reply(ctx, chatID, command.FormatReminderList(reminders))
}

func (h *TelegramHandler) handleCreateReminder(ctx context.Context, chatID int64, fields []string) {
	reminder, err := h.reminderService.AddReminder(telegramChatID(chatID), fields)
	if err != nil {
		logCreateError(err, strconv.FormatInt(chatID, 10))
		h.reply(ctx, chatID, command.GetCreateErrorText(telegramFormatHelpCommand))
		return
	}
	h.reply(ctx, chatID, command.GetCreatedText(reminder))
}

func (h *TelegramHandler) reply(ctx context.Context, chatID int64, text string) {
	_, err := h.client.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		xlog.Error("Failed to send reply", "chat_id", chatID, "error", err)
	}
}

func telegramChatID(id int64) entity.ChatID {
	return entity.ChatID(strconv.FormatInt(id, 10))
}
