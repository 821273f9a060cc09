package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diegoclair/reminder-bot/internal/domain/command"
	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/mudler/xlog"
	"github.com/slack-go/slack"
)

const slackFormatHelpCommand = "`/reminder add`"

type SlackHandler struct {
	reminderService contract.ReminderService
	signingSecret   string
}

func New(reminderService contract.ReminderService, signingSecret string) *SlackHandler {
	return &SlackHandler{
		reminderService: reminderService,
		signingSecret:   signingSecret,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		xlog.Warn("Rejected Slack request with bad signature", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd := command.ParseSlackCommand(s.Text)
	response := h.handleCommand(cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		xlog.Error("Failed to write Slack response", "error", err)
	}
}

// HandleHealth answers liveness probes.
func (h *SlackHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

func (h *SlackHandler) handleCommand(cmd *command.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case command.CmdHelp, command.CmdStart:
		return h.handleHelp()
	case command.CmdAddReminder:
		return h.handleAddReminderHelp()
	case command.CmdListReminders:
		return h.handleListReminders(slashCmd)
	case command.CmdCreate:
		return h.handleCreateReminder(cmd, slashCmd)
	default:
		return h.handleHelp()
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         command.GetSlackHelpText(),
	}
}

func (h *SlackHandler) handleAddReminderHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         command.GetSlackAddReminderText(),
	}
}

func (h *SlackHandler) handleListReminders(slashCmd *slack.SlashCommand) *slack.Msg {
	reminders, err := h.reminderService.GetRemindersByChat(entity.ChatID(slashCmd.ChannelID))
	if err != nil {
		xlog.Error("Failed to list reminders", "chat_id", slashCmd.ChannelID, "error", err)
		return h.createErrorResponse("Failed to list reminders. Please try again later.")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         command.FormatReminderList(reminders),
	}
}

func (h *SlackHandler) handleCreateReminder(cmd *command.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	fields, ok := entity.SplitReminderFields(cmd.Raw)
	if !ok {
		return h.handleAddReminderHelp()
	}

	reminder, err := h.reminderService.AddReminder(entity.ChatID(slashCmd.ChannelID), fields)
	if err != nil {
		logCreateError(err, slashCmd.ChannelID)
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         command.GetCreateErrorText(slackFormatHelpCommand),
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         command.GetCreatedText(reminder),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func logCreateError(err error, chatID string) {
	if entity.IsValidationError(err) {
		xlog.Warn("Rejected reminder input", "chat_id", chatID, "error", err)
		return
	}
	xlog.Error("Failed to create reminder", "chat_id", chatID, "error", err)
}
