package handlers_test

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/diegoclair/reminder-bot/internal/handlers/test"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testChatID int64 = 123456

// expectReply asserts a single message sent to testChatID and hands its text to check.
func expectReply(t *testing.T, m test.ServiceMocks, check func(text string)) {
	m.TelegramClientMock.EXPECT().
		SendMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
			require.Equal(t, testChatID, params.ChatID)
			check(params.Text)
			return &models.Message{}, nil
		}).Times(1)
}

func TestTelegramHandler_HandleUpdate(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		buildMocks func(t *testing.T, m test.ServiceMocks)
	}{
		{
			name: "Should welcome on /start",
			text: "/start",
			buildMocks: func(t *testing.T, m test.ServiceMocks) {
				expectReply(t, m, func(text string) {
					assert.Contains(t, text, "Welcome to the Reminder Bot!")
					assert.Contains(t, text, "/add_reminder - Add a new reminder")
				})
			},
		},
		{
			name: "Should answer /help like /start",
			text: "/help@reminder_bot",
			buildMocks: func(t *testing.T, m test.ServiceMocks) {
				expectReply(t, m, func(text string) {
					assert.Contains(t, text, "Welcome to the Reminder Bot!")
				})
			},
		},
		{
			name: "Should explain the format on /add_reminder",
			text: "/add_reminder",
			buildMocks: func(t *testing.T, m test.ServiceMocks) {
				expectReply(t, m, func(text string) {
					assert.Contains(t, text, "Please send your reminder in the following format:")
					assert.Contains(t, text, "Pay Rent | Monthly rent payment | 2024-04-01 | monthly | bill")
				})
			},
		},
		{
			name: "Should list the chat reminders",
			text: "/list_reminders",
			buildMocks: func(t *testing.T, m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().
					GetRemindersByChat(entity.ChatID("123456")).
					Return([]*entity.Reminder{
						{
							Title:       "Pay Rent",
							Description: "Monthly rent payment",
							Date:        time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
							Frequency:   entity.FrequencyMonthly,
							Category:    entity.CategoryBill,
						},
					}, nil).Times(1)
				expectReply(t, m, func(text string) {
					assert.Equal(t, "📅 Pay Rent\n   Description: Monthly rent payment\n   Date: 2024-04-01\n   Frequency: monthly\n   Category: bill\n", text)
				})
			},
		},
		{
			name: "Should tell when there are no reminders",
			text: "/list_reminders",
			buildMocks: func(t *testing.T, m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().
					GetRemindersByChat(entity.ChatID("123456")).
					Return([]*entity.Reminder{}, nil).Times(1)
				expectReply(t, m, func(text string) {
					assert.Equal(t, "You have no reminders set.", text)
				})
			},
		},
		{
			name: "Should create a reminder from five fields",
			text: "Pay Rent | Monthly rent payment | 2024-04-01 | monthly | bill",
			buildMocks: func(t *testing.T, m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().
					AddReminder(entity.ChatID("123456"), []string{"Pay Rent", "Monthly rent payment", "2024-04-01", "monthly", "bill"}).
					Return(&entity.Reminder{
						ID:        "r1",
						Title:     "Pay Rent",
						Date:      time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
						Frequency: entity.FrequencyMonthly,
					}, nil).Times(1)
				expectReply(t, m, func(text string) {
					assert.Equal(t, "✅ Reminder set successfully!\n\nTitle: Pay Rent\nDate: 2024-04-01\nFrequency: monthly", text)
				})
			},
		},
		{
			name: "Should reply with the format error on invalid input",
			text: "Pay Rent | x | 2024-04-01 | weekly | bill",
			buildMocks: func(t *testing.T, m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().
					AddReminder(gomock.Any(), gomock.Any()).
					Return(nil, entity.ErrInvalidFrequency).Times(1)
				expectReply(t, m, func(text string) {
					assert.Equal(t, "❌ Error creating reminder. Please check the format and try again.\nUse /add_reminder to see the correct format.", text)
				})
			},
		},
		{
			name: "Should reply with the format error when storing fails",
			text: "Pay Rent | x | 2024-04-01 | monthly | bill",
			buildMocks: func(t *testing.T, m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().
					AddReminder(gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError).Times(1)
				expectReply(t, m, func(text string) {
					assert.Contains(t, text, "❌ Error creating reminder.")
				})
			},
		},
		{
			name: "Should treat an indented slash as reminder input",
			text: " /x | a | b | c | d",
			buildMocks: func(t *testing.T, m test.ServiceMocks) {
				m.ReminderServiceMock.EXPECT().
					AddReminder(entity.ChatID("123456"), []string{"/x", "a", "b", "c", "d"}).
					Return(nil, entity.ErrInvalidDate).Times(1)
				expectReply(t, m, func(text string) {
					assert.Contains(t, text, "❌ Error creating reminder.")
				})
			},
		},
		{
			name:       "Should ignore plain chatter",
			text:       "hello there",
			buildMocks: func(t *testing.T, m test.ServiceMocks) {},
		},
		{
			name:       "Should ignore unknown commands",
			text:       "/weather",
			buildMocks: func(t *testing.T, m test.ServiceMocks) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetTelegramHandlerTest(t)
			defer ctrl.Finish()

			tt.buildMocks(t, m)

			handler.HandleUpdate(context.Background(), test.NewTelegramUpdate(testChatID, tt.text))
		})
	}
}

func TestTelegramHandler_HandleUpdate_IgnoresNonMessages(t *testing.T) {
	_, handler, ctrl := test.GetTelegramHandlerTest(t)
	defer ctrl.Finish()

	handler.HandleUpdate(context.Background(), &models.Update{ID: 1})
	handler.HandleUpdate(context.Background(), test.NewTelegramUpdate(testChatID, ""))
}

func TestTelegramHandler_ReplyFailureIsLogged(t *testing.T) {
	m, handler, ctrl := test.GetTelegramHandlerTest(t)
	defer ctrl.Finish()

	m.TelegramClientMock.EXPECT().
		SendMessage(gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError).Times(1)

	assert.NotPanics(t, func() {
		handler.HandleUpdate(context.Background(), test.NewTelegramUpdate(testChatID, "/start"))
	})
}
