package service

import (
	"testing"
	"time"

	"github.com/diegoclair/reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_reminderService_AddReminder(t *testing.T) {
	type args struct {
		chatID entity.ChatID
		fields []string
	}
	tests := []struct {
		name           string
		buildMock      func(mocks allMocks, args args)
		args           args
		wantErr        bool
		wantValidation bool
	}{
		{
			name: "Should store and arm a valid reminder",
			args: args{
				chatID: "123456",
				fields: []string{"Pay Rent", "Monthly rent payment", "2024-04-01", "monthly", "bill"},
			},
			buildMock: func(mocks allMocks, args args) {
				var stored *entity.Reminder
				mocks.mockStore.EXPECT().
					AddReminder(gomock.Any()).
					DoAndReturn(func(r *entity.Reminder) error {
						require.Equal(t, "Pay Rent", r.Title)
						require.Equal(t, args.chatID, r.ChatID)
						require.NotEmpty(t, r.ID)
						stored = r
						return nil
					}).Times(1)

				mocks.mockScheduler.EXPECT().
					Arm(gomock.Any()).
					Do(func(r *entity.Reminder) {
						require.Same(t, stored, r)
					}).Times(1)
			},
		},
		{
			name: "Should reject invalid input without touching the store",
			args: args{
				chatID: "123456",
				fields: []string{"Pay Rent", "", "not-a-date", "monthly", "bill"},
			},
			buildMock:      func(mocks allMocks, args args) {},
			wantErr:        true,
			wantValidation: true,
		},
		{
			name: "Should not arm when the store fails",
			args: args{
				chatID: "123456",
				fields: []string{"Pay Rent", "", "2024-04-01", "monthly", "bill"},
			},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockStore.EXPECT().
					AddReminder(gomock.Any()).
					Return(assert.AnError).Times(1)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m, tt.args)

			s := newReminder(m.mockStore, m.mockScheduler, time.UTC)
			got, err := s.AddReminder(tt.args.chatID, tt.args.fields)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantValidation, entity.IsValidationError(err))
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.True(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC).Equal(got.Date))
			assert.Equal(t, entity.FrequencyMonthly, got.Frequency)
			assert.Equal(t, entity.CategoryBill, got.Category)
		})
	}
}

func Test_reminderService_GetRemindersByChat(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	want := []*entity.Reminder{{ID: "r1", ChatID: "42"}}
	m.mockStore.EXPECT().GetRemindersByChat(entity.ChatID("42")).Return(want, nil).Times(1)
	m.mockStore.EXPECT().GetRemindersByChat(entity.ChatID("43")).Return(nil, assert.AnError).Times(1)

	s := newReminder(m.mockStore, m.mockScheduler, nil)

	got, err := s.GetRemindersByChat("42")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = s.GetRemindersByChat("43")
	assert.ErrorIs(t, err, assert.AnError)
}
