package service

import (
	"testing"

	"github.com/diegoclair/reminder-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockStore     *mocks.MockReminderStore
	mockNotifier  *mocks.MockNotifier
	mockWakeups   *mocks.MockWakeupScheduler
	mockScheduler *mocks.MockScheduler
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	m = allMocks{
		mockStore:     mocks.NewMockReminderStore(ctrl),
		mockNotifier:  mocks.NewMockNotifier(ctrl),
		mockWakeups:   mocks.NewMockWakeupScheduler(ctrl),
		mockScheduler: mocks.NewMockScheduler(ctrl),
	}

	// validate service creation
	instance := NewInstance(m.mockStore, m.mockNotifier, m.mockWakeups, Options{})
	require.NotNil(t, instance.Reminder)
	require.NotNil(t, instance.Scheduler)

	return
}
