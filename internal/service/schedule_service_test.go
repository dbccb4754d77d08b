package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/semestra/internal/domain"
	"github.com/alexanderramin/semestra/internal/repository"
	"github.com/alexanderramin/semestra/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scheduleHarness struct {
	svc      ScheduleService
	tasks    repository.TaskRepo
	slots    repository.BusySlotRepo
	profiles repository.ProfileRepo
}

func newScheduleHarness(t *testing.T, now time.Time) *scheduleHarness {
	t.Helper()
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)
	slots := repository.NewSQLiteBusySlotRepo(database)
	profiles := repository.NewSQLiteProfileRepo(database)
	svc := NewScheduleService(tasks, slots, profiles, testutil.NewTestUoW(database)).(*scheduleService)
	svc.now = func() time.Time { return now }
	return &scheduleHarness{svc: svc, tasks: tasks, slots: slots, profiles: profiles}
}

// Monday 2026-03-02.
var scheduleNow = time.Date(2026, time.March, 2, 7, 0, 0, 0, time.UTC)

func TestScheduleRun_PersistsPlannedTimes(t *testing.T) {
	h := newScheduleHarness(t, scheduleNow)
	ctx := context.Background()

	early := testutil.NewTestTask("essay draft", scheduleNow.AddDate(0, 0, 2))
	late := testutil.NewTestTask("problem set", scheduleNow.AddDate(0, 0, 5))
	require.NoError(t, h.tasks.Create(ctx, early))
	require.NoError(t, h.tasks.Create(ctx, late))

	result, err := h.svc.Run(ctx, testutil.TestUserID)
	require.NoError(t, err)
	require.Len(t, result.Assignments, 2)
	assert.Empty(t, result.Unplaceable)

	// Earliest deadline first; balanced chronotype starts at 10:00.
	assert.Equal(t, early.ID, result.Assignments[0].TaskID)
	assert.Equal(t, 10, result.Assignments[0].PlannedStart.Hour())
	assert.Equal(t, late.ID, result.Assignments[1].TaskID)
	assert.Equal(t, 11, result.Assignments[1].PlannedStart.Hour())

	stored, err := h.tasks.GetByID(ctx, testutil.TestUserID, early.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.PlannedStart)
	require.NotNil(t, stored.PlannedEnd)
	assert.True(t, stored.PlannedStart.Equal(result.Assignments[0].PlannedStart))
	assert.True(t, stored.PlannedEnd.Equal(result.Assignments[0].PlannedEnd))
}

func TestScheduleRun_SkipsBusySlots(t *testing.T) {
	h := newScheduleHarness(t, scheduleNow)
	ctx := context.Background()

	// Monday 10:00-12:00 is blocked.
	require.NoError(t, h.slots.Create(ctx, testutil.NewTestSlot(0, 10, 12)))
	task := testutil.NewTestTask("reading", scheduleNow.AddDate(0, 0, 1))
	require.NoError(t, h.tasks.Create(ctx, task))

	result, err := h.svc.Run(ctx, testutil.TestUserID)
	require.NoError(t, err)
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, 12, result.Assignments[0].PlannedStart.Hour())
}

func TestScheduleRun_UsesStoredProfile(t *testing.T) {
	h := newScheduleHarness(t, scheduleNow)
	ctx := context.Background()

	require.NoError(t, h.profiles.Upsert(ctx, testutil.NewTestProfile(domain.ChronoMorning, 90)))
	task := testutil.NewTestTask("lab report", scheduleNow.AddDate(0, 0, 3))
	require.NoError(t, h.tasks.Create(ctx, task))

	result, err := h.svc.Run(ctx, testutil.TestUserID)
	require.NoError(t, err)
	require.Len(t, result.Assignments, 1)
	a := result.Assignments[0]
	assert.Equal(t, 8, a.PlannedStart.Hour())
	assert.Equal(t, 90*time.Minute, a.PlannedEnd.Sub(a.PlannedStart))
}

func TestScheduleRun_IgnoresCompletedAndDropped(t *testing.T) {
	h := newScheduleHarness(t, scheduleNow)
	ctx := context.Background()

	done := testutil.NewTestTask("done", scheduleNow.AddDate(0, 0, 1), testutil.WithTaskStatus(domain.TaskCompleted))
	dropped := testutil.NewTestTask("dropped", scheduleNow.AddDate(0, 0, 1), testutil.WithTaskStatus(domain.TaskDropped))
	open := testutil.NewTestTask("open", scheduleNow.AddDate(0, 0, 1))
	require.NoError(t, h.tasks.Create(ctx, done))
	require.NoError(t, h.tasks.Create(ctx, dropped))
	require.NoError(t, h.tasks.Create(ctx, open))

	result, err := h.svc.Run(ctx, testutil.TestUserID)
	require.NoError(t, err)
	require.Len(t, result.Assignments, 1)
	assert.Equal(t, open.ID, result.Assignments[0].TaskID)
}

func TestScheduleRun_ClearsPlanForUnplaceable(t *testing.T) {
	h := newScheduleHarness(t, scheduleNow)
	ctx := context.Background()

	// Block all 14 in-window hours on every day of the week.
	var slots []domain.BusySlot
	for day := 0; day < 7; day++ {
		slots = append(slots, *testutil.NewTestSlot(day, 8, 22))
	}
	require.NoError(t, h.slots.ReplaceAll(ctx, testutil.TestUserID, slots))

	stale := scheduleNow.Add(-24 * time.Hour)
	task := testutil.NewTestTask("stuck", scheduleNow.AddDate(0, 0, 1),
		testutil.WithPlan(stale, stale.Add(time.Hour)))
	require.NoError(t, h.tasks.Create(ctx, task))

	result, err := h.svc.Run(ctx, testutil.TestUserID)
	require.NoError(t, err)
	assert.Empty(t, result.Assignments)
	require.Len(t, result.Unplaceable, 1)

	stored, err := h.tasks.GetByID(ctx, testutil.TestUserID, task.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.PlannedStart)
	assert.Nil(t, stored.PlannedEnd)
}

func TestScheduleRun_RerunIsIdempotent(t *testing.T) {
	h := newScheduleHarness(t, scheduleNow)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, h.tasks.Create(ctx, testutil.NewTestTask("t", scheduleNow.AddDate(0, 0, i+1))))
	}

	first, err := h.svc.Run(ctx, testutil.TestUserID)
	require.NoError(t, err)
	second, err := h.svc.Run(ctx, testutil.TestUserID)
	require.NoError(t, err)

	require.Equal(t, len(first.Assignments), len(second.Assignments))
	for i := range first.Assignments {
		assert.Equal(t, first.Assignments[i].TaskID, second.Assignments[i].TaskID)
		assert.True(t, first.Assignments[i].PlannedStart.Equal(second.Assignments[i].PlannedStart))
	}
}

func TestScheduleRun_ScopedToUser(t *testing.T) {
	h := newScheduleHarness(t, scheduleNow)
	ctx := context.Background()

	other := testutil.NewTestTask("not mine", scheduleNow.AddDate(0, 0, 1))
	other.UserID = "someone-else"
	require.NoError(t, h.tasks.Create(ctx, other))

	result, err := h.svc.Run(ctx, testutil.TestUserID)
	require.NoError(t, err)
	assert.Empty(t, result.Assignments)
}
