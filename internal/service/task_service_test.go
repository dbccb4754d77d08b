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

func newTaskHarness(t *testing.T) (TaskService, repository.FeedbackRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)
	feedback := repository.NewSQLiteFeedbackRepo(database)
	return NewTaskService(tasks, testutil.NewTestUoW(database)), feedback
}

func TestTaskCreate_Defaults(t *testing.T) {
	svc, _ := newTaskHarness(t)
	ctx := context.Background()

	task := &domain.Task{
		UserID:   testutil.TestUserID,
		Title:    "read chapter 4",
		Deadline: time.Now().AddDate(0, 0, 7),
	}
	require.NoError(t, svc.Create(ctx, task))

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.CategoryAssignment, task.Category)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Equal(t, domain.TaskPending, task.Status)

	stored, err := svc.GetByID(ctx, testutil.TestUserID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "read chapter 4", stored.Title)
}

func TestTaskCreate_Validation(t *testing.T) {
	svc, _ := newTaskHarness(t)
	ctx := context.Background()
	deadline := time.Now().AddDate(0, 0, 1)

	err := svc.Create(ctx, &domain.Task{UserID: testutil.TestUserID, Deadline: deadline})
	assert.ErrorContains(t, err, "title")

	err = svc.Create(ctx, &domain.Task{UserID: testutil.TestUserID, Title: "x"})
	assert.ErrorContains(t, err, "deadline")

	err = svc.Create(ctx, &domain.Task{
		UserID: testutil.TestUserID, Title: "x", Deadline: deadline,
		Category: "chore",
	})
	assert.ErrorContains(t, err, "category")
}

func TestTaskComplete_RecordsFeedback(t *testing.T) {
	svc, feedback := newTaskHarness(t)
	ctx := context.Background()

	task := testutil.NewTestTask("lab writeup", time.Now().AddDate(0, 0, 2))
	require.NoError(t, svc.Create(ctx, task))

	err := svc.Complete(ctx, testutil.TestUserID, task.ID, &domain.Feedback{
		ActualDurationMins: 45,
		DrainIntensity:     4,
		Note:               "harder than expected",
	})
	require.NoError(t, err)

	stored, err := svc.GetByID(ctx, testutil.TestUserID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, stored.Status)

	rows, err := feedback.ListByTask(ctx, testutil.TestUserID, task.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 45, rows[0].ActualDurationMins)
	assert.Equal(t, 4, rows[0].DrainIntensity)
	assert.Equal(t, "harder than expected", rows[0].Note)
}

func TestTaskComplete_NilFeedbackUsesDefaults(t *testing.T) {
	svc, feedback := newTaskHarness(t)
	ctx := context.Background()

	task := testutil.NewTestTask("skim notes", time.Now().AddDate(0, 0, 2))
	require.NoError(t, svc.Create(ctx, task))
	require.NoError(t, svc.Complete(ctx, testutil.TestUserID, task.ID, nil))

	rows, err := feedback.ListByTask(ctx, testutil.TestUserID, task.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, defaultFeedbackDurationMins, rows[0].ActualDurationMins)
	assert.Equal(t, defaultFeedbackDrain, rows[0].DrainIntensity)
}

func TestTaskComplete_AlreadyCompleted(t *testing.T) {
	svc, feedback := newTaskHarness(t)
	ctx := context.Background()

	task := testutil.NewTestTask("quiz prep", time.Now().AddDate(0, 0, 2))
	require.NoError(t, svc.Create(ctx, task))
	require.NoError(t, svc.Complete(ctx, testutil.TestUserID, task.ID, nil))

	err := svc.Complete(ctx, testutil.TestUserID, task.ID, nil)
	assert.ErrorContains(t, err, "already completed")

	// The failed second call must not leave a second feedback row behind.
	rows, err := feedback.ListByTask(ctx, testutil.TestUserID, task.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestTaskComplete_InvalidDrainRollsBack(t *testing.T) {
	svc, feedback := newTaskHarness(t)
	ctx := context.Background()

	task := testutil.NewTestTask("flashcards", time.Now().AddDate(0, 0, 2))
	require.NoError(t, svc.Create(ctx, task))

	err := svc.Complete(ctx, testutil.TestUserID, task.ID, &domain.Feedback{DrainIntensity: 9})
	require.Error(t, err)

	stored, err := svc.GetByID(ctx, testutil.TestUserID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPending, stored.Status)

	rows, err := feedback.ListByTask(ctx, testutil.TestUserID, task.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestTaskDrop_ClearsPlan(t *testing.T) {
	svc, _ := newTaskHarness(t)
	ctx := context.Background()

	start := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	task := testutil.NewTestTask("optional reading", time.Now().AddDate(0, 0, 2),
		testutil.WithPlan(start, start.Add(time.Hour)))
	require.NoError(t, svc.Create(ctx, task))
	require.NoError(t, svc.Drop(ctx, testutil.TestUserID, task.ID))

	stored, err := svc.GetByID(ctx, testutil.TestUserID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskDropped, stored.Status)
	assert.Nil(t, stored.PlannedStart)
	assert.Nil(t, stored.PlannedEnd)
}

func TestTaskComplete_NotFound(t *testing.T) {
	svc, _ := newTaskHarness(t)
	err := svc.Complete(context.Background(), testutil.TestUserID, "no-such-task", nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
