package scheduler

import (
	"time"

	"github.com/alexanderramin/semestra/internal/domain"
)

// Input is the full snapshot one scheduling run operates on. Now is
// caller-supplied; the scheduler never reads the wall clock or any other
// ambient state.
type Input struct {
	Tasks     []domain.Task
	BusySlots []domain.BusySlot
	Profile   *domain.Profile
	Now       time.Time
}

// Assignment is the placement computed for one task.
type Assignment struct {
	TaskID       string
	PlannedStart time.Time
	PlannedEnd   time.Time
}

// DeadlineWarning flags an assignment whose planned end overruns the
// task's deadline. Placement itself never rejects a task for this; the
// warning is advisory output for the caller to surface.
type DeadlineWarning struct {
	TaskID     string
	Deadline   time.Time
	PlannedEnd time.Time
}

// Result is everything one run produced. Assignments follow the sorted
// queue order. Unplaceable lists tasks that exhausted the day-walk bound;
// they carry no assignment and the run continues without them.
type Result struct {
	Assignments      []Assignment
	Unplaceable      []string
	DeadlineWarnings []DeadlineWarning
}

// Schedule places every pending task on the calendar: earliest-deadline
// first, one contiguous session-length block per task, skipping busy hours
// and out-of-window hours. Greedy by design; it does not pack against
// deadlines or weigh priorities.
//
// For a fixed Input the output is fully deterministic. The only error
// returned is a calendar construction failure (ErrInvalidSlot); per-task
// placement failures are collected in Result.Unplaceable instead.
func Schedule(in Input) (*Result, error) {
	cal, err := NewBusyCalendar(in.BusySlots)
	if err != nil {
		return nil, err
	}

	profile := in.Profile
	if profile == nil {
		profile = domain.DefaultProfile("")
	}
	startHour := PreferredStartHour(profile.Chronotype)
	session := time.Duration(profile.SessionMins()) * time.Minute

	queue := BuildQueue(in.Tasks)

	cursor := newSlotCursor(in.Now)
	if cursor.current.Hour() < startHour {
		cursor.current = atHour(cursor.current, startHour)
	}

	res := &Result{}
	for _, task := range queue {
		checkpoint := cursor.current
		start, err := cursor.advanceToNextFree(cal, startHour)
		if err != nil {
			cursor.current = checkpoint
			res.Unplaceable = append(res.Unplaceable, task.ID)
			continue
		}
		end := start.Add(session)
		res.Assignments = append(res.Assignments, Assignment{
			TaskID:       task.ID,
			PlannedStart: start,
			PlannedEnd:   end,
		})
		if end.After(task.Deadline) {
			res.DeadlineWarnings = append(res.DeadlineWarnings, DeadlineWarning{
				TaskID:     task.ID,
				Deadline:   task.Deadline,
				PlannedEnd: end,
			})
		}
		cursor.advancePast(end)
	}
	return res, nil
}
