package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alexanderramin/semestra/internal/db"
	"github.com/alexanderramin/semestra/internal/domain"
	"github.com/alexanderramin/semestra/internal/repository"
	"github.com/alexanderramin/semestra/internal/scheduler"
)

type scheduleService struct {
	tasks    repository.TaskRepo
	slots    repository.BusySlotRepo
	profiles repository.ProfileRepo
	uow      db.UnitOfWork

	// now is swappable so tests can pin the clock.
	now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewScheduleService(tasks repository.TaskRepo, slots repository.BusySlotRepo, profiles repository.ProfileRepo, uow db.UnitOfWork) ScheduleService {
	return &scheduleService{
		tasks:    tasks,
		slots:    slots,
		profiles: profiles,
		uow:      uow,
		now:      func() time.Time { return time.Now() },
		locks:    make(map[string]*sync.Mutex),
	}
}

func (s *scheduleService) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

func (s *scheduleService) Run(ctx context.Context, userID string) (*scheduler.Result, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	pending, err := s.tasks.ListPending(ctx, userID)
	if err != nil {
		return nil, err
	}
	slots, err := s.slots.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		profile = domain.DefaultProfile(userID)
	} else if err != nil {
		return nil, err
	}

	in := scheduler.Input{
		Profile: profile,
		Now:     s.now(),
	}
	for _, t := range pending {
		in.Tasks = append(in.Tasks, *t)
	}
	for _, sl := range slots {
		in.BusySlots = append(in.BusySlots, *sl)
	}

	result, err := scheduler.Schedule(in)
	if err != nil {
		return nil, err
	}

	// Persist the whole run atomically: a partial plan is worse than the
	// previous one.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks := repository.NewSQLiteTaskRepo(tx)
		for _, a := range result.Assignments {
			if err := tasks.SetPlannedTimes(ctx, userID, a.TaskID, a.PlannedStart, a.PlannedEnd); err != nil {
				return err
			}
		}
		for _, id := range result.Unplaceable {
			if err := tasks.ClearPlannedTimes(ctx, userID, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
