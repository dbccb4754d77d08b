package service

import (
	"context"
	"time"

	"github.com/alexanderramin/semestra/internal/domain"
	"github.com/alexanderramin/semestra/internal/repository"
	"github.com/google/uuid"
)

type busySlotService struct {
	slots repository.BusySlotRepo
}

func NewBusySlotService(slots repository.BusySlotRepo) BusySlotService {
	return &busySlotService{slots: slots}
}

func (s *busySlotService) Add(ctx context.Context, slot *domain.BusySlot) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if slot.SlotType == "" {
		slot.SlotType = "class"
	}
	slot.CreatedAt = time.Now().UTC()
	return s.slots.Create(ctx, slot)
}

func (s *busySlotService) List(ctx context.Context, userID string) ([]*domain.BusySlot, error) {
	return s.slots.List(ctx, userID)
}

func (s *busySlotService) ReplaceAll(ctx context.Context, userID string, slots []domain.BusySlot) error {
	now := time.Now().UTC()
	for i := range slots {
		if slots[i].ID == "" {
			slots[i].ID = uuid.New().String()
		}
		slots[i].UserID = userID
		if slots[i].SlotType == "" {
			slots[i].SlotType = "class"
		}
		slots[i].CreatedAt = now
	}
	return s.slots.ReplaceAll(ctx, userID, slots)
}

func (s *busySlotService) Delete(ctx context.Context, userID, id string) error {
	return s.slots.Delete(ctx, userID, id)
}
