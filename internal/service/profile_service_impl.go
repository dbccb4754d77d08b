package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/semestra/internal/domain"
	"github.com/alexanderramin/semestra/internal/repository"
)

type profileService struct {
	profiles repository.ProfileRepo
}

func NewProfileService(profiles repository.ProfileRepo) ProfileService {
	return &profileService{profiles: profiles}
}

func (s *profileService) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.DefaultProfile(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *profileService) Save(ctx context.Context, p *domain.Profile) error {
	if p.UserID == "" {
		return fmt.Errorf("profile user id is required")
	}
	if p.Chronotype == "" {
		p.Chronotype = domain.ChronoBalanced
	}
	if p.WorkStyle == "" {
		p.WorkStyle = domain.StyleMixed
	}
	if !domain.ValidChronotypes[string(p.Chronotype)] {
		return fmt.Errorf("invalid chronotype %q", p.Chronotype)
	}
	if !domain.ValidWorkStyles[string(p.WorkStyle)] {
		return fmt.Errorf("invalid work style %q", p.WorkStyle)
	}
	if p.PreferredSessionMins < 0 {
		return fmt.Errorf("preferred session minutes must not be negative")
	}
	return s.profiles.Upsert(ctx, p)
}
