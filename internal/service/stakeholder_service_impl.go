package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/sprintcap/internal/domain"
	"github.com/alexanderramin/sprintcap/internal/repository"
)

type stakeholderService struct {
	stakeholders repository.StakeholderRepo
}

// NewStakeholderService creates the person directory service.
func NewStakeholderService(stakeholders repository.StakeholderRepo) StakeholderService {
	return &stakeholderService{stakeholders: stakeholders}
}

func (s *stakeholderService) Create(ctx context.Context, sh *domain.Stakeholder) error {
	if strings.TrimSpace(sh.Name) == "" {
		return fmt.Errorf("%w: stakeholder name is required", domain.ErrValidation)
	}
	return s.stakeholders.Create(ctx, sh)
}

func (s *stakeholderService) List(ctx context.Context) ([]*domain.Stakeholder, error) {
	return s.stakeholders.List(ctx)
}
