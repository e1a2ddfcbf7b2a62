package services

import (
	"context"
	"fmt"
	"time"

	"ipe/internal/domain"
	"ipe/internal/metrics"
)

type reactionService struct {
	reactionRepo   domain.ReactionRepository
	entryRepo      domain.EntryRepository
	contextTimeout time.Duration
}

func NewReactionService(reactionRepo domain.ReactionRepository, entryRepo domain.EntryRepository, timeout time.Duration) domain.ReactionService {
	return &reactionService{
		reactionRepo:   reactionRepo,
		entryRepo:      entryRepo,
		contextTimeout: timeout,
	}
}

func (s *reactionService) Toggle(ctx context.Context, kind domain.ReactionKind, entryID, userID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.entryRepo.GetByID(ctx, entryID); err != nil {
		return false, fmt.Errorf("get entry: %w", err)
	}
	exists, err := s.reactionRepo.Exists(ctx, kind, entryID, userID)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", kind, err)
	}
	if exists {
		if err := s.reactionRepo.Remove(ctx, kind, entryID, userID); err != nil {
			return false, fmt.Errorf("remove %s: %w", kind, err)
		}
	} else {
		if err := s.reactionRepo.Add(ctx, kind, entryID, userID); err != nil {
			return false, fmt.Errorf("add %s: %w", kind, err)
		}
	}
	metrics.RecordReactionToggled(string(kind), !exists)
	return !exists, nil
}
