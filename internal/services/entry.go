package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ipe/internal/domain"
	"ipe/internal/metrics"
)

type entryService struct {
	entryRepo      domain.EntryRepository
	userRepo       domain.UserRepository
	reactionRepo   domain.ReactionRepository
	gate           domain.InviteGate
	contextTimeout time.Duration
	now            func() time.Time
}

func NewEntryService(entryRepo domain.EntryRepository,
	userRepo domain.UserRepository,
	reactionRepo domain.ReactionRepository,
	gate domain.InviteGate,
	timeout time.Duration,
) domain.EntryService {
	return &entryService{
		entryRepo:      entryRepo,
		userRepo:       userRepo,
		reactionRepo:   reactionRepo,
		gate:           gate,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// Submit checks the invite code before the payload is validated.
func (s *entryService) Submit(ctx context.Context, inviteCode, researcherID string, in domain.EntryInput) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.gate.Verify(inviteCode); err != nil {
		metrics.RecordSubmissionRejected(metrics.ReasonInvalidInviteCode)
		return nil, err
	}
	in = in.Normalize()
	if err := validateEntryInput(in); err != nil {
		if errors.Is(err, domain.ErrMissingRequiredField) {
			metrics.RecordSubmissionRejected(metrics.ReasonMissingRequiredField)
		}
		return nil, err
	}

	researcher, err := s.userRepo.GetByID(ctx, researcherID)
	if err != nil {
		return nil, fmt.Errorf("get researcher: %w", err)
	}
	entry := domain.NewEntry(researcher.ID, researcher.Name, in, s.now().UTC())
	if err := s.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	metrics.RecordEntrySubmitted()
	return entry, nil
}

func validateEntryInput(in domain.EntryInput) error {
	if in.SourceLink == "" {
		return fmt.Errorf("%w: source_link is required", domain.ErrMissingRequiredField)
	}
	return in.CheckLengths()
}

func (s *entryService) List(ctx context.Context, filter domain.EntryFilter, params domain.PaginationParams) ([]*domain.Entry, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !domain.IsArea(filter.Area) {
		filter.Area = ""
	}
	filter.Query = strings.TrimSpace(filter.Query)
	entries, total, err := s.entryRepo.List(ctx, filter, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list entries: %w", err)
	}
	return entries, total, nil
}

func (s *entryService) Get(ctx context.Context, id, viewerID string) (*domain.EntryDetail, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if err := s.entryRepo.IncrementViews(ctx, id); err != nil {
		return nil, fmt.Errorf("count view: %w", err)
	}
	entry.Views++

	detail := &domain.EntryDetail{Entry: entry}
	if viewerID == "" {
		return detail, nil
	}
	detail.Owner = viewerID == entry.ResearcherID
	if detail.Liked, err = s.reactionRepo.Exists(ctx, domain.ReactionLike, id, viewerID); err != nil {
		return nil, fmt.Errorf("check like: %w", err)
	}
	if detail.Saved, err = s.reactionRepo.Exists(ctx, domain.ReactionSave, id, viewerID); err != nil {
		return nil, fmt.Errorf("check save: %w", err)
	}
	return detail, nil
}

func (s *entryService) Update(ctx context.Context, id, ownerID string, in domain.EntryInput) (*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	entry, err := s.ownedEntry(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	in = in.Normalize()
	if err := validateEntryInput(in); err != nil {
		return nil, err
	}
	in.Apply(entry)
	now := s.now().UTC()
	entry.UpdatedAt = &now
	if err := s.entryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}
	return entry, nil
}

func (s *entryService) Delete(ctx context.Context, id, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.ownedEntry(ctx, id, ownerID); err != nil {
		return err
	}
	if err := s.entryRepo.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// ownedEntry loads the entry and returns ErrForbidden unless ownerID authored it.
func (s *entryService) ownedEntry(ctx context.Context, id, ownerID string) (*domain.Entry, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if entry.ResearcherID != ownerID {
		return nil, domain.ErrForbidden
	}
	return entry, nil
}

func (s *entryService) ListMine(ctx context.Context, ownerID string) ([]*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	entries, err := s.entryRepo.ListByResearcherID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list own entries: %w", err)
	}
	return entries, nil
}

func (s *entryService) ListByResearcher(ctx context.Context, name string) ([]*domain.Entry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: researcher name is required", domain.ErrInvalidInput)
	}
	entries, err := s.entryRepo.ListByResearcherName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list researcher entries: %w", err)
	}
	return entries, nil
}
