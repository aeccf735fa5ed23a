// Package service holds the case and wallet operations behind the web handlers.
// Enumerated fields are parsed here, before anything reaches the store.
package service

import (
	"context" // Request scoped cancellation
	"time"    // Creation timestamps

	"chainwatch/internal/domain"  // Importing domain models
	"chainwatch/internal/metrics" // Mutation counters
	"chainwatch/internal/store"   // Record Store
)

// CaseService manages Case records
type CaseService struct {
	store store.Store
	now   func() time.Time
}

// NewCaseService creates a CaseService backed by s
func NewCaseService(s store.Store) *CaseService {
	return &CaseService{store: s, now: time.Now}
}

// Create opens a new case with status Open. Text fields are stored verbatim.
func (s *CaseService) Create(ctx context.Context, in domain.CaseInput) (*domain.Case, error) {
	c := &domain.Case{
		Title:       in.Title,
		Description: in.Description,
		Status:      domain.StatusOpen,
		Officer:     in.Officer,
		CreatedAt:   s.now().UTC(),
	}
	err := s.store.InsertCase(ctx, c)
	metrics.RecordMutation("cases", "create", err)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns every case, newest first
func (s *CaseService) List(ctx context.Context) ([]domain.Case, error) {
	return s.store.FindCases(ctx)
}

// Get returns one case or domain.ErrNotFound
func (s *CaseService) Get(ctx context.Context, id string) (*domain.Case, error) {
	return s.store.FindCase(ctx, id)
}

// Update applies the set fields of upd. An unknown status is rejected before
// the store is touched.
func (s *CaseService) Update(ctx context.Context, id string, upd domain.CaseUpdate) (*domain.Case, error) {
	patch := domain.CasePatch{
		Title:       upd.Title,
		Description: upd.Description,
		Officer:     upd.Officer,
	}
	if upd.Status != nil {
		status, err := domain.ParseCaseStatus(*upd.Status)
		if err != nil {
			return nil, err
		}
		patch.Status = &status
	}
	c, err := s.store.UpdateCase(ctx, id, patch)
	metrics.RecordMutation("cases", "update", err)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes the case. When wallets are still attached the caller has to
// pass cascade=true, in which case they are removed together with the case.
// The wallet check runs inside the store's delete transaction.
func (s *CaseService) Delete(ctx context.Context, id string, cascade bool) error {
	err := s.store.DeleteCase(ctx, id, cascade)
	metrics.RecordMutation("cases", "delete", err)
	return err
}
