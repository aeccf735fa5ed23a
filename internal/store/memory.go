package store

import (
	"context" // Request scoped cancellation
	"slices"  // Slice helpers
	"sort"    // Result ordering
	"sync"    // Guards the maps
	"time"    // Timestamps

	"chainwatch/internal/domain" // Importing domain models

	"github.com/google/uuid" // Record identifiers
)

// MemoryStore is an in-process Store. It is safe for concurrent use and is
// meant for tests and local runs without a database.
type MemoryStore struct {
	mu          sync.RWMutex
	cases       map[string]domain.Case
	caseOrder   []string
	wallets     map[string]domain.Wallet
	walletOrder []string
	now         func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cases:   make(map[string]domain.Case),
		wallets: make(map[string]domain.Wallet),
		now:     time.Now,
	}
}

func cloneWallet(w domain.Wallet) domain.Wallet {
	w.TxHistory = slices.Clone(w.TxHistory)
	w.Tokens = slices.Clone(w.Tokens)
	w.Counterparties = slices.Clone(w.Counterparties)
	w.ExchangeInteractions = slices.Clone(w.ExchangeInteractions)
	return w
}

func (s *MemoryStore) InsertCase(_ context.Context, c *domain.Case) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := s.now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	if _, exists := s.cases[c.ID]; !exists {
		s.caseOrder = append(s.caseOrder, c.ID)
	}
	s.cases[c.ID] = *c
	return nil
}

func (s *MemoryStore) FindCase(_ context.Context, id string) (*domain.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cases[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

// FindCases returns cases newest first; ties keep the latest insert first
func (s *MemoryStore) FindCases(_ context.Context) ([]domain.Case, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Case, 0, len(s.caseOrder))
	for i := len(s.caseOrder) - 1; i >= 0; i-- {
		out = append(out, s.cases[s.caseOrder[i]])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) UpdateCase(_ context.Context, id string, patch domain.CasePatch) (*domain.Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cases[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	patch.Apply(&c)
	c.UpdatedAt = s.now()
	s.cases[id] = c
	return &c, nil
}

func (s *MemoryStore) DeleteCase(_ context.Context, id string, cascade bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cases[id]; !ok {
		return domain.ErrNotFound
	}
	if !cascade {
		if n := int64(len(s.matching(domain.WalletFilter{CaseID: id}))); n > 0 {
			return hasWallets(n)
		}
	}
	delete(s.cases, id)
	s.caseOrder = slices.DeleteFunc(s.caseOrder, func(v string) bool { return v == id })
	for wid, w := range s.wallets {
		if w.CaseID == id {
			delete(s.wallets, wid)
		}
	}
	s.walletOrder = slices.DeleteFunc(s.walletOrder, func(v string) bool {
		_, ok := s.wallets[v]
		return !ok
	})
	return nil
}

func (s *MemoryStore) InsertWallet(_ context.Context, w *domain.Wallet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	now := s.now()
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	w.UpdatedAt = now
	if _, exists := s.wallets[w.ID]; !exists {
		s.walletOrder = append(s.walletOrder, w.ID)
	}
	s.wallets[w.ID] = cloneWallet(*w)
	return nil
}

func (s *MemoryStore) FindWallet(_ context.Context, id string) (*domain.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.wallets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	w = cloneWallet(w)
	return &w, nil
}

func (s *MemoryStore) matching(filter domain.WalletFilter) []domain.Wallet {
	var out []domain.Wallet
	for _, id := range s.walletOrder {
		w := s.wallets[id]
		if filter.CaseID != "" && w.CaseID != filter.CaseID {
			continue
		}
		out = append(out, cloneWallet(w))
	}
	return out
}

// FindWallets returns matching wallets oldest first
func (s *MemoryStore) FindWallets(_ context.Context, filter domain.WalletFilter) ([]domain.Wallet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.matching(filter)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryStore) CountWallets(_ context.Context, filter domain.WalletFilter) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.matching(filter))), nil
}

func (s *MemoryStore) UpdateWallet(_ context.Context, id string, patch domain.WalletPatch) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wallets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	patch.Apply(&w)
	w.UpdatedAt = s.now()
	s.wallets[id] = cloneWallet(w)
	return &w, nil
}

func (s *MemoryStore) DeleteWallet(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wallets[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.wallets, id)
	s.walletOrder = slices.DeleteFunc(s.walletOrder, func(v string) bool { return v == id })
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}
