package service

import (
	"context" // Request scoped cancellation
	"fmt"     // Error wrapping
	"strings" // Input trimming
	"time"    // Creation timestamps

	"chainwatch/internal/domain"  // Importing domain models
	"chainwatch/internal/metrics" // Mutation counters
	"chainwatch/internal/store"   // Record Store
)

// WalletService manages Wallet records, always scoped to an existing case
type WalletService struct {
	store store.Store
	now   func() time.Time
}

// NewWalletService creates a WalletService backed by s
func NewWalletService(s store.Store) *WalletService {
	return &WalletService{store: s, now: time.Now}
}

// requireCase fails with domain.ErrNotFound when caseID does not resolve
func (s *WalletService) requireCase(ctx context.Context, caseID string) error {
	if _, err := s.store.FindCase(ctx, caseID); err != nil {
		return fmt.Errorf("case %q: %w", caseID, err)
	}
	return nil
}

// Create attaches a wallet to a case. An empty label means Unknown.
func (s *WalletService) Create(ctx context.Context, in domain.WalletInput) (*domain.Wallet, error) {
	label := domain.LabelUnknown
	if strings.TrimSpace(in.Label) != "" {
		parsed, err := domain.ParseWalletLabel(in.Label)
		if err != nil {
			return nil, err
		}
		label = parsed
	}
	if err := s.requireCase(ctx, in.CaseID); err != nil {
		return nil, err
	}
	w := &domain.Wallet{
		CaseID:               in.CaseID,
		Address:              in.Address,
		Label:                label,
		Notes:                in.Notes,
		TxHistory:            []domain.TxRecord{},
		Tokens:               []domain.TokenHolding{},
		Counterparties:       []domain.Counterparty{},
		ExchangeInteractions: []domain.ExchangeInteraction{},
		CreatedAt:            s.now().UTC(),
	}
	err := s.store.InsertWallet(ctx, w)
	metrics.RecordMutation("wallets", "create", err)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// ListForCase returns exactly the wallets whose case id is caseID
func (s *WalletService) ListForCase(ctx context.Context, caseID string) ([]domain.Wallet, error) {
	return s.store.FindWallets(ctx, domain.WalletFilter{CaseID: caseID})
}

// Get returns one wallet or domain.ErrNotFound
func (s *WalletService) Get(ctx context.Context, id string) (*domain.Wallet, error) {
	return s.store.FindWallet(ctx, id)
}

// Update applies the set fields of upd after validating label, exchange
// directions and, when it changes, the parent case.
func (s *WalletService) Update(ctx context.Context, id string, upd domain.WalletUpdate) (*domain.Wallet, error) {
	patch := domain.WalletPatch{
		CaseID:               upd.CaseID,
		Address:              upd.Address,
		Notes:                upd.Notes,
		TxHistory:            upd.TxHistory,
		Tokens:               upd.Tokens,
		Counterparties:       upd.Counterparties,
		ExchangeInteractions: upd.ExchangeInteractions,
	}
	if upd.Label != nil {
		label, err := domain.ParseWalletLabel(*upd.Label)
		if err != nil {
			return nil, err
		}
		patch.Label = &label
	}
	if upd.ExchangeInteractions != nil {
		if err := domain.ValidateExchangeInteractions(*upd.ExchangeInteractions); err != nil {
			return nil, err
		}
	}
	if upd.CaseID != nil {
		if err := s.requireCase(ctx, *upd.CaseID); err != nil {
			return nil, err
		}
	}
	w, err := s.store.UpdateWallet(ctx, id, patch)
	metrics.RecordMutation("wallets", "update", err)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Delete removes the wallet and returns what was removed
func (s *WalletService) Delete(ctx context.Context, id string) (*domain.Wallet, error) {
	w, err := s.store.FindWallet(ctx, id)
	if err != nil {
		return nil, err
	}
	err = s.store.DeleteWallet(ctx, id)
	metrics.RecordMutation("wallets", "delete", err)
	if err != nil {
		return nil, err
	}
	return w, nil
}
