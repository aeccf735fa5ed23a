package store

import (
	"context" // Request scoped cancellation
	"fmt"     // Error wrapping

	"chainwatch/internal/domain" // Importing domain models
)

// Unavailable stands in for the database when the startup connection failed.
// Every call fails with domain.ErrStore so requests error out instead of the
// process refusing to start.
type Unavailable struct {
	cause error
}

var _ Store = (*Unavailable)(nil)

// NewUnavailable returns a Store that always reports cause
func NewUnavailable(cause error) *Unavailable {
	return &Unavailable{cause: cause}
}

func (u *Unavailable) err() error {
	return fmt.Errorf("%w: database unavailable: %v", domain.ErrStore, u.cause)
}

func (u *Unavailable) InsertCase(context.Context, *domain.Case) error { return u.err() }

func (u *Unavailable) FindCase(context.Context, string) (*domain.Case, error) { return nil, u.err() }

func (u *Unavailable) FindCases(context.Context) ([]domain.Case, error) { return nil, u.err() }

func (u *Unavailable) UpdateCase(context.Context, string, domain.CasePatch) (*domain.Case, error) {
	return nil, u.err()
}

func (u *Unavailable) DeleteCase(context.Context, string, bool) error { return u.err() }

func (u *Unavailable) InsertWallet(context.Context, *domain.Wallet) error { return u.err() }

func (u *Unavailable) FindWallet(context.Context, string) (*domain.Wallet, error) { return nil, u.err() }

func (u *Unavailable) FindWallets(context.Context, domain.WalletFilter) ([]domain.Wallet, error) {
	return nil, u.err()
}

func (u *Unavailable) CountWallets(context.Context, domain.WalletFilter) (int64, error) {
	return 0, u.err()
}

func (u *Unavailable) UpdateWallet(context.Context, string, domain.WalletPatch) (*domain.Wallet, error) {
	return nil, u.err()
}

func (u *Unavailable) DeleteWallet(context.Context, string) error { return u.err() }

func (u *Unavailable) Ping(context.Context) error { return u.err() }
