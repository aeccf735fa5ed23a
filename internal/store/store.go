// Package store persists Case and Wallet records.
package store

import (
	"context" // Request scoped cancellation

	"chainwatch/internal/domain" // Importing domain models
)

// Store is the Record Store used by the services. Implementations return
// domain.ErrNotFound for unknown ids and wrap every other failure in
// domain.ErrStore.
type Store interface {
	InsertCase(ctx context.Context, c *domain.Case) error
	FindCase(ctx context.Context, id string) (*domain.Case, error)
	FindCases(ctx context.Context) ([]domain.Case, error)
	UpdateCase(ctx context.Context, id string, patch domain.CasePatch) (*domain.Case, error)
	// DeleteCase removes the case and every wallet referencing it in one unit.
	// Without cascade it fails with domain.ErrCaseHasWallets while wallets remain.
	DeleteCase(ctx context.Context, id string, cascade bool) error

	InsertWallet(ctx context.Context, w *domain.Wallet) error
	FindWallet(ctx context.Context, id string) (*domain.Wallet, error)
	FindWallets(ctx context.Context, filter domain.WalletFilter) ([]domain.Wallet, error)
	CountWallets(ctx context.Context, filter domain.WalletFilter) (int64, error)
	UpdateWallet(ctx context.Context, id string, patch domain.WalletPatch) (*domain.Wallet, error)
	DeleteWallet(ctx context.Context, id string) error

	Ping(ctx context.Context) error
}
