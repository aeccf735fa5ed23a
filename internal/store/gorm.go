package store

import (
	"context" // Request scoped cancellation
	"errors"  // Error matching
	"fmt"     // Error wrapping

	"chainwatch/internal/domain" // Importing domain models

	"github.com/google/uuid" // Record identifiers
	"gorm.io/gorm"           // GORM ORM library
	"gorm.io/gorm/clause"    // Row locking
)

var (
	caseColumns   = []string{"title", "description", "status", "officer"}
	walletColumns = []string{"case_id", "address", "label", "notes", "tx_history", "tokens", "counterparties", "exchange_interactions"}
)

// GormStore keeps records in a relational database through GORM
type GormStore struct {
	db *gorm.DB // Shared connection pool
}

var _ Store = (*GormStore)(nil)

// NewGormStore wraps an open GORM connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// hasWallets reports the wallets an unconfirmed delete would remove
func hasWallets(n int64) error {
	return fmt.Errorf("%w: %d wallet(s) would be deleted", domain.ErrCaseHasWallets, n)
}

// wrapError maps driver errors onto the domain taxonomy
func wrapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrStore), errors.Is(err, domain.ErrCaseHasWallets):
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStore, err)
}

func (s *GormStore) InsertCase(ctx context.Context, c *domain.Case) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return wrapError(s.db.WithContext(ctx).Create(c).Error)
}

func (s *GormStore) FindCase(ctx context.Context, id string) (*domain.Case, error) {
	var c domain.Case
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, wrapError(err)
	}
	return &c, nil
}

func (s *GormStore) FindCases(ctx context.Context) ([]domain.Case, error) {
	var cases []domain.Case
	if err := s.db.WithContext(ctx).Order("created_at desc").Find(&cases).Error; err != nil {
		return nil, wrapError(err)
	}
	return cases, nil
}

// UpdateCase reads the case, applies the patch and writes the editable columns back
func (s *GormStore) UpdateCase(ctx context.Context, id string, patch domain.CasePatch) (*domain.Case, error) {
	var c domain.Case
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&c, "id = ?", id).Error; err != nil {
			return err
		}
		patch.Apply(&c)
		return tx.Model(&c).Select(caseColumns).Updates(&c).Error
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return &c, nil
}

// DeleteCase locks the case row and, without cascade, the case's wallet rows
// before counting, so concurrent inserts wait for the delete to finish
func (s *GormStore) DeleteCase(ctx context.Context, id string, cascade bool) error {
	return wrapError(s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c domain.Case
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&c, "id = ?", id).Error; err != nil {
			return err // Not found rolls back, nothing touched
		}
		if !cascade {
			var n int64
			if err := tx.Model(&domain.Wallet{}).Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("case_id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return hasWallets(n)
			}
		}
		if err := tx.Where("id = ?", id).Delete(&domain.Case{}).Error; err != nil {
			return err
		}
		return tx.Where("case_id = ?", id).Delete(&domain.Wallet{}).Error
	}))
}

func (s *GormStore) InsertWallet(ctx context.Context, w *domain.Wallet) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return wrapError(s.db.WithContext(ctx).Create(w).Error)
}

func (s *GormStore) FindWallet(ctx context.Context, id string) (*domain.Wallet, error) {
	var w domain.Wallet
	if err := s.db.WithContext(ctx).First(&w, "id = ?", id).Error; err != nil {
		return nil, wrapError(err)
	}
	return &w, nil
}

func (s *GormStore) walletQuery(ctx context.Context, filter domain.WalletFilter) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&domain.Wallet{})
	if filter.CaseID != "" {
		q = q.Where("case_id = ?", filter.CaseID)
	}
	return q
}

func (s *GormStore) FindWallets(ctx context.Context, filter domain.WalletFilter) ([]domain.Wallet, error) {
	var wallets []domain.Wallet
	if err := s.walletQuery(ctx, filter).Order("created_at asc").Find(&wallets).Error; err != nil {
		return nil, wrapError(err)
	}
	return wallets, nil
}

func (s *GormStore) CountWallets(ctx context.Context, filter domain.WalletFilter) (int64, error) {
	var n int64
	if err := s.walletQuery(ctx, filter).Count(&n).Error; err != nil {
		return 0, wrapError(err)
	}
	return n, nil
}

// UpdateWallet reads the wallet, applies the patch and writes the editable columns back
func (s *GormStore) UpdateWallet(ctx context.Context, id string, patch domain.WalletPatch) (*domain.Wallet, error) {
	var w domain.Wallet
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&w, "id = ?", id).Error; err != nil {
			return err
		}
		patch.Apply(&w)
		return tx.Model(&w).Select(walletColumns).Updates(&w).Error
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return &w, nil
}

func (s *GormStore) DeleteWallet(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Wallet{})
	if res.Error != nil {
		return wrapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return wrapError(err)
	}
	return wrapError(sqlDB.PingContext(ctx))
}
