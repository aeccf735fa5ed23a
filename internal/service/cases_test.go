package service

import (
	"context"
	"testing"
	"time"

	"chainwatch/internal/domain"
	"chainwatch/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCaseService_CreateDefaultsToOpen(t *testing.T) {
	ctx := context.Background()
	svc := NewCaseService(store.NewMemoryStore())

	c, err := svc.Create(ctx, domain.CaseInput{Title: "Case A", Officer: "Officer Smith"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, domain.StatusOpen, c.Status)
	assert.False(t, c.CreatedAt.After(time.Now()))

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Case A", got.Title)
	assert.Equal(t, "Officer Smith", got.Officer)
	assert.Equal(t, domain.StatusOpen, got.Status)
}

func TestCaseService_CreateAcceptsEmptyFields(t *testing.T) {
	svc := NewCaseService(store.NewMemoryStore())

	c, err := svc.Create(context.Background(), domain.CaseInput{})
	require.NoError(t, err)
	assert.Equal(t, "", c.Title)
	assert.Equal(t, domain.StatusOpen, c.Status)
}

func TestCaseService_List(t *testing.T) {
	ctx := context.Background()
	svc := NewCaseService(store.NewMemoryStore())

	for _, title := range []string{"one", "two", "three"} {
		_, err := svc.Create(ctx, domain.CaseInput{Title: title})
		require.NoError(t, err)
	}
	cases, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, cases, 3)
}

func TestCaseService_UpdateSubset(t *testing.T) {
	ctx := context.Background()
	svc := NewCaseService(store.NewMemoryStore())
	c, err := svc.Create(ctx, domain.CaseInput{Title: "Case A", Description: "rug pull", Officer: "Smith"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, c.ID, domain.CaseUpdate{
		Status:  strPtr("Under Investigation"),
		Officer: strPtr("Jones"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnderInvestigation, updated.Status)
	assert.Equal(t, "Jones", updated.Officer)
	assert.Equal(t, "Case A", updated.Title)
	assert.Equal(t, "rug pull", updated.Description)
}

func TestCaseService_UpdateInvalidStatusLeavesRecord(t *testing.T) {
	ctx := context.Background()
	svc := NewCaseService(store.NewMemoryStore())
	c, err := svc.Create(ctx, domain.CaseInput{Title: "Case A"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, c.ID, domain.CaseUpdate{Title: strPtr("changed"), Status: strPtr("Archived")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOpen, got.Status)
	assert.Equal(t, "Case A", got.Title)
}

func TestCaseService_UpdateUnknownID(t *testing.T) {
	svc := NewCaseService(store.NewMemoryStore())

	_, err := svc.Update(context.Background(), "missing", domain.CaseUpdate{Title: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCaseService_DeleteUnknownIsNotFoundWithoutSideEffects(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	svc := NewCaseService(mem)
	c, err := svc.Create(ctx, domain.CaseInput{Title: "keep"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		assert.ErrorIs(t, svc.Delete(ctx, "missing", true), domain.ErrNotFound)
	}

	cases, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, cases, 1)
	assert.Equal(t, c.ID, cases[0].ID)
}

func TestCaseService_DeleteRequiresConfirmationWhenWalletsAttached(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	cases := NewCaseService(mem)
	wallets := NewWalletService(mem)

	c, err := cases.Create(ctx, domain.CaseInput{Title: "Case A"})
	require.NoError(t, err)
	_, err = wallets.Create(ctx, domain.WalletInput{CaseID: c.ID, Address: "0xABC"})
	require.NoError(t, err)

	n, err := mem.CountWallets(ctx, domain.WalletFilter{CaseID: c.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	err = cases.Delete(ctx, c.ID, false)
	assert.ErrorIs(t, err, domain.ErrCaseHasWallets)
	_, err = cases.Get(ctx, c.ID)
	require.NoError(t, err)

	require.NoError(t, cases.Delete(ctx, c.ID, true))
	_, err = cases.Get(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	left, err := wallets.ListForCase(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestCaseService_DeleteWithoutWallets(t *testing.T) {
	ctx := context.Background()
	svc := NewCaseService(store.NewMemoryStore())
	c, err := svc.Create(ctx, domain.CaseInput{Title: "empty"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, c.ID, false))
}
