package service

import (
	"context"
	"testing"

	"chainwatch/internal/domain"
	"chainwatch/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	cases   *CaseService
	wallets *WalletService
}

func newFixture() fixture {
	mem := store.NewMemoryStore()
	return fixture{cases: NewCaseService(mem), wallets: NewWalletService(mem)}
}

func (f fixture) newCase(t *testing.T, title string) *domain.Case {
	t.Helper()
	c, err := f.cases.Create(context.Background(), domain.CaseInput{Title: title, Officer: "Officer Smith"})
	require.NoError(t, err)
	return c
}

func TestWalletService_CaseScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	caseA := f.newCase(t, "Case A")
	assert.Equal(t, domain.StatusOpen, caseA.Status)

	_, err := f.wallets.Create(ctx, domain.WalletInput{CaseID: caseA.ID, Address: "0xABC", Label: "Suspect"})
	require.NoError(t, err)

	ws, err := f.wallets.ListForCase(ctx, caseA.ID)
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, "0xABC", ws[0].Address)
	assert.Equal(t, domain.LabelSuspect, ws[0].Label)
}

func TestWalletService_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	c := f.newCase(t, "Case A")

	w, err := f.wallets.Create(ctx, domain.WalletInput{CaseID: c.ID, Address: "bc1qxyz"})
	require.NoError(t, err)
	assert.Equal(t, domain.LabelUnknown, w.Label)
	assert.NotNil(t, w.TxHistory)
	assert.Empty(t, w.TxHistory)
	assert.Empty(t, w.Tokens)
	assert.Empty(t, w.Counterparties)
	assert.Empty(t, w.ExchangeInteractions)
	assert.False(t, w.CreatedAt.IsZero())
}

func TestWalletService_CreateRejectsBadLabelAndMissingCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	c := f.newCase(t, "Case A")

	_, err := f.wallets.Create(ctx, domain.WalletInput{CaseID: c.ID, Address: "0x1", Label: "Mule"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.wallets.Create(ctx, domain.WalletInput{CaseID: "no-such-case", Address: "0x1"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ws, err := f.wallets.ListForCase(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, ws)
}

func TestWalletService_ListForCaseOnlyMatchesCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	a := f.newCase(t, "A")
	b := f.newCase(t, "B")

	want := map[string]bool{}
	for _, addr := range []string{"0x1", "0x2", "0x1"} {
		w, err := f.wallets.Create(ctx, domain.WalletInput{CaseID: a.ID, Address: addr})
		require.NoError(t, err)
		want[w.ID] = true
	}
	_, err := f.wallets.Create(ctx, domain.WalletInput{CaseID: b.ID, Address: "0x1"})
	require.NoError(t, err)

	ws, err := f.wallets.ListForCase(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, ws, 3)
	for _, w := range ws {
		assert.Equal(t, a.ID, w.CaseID)
		assert.True(t, want[w.ID])
	}
}

func TestWalletService_UpdateLabelKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	c := f.newCase(t, "Case A")
	w, err := f.wallets.Create(ctx, domain.WalletInput{CaseID: c.ID, Address: "0xABC", Notes: "bridge hop"})
	require.NoError(t, err)
	require.Equal(t, domain.LabelUnknown, w.Label)

	_, err = f.wallets.Update(ctx, w.ID, domain.WalletUpdate{Label: strPtr("Funnel Wallet")})
	require.NoError(t, err)

	got, err := f.wallets.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LabelFunnel, got.Label)
	assert.Equal(t, "0xABC", got.Address)
	assert.Equal(t, "bridge hop", got.Notes)
	assert.Equal(t, c.ID, got.CaseID)
	assert.Equal(t, w.CreatedAt, got.CreatedAt)
	assert.Empty(t, got.TxHistory)
}

func TestWalletService_UpdateInvalidLabelLeavesRecord(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	c := f.newCase(t, "Case A")
	w, err := f.wallets.Create(ctx, domain.WalletInput{CaseID: c.ID, Address: "0xABC", Label: "Victim"})
	require.NoError(t, err)

	_, err = f.wallets.Update(ctx, w.ID, domain.WalletUpdate{Label: strPtr("Launderer"), Notes: strPtr("changed")})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := f.wallets.Get(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LabelVictim, got.Label)
	assert.Equal(t, "", got.Notes)
}

func TestWalletService_UpdateRecords(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	c := f.newCase(t, "Case A")
	w, err := f.wallets.Create(ctx, domain.WalletInput{CaseID: c.ID, Address: "0xABC"})
	require.NoError(t, err)

	txs := []domain.TxRecord{{Hash: "0xdead", From: "0xABC", To: "0xDEF", Amount: decimal.RequireFromString("0.25"), Asset: "ETH"}}
	ex := []domain.ExchangeInteraction{{Exchange: "Binance", Direction: domain.DirectionDeposit, Amount: decimal.NewFromInt(3)}}
	updated, err := f.wallets.Update(ctx, w.ID, domain.WalletUpdate{TxHistory: &txs, ExchangeInteractions: &ex})
	require.NoError(t, err)
	require.Len(t, updated.TxHistory, 1)
	assert.Equal(t, "0xdead", updated.TxHistory[0].Hash)
	require.Len(t, updated.ExchangeInteractions, 1)

	bad := []domain.ExchangeInteraction{{Exchange: "Binance", Direction: "bridge"}}
	_, err = f.wallets.Update(ctx, w.ID, domain.WalletUpdate{ExchangeInteractions: &bad})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWalletService_MoveToAnotherCase(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	a := f.newCase(t, "A")
	b := f.newCase(t, "B")
	w, err := f.wallets.Create(ctx, domain.WalletInput{CaseID: a.ID, Address: "0x1"})
	require.NoError(t, err)

	_, err = f.wallets.Update(ctx, w.ID, domain.WalletUpdate{CaseID: strPtr("ghost")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	moved, err := f.wallets.Update(ctx, w.ID, domain.WalletUpdate{CaseID: &b.ID})
	require.NoError(t, err)
	assert.Equal(t, b.ID, moved.CaseID)

	inA, err := f.wallets.ListForCase(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, inA)
}

func TestWalletService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	c := f.newCase(t, "A")
	w, err := f.wallets.Create(ctx, domain.WalletInput{CaseID: c.ID, Address: "0x1"})
	require.NoError(t, err)

	removed, err := f.wallets.Delete(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, removed.CaseID)

	_, err = f.wallets.Delete(ctx, w.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
