package domain

import (
	"strings" // String trimming
	"time"    // Timestamps
)

// WalletLabel is the role a wallet plays in an investigation
type WalletLabel string

// Allowed wallet labels
const (
	LabelVictim  WalletLabel = "Victim"
	LabelSuspect WalletLabel = "Suspect"
	LabelFunnel  WalletLabel = "Funnel Wallet"
	LabelUnknown WalletLabel = "Unknown"
)

// WalletLabels lists every allowed label in display order
func WalletLabels() []WalletLabel {
	return []WalletLabel{LabelVictim, LabelSuspect, LabelFunnel, LabelUnknown}
}

// Valid reports whether l is one of the allowed labels
func (l WalletLabel) Valid() bool {
	switch l {
	case LabelVictim, LabelSuspect, LabelFunnel, LabelUnknown:
		return true
	}
	return false
}

// ParseWalletLabel converts raw form input into a WalletLabel
func ParseWalletLabel(raw string) (WalletLabel, error) {
	l := WalletLabel(strings.TrimSpace(raw))
	if !l.Valid() {
		return "", &ValidationError{Field: "label", Value: raw, Reason: "must be one of Victim, Suspect, Funnel Wallet, Unknown"}
	}
	return l, nil
}

// Wallet Model
type Wallet struct {
	ID                   string                `gorm:"primaryKey;type:varchar(36)" json:"id"`                  // Server-assigned identifier
	CaseID               string                `gorm:"type:varchar(36);index;not null" json:"caseId"`          // Parent case reference
	Address              string                `gorm:"type:varchar(128);index" json:"address"`                 // Blockchain address, verbatim
	Label                WalletLabel           `gorm:"type:varchar(32);not null;default:Unknown" json:"label"` // Role in the case
	Notes                string                `gorm:"type:text" json:"notes"`                                 // Investigator notes
	TxHistory            []TxRecord            `gorm:"serializer:json;type:json" json:"txHistory"`             // Observed transactions
	Tokens               []TokenHolding        `gorm:"serializer:json;type:json" json:"tokens"`                // Token balances
	Counterparties       []Counterparty        `gorm:"serializer:json;type:json" json:"counterparties"`        // Addresses it dealt with
	ExchangeInteractions []ExchangeInteraction `gorm:"serializer:json;type:json" json:"exchangeInteractions"`  // Deposits/withdrawals at exchanges
	CreatedAt            time.Time             `gorm:"index;autoCreateTime" json:"createdAt"`                  // Set once at insert
	UpdatedAt            time.Time             `gorm:"autoUpdateTime" json:"updatedAt"`                        // Last modification
}

// WalletInput carries the raw fields accepted when attaching a wallet to a case
type WalletInput struct {
	CaseID  string // Parent case
	Address string // Blockchain address
	Label   string // Raw label; empty means Unknown
	Notes   string // Investigator notes
}

// WalletUpdate carries raw user input for a partial wallet update; nil means untouched
type WalletUpdate struct {
	CaseID               *string
	Address              *string
	Label                *string
	Notes                *string
	TxHistory            *[]TxRecord
	Tokens               *[]TokenHolding
	Counterparties       *[]Counterparty
	ExchangeInteractions *[]ExchangeInteraction
}

// WalletPatch is a validated partial update handed to the store
type WalletPatch struct {
	CaseID               *string
	Address              *string
	Label                *WalletLabel
	Notes                *string
	TxHistory            *[]TxRecord
	Tokens               *[]TokenHolding
	Counterparties       *[]Counterparty
	ExchangeInteractions *[]ExchangeInteraction
}

// Apply copies the set fields of p onto w
func (p WalletPatch) Apply(w *Wallet) {
	if p.CaseID != nil {
		w.CaseID = *p.CaseID
	}
	if p.Address != nil {
		w.Address = *p.Address
	}
	if p.Label != nil {
		w.Label = *p.Label
	}
	if p.Notes != nil {
		w.Notes = *p.Notes
	}
	if p.TxHistory != nil {
		w.TxHistory = *p.TxHistory
	}
	if p.Tokens != nil {
		w.Tokens = *p.Tokens
	}
	if p.Counterparties != nil {
		w.Counterparties = *p.Counterparties
	}
	if p.ExchangeInteractions != nil {
		w.ExchangeInteractions = *p.ExchangeInteractions
	}
}

// WalletFilter narrows wallet lookups; empty fields match everything
type WalletFilter struct {
	CaseID string // Only wallets of this case
}
