package domain

import (
	"time" // Timestamps

	"github.com/shopspring/decimal" // Exact amounts
)

// TxRecord is one transaction observed for a wallet
type TxRecord struct {
	Hash      string          `json:"hash"`      // Transaction hash
	From      string          `json:"from"`      // Sender address
	To        string          `json:"to"`        // Recipient address
	Amount    decimal.Decimal `json:"amount"`    // Transferred amount
	Asset     string          `json:"asset"`     // Asset symbol
	Timestamp time.Time       `json:"timestamp"` // Block time
}

// TokenHolding is a token balance held by a wallet
type TokenHolding struct {
	Symbol   string          `json:"symbol"`   // Token symbol
	Contract string          `json:"contract"` // Token contract address
	Balance  decimal.Decimal `json:"balance"`  // Held amount
}

// Counterparty is an address the wallet exchanged funds with
type Counterparty struct {
	Address string          `json:"address"` // Counterparty address
	Label   string          `json:"label"`   // Free-text tag
	TxCount int             `json:"txCount"` // Number of transactions seen
	Volume  decimal.Decimal `json:"volume"`  // Total volume exchanged
	Notes   string          `json:"notes"`   // Investigator notes
}

// ExchangeDirection tells whether funds went into or out of an exchange
type ExchangeDirection string

// Allowed exchange directions
const (
	DirectionDeposit    ExchangeDirection = "deposit"
	DirectionWithdrawal ExchangeDirection = "withdrawal"
)

// Valid reports whether d is deposit or withdrawal
func (d ExchangeDirection) Valid() bool {
	return d == DirectionDeposit || d == DirectionWithdrawal
}

// ExchangeInteraction is a deposit to or withdrawal from a centralized exchange
type ExchangeInteraction struct {
	Exchange  string            `json:"exchange"`  // Exchange name
	Direction ExchangeDirection `json:"direction"` // deposit or withdrawal
	TxHash    string            `json:"txHash"`    // Transaction hash
	Amount    decimal.Decimal   `json:"amount"`    // Moved amount
	Asset     string            `json:"asset"`     // Asset symbol
	Timestamp time.Time         `json:"timestamp"` // Block time
}

// ValidateExchangeInteractions checks every entry has a known direction
func ValidateExchangeInteractions(items []ExchangeInteraction) error {
	for _, it := range items {
		if !it.Direction.Valid() {
			return &ValidationError{Field: "exchangeInteractions", Value: string(it.Direction), Reason: "direction must be deposit or withdrawal"}
		}
	}
	return nil
}
