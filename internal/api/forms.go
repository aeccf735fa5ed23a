package api

import (
	"encoding/json" // Record decoding
	"strings"       // Input trimming

	"chainwatch/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// CaseForm represents the new-case form
type CaseForm struct {
	Title       string `form:"title"`       // Case title
	Description string `form:"description"` // Case description
	Officer     string `form:"officer"`     // Assigned investigator
}

// WalletForm represents the new-wallet form
type WalletForm struct {
	CaseID  string `form:"caseId"`  // Parent case
	Address string `form:"address"` // Blockchain address
	Label   string `form:"label"`   // Wallet label
	Notes   string `form:"notes"`   // Investigator notes
}

// optionalField returns a pointer to the posted value, or nil when the field was not submitted
func optionalField(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		return &v
	}
	return nil
}

// optionalRecords decodes a JSON array posted in key. Absent means untouched,
// blank means empty.
func optionalRecords[T any](c *gin.Context, key string) (*[]T, error) {
	raw, ok := c.GetPostForm(key)
	if !ok {
		return nil, nil
	}
	raw = strings.TrimSpace(raw)
	out := []T{}
	if raw == "" {
		return &out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, &domain.ValidationError{Field: key, Value: shorten(raw), Reason: "must be a JSON array of records"}
	}
	if out == nil {
		out = []T{} // "null"
	}
	return &out, nil
}

// caseUpdateFromForm collects the submitted case fields
func caseUpdateFromForm(c *gin.Context) domain.CaseUpdate {
	return domain.CaseUpdate{
		Title:       optionalField(c, "title"),
		Description: optionalField(c, "description"),
		Status:      optionalField(c, "status"),
		Officer:     optionalField(c, "officer"),
	}
}

// walletUpdateFromForm collects the submitted wallet fields, decoding the record arrays
func walletUpdateFromForm(c *gin.Context) (domain.WalletUpdate, error) {
	upd := domain.WalletUpdate{
		CaseID:  optionalField(c, "caseId"),
		Address: optionalField(c, "address"),
		Label:   optionalField(c, "label"),
		Notes:   optionalField(c, "notes"),
	}
	var err error
	if upd.TxHistory, err = optionalRecords[domain.TxRecord](c, "txHistory"); err != nil {
		return upd, err
	}
	if upd.Tokens, err = optionalRecords[domain.TokenHolding](c, "tokens"); err != nil {
		return upd, err
	}
	if upd.Counterparties, err = optionalRecords[domain.Counterparty](c, "counterparties"); err != nil {
		return upd, err
	}
	if upd.ExchangeInteractions, err = optionalRecords[domain.ExchangeInteraction](c, "exchangeInteractions"); err != nil {
		return upd, err
	}
	return upd, nil
}

func shorten(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
