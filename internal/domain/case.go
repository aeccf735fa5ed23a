package domain

import (
	"strings" // String trimming
	"time"    // Timestamps
)

// CaseStatus is the investigation state of a Case
type CaseStatus string

// Allowed case statuses
const (
	StatusOpen               CaseStatus = "Open"
	StatusUnderInvestigation CaseStatus = "Under Investigation"
	StatusClosed             CaseStatus = "Closed"
)

// CaseStatuses lists every allowed status in display order
func CaseStatuses() []CaseStatus {
	return []CaseStatus{StatusOpen, StatusUnderInvestigation, StatusClosed}
}

// Valid reports whether s is one of the allowed statuses
func (s CaseStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusUnderInvestigation, StatusClosed:
		return true
	}
	return false
}

// ParseCaseStatus converts raw form input into a CaseStatus
func ParseCaseStatus(raw string) (CaseStatus, error) {
	s := CaseStatus(strings.TrimSpace(raw))
	if !s.Valid() {
		return "", &ValidationError{Field: "status", Value: raw, Reason: "must be one of Open, Under Investigation, Closed"}
	}
	return s, nil
}

// Case Model
type Case struct {
	ID          string     `gorm:"primaryKey;type:varchar(36)" json:"id"`                // Server-assigned identifier
	Title       string     `gorm:"type:varchar(255)" json:"title"`                       // Free-text title
	Description string     `gorm:"type:text" json:"description"`                         // Free-text description
	Status      CaseStatus `gorm:"type:varchar(32);not null;default:Open" json:"status"` // Investigation status
	Officer     string     `gorm:"type:varchar(255)" json:"officer"`                     // Assigned investigator
	CreatedAt   time.Time  `gorm:"index;autoCreateTime" json:"createdAt"`                // Set once at insert
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`                      // Last modification
}

// CaseInput carries the fields accepted when opening a case
type CaseInput struct {
	Title       string // Free-text title
	Description string // Free-text description
	Officer     string // Assigned investigator
}

// CaseUpdate carries raw user input for a partial case update; nil means untouched
type CaseUpdate struct {
	Title       *string
	Description *string
	Status      *string
	Officer     *string
}

// CasePatch is a validated partial update handed to the store
type CasePatch struct {
	Title       *string
	Description *string
	Status      *CaseStatus
	Officer     *string
}

// Apply copies the set fields of p onto c
func (p CasePatch) Apply(c *Case) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Officer != nil {
		c.Officer = *p.Officer
	}
}
