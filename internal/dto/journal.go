package dto

import (
	"time"

	"github.com/finbook-app/finbook_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryLineRequest is one line of a journal entry being created.
type EntryLineRequest struct {
	AccountID string               `json:"accountID" binding:"required"`
	Direction domain.LineDirection `json:"direction" binding:"required,linedirection"`
	Amount    decimal.Decimal      `json:"amount" binding:"required"`
}

// CreateEntryRequest defines the payload for creating a journal entry.
// Dates are calendar dates without a time-of-day component.
type CreateEntryRequest struct {
	Date        string             `json:"date" binding:"required,datetime=2006-01-02"`
	Description string             `json:"description" binding:"max=500"`
	Source      string             `json:"source" binding:"required,max=50"`
	SourceID    *string            `json:"sourceID,omitempty"`
	Lines       []EntryLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// EntryDate parses the request date. Binding has already checked the format.
func (r CreateEntryRequest) EntryDate() (time.Time, error) {
	return time.Parse(time.DateOnly, r.Date)
}

// VoidEntryRequest carries the mandatory reason for voiding an entry.
type VoidEntryRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// VoidBySourceRequest identifies the originating record whose entries should
// be voided before that record is deleted.
type VoidBySourceRequest struct {
	Source   string `json:"source" binding:"required,max=50"`
	SourceID string `json:"sourceID" binding:"required"`
}

// VoidBySourceResponse reports how many entries the cascade actually voided.
type VoidBySourceResponse struct {
	VoidedCount int64 `json:"voidedCount"`
}

// EntryLineResponse defines the data returned for a journal entry line.
type EntryLineResponse struct {
	LineID    string               `json:"lineID"`
	AccountID string               `json:"accountID"`
	Direction domain.LineDirection `json:"direction"`
	Amount    decimal.Decimal      `json:"amount"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID     string              `json:"entryID"`
	Date        string              `json:"date"`
	Description string              `json:"description,omitempty"`
	Status      domain.EntryStatus  `json:"status"`
	Source      string              `json:"source"`
	SourceID    *string             `json:"sourceID,omitempty"`
	VoidedAt    *time.Time          `json:"voidedAt,omitempty"`
	VoidReason  string              `json:"voidReason,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	CreatedBy   string              `json:"createdBy"`
	Lines       []EntryLineResponse `json:"lines,omitempty"`
}

// ToEntryLineResponse converts a domain.JournalEntryLine to EntryLineResponse.
func ToEntryLineResponse(line *domain.JournalEntryLine) EntryLineResponse {
	return EntryLineResponse{
		LineID:    line.LineID,
		AccountID: line.AccountID,
		Direction: line.Direction,
		Amount:    line.Amount,
	}
}

// ToEntryResponse converts a domain.JournalEntry to EntryResponse.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:     e.EntryID,
		Date:        e.EntryDate.Format(time.DateOnly),
		Description: e.Description,
		Status:      e.Status,
		Source:      e.Source,
		SourceID:    e.SourceID,
		VoidedAt:    e.VoidedAt,
		VoidReason:  e.VoidReason,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]EntryLineResponse, len(e.Lines))
		for i := range e.Lines {
			resp.Lines[i] = ToEntryLineResponse(&e.Lines[i])
		}
	}
	return resp
}

// ListEntriesResponse is a paginated list of journal entries.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}
