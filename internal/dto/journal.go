package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wiradata/treasury_app/internal/core/domain"
)

// JournalLineResponse is the API representation of one journal line.
type JournalLineResponse struct {
	LineID      string          `json:"lineID"`
	AccountID   string          `json:"accountID"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// JournalResponse is the API representation of a journal.
type JournalResponse struct {
	JournalID   string                `json:"journalID"`
	Number      string                `json:"number"`
	JournalDate time.Time             `json:"journalDate"`
	Description string                `json:"description"`
	TotalDebit  decimal.Decimal       `json:"totalDebit"`
	TotalCredit decimal.Decimal       `json:"totalCredit"`
	Status      string                `json:"status"`
	SourceKind  string                `json:"sourceKind"`
	SourceID    string                `json:"sourceID"`
	PostedAt    *time.Time            `json:"postedAt,omitempty"`
	PostedBy    string                `json:"postedBy,omitempty"`
	Lines       []JournalLineResponse `json:"lines,omitempty"`
}

// ToJournalResponse converts a domain.Journal (with optional lines) to its API shape.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:   j.JournalID,
		Number:      j.Number,
		JournalDate: j.JournalDate,
		Description: j.Description,
		TotalDebit:  j.TotalDebit,
		TotalCredit: j.TotalCredit,
		Status:      string(j.Status),
		SourceKind:  string(j.SourceKind),
		SourceID:    j.SourceID,
		PostedAt:    j.PostedAt,
		PostedBy:    j.PostedBy,
	}
	if len(j.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(j.Lines))
		for i, l := range j.Lines {
			resp.Lines[i] = JournalLineResponse{
				LineID:      l.LineID,
				AccountID:   l.AccountID,
				Description: l.Description,
				Debit:       l.Debit,
				Credit:      l.Credit,
			}
		}
	}
	return resp
}
