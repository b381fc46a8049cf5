package mapping

import (
	"time"

	"github.com/wiradata/treasury_app/internal/core/domain"
	"github.com/wiradata/treasury_app/internal/models"
)

func toModelAudit(a domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

func toDomainAudit(a models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

func timeMonth(m int) time.Month {
	return time.Month(m)
}

// ToModelJournal converts a domain.Journal for DB storage.
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:   d.JournalID,
		Number:      d.Number,
		JournalDate: d.JournalDate,
		Description: d.Description,
		TotalDebit:  d.TotalDebit,
		TotalCredit: d.TotalCredit,
		Status:      string(d.Status),
		SourceKind:  string(d.SourceKind),
		SourceID:    d.SourceID,
		PostedAt:    d.PostedAt,
		PostedBy:    d.PostedBy,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

// ToDomainJournal converts a scanned models.Journal back to domain.
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:   m.JournalID,
		Number:      m.Number,
		JournalDate: m.JournalDate,
		Description: m.Description,
		TotalDebit:  m.TotalDebit,
		TotalCredit: m.TotalCredit,
		Status:      domain.JournalStatus(m.Status),
		SourceKind:  domain.SourceKind(m.SourceKind),
		SourceID:    m.SourceID,
		PostedAt:    m.PostedAt,
		PostedBy:    m.PostedBy,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToModelJournalLine converts a domain.JournalLine for DB storage.
func ToModelJournalLine(d domain.JournalLine) models.JournalLine {
	return models.JournalLine{
		LineID:      d.LineID,
		JournalID:   d.JournalID,
		AccountID:   d.AccountID,
		Description: d.Description,
		Debit:       d.Debit,
		Credit:      d.Credit,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

// ToDomainJournalLine converts a scanned models.JournalLine back to domain.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		JournalID:   m.JournalID,
		AccountID:   m.AccountID,
		Description: m.Description,
		Debit:       m.Debit,
		Credit:      m.Credit,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToDomainJournalLineSlice converts a slice of models.
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	out := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		out[i] = ToDomainJournalLine(m)
	}
	return out
}

// ToDomainAccount converts a scanned models.Account to domain.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		Code:          m.Code,
		Name:          m.Name,
		AccountType:   domain.AccountType(m.AccountType),
		NormalBalance: domain.Direction(m.NormalBalance),
		IsActive:      m.IsActive,
		AuditFields:   toDomainAudit(m.AuditFields),
	}
}

// ToDomainBankAccount converts a scanned models.BankAccount to domain.
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID:  m.BankAccountID,
		AccountID:      m.AccountID,
		Name:           m.Name,
		AccountNumber:  m.AccountNumber,
		OpeningBalance: m.OpeningBalance,
		RunningBalance: m.RunningBalance,
		IsActive:       m.IsActive,
		AuditFields:    toDomainAudit(m.AuditFields),
	}
}

// ToModelBankAccount converts a domain.BankAccount for DB storage.
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		BankAccountID:  d.BankAccountID,
		AccountID:      d.AccountID,
		Name:           d.Name,
		AccountNumber:  d.AccountNumber,
		OpeningBalance: d.OpeningBalance,
		RunningBalance: d.RunningBalance,
		IsActive:       d.IsActive,
		AuditFields:    toModelAudit(d.AuditFields),
	}
}
