package mapping

import (
	"github.com/wiradata/treasury_app/internal/core/domain"
	"github.com/wiradata/treasury_app/internal/models"
)

// ToModelTransaction converts a domain.Transaction for DB storage.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:       d.TransactionID,
		Number:              d.Number,
		Kind:                string(d.Kind),
		TransactionDate:     d.TransactionDate,
		EffectiveDate:       d.EffectiveDate,
		Amount:              d.Amount,
		PrimaryAccountID:    d.PrimaryAccountID,
		CounterAccountID:    d.CounterAccountID,
		BankAccountID:       d.BankAccountID,
		Description:         d.Description,
		RelatedParty:        d.RelatedParty,
		ReferenceNumber:     d.ReferenceNumber,
		Status:              string(d.Status),
		JournalID:           d.JournalID,
		PostedAt:            d.PostedAt,
		PostedBy:            d.PostedBy,
		ReconciledAt:        d.ReconciledAt,
		InstrumentNumber:    d.InstrumentNumber,
		InstrumentDueDate:   d.InstrumentDueDate,
		InstrumentStatus:    string(d.InstrumentStatus),
		SettlementJournalID: d.SettlementJournalID,
		Notes:               d.Notes,
		AuditFields:         toModelAudit(d.AuditFields),
	}
}

// ToDomainTransaction converts a scanned models.Transaction back to domain.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:       m.TransactionID,
		Number:              m.Number,
		Kind:                domain.TransactionKind(m.Kind),
		TransactionDate:     m.TransactionDate,
		EffectiveDate:       m.EffectiveDate,
		Amount:              m.Amount,
		PrimaryAccountID:    m.PrimaryAccountID,
		CounterAccountID:    m.CounterAccountID,
		BankAccountID:       m.BankAccountID,
		Description:         m.Description,
		RelatedParty:        m.RelatedParty,
		ReferenceNumber:     m.ReferenceNumber,
		Status:              domain.TransactionStatus(m.Status),
		JournalID:           m.JournalID,
		PostedAt:            m.PostedAt,
		PostedBy:            m.PostedBy,
		ReconciledAt:        m.ReconciledAt,
		InstrumentNumber:    m.InstrumentNumber,
		InstrumentDueDate:   m.InstrumentDueDate,
		InstrumentStatus:    domain.InstrumentStatus(m.InstrumentStatus),
		SettlementJournalID: m.SettlementJournalID,
		Notes:               m.Notes,
		AuditFields:         toDomainAudit(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of models.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}

// ToModelApprovalRequest converts a domain.ApprovalRequest for DB storage.
func ToModelApprovalRequest(d domain.ApprovalRequest) models.ApprovalRequest {
	return models.ApprovalRequest{
		RequestID:     d.RequestID,
		TransactionID: d.TransactionID,
		RequestedBy:   d.RequestedBy,
		Note:          d.Note,
		Status:        string(d.Status),
		DecidedBy:     d.DecidedBy,
		DecidedAt:     d.DecidedAt,
		AuditFields:   toModelAudit(d.AuditFields),
	}
}

// ToDomainApprovalRequest converts a scanned models.ApprovalRequest to domain.
func ToDomainApprovalRequest(m models.ApprovalRequest) domain.ApprovalRequest {
	return domain.ApprovalRequest{
		RequestID:     m.RequestID,
		TransactionID: m.TransactionID,
		RequestedBy:   m.RequestedBy,
		Note:          m.Note,
		Status:        domain.ApprovalStatus(m.Status),
		DecidedBy:     m.DecidedBy,
		DecidedAt:     m.DecidedAt,
		AuditFields:   toDomainAudit(m.AuditFields),
	}
}

// ToDomainPeriod converts a scanned models.Period to domain.
func ToDomainPeriod(m models.Period) domain.Period {
	return domain.Period{
		PeriodID:    m.PeriodID,
		Year:        m.Year,
		Month:       timeMonth(m.Month),
		Name:        m.Name,
		State:       domain.PeriodState(m.State),
		ClosedAt:    m.ClosedAt,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}
