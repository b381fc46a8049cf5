// Package accounting holds the directional rule shared by every posting path.
// Cash, bank and giro postings all select their debit/credit sides here, so
// the rule cannot drift between transaction types.
package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wiradata/treasury_app/internal/core/domain"
)

// EntrySides resolves which account is debited and which is credited when a
// transaction of the given kind is posted.
// Inflow kinds (receipt, transfer in, clearing in, interest) debit the primary
// account and credit the counter account; outflow kinds swap the sides.
func EntrySides(kind domain.TransactionKind, primaryAccountID, counterAccountID string) (debitAccountID, creditAccountID string, err error) {
	if !kind.Valid() {
		return "", "", fmt.Errorf("unknown transaction kind %q", kind)
	}
	if primaryAccountID == counterAccountID {
		return "", "", fmt.Errorf("primary and counter account must differ (both %s)", primaryAccountID)
	}
	if kind.IsInflow() {
		return primaryAccountID, counterAccountID, nil
	}
	return counterAccountID, primaryAccountID, nil
}

// PairedLines builds the two single-sided lines for a posting journal.
func PairedLines(journalID string, debitAccountID, creditAccountID string, amount decimal.Decimal, description string) []domain.JournalLine {
	return []domain.JournalLine{
		{
			JournalID:   journalID,
			AccountID:   debitAccountID,
			Description: description,
			Debit:       amount,
			Credit:      decimal.Zero,
		},
		{
			JournalID:   journalID,
			AccountID:   creditAccountID,
			Description: description,
			Debit:       decimal.Zero,
			Credit:      amount,
		},
	}
}

// ReversedLines returns the debit/credit inverse of the given lines, so the
// sum of original plus reversal nets to zero per account.
func ReversedLines(lines []domain.JournalLine) []domain.JournalLine {
	reversed := make([]domain.JournalLine, len(lines))
	for i, l := range lines {
		reversed[i] = domain.JournalLine{
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       l.Credit,
			Credit:      l.Debit,
		}
	}
	return reversed
}

// ValidateLines checks the journal-balance invariant over a set of lines:
// at least two lines, each single-sided with a positive amount, and total
// debits equal to total credits.
func ValidateLines(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("journal must have at least two lines, got %d", len(lines))
	}

	debits := decimal.Zero
	credits := decimal.Zero
	for _, l := range lines {
		if !l.IsSingleSided() {
			return fmt.Errorf("journal line for account %s must have exactly one positive side (debit=%s credit=%s)",
				l.AccountID, l.Debit.String(), l.Credit.String())
		}
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("journal lines do not balance: debits %s, credits %s", debits.String(), credits.String())
	}
	return nil
}

// FormatDocumentNumber renders a sequence allocation as the human-readable
// document number, e.g. BNK/2024/03/0001.
func FormatDocumentNumber(prefix string, year int, month int, seq int64) string {
	return fmt.Sprintf("%s/%04d/%02d/%04d", prefix, year, month, seq)
}
