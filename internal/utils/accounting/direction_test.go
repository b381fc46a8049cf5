package accounting_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiradata/treasury_app/internal/core/domain"
	"github.com/wiradata/treasury_app/internal/utils/accounting"
)

func TestEntrySides(t *testing.T) {
	const primary = "primary-acc"
	const counter = "counter-acc"

	tests := []struct {
		kind       domain.TransactionKind
		wantDebit  string
		wantCredit string
	}{
		{domain.Receipt, primary, counter},
		{domain.TransferIn, primary, counter},
		{domain.ClearingIn, primary, counter},
		{domain.Interest, primary, counter},
		{domain.Disbursement, counter, primary},
		{domain.TransferOut, counter, primary},
		{domain.ClearingOut, counter, primary},
		{domain.AdminFee, counter, primary},
		{domain.Tax, counter, primary},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			debit, credit, err := accounting.EntrySides(tt.kind, primary, counter)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDebit, debit)
			assert.Equal(t, tt.wantCredit, credit)
		})
	}
}

func TestEntrySides_UnknownKind(t *testing.T) {
	_, _, err := accounting.EntrySides(domain.TransactionKind("BOGUS"), "a", "b")
	assert.Error(t, err)
}

func TestEntrySides_SameAccount(t *testing.T) {
	_, _, err := accounting.EntrySides(domain.Receipt, "same", "same")
	assert.Error(t, err)
}

func TestPairedLines(t *testing.T) {
	amount := decimal.NewFromFloat(1500.50)
	lines := accounting.PairedLines("j1", "debit-acc", "credit-acc", amount, "payment received")

	require.Len(t, lines, 2)

	assert.Equal(t, "j1", lines[0].JournalID)
	assert.Equal(t, "debit-acc", lines[0].AccountID)
	assert.True(t, lines[0].Debit.Equal(amount))
	assert.True(t, lines[0].Credit.IsZero())

	assert.Equal(t, "j1", lines[1].JournalID)
	assert.Equal(t, "credit-acc", lines[1].AccountID)
	assert.True(t, lines[1].Debit.IsZero())
	assert.True(t, lines[1].Credit.Equal(amount))

	assert.NoError(t, accounting.ValidateLines(lines))
}

func TestReversedLines(t *testing.T) {
	amount := decimal.NewFromInt(900)
	original := accounting.PairedLines("j1", "giro-holding", "revenue", amount, "giro receipt")

	reversed := accounting.ReversedLines(original)
	require.Len(t, reversed, 2)

	// Per account, original plus reversal must net to zero.
	for i := range original {
		assert.Equal(t, original[i].AccountID, reversed[i].AccountID)
		net := original[i].Debit.Sub(original[i].Credit).Add(reversed[i].Debit.Sub(reversed[i].Credit))
		assert.True(t, net.IsZero(), "account %s does not net to zero", original[i].AccountID)
	}

	assert.NoError(t, accounting.ValidateLines(reversed))
}

func TestValidateLines(t *testing.T) {
	amount := decimal.NewFromInt(100)

	tests := []struct {
		name    string
		lines   []domain.JournalLine
		wantErr bool
	}{
		{
			name: "balanced pair",
			lines: []domain.JournalLine{
				{AccountID: "a1", Debit: amount, Credit: decimal.Zero},
				{AccountID: "a2", Debit: decimal.Zero, Credit: amount},
			},
			wantErr: false,
		},
		{
			name: "single line",
			lines: []domain.JournalLine{
				{AccountID: "a1", Debit: amount, Credit: decimal.Zero},
			},
			wantErr: true,
		},
		{
			name: "unbalanced totals",
			lines: []domain.JournalLine{
				{AccountID: "a1", Debit: amount, Credit: decimal.Zero},
				{AccountID: "a2", Debit: decimal.Zero, Credit: decimal.NewFromInt(99)},
			},
			wantErr: true,
		},
		{
			name: "double-sided line",
			lines: []domain.JournalLine{
				{AccountID: "a1", Debit: amount, Credit: amount},
				{AccountID: "a2", Debit: amount, Credit: amount},
			},
			wantErr: true,
		},
		{
			name: "zero-amount line",
			lines: []domain.JournalLine{
				{AccountID: "a1", Debit: decimal.Zero, Credit: decimal.Zero},
				{AccountID: "a2", Debit: decimal.Zero, Credit: decimal.Zero},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := accounting.ValidateLines(tt.lines)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatDocumentNumber(t *testing.T) {
	assert.Equal(t, "BNK/2024/03/0001", accounting.FormatDocumentNumber("BNK", 2024, 3, 1))
	assert.Equal(t, "JRN/2024/12/0420", accounting.FormatDocumentNumber("JRN", 2024, 12, 420))
	assert.Equal(t, "GIR/2025/01/12345", accounting.FormatDocumentNumber("GIR", 2025, 1, 12345))
}
