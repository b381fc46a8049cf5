package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wiradata/treasury_app/internal/core/domain"
)

func TestTransactionKind_Valid(t *testing.T) {
	tests := []struct {
		kind domain.TransactionKind
		want bool
	}{
		{domain.Receipt, true},
		{domain.Disbursement, true},
		{domain.TransferIn, true},
		{domain.TransferOut, true},
		{domain.ClearingIn, true},
		{domain.ClearingOut, true},
		{domain.Interest, true},
		{domain.AdminFee, true},
		{domain.Tax, true},
		{domain.TransactionKind(""), false},
		{domain.TransactionKind("WITHDRAWAL"), false},
		{domain.TransactionKind("receipt"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Valid())
		})
	}
}

func TestTransactionKind_IsInflow(t *testing.T) {
	tests := []struct {
		kind domain.TransactionKind
		want bool
	}{
		{domain.Receipt, true},
		{domain.TransferIn, true},
		{domain.ClearingIn, true},
		{domain.Interest, true},
		{domain.Disbursement, false},
		{domain.TransferOut, false},
		{domain.ClearingOut, false},
		{domain.AdminFee, false},
		{domain.Tax, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsInflow())
		})
	}
}

func TestTransactionKind_IsGiro(t *testing.T) {
	assert.True(t, domain.ClearingIn.IsGiro())
	assert.True(t, domain.ClearingOut.IsGiro())
	assert.False(t, domain.Receipt.IsGiro())
	assert.False(t, domain.TransferIn.IsGiro())
	assert.False(t, domain.Tax.IsGiro())
}

func TestInstrumentStatus_Terminal(t *testing.T) {
	tests := []struct {
		status domain.InstrumentStatus
		want   bool
	}{
		{domain.InstrumentNone, false},
		{domain.InstrumentReceived, false},
		{domain.InstrumentCleared, true},
		{domain.InstrumentRejected, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.Terminal())
		})
	}
}

func TestTransaction_Editable(t *testing.T) {
	tests := []struct {
		name string
		txn  domain.Transaction
		want bool
	}{
		{
			name: "draft cash transaction",
			txn:  domain.Transaction{Kind: domain.Receipt, Status: domain.StatusDraft},
			want: true,
		},
		{
			name: "posted transaction",
			txn:  domain.Transaction{Kind: domain.Receipt, Status: domain.StatusPosted},
			want: false,
		},
		{
			name: "pending approval",
			txn:  domain.Transaction{Kind: domain.Receipt, Status: domain.StatusPendingApproval},
			want: false,
		},
		{
			name: "reconciled transaction",
			txn:  domain.Transaction{Kind: domain.Receipt, Status: domain.StatusReconciled},
			want: false,
		},
		{
			name: "draft giro still received",
			txn: domain.Transaction{
				Kind:             domain.ClearingIn,
				Status:           domain.StatusDraft,
				InstrumentStatus: domain.InstrumentReceived,
			},
			want: true,
		},
		{
			name: "draft giro already cleared",
			txn: domain.Transaction{
				Kind:             domain.ClearingIn,
				Status:           domain.StatusDraft,
				InstrumentStatus: domain.InstrumentCleared,
			},
			want: false,
		},
		{
			name: "draft giro rejected",
			txn: domain.Transaction{
				Kind:             domain.ClearingOut,
				Status:           domain.StatusDraft,
				InstrumentStatus: domain.InstrumentRejected,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txn.Editable())
		})
	}
}

func TestTransaction_NumberPrefix(t *testing.T) {
	bankAccountID := "b1"

	tests := []struct {
		name string
		txn  domain.Transaction
		want string
	}{
		{
			name: "cash receipt",
			txn:  domain.Transaction{Kind: domain.Receipt},
			want: "CSH",
		},
		{
			name: "bank disbursement",
			txn:  domain.Transaction{Kind: domain.Disbursement, BankAccountID: &bankAccountID},
			want: "BNK",
		},
		{
			name: "giro clearing in",
			txn:  domain.Transaction{Kind: domain.ClearingIn, BankAccountID: &bankAccountID},
			want: "GIR",
		},
		{
			name: "giro clearing out without bank account",
			txn:  domain.Transaction{Kind: domain.ClearingOut},
			want: "GIR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txn.NumberPrefix())
		})
	}
}

func TestTransaction_JournalSource(t *testing.T) {
	bankAccountID := "b1"

	assert.Equal(t, domain.SourceCashTransaction, domain.Transaction{Kind: domain.Receipt}.JournalSource())
	assert.Equal(t, domain.SourceBankTransaction, domain.Transaction{Kind: domain.Receipt, BankAccountID: &bankAccountID}.JournalSource())
	assert.Equal(t, domain.SourceGiroReceipt, domain.Transaction{Kind: domain.ClearingIn, BankAccountID: &bankAccountID}.JournalSource())
}

func TestApprovalDecision_Valid(t *testing.T) {
	assert.True(t, domain.DecisionApprove.Valid())
	assert.True(t, domain.DecisionReject.Valid())
	assert.False(t, domain.ApprovalDecision("MAYBE").Valid())
	assert.False(t, domain.ApprovalDecision("").Valid())
}

func TestAccountType_Valid(t *testing.T) {
	assert.True(t, domain.Asset.Valid())
	assert.True(t, domain.Expense.Valid())
	assert.False(t, domain.AccountType("CONTRA_ASSET").Valid())
	assert.False(t, domain.AccountType("").Valid())
}
