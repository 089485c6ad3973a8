package domain

import "time"

// Payment is an append-only audit record of one ApplyPayment call.
// Amounts are split so the history distinguishes money that cleared
// session debt from money that became carried credit:
//
//	AmountCents        = total received in this transaction
//	AmountAppliedCents = portion of the new money consumed by settled sessions
//	AmountCreditCents  = portion of the new money left as credit
//	BalanceAfterCents  = student balance snapshot right after the call
type Payment struct {
	ID                 int64  `json:"id"`
	StudentID          int64  `json:"student_id"`
	AmountCents        int64  `json:"amount_cents"`
	AmountAppliedCents int64  `json:"amount_applied_cents"`
	AmountCreditCents  int64  `json:"amount_credit_cents"`
	BalanceAfterCents  int64  `json:"balance_after_cents"`
	// Session ids marked paid by this payment, in settlement order.
	CoveredSessions []int64   `json:"covered_sessions"`
	Note            string    `json:"note"`
	CreatedAt       time.Time `json:"created_at"`
}
