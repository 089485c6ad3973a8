package domain

import "time"

type StudentStatus string

const (
	StudentStatusActive   StudentStatus = "active"
	StudentStatusInactive StudentStatus = "inactive"
)

type Student struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	// Flat rate charged per approved session, in minor currency units.
	PricePerSessionCents int64 `json:"price_per_session_cents"`
	// Signed running balance. Positive is prepaid credit, negative is
	// debt carried from before session tracking (opening balance).
	// Written only by the payment ledger.
	BalanceCents      int64         `json:"balance_cents"`
	SessionsPerPeriod int32         `json:"sessions_per_period"`
	Status            StudentStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
