package repository

import (
	"context"
	"errors"

	"tutorcenter-backend/internal/domain"
)

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a transaction could not be serialized
	// (lock timeout or serialization failure). Nothing was committed and
	// the caller may retry the whole operation.
	ErrConflict = errors.New("concurrent update conflict")
)

type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	GetByID(ctx context.Context, id int64) (*domain.Student, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Student, int32, error)
	UpdatePricing(ctx context.Context, id int64, pricePerSessionCents int64) error
}

type AttendanceRepository interface {
	Create(ctx context.Context, session *domain.AttendanceSession) error
	GetByID(ctx context.Context, id int64) (*domain.AttendanceSession, error)
	UpdateStatus(ctx context.Context, id int64, status domain.SessionStatus) error
	SetParentComment(ctx context.Context, id int64, comment string) error
	ListByStudent(ctx context.Context, studentID int64, status domain.SessionStatus, page, pageSize int32) ([]domain.AttendanceSession, int32, error)
}

// LedgerUnit is the set of reads and writes available inside one settle
// transaction. The student row stays locked for the lifetime of the unit.
type LedgerUnit interface {
	Student() *domain.Student
	OutstandingSessions(ctx context.Context) ([]domain.AttendanceSession, error)
	MarkSessionPaid(ctx context.Context, sessionID int64) error
	UpdateBalance(ctx context.Context, balanceCents int64) error
	InsertPayment(ctx context.Context, payment *domain.Payment) error
}

type LedgerRepository interface {
	// Settle runs fn inside a single transaction holding a row lock on
	// the student. If fn returns an error the transaction is rolled back
	// and the error is returned unchanged.
	Settle(ctx context.Context, studentID int64, fn func(unit LedgerUnit) error) error
	GetBalance(ctx context.Context, studentID int64) (int64, error)
	GetPayment(ctx context.Context, id int64) (*domain.Payment, error)
	ListPayments(ctx context.Context, studentID int64, page, pageSize int32) ([]domain.Payment, int32, error)
}
