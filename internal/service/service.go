package service

import (
	"context"

	"tutorcenter-backend/internal/domain"
)

type LedgerService interface {
	// ApplyPayment applies new money to the student's oldest outstanding
	// sessions first and records an immutable Payment audit entry. The
	// whole call commits atomically or not at all.
	ApplyPayment(ctx context.Context, studentID, amountCents int64, note string) (*domain.Payment, error)
	GetBalance(ctx context.Context, studentID int64) (int64, error)
	GetPayment(ctx context.Context, paymentID int64) (*domain.Payment, error)
	ListPayments(ctx context.Context, studentID int64, page, pageSize int32) ([]domain.Payment, int32, error)
}

type AttendanceService interface {
	ReportSession(ctx context.Context, session *domain.AttendanceSession) error
	ApproveSession(ctx context.Context, sessionID int64) (*domain.AttendanceSession, error)
	RejectSession(ctx context.Context, sessionID int64) (*domain.AttendanceSession, error)
	RequestReschedule(ctx context.Context, sessionID int64) (*domain.AttendanceSession, error)
	DisputeSession(ctx context.Context, sessionID int64, comment string) (*domain.AttendanceSession, error)
	ListSessions(ctx context.Context, studentID int64, status domain.SessionStatus, page, pageSize int32) ([]domain.AttendanceSession, int32, error)
}

type StudentService interface {
	CreateStudent(ctx context.Context, student *domain.Student) error
	GetStudent(ctx context.Context, id int64) (*domain.Student, error)
	ListStudents(ctx context.Context, page, pageSize int32) ([]domain.Student, int32, error)
	UpdatePricing(ctx context.Context, id, pricePerSessionCents int64) error
}
