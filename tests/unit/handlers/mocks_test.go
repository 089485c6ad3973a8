package handlers

import (
	"context"

	"tutorcenter-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockLedgerService
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ApplyPayment(ctx context.Context, studentID, amountCents int64, note string) (*domain.Payment, error) {
	args := m.Called(ctx, studentID, amountCents, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockLedgerService) GetBalance(ctx context.Context, studentID int64) (int64, error) {
	args := m.Called(ctx, studentID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockLedgerService) GetPayment(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockLedgerService) ListPayments(ctx context.Context, studentID int64, page, pageSize int32) ([]domain.Payment, int32, error) {
	args := m.Called(ctx, studentID, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int32), args.Error(2)
}

// MockAttendanceService
type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) ReportSession(ctx context.Context, session *domain.AttendanceSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}
func (m *MockAttendanceService) ApproveSession(ctx context.Context, sessionID int64) (*domain.AttendanceSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceSession), args.Error(1)
}
func (m *MockAttendanceService) RejectSession(ctx context.Context, sessionID int64) (*domain.AttendanceSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceSession), args.Error(1)
}
func (m *MockAttendanceService) RequestReschedule(ctx context.Context, sessionID int64) (*domain.AttendanceSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceSession), args.Error(1)
}
func (m *MockAttendanceService) DisputeSession(ctx context.Context, sessionID int64, comment string) (*domain.AttendanceSession, error) {
	args := m.Called(ctx, sessionID, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceSession), args.Error(1)
}
func (m *MockAttendanceService) ListSessions(ctx context.Context, studentID int64, status domain.SessionStatus, page, pageSize int32) ([]domain.AttendanceSession, int32, error) {
	args := m.Called(ctx, studentID, status, page, pageSize)
	return args.Get(0).([]domain.AttendanceSession), args.Get(1).(int32), args.Error(2)
}

// MockStudentService
type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) CreateStudent(ctx context.Context, student *domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}
func (m *MockStudentService) GetStudent(ctx context.Context, id int64) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}
func (m *MockStudentService) ListStudents(ctx context.Context, page, pageSize int32) ([]domain.Student, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Student), args.Get(1).(int32), args.Error(2)
}
func (m *MockStudentService) UpdatePricing(ctx context.Context, id, pricePerSessionCents int64) error {
	args := m.Called(ctx, id, pricePerSessionCents)
	return args.Error(0)
}
