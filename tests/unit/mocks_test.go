package unit

import (
	"context"

	"tutorcenter-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockStudentRepo
type MockStudentRepo struct {
	mock.Mock
}

func (m *MockStudentRepo) Create(ctx context.Context, student *domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}
func (m *MockStudentRepo) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}
func (m *MockStudentRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Student, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Student), args.Get(1).(int32), args.Error(2)
}
func (m *MockStudentRepo) UpdatePricing(ctx context.Context, id int64, pricePerSessionCents int64) error {
	args := m.Called(ctx, id, pricePerSessionCents)
	return args.Error(0)
}

// MockAttendanceRepo
type MockAttendanceRepo struct {
	mock.Mock
}

func (m *MockAttendanceRepo) Create(ctx context.Context, session *domain.AttendanceSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}
func (m *MockAttendanceRepo) GetByID(ctx context.Context, id int64) (*domain.AttendanceSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceSession), args.Error(1)
}
func (m *MockAttendanceRepo) UpdateStatus(ctx context.Context, id int64, status domain.SessionStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockAttendanceRepo) SetParentComment(ctx context.Context, id int64, comment string) error {
	args := m.Called(ctx, id, comment)
	return args.Error(0)
}
func (m *MockAttendanceRepo) ListByStudent(ctx context.Context, studentID int64, status domain.SessionStatus, page, pageSize int32) ([]domain.AttendanceSession, int32, error) {
	args := m.Called(ctx, studentID, status, page, pageSize)
	return args.Get(0).([]domain.AttendanceSession), args.Get(1).(int32), args.Error(2)
}
