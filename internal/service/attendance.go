package service

import (
	"context"
	"errors"

	"tutorcenter-backend/internal/domain"
	"tutorcenter-backend/internal/logger"
	"tutorcenter-backend/internal/repository"
)

var (
	ErrSessionNotPending = errors.New("session is not in pending status")
	ErrCommentRequired   = errors.New("dispute comment is required")
)

type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	studentRepo    repository.StudentRepository
}

func NewAttendanceService(attendanceRepo repository.AttendanceRepository, studentRepo repository.StudentRepository) AttendanceService {
	return &attendanceService{attendanceRepo: attendanceRepo, studentRepo: studentRepo}
}

func (s *attendanceService) ReportSession(ctx context.Context, session *domain.AttendanceSession) error {
	logger.EnterMethod("attendanceService.ReportSession", "studentID", session.StudentID, "scheduledDate", session.ScheduledDate)

	if session.StudentID == 0 {
		return errors.New("student id is required")
	}
	if session.DurationHours <= 0 {
		return errors.New("duration must be positive")
	}
	if session.ScheduledDate.IsZero() {
		return errors.New("scheduled date is required")
	}
	if _, err := s.studentRepo.GetByID(ctx, session.StudentID); err != nil {
		logger.ExitMethodWithError("attendanceService.ReportSession", err, "studentID", session.StudentID)
		return err
	}

	// Every report starts its lifecycle unapproved and unbilled.
	session.Status = domain.SessionStatusPending
	session.PaymentStatus = domain.PaymentStatusUnpaid

	if err := s.attendanceRepo.Create(ctx, session); err != nil {
		logger.ExitMethodWithError("attendanceService.ReportSession", err, "studentID", session.StudentID)
		return err
	}

	logger.ExitMethod("attendanceService.ReportSession", "sessionID", session.ID)
	return nil
}

// transition moves a pending session to the given status. Approving turns
// the session billable; the ledger owns payment_status and is untouched.
func (s *attendanceService) transition(ctx context.Context, sessionID int64, to domain.SessionStatus) (*domain.AttendanceSession, error) {
	session, err := s.attendanceRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionStatusPending {
		return nil, ErrSessionNotPending
	}
	if err := s.attendanceRepo.UpdateStatus(ctx, sessionID, to); err != nil {
		return nil, err
	}
	session.Status = to
	return session, nil
}

func (s *attendanceService) ApproveSession(ctx context.Context, sessionID int64) (*domain.AttendanceSession, error) {
	logger.EnterMethod("attendanceService.ApproveSession", "sessionID", sessionID)
	session, err := s.transition(ctx, sessionID, domain.SessionStatusApproved)
	if err != nil {
		logger.ExitMethodWithError("attendanceService.ApproveSession", err, "sessionID", sessionID)
		return nil, err
	}
	logger.ExitMethod("attendanceService.ApproveSession", "sessionID", sessionID)
	return session, nil
}

func (s *attendanceService) RejectSession(ctx context.Context, sessionID int64) (*domain.AttendanceSession, error) {
	logger.EnterMethod("attendanceService.RejectSession", "sessionID", sessionID)
	session, err := s.transition(ctx, sessionID, domain.SessionStatusRejected)
	if err != nil {
		logger.ExitMethodWithError("attendanceService.RejectSession", err, "sessionID", sessionID)
		return nil, err
	}
	logger.ExitMethod("attendanceService.RejectSession", "sessionID", sessionID)
	return session, nil
}

func (s *attendanceService) RequestReschedule(ctx context.Context, sessionID int64) (*domain.AttendanceSession, error) {
	logger.EnterMethod("attendanceService.RequestReschedule", "sessionID", sessionID)
	session, err := s.transition(ctx, sessionID, domain.SessionStatusRescheduleRequested)
	if err != nil {
		logger.ExitMethodWithError("attendanceService.RequestReschedule", err, "sessionID", sessionID)
		return nil, err
	}
	logger.ExitMethod("attendanceService.RequestReschedule", "sessionID", sessionID)
	return session, nil
}

func (s *attendanceService) DisputeSession(ctx context.Context, sessionID int64, comment string) (*domain.AttendanceSession, error) {
	logger.EnterMethod("attendanceService.DisputeSession", "sessionID", sessionID)

	if comment == "" {
		return nil, ErrCommentRequired
	}
	session, err := s.attendanceRepo.GetByID(ctx, sessionID)
	if err != nil {
		logger.ExitMethodWithError("attendanceService.DisputeSession", err, "sessionID", sessionID)
		return nil, err
	}
	if session.Status != domain.SessionStatusPending {
		return nil, ErrSessionNotPending
	}

	// The session stays pending; the comment is recorded for staff review.
	if err := s.attendanceRepo.SetParentComment(ctx, sessionID, comment); err != nil {
		logger.ExitMethodWithError("attendanceService.DisputeSession", err, "sessionID", sessionID)
		return nil, err
	}
	session.ParentComment = comment

	logger.ExitMethod("attendanceService.DisputeSession", "sessionID", sessionID)
	return session, nil
}

func (s *attendanceService) ListSessions(ctx context.Context, studentID int64, status domain.SessionStatus, page, pageSize int32) ([]domain.AttendanceSession, int32, error) {
	return s.attendanceRepo.ListByStudent(ctx, studentID, status, page, pageSize)
}
