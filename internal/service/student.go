package service

import (
	"context"
	"errors"

	"tutorcenter-backend/internal/domain"
	"tutorcenter-backend/internal/logger"
	"tutorcenter-backend/internal/repository"
)

var ErrNegativeRate = errors.New("price per session must not be negative")

type studentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) CreateStudent(ctx context.Context, student *domain.Student) error {
	logger.EnterMethod("studentService.CreateStudent", "fullName", student.FullName)

	if student.FullName == "" {
		return errors.New("full name is required")
	}
	if student.PricePerSessionCents < 0 {
		return ErrNegativeRate
	}
	if student.Status == "" {
		student.Status = domain.StudentStatusActive
	}
	// A negative opening balance is allowed: it represents legacy debt
	// carried from before session tracking.

	if err := s.studentRepo.Create(ctx, student); err != nil {
		logger.ExitMethodWithError("studentService.CreateStudent", err, "fullName", student.FullName)
		return err
	}

	logger.ExitMethod("studentService.CreateStudent", "studentID", student.ID)
	return nil
}

func (s *studentService) GetStudent(ctx context.Context, id int64) (*domain.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func (s *studentService) ListStudents(ctx context.Context, page, pageSize int32) ([]domain.Student, int32, error) {
	return s.studentRepo.List(ctx, page, pageSize)
}

func (s *studentService) UpdatePricing(ctx context.Context, id, pricePerSessionCents int64) error {
	logger.EnterMethod("studentService.UpdatePricing", "studentID", id, "priceCents", pricePerSessionCents)

	if pricePerSessionCents < 0 {
		return ErrNegativeRate
	}
	if pricePerSessionCents == 0 {
		// Legal, but payments will be kept as credit until a rate is set.
		logger.Warn("Setting session rate to zero", "student_id", id)
	}

	if err := s.studentRepo.UpdatePricing(ctx, id, pricePerSessionCents); err != nil {
		logger.ExitMethodWithError("studentService.UpdatePricing", err, "studentID", id)
		return err
	}

	logger.ExitMethod("studentService.UpdatePricing", "studentID", id)
	return nil
}
