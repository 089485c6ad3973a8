package service

import (
	"context"
	"errors"
	"strings"

	"tutorcenter-backend/internal/domain"
	"tutorcenter-backend/internal/logger"
	"tutorcenter-backend/internal/repository"
)

var (
	ErrInvalidAmount = errors.New("payment amount must be positive")
)

// degradedPricingNote is prepended to the payment note when the student
// has no usable session rate and the whole amount becomes credit.
const degradedPricingNote = "Price per session is zero. Amount added to credit."

type ledgerService struct {
	ledgerRepo repository.LedgerRepository
}

func NewLedgerService(ledgerRepo repository.LedgerRepository) LedgerService {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

func (s *ledgerService) ApplyPayment(ctx context.Context, studentID, amountCents int64, note string) (*domain.Payment, error) {
	logger.EnterMethod("ledgerService.ApplyPayment", "studentID", studentID, "amountCents", amountCents)

	if amountCents <= 0 {
		logger.ExitMethodWithError("ledgerService.ApplyPayment", ErrInvalidAmount, "studentID", studentID, "amountCents", amountCents)
		return nil, ErrInvalidAmount
	}

	var payment *domain.Payment
	err := s.ledgerRepo.Settle(ctx, studentID, func(unit repository.LedgerUnit) error {
		student := unit.Student()
		balanceBefore := student.BalanceCents
		// New money and any pre-existing credit are spent together; a
		// negative opening balance shrinks the pool accordingly.
		pool := amountCents + balanceBefore
		price := student.PricePerSessionCents

		if price <= 0 {
			logger.Warn("Student has no session rate, payment kept as credit",
				"student_id", studentID, "amount_cents", amountCents)
			p := &domain.Payment{
				StudentID:          studentID,
				AmountCents:        amountCents,
				AmountAppliedCents: 0,
				AmountCreditCents:  amountCents,
				BalanceAfterCents:  pool,
				CoveredSessions:    []int64{},
				Note:               strings.TrimSpace(degradedPricingNote + " " + note),
			}
			if err := unit.UpdateBalance(ctx, pool); err != nil {
				return err
			}
			if err := unit.InsertPayment(ctx, p); err != nil {
				return err
			}
			payment = p
			return nil
		}

		sessions, err := unit.OutstandingSessions(ctx)
		if err != nil {
			return err
		}

		// Greedy oldest-first settlement. A session is paid whole or not
		// at all, and allocation never skips ahead past an unaffordable
		// session.
		covered := []int64{}
		var totalApplied int64
		for i := range sessions {
			cost := price
			if pool < cost {
				break
			}
			if err := unit.MarkSessionPaid(ctx, sessions[i].ID); err != nil {
				return err
			}
			pool -= cost
			totalApplied += cost
			covered = append(covered, sessions[i].ID)
		}

		// Attribute the settled cost to the new money vs the credit that
		// was already on the account, for the audit split.
		var applied int64
		if totalApplied > balanceBefore {
			applied = totalApplied - balanceBefore
			if applied > amountCents {
				applied = amountCents
			}
		}
		credit := amountCents - applied

		if err := unit.UpdateBalance(ctx, pool); err != nil {
			return err
		}
		p := &domain.Payment{
			StudentID:          studentID,
			AmountCents:        amountCents,
			AmountAppliedCents: applied,
			AmountCreditCents:  credit,
			BalanceAfterCents:  pool,
			CoveredSessions:    covered,
			Note:               note,
		}
		if err := unit.InsertPayment(ctx, p); err != nil {
			return err
		}
		payment = p
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("ledgerService.ApplyPayment", err, "studentID", studentID)
		return nil, err
	}

	logger.ExitMethod("ledgerService.ApplyPayment", "studentID", studentID,
		"coveredSessions", len(payment.CoveredSessions),
		"amountApplied", payment.AmountAppliedCents,
		"balanceAfter", payment.BalanceAfterCents)
	return payment, nil
}

func (s *ledgerService) GetBalance(ctx context.Context, studentID int64) (int64, error) {
	return s.ledgerRepo.GetBalance(ctx, studentID)
}

func (s *ledgerService) GetPayment(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	return s.ledgerRepo.GetPayment(ctx, paymentID)
}

func (s *ledgerService) ListPayments(ctx context.Context, studentID int64, page, pageSize int32) ([]domain.Payment, int32, error) {
	return s.ledgerRepo.ListPayments(ctx, studentID, page, pageSize)
}
