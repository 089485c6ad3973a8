package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"tutorcenter-backend/internal/domain"
	"tutorcenter-backend/internal/logger"
	"tutorcenter-backend/internal/repository"
)

type ledgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

// ledgerUnit wraps one open transaction with the student row locked.
type ledgerUnit struct {
	tx      *sql.Tx
	student *domain.Student
}

func (u *ledgerUnit) Student() *domain.Student {
	return u.student
}

func (u *ledgerUnit) OutstandingSessions(ctx context.Context) ([]domain.AttendanceSession, error) {
	// scheduled_date then id gives the deterministic oldest-first
	// settlement order the allocation loop depends on.
	query := `SELECT ` + attendanceColumns + ` FROM attendances
	          WHERE student_id = $1 AND status = $2 AND payment_status = $3
	          ORDER BY scheduled_date ASC, id ASC`
	rows, err := u.tx.QueryContext(ctx, query, u.student.ID, domain.SessionStatusApproved, domain.PaymentStatusUnpaid)
	if err != nil {
		return nil, translateErr(err)
	}
	defer rows.Close()

	var sessions []domain.AttendanceSession
	for rows.Next() {
		var s domain.AttendanceSession
		if err := scanSession(rows, &s); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (u *ledgerUnit) MarkSessionPaid(ctx context.Context, sessionID int64) error {
	query := `UPDATE attendances SET payment_status = $1, updated_at = $2 WHERE id = $3 AND payment_status = $4`
	result, err := u.tx.ExecContext(ctx, query, domain.PaymentStatusPaid, time.Now(), sessionID, domain.PaymentStatusUnpaid)
	if err != nil {
		return translateErr(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (u *ledgerUnit) UpdateBalance(ctx context.Context, balanceCents int64) error {
	query := `UPDATE students SET balance_cents = $1, updated_at = $2 WHERE id = $3`
	_, err := u.tx.ExecContext(ctx, query, balanceCents, time.Now(), u.student.ID)
	return translateErr(err)
}

func (u *ledgerUnit) InsertPayment(ctx context.Context, payment *domain.Payment) error {
	covered, err := json.Marshal(payment.CoveredSessions)
	if err != nil {
		return err
	}
	query := `INSERT INTO payments (student_id, amount_cents, amount_applied_cents, amount_credit_cents, balance_after_cents, covered_sessions, note, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	err = u.tx.QueryRowContext(ctx, query,
		payment.StudentID, payment.AmountCents, payment.AmountAppliedCents,
		payment.AmountCreditCents, payment.BalanceAfterCents, covered, payment.Note, now).Scan(&payment.ID)
	if err != nil {
		return translateErr(err)
	}
	payment.CreatedAt = now
	return nil
}

const studentForUpdate = `SELECT id, full_name, price_per_session_cents, balance_cents, sessions_per_period, status, created_at, updated_at
	          FROM students WHERE id = $1 FOR UPDATE`

func (r *ledgerRepository) Settle(ctx context.Context, studentID int64, fn func(unit repository.LedgerUnit) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return translateErr(err)
	}
	defer tx.Rollback()

	var s domain.Student
	err = tx.QueryRowContext(ctx, studentForUpdate, studentID).Scan(
		&s.ID, &s.FullName, &s.PricePerSessionCents, &s.BalanceCents,
		&s.SessionsPerPeriod, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return translateErr(err)
	}

	if err := fn(&ledgerUnit{tx: tx, student: &s}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("Failed to commit settle transaction", "student_id", studentID, "error", err)
		return translateErr(err)
	}
	return nil
}

func (r *ledgerRepository) GetBalance(ctx context.Context, studentID int64) (int64, error) {
	var balance int64
	query := `SELECT COALESCE(balance_cents, 0) FROM students WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, studentID).Scan(&balance)
	return balance, translateErr(err)
}

const paymentColumns = `id, student_id, amount_cents, amount_applied_cents, amount_credit_cents, balance_after_cents, covered_sessions, COALESCE(note, ''), created_at`

func scanPayment(row interface {
	Scan(dest ...any) error
}, p *domain.Payment) error {
	var covered []byte
	if err := row.Scan(&p.ID, &p.StudentID, &p.AmountCents, &p.AmountAppliedCents,
		&p.AmountCreditCents, &p.BalanceAfterCents, &covered, &p.Note, &p.CreatedAt); err != nil {
		return err
	}
	if len(covered) == 0 {
		p.CoveredSessions = []int64{}
		return nil
	}
	return json.Unmarshal(covered, &p.CoveredSessions)
}

func (r *ledgerRepository) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	var p domain.Payment
	if err := scanPayment(r.db.QueryRowContext(ctx, query, id), &p); err != nil {
		return nil, translateErr(err)
	}
	return &p, nil
}

func (r *ledgerRepository) ListPayments(ctx context.Context, studentID int64, page, pageSize int32) ([]domain.Payment, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + paymentColumns + ` FROM payments
	          WHERE student_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, studentID, pageSize, offset)
	if err != nil {
		return nil, 0, translateErr(err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := scanPayment(rows, &p); err != nil {
			return nil, 0, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM payments WHERE student_id = $1`, studentID).Scan(&count); err != nil {
		return nil, 0, err
	}
	return payments, count, nil
}
