package postgres

import (
	"context"
	"database/sql"
	"time"

	"tutorcenter-backend/internal/domain"
	"tutorcenter-backend/internal/repository"
)

type studentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) Create(ctx context.Context, student *domain.Student) error {
	query := `INSERT INTO students (full_name, price_per_session_cents, balance_cents, sessions_per_period, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		student.FullName, student.PricePerSessionCents, student.BalanceCents,
		student.SessionsPerPeriod, student.Status, now).Scan(&student.ID)
	if err != nil {
		return translateErr(err)
	}
	student.CreatedAt = now
	student.UpdatedAt = now
	return nil
}

func (r *studentRepository) GetByID(ctx context.Context, id int64) (*domain.Student, error) {
	query := `SELECT id, full_name, price_per_session_cents, balance_cents, sessions_per_period, status, created_at, updated_at
	          FROM students WHERE id = $1`
	var s domain.Student
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.FullName, &s.PricePerSessionCents, &s.BalanceCents,
		&s.SessionsPerPeriod, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &s, nil
}

func (r *studentRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Student, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, full_name, price_per_session_cents, balance_cents, sessions_per_period, status, created_at, updated_at
	          FROM students ORDER BY full_name ASC, id ASC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, translateErr(err)
	}
	defer rows.Close()

	var students []domain.Student
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.FullName, &s.PricePerSessionCents, &s.BalanceCents,
			&s.SessionsPerPeriod, &s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM students`).Scan(&count); err != nil {
		return nil, 0, err
	}
	return students, count, nil
}

func (r *studentRepository) UpdatePricing(ctx context.Context, id int64, pricePerSessionCents int64) error {
	query := `UPDATE students SET price_per_session_cents = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, pricePerSessionCents, time.Now(), id)
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
