package postgres

import (
	"context"
	"database/sql"
	"time"

	"tutorcenter-backend/internal/domain"
	"tutorcenter-backend/internal/repository"
)

type attendanceRepository struct {
	db *sql.DB
}

func NewAttendanceRepository(db *sql.DB) repository.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, student_id, tutor_name, subject, topic, scheduled_date, duration_hours, status, payment_status, COALESCE(parent_comment, ''), created_at, updated_at`

func scanSession(row interface {
	Scan(dest ...any) error
}, s *domain.AttendanceSession) error {
	return row.Scan(&s.ID, &s.StudentID, &s.TutorName, &s.Subject, &s.Topic,
		&s.ScheduledDate, &s.DurationHours, &s.Status, &s.PaymentStatus,
		&s.ParentComment, &s.CreatedAt, &s.UpdatedAt)
}

func (r *attendanceRepository) Create(ctx context.Context, session *domain.AttendanceSession) error {
	query := `INSERT INTO attendances (student_id, tutor_name, subject, topic, scheduled_date, duration_hours, status, payment_status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		session.StudentID, session.TutorName, session.Subject, session.Topic,
		session.ScheduledDate, session.DurationHours, session.Status, session.PaymentStatus, now).Scan(&session.ID)
	if err != nil {
		return translateErr(err)
	}
	session.CreatedAt = now
	session.UpdatedAt = now
	return nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (*domain.AttendanceSession, error) {
	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE id = $1`
	var s domain.AttendanceSession
	if err := scanSession(r.db.QueryRowContext(ctx, query, id), &s); err != nil {
		return nil, translateErr(err)
	}
	return &s, nil
}

func (r *attendanceRepository) UpdateStatus(ctx context.Context, id int64, status domain.SessionStatus) error {
	query := `UPDATE attendances SET status = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
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

func (r *attendanceRepository) SetParentComment(ctx context.Context, id int64, comment string) error {
	query := `UPDATE attendances SET parent_comment = $1, updated_at = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, comment, time.Now(), id)
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

func (r *attendanceRepository) ListByStudent(ctx context.Context, studentID int64, status domain.SessionStatus, page, pageSize int32) ([]domain.AttendanceSession, int32, error) {
	offset := (page - 1) * pageSize

	var rows *sql.Rows
	var err error
	if status == "" {
		query := `SELECT ` + attendanceColumns + ` FROM attendances
		          WHERE student_id = $1 ORDER BY scheduled_date DESC, id DESC LIMIT $2 OFFSET $3`
		rows, err = r.db.QueryContext(ctx, query, studentID, pageSize, offset)
	} else {
		query := `SELECT ` + attendanceColumns + ` FROM attendances
		          WHERE student_id = $1 AND status = $2 ORDER BY scheduled_date DESC, id DESC LIMIT $3 OFFSET $4`
		rows, err = r.db.QueryContext(ctx, query, studentID, status, pageSize, offset)
	}
	if err != nil {
		return nil, 0, translateErr(err)
	}
	defer rows.Close()

	var sessions []domain.AttendanceSession
	for rows.Next() {
		var s domain.AttendanceSession
		if err := scanSession(rows, &s); err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	if status == "" {
		err = r.db.QueryRowContext(ctx, `SELECT count(*) FROM attendances WHERE student_id = $1`, studentID).Scan(&count)
	} else {
		err = r.db.QueryRowContext(ctx, `SELECT count(*) FROM attendances WHERE student_id = $1 AND status = $2`, studentID, status).Scan(&count)
	}
	if err != nil {
		return nil, 0, err
	}
	return sessions, count, nil
}
