package postgres

import (
	"database/sql"
	"errors"

	"tutorcenter-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.StudentRepository
	repository.AttendanceRepository
	repository.LedgerRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		StudentRepository:    NewStudentRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		LedgerRepository:     NewLedgerRepository(db),
	}
}

// translateErr maps Postgres serialization and lock failures onto
// repository.ErrConflict so callers can retry, and no-row results onto
// repository.ErrNotFound.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001", "40P01", "55P03": // serialization_failure, deadlock_detected, lock_not_available
			return repository.ErrConflict
		}
	}
	return err
}
