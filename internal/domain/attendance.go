package domain

import "time"

type SessionStatus string

const (
	SessionStatusPending             SessionStatus = "pending"
	SessionStatusApproved            SessionStatus = "approved"
	SessionStatusRejected            SessionStatus = "rejected"
	SessionStatusRescheduleRequested SessionStatus = "reschedule_requested"
)

// Valid reports whether s is one of the known session statuses.
func (s SessionStatus) Valid() bool {
	switch s {
	case SessionStatusPending, SessionStatusApproved, SessionStatusRejected, SessionStatusRescheduleRequested:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// AttendanceSession is one reported tutoring session. A session becomes
// billable when its status reaches approved; payment_status is owned by
// the payment ledger and is never written by the reporting workflow.
type AttendanceSession struct {
	ID            int64         `json:"id"`
	StudentID     int64         `json:"student_id"`
	TutorName     string        `json:"tutor_name"`
	Subject       string        `json:"subject"`
	Topic         string        `json:"topic"`
	ScheduledDate time.Time     `json:"scheduled_date"`
	DurationHours float64       `json:"duration_hours"`
	Status        SessionStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	ParentComment string        `json:"parent_comment,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Billable reports whether the session can ever be charged.
func (s *AttendanceSession) Billable() bool {
	return s.Status == SessionStatusApproved
}

// Outstanding reports whether the session is billable and still unpaid.
func (s *AttendanceSession) Outstanding() bool {
	return s.Billable() && s.PaymentStatus == PaymentStatusUnpaid
}
