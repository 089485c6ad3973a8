package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"tutorcenter-backend/internal/domain"
	"tutorcenter-backend/internal/repository"
	"tutorcenter-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAttendanceHandler_ReportSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		_, attendanceSvc, _, router := newTestRouter()
		attendanceSvc.On("ReportSession", mock.Anything, mock.MatchedBy(func(s *domain.AttendanceSession) bool {
			return s.StudentID == 1 && s.TutorName == "Marta K." && s.DurationHours == 1.5
		})).Return(nil)

		rec := performRequest(router, http.MethodPost, "/api/v1/sessions",
			[]byte(`{"student_id": 1, "tutor_name": "Marta K.", "subject": "Math", "scheduled_date": "2026-03-10", "duration_hours": 1.5}`))

		assert.Equal(t, http.StatusCreated, rec.Code)
		attendanceSvc.AssertExpectations(t)
	})

	t.Run("BadDate", func(t *testing.T) {
		_, attendanceSvc, _, router := newTestRouter()

		rec := performRequest(router, http.MethodPost, "/api/v1/sessions",
			[]byte(`{"student_id": 1, "tutor_name": "Marta K.", "scheduled_date": "10/03/2026", "duration_hours": 1}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		attendanceSvc.AssertNotCalled(t, "ReportSession", mock.Anything, mock.Anything)
	})

	t.Run("MissingTutorName", func(t *testing.T) {
		_, attendanceSvc, _, router := newTestRouter()

		rec := performRequest(router, http.MethodPost, "/api/v1/sessions",
			[]byte(`{"student_id": 1, "scheduled_date": "2026-03-10", "duration_hours": 1}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorField(t, rec), "tutor_name")
		attendanceSvc.AssertNotCalled(t, "ReportSession", mock.Anything, mock.Anything)
	})
}

func TestAttendanceHandler_ApproveSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		_, attendanceSvc, _, router := newTestRouter()
		session := &domain.AttendanceSession{ID: 10, StudentID: 1, Status: domain.SessionStatusApproved}
		attendanceSvc.On("ApproveSession", mock.Anything, int64(10)).Return(session, nil)

		rec := performRequest(router, http.MethodPost, "/api/v1/sessions/10/approve", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got domain.AttendanceSession
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, domain.SessionStatusApproved, got.Status)
	})

	t.Run("NotPendingMapsTo409", func(t *testing.T) {
		_, attendanceSvc, _, router := newTestRouter()
		attendanceSvc.On("ApproveSession", mock.Anything, int64(10)).
			Return(nil, service.ErrSessionNotPending)

		rec := performRequest(router, http.MethodPost, "/api/v1/sessions/10/approve", nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("UnknownSessionMapsTo404", func(t *testing.T) {
		_, attendanceSvc, _, router := newTestRouter()
		attendanceSvc.On("ApproveSession", mock.Anything, int64(99)).
			Return(nil, repository.ErrNotFound)

		rec := performRequest(router, http.MethodPost, "/api/v1/sessions/99/approve", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAttendanceHandler_RejectSession(t *testing.T) {
	_, attendanceSvc, _, router := newTestRouter()
	session := &domain.AttendanceSession{ID: 10, StudentID: 1, Status: domain.SessionStatusRejected}
	attendanceSvc.On("RejectSession", mock.Anything, int64(10)).Return(session, nil)

	rec := performRequest(router, http.MethodPost, "/api/v1/sessions/10/reject", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAttendanceHandler_RequestReschedule(t *testing.T) {
	_, attendanceSvc, _, router := newTestRouter()
	session := &domain.AttendanceSession{ID: 10, StudentID: 1, Status: domain.SessionStatusRescheduleRequested}
	attendanceSvc.On("RequestReschedule", mock.Anything, int64(10)).Return(session, nil)

	rec := performRequest(router, http.MethodPost, "/api/v1/sessions/10/reschedule", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got domain.AttendanceSession
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, domain.SessionStatusRescheduleRequested, got.Status)
}

func TestAttendanceHandler_DisputeSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		_, attendanceSvc, _, router := newTestRouter()
		session := &domain.AttendanceSession{ID: 10, StudentID: 1, Status: domain.SessionStatusPending, ParentComment: "Tutor was late"}
		attendanceSvc.On("DisputeSession", mock.Anything, int64(10), "Tutor was late").
			Return(session, nil)

		rec := performRequest(router, http.MethodPost, "/api/v1/sessions/10/dispute",
			[]byte(`{"comment": "Tutor was late"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got domain.AttendanceSession
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, domain.SessionStatusPending, got.Status)
		assert.Equal(t, "Tutor was late", got.ParentComment)
	})

	t.Run("MissingComment", func(t *testing.T) {
		_, attendanceSvc, _, router := newTestRouter()

		rec := performRequest(router, http.MethodPost, "/api/v1/sessions/10/dispute",
			[]byte(`{"comment": ""}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorField(t, rec), "comment")
		attendanceSvc.AssertNotCalled(t, "DisputeSession", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAttendanceHandler_ListSessions(t *testing.T) {
	t.Run("FilteredByStatus", func(t *testing.T) {
		_, attendanceSvc, _, router := newTestRouter()
		sessions := []domain.AttendanceSession{{ID: 10, StudentID: 1, Status: domain.SessionStatusApproved}}
		attendanceSvc.On("ListSessions", mock.Anything, int64(1), domain.SessionStatusApproved, int32(1), int32(20)).
			Return(sessions, int32(1), nil)

		rec := performRequest(router, http.MethodGet, "/api/v1/students/1/sessions?status=approved", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Sessions []domain.AttendanceSession `json:"sessions"`
			Total    int32                      `json:"total"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int32(1), resp.Total)
	})

	t.Run("UnknownStatusRejected", func(t *testing.T) {
		_, attendanceSvc, _, router := newTestRouter()

		rec := performRequest(router, http.MethodGet, "/api/v1/students/1/sessions?status=aproved", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorField(t, rec), "aproved")
		attendanceSvc.AssertNotCalled(t, "ListSessions", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
