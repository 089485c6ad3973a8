package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tutorcenter-backend/internal/domain"
	"tutorcenter-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
	validate      *validator.Validate
}

func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceSvc: attendanceSvc,
		validate:      newValidator(),
	}
}

type reportSessionRequest struct {
	StudentID     int64   `json:"student_id" validate:"required,gt=0"`
	TutorName     string  `json:"tutor_name" validate:"required"`
	Subject       string  `json:"subject" validate:"omitempty,max=200"`
	Topic         string  `json:"topic" validate:"omitempty,max=200"`
	ScheduledDate string  `json:"scheduled_date" validate:"required"` // yyyy-mm-dd
	DurationHours float64 `json:"duration_hours" validate:"required,gt=0"`
}

func (h *AttendanceHandler) ReportSession(w http.ResponseWriter, r *http.Request) {
	var req reportSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeBadRequest(w, validationMessage(err))
		return
	}
	scheduledDate, err := time.Parse("2006-01-02", req.ScheduledDate)
	if err != nil {
		writeBadRequest(w, "scheduled_date must be yyyy-mm-dd")
		return
	}

	session := &domain.AttendanceSession{
		StudentID:     req.StudentID,
		TutorName:     req.TutorName,
		Subject:       req.Subject,
		Topic:         req.Topic,
		ScheduledDate: scheduledDate,
		DurationHours: req.DurationHours,
	}
	if err := h.attendanceSvc.ReportSession(r.Context(), session); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

func (h *AttendanceHandler) ApproveSession(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.attendanceSvc.ApproveSession)
}

func (h *AttendanceHandler) RejectSession(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.attendanceSvc.RejectSession)
}

func (h *AttendanceHandler) RequestReschedule(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.attendanceSvc.RequestReschedule)
}

func (h *AttendanceHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, sessionID int64) (*domain.AttendanceSession, error)) {
	sessionID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid session id")
		return
	}
	session, err := fn(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

type disputeSessionRequest struct {
	Comment string `json:"comment" validate:"required,max=500"`
}

func (h *AttendanceHandler) DisputeSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid session id")
		return
	}

	var req disputeSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeBadRequest(w, validationMessage(err))
		return
	}

	session, err := h.attendanceSvc.DisputeSession(r.Context(), sessionID, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *AttendanceHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	studentID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid student id")
		return
	}
	page, pageSize := pagination(r)
	status := domain.SessionStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeBadRequest(w, "unknown session status: "+string(status))
		return
	}

	sessions, total, err := h.attendanceSvc.ListSessions(r.Context(), studentID, status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"sessions": sessions,
		"total":    total,
		"page":     page,
	})
}
