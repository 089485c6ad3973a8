package http

import (
	"encoding/json"
	"net/http"

	"tutorcenter-backend/internal/domain"
	"tutorcenter-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type StudentHandler struct {
	studentSvc service.StudentService
	validate   *validator.Validate
}

func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{
		studentSvc: studentSvc,
		validate:   newValidator(),
	}
}

type createStudentRequest struct {
	FullName             string `json:"full_name" validate:"required,max=200"`
	PricePerSessionCents int64  `json:"price_per_session_cents" validate:"gte=0"`
	// Opening balance; negative means debt carried from before tracking.
	BalanceCents      int64 `json:"balance_cents"`
	SessionsPerPeriod int32 `json:"sessions_per_period" validate:"gte=0"`
}

func (h *StudentHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req createStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeBadRequest(w, validationMessage(err))
		return
	}

	student := &domain.Student{
		FullName:             req.FullName,
		PricePerSessionCents: req.PricePerSessionCents,
		BalanceCents:         req.BalanceCents,
		SessionsPerPeriod:    req.SessionsPerPeriod,
	}
	if err := h.studentSvc.CreateStudent(r.Context(), student); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, student)
}

func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid student id")
		return
	}

	student, err := h.studentSvc.GetStudent(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, student)
}

func (h *StudentHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)

	students, total, err := h.studentSvc.ListStudents(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"students": students,
		"total":    total,
		"page":     page,
	})
}

type updatePricingRequest struct {
	PricePerSessionCents int64 `json:"price_per_session_cents" validate:"gte=0"`
}

func (h *StudentHandler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid student id")
		return
	}

	var req updatePricingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeBadRequest(w, validationMessage(err))
		return
	}

	if err := h.studentSvc.UpdatePricing(r.Context(), id, req.PricePerSessionCents); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"student_id": id, "price_per_session_cents": req.PricePerSessionCents})
}
