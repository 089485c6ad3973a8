package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"tutorcenter-backend/internal/domain"
	"tutorcenter-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// PaymentHandler exposes the payment ledger to the admin UI: recording a
// payment against a student and reading balances and payment history.
type PaymentHandler struct {
	ledgerSvc service.LedgerService
	validate  *validator.Validate
}

func NewPaymentHandler(ledgerSvc service.LedgerService) *PaymentHandler {
	return &PaymentHandler{
		ledgerSvc: ledgerSvc,
		validate:  newValidator(),
	}
}

type applyPaymentRequest struct {
	AmountCents int64  `json:"amount_cents" validate:"required,gt=0"`
	Note        string `json:"note" validate:"omitempty,max=500"`
}

type paymentResponse struct {
	Payment *domain.Payment `json:"payment"`
	Summary string          `json:"summary"`
}

// summary renders the human-readable confirmation the billing UI shows
// after a payment is recorded.
func summary(p *domain.Payment) string {
	return fmt.Sprintf("Covered %d session(s), applied %s to sessions, %s kept as credit. New balance: %s.",
		len(p.CoveredSessions),
		domain.FormatCents(p.AmountAppliedCents),
		domain.FormatCents(p.AmountCreditCents),
		domain.FormatCents(p.BalanceAfterCents))
}

func (h *PaymentHandler) ApplyPayment(w http.ResponseWriter, r *http.Request) {
	studentID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid student id")
		return
	}

	var req applyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeBadRequest(w, validationMessage(err))
		return
	}

	payment, err := h.ledgerSvc.ApplyPayment(r.Context(), studentID, req.AmountCents, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, paymentResponse{Payment: payment, Summary: summary(payment)})
}

func (h *PaymentHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	studentID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid student id")
		return
	}

	balance, err := h.ledgerSvc.GetBalance(r.Context(), studentID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"student_id":    studentID,
		"balance_cents": balance,
		"balance":       domain.FormatCents(balance),
	})
}

func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	studentID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid student id")
		return
	}
	page, pageSize := pagination(r)

	payments, total, err := h.ledgerSvc.ListPayments(r.Context(), studentID, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"payments": payments,
		"total":    total,
		"page":     page,
	})
}

func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid payment id")
		return
	}

	payment, err := h.ledgerSvc.GetPayment(r.Context(), paymentID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, payment)
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}

func pagination(r *http.Request) (int32, int32) {
	page := int32(1)
	pageSize := int32(20)
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
