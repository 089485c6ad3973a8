package http

import (
	"net/http"

	"tutorcenter-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires the billing API. Authentication and role checks are
// owned by the deployment in front of this service.
func NewRouter(ledgerSvc service.LedgerService, attendanceSvc service.AttendanceService, studentSvc service.StudentService) *mux.Router {
	router := mux.NewRouter()
	router.Use(RequestIDMiddleware, LoggingMiddleware)

	paymentHandler := NewPaymentHandler(ledgerSvc)
	attendanceHandler := NewAttendanceHandler(attendanceSvc)
	studentHandler := NewStudentHandler(studentSvc)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Students
	api.HandleFunc("/students", studentHandler.CreateStudent).Methods(http.MethodPost)
	api.HandleFunc("/students", studentHandler.ListStudents).Methods(http.MethodGet)
	api.HandleFunc("/students/{id:[0-9]+}", studentHandler.GetStudent).Methods(http.MethodGet)
	api.HandleFunc("/students/{id:[0-9]+}/pricing", studentHandler.UpdatePricing).Methods(http.MethodPut)

	// Payment ledger
	api.HandleFunc("/students/{id:[0-9]+}/payments", paymentHandler.ApplyPayment).Methods(http.MethodPost)
	api.HandleFunc("/students/{id:[0-9]+}/payments", paymentHandler.ListPayments).Methods(http.MethodGet)
	api.HandleFunc("/students/{id:[0-9]+}/balance", paymentHandler.GetBalance).Methods(http.MethodGet)
	api.HandleFunc("/payments/{id:[0-9]+}", paymentHandler.GetPayment).Methods(http.MethodGet)

	// Attendance sessions
	api.HandleFunc("/sessions", attendanceHandler.ReportSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id:[0-9]+}/approve", attendanceHandler.ApproveSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id:[0-9]+}/reject", attendanceHandler.RejectSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id:[0-9]+}/reschedule", attendanceHandler.RequestReschedule).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id:[0-9]+}/dispute", attendanceHandler.DisputeSession).Methods(http.MethodPost)
	api.HandleFunc("/students/{id:[0-9]+}/sessions", attendanceHandler.ListSessions).Methods(http.MethodGet)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return router
}
