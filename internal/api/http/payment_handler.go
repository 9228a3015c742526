package http

import (
	"net/http"

	"propertyhub-backend/internal/service"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentSvc.ListPayments(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentList(payments))
}

func (h *PaymentHandler) ListTenantPayments(w http.ResponseWriter, r *http.Request) {
	tenantID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := authorizeTenant(r.Context(), tenantID); err != nil {
		writeError(w, r, err)
		return
	}

	payments, err := h.paymentSvc.ListTenantPayments(r.Context(), tenantID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentList(payments))
}
