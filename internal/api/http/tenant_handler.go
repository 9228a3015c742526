package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"propertyhub-backend/internal/billing"
	"propertyhub-backend/internal/service"
)

type TenantHandler struct {
	tenantSvc service.TenantService
}

func NewTenantHandler(tenantSvc service.TenantService) *TenantHandler {
	return &TenantHandler{tenantSvc: tenantSvc}
}

type selectRoomRequest struct {
	RoomType string `json:"room_type"`
}

// payRequest accepts the amount as a JSON number or a numeric string
type payRequest struct {
	Type   string           `json:"type"`
	Amount *decimal.Decimal `json:"amount"`
}

func (h *TenantHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	rows, err := h.tenantSvc.ListTenants(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTenantList(rows))
}

func (h *TenantHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	profile, err := h.tenantSvc.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

func (h *TenantHandler) SelectRoom(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	var req selectRoomRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.tenantSvc.SelectRoom(r.Context(), claims.UserID, req.RoomType)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(profile))
}

func (h *TenantHandler) PayBill(w http.ResponseWriter, r *http.Request) {
	tenantID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := authorizeTenant(r.Context(), tenantID); err != nil {
		writeError(w, r, err)
		return
	}

	var req payRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	receipt, err := h.tenantSvc.PayBill(r.Context(), tenantID, billing.PaymentRequest{
		BillType: req.Type,
		Amount:   req.Amount,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPayResponse(receipt))
}

func (h *TenantHandler) RemoveTenant(w http.ResponseWriter, r *http.Request) {
	tenantID, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.tenantSvc.RemoveTenant(r.Context(), tenantID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Tenant removed successfully"})
}

func (h *TenantHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toRoomList(h.tenantSvc.ListRooms()))
}
