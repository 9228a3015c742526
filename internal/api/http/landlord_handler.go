package http

import (
	"net/http"

	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/service"
)

type LandlordHandler struct {
	landlordSvc service.LandlordService
}

func NewLandlordHandler(landlordSvc service.LandlordService) *LandlordHandler {
	return &LandlordHandler{landlordSvc: landlordSvc}
}

func (h *LandlordHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.landlordSvc.GetDashboard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDashboardResponse(summary))
}

func (h *LandlordHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())
	landlord, err := h.landlordSvc.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userResponse{
		ID:    landlord.ID,
		Name:  landlord.Name,
		Email: landlord.Email,
		Role:  domain.RoleLandlord,
	})
}
