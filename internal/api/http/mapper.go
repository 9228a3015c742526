package http

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"propertyhub-backend/internal/billing"
	"propertyhub-backend/internal/domain"
	"propertyhub-backend/internal/service"
)

// money renders amounts as JSON numbers rather than decimal's default quoted strings
func money(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

type userResponse struct {
	ID    int32       `json:"id"`
	Name  string      `json:"name,omitempty"`
	Email string      `json:"email,omitempty"`
	Role  domain.Role `json:"role"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toAuthResponse(res *service.AuthResult) authResponse {
	return authResponse{
		Token: res.Token,
		User: userResponse{
			ID:    res.User.ID,
			Name:  res.User.Name,
			Email: res.User.Email,
			Role:  res.User.Role,
		},
	}
}

type tenantResponse struct {
	ID              int32       `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	RoomType        string      `json:"room_type"`
	HouseID         *int32      `json:"house_id"`
	RentPaid        bool        `json:"rent_paid"`
	WaterPaid       bool        `json:"water_paid"`
	ElectricityPaid bool        `json:"electricity_paid"`
	Balance         json.Number `json:"balance"`
	TotalDue        json.Number `json:"total_due"`
}

func toTenantResponse(t *domain.Tenant, b billing.Balance) tenantResponse {
	return tenantResponse{
		ID:              t.ID,
		Name:            t.Name,
		Email:           t.Email,
		RoomType:        t.RoomTypeLabel(),
		HouseID:         t.HouseID,
		RentPaid:        t.RentPaid,
		WaterPaid:       t.WaterPaid,
		ElectricityPaid: t.ElectricityPaid,
		Balance:         money(b.Balance),
		TotalDue:        money(b.TotalDue),
	}
}

func toTenantList(rows []service.TenantBalance) []tenantResponse {
	out := make([]tenantResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toTenantResponse(&rows[i].Tenant, rows[i].Balance))
	}
	return out
}

type lineItemResponse struct {
	BillType domain.BillType `json:"bill_type"`
	Amount   json.Number     `json:"amount"`
	Paid     bool            `json:"paid"`
}

type profileResponse struct {
	tenantResponse
	Bills []lineItemResponse `json:"bills"`
}

func toProfileResponse(p *service.TenantProfile) profileResponse {
	bills := make([]lineItemResponse, 0, len(p.Breakdown))
	for _, item := range p.Breakdown {
		bills = append(bills, lineItemResponse{
			BillType: item.Type,
			Amount:   money(item.Amount),
			Paid:     item.Paid,
		})
	}
	return profileResponse{
		tenantResponse: toTenantResponse(&p.Tenant, p.Balance),
		Bills:          bills,
	}
}

type paymentResponse struct {
	ID          int32                `json:"id"`
	TenantID    int32                `json:"tenant_id"`
	TenantName  string               `json:"tenant_name,omitempty"`
	Amount      json.Number          `json:"amount"`
	PaymentType domain.BillType      `json:"payment_type"`
	Status      domain.PaymentStatus `json:"status"`
	DatePaid    time.Time            `json:"date_paid"`
}

func toPaymentResponse(p *domain.Payment) paymentResponse {
	return paymentResponse{
		ID:          p.ID,
		TenantID:    p.TenantID,
		TenantName:  p.TenantName,
		Amount:      money(p.Amount),
		PaymentType: p.Type,
		Status:      p.Status,
		DatePaid:    p.PaidAt,
	}
}

func toPaymentList(payments []domain.Payment) []paymentResponse {
	out := make([]paymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, toPaymentResponse(&payments[i]))
	}
	return out
}

type payResponse struct {
	Message string          `json:"message"`
	Balance json.Number     `json:"balance"`
	Tenant  tenantResponse  `json:"tenant"`
	Payment paymentResponse `json:"payment"`
}

func toPayResponse(r *billing.Receipt) payResponse {
	return payResponse{
		Message: string(r.Payment.Type) + " payment completed successfully",
		Balance: money(r.Balance.Balance),
		Tenant:  toTenantResponse(&r.Tenant, r.Balance),
		Payment: toPaymentResponse(&r.Payment),
	}
}

type dashboardResponse struct {
	TotalTenants     int         `json:"total_tenants"`
	PaidTenants      int         `json:"paid_tenants"`
	UnpaidTenants    int         `json:"unpaid_tenants"`
	TotalCollected   json.Number `json:"total_collected"`
	TotalOutstanding json.Number `json:"total_outstanding"`
	TotalPossible    json.Number `json:"total_possible"`
	CollectionRate   int64       `json:"collection_rate"`
	AvgBalance       json.Number `json:"avg_balance"`
}

func toDashboardResponse(s *billing.DashboardSummary) dashboardResponse {
	return dashboardResponse{
		TotalTenants:     s.TotalTenants,
		PaidTenants:      s.PaidTenants,
		UnpaidTenants:    s.UnpaidTenants,
		TotalCollected:   money(s.TotalCollected),
		TotalOutstanding: money(s.TotalOutstanding),
		TotalPossible:    money(s.TotalPossible),
		CollectionRate:   s.CollectionRate,
		AvgBalance:       money(s.AvgBalance),
	}
}

type roomResponse struct {
	RoomType string      `json:"room_type"`
	Rent     json.Number `json:"rent"`
}

func toRoomList(rooms []service.RoomOption) []roomResponse {
	out := make([]roomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, roomResponse{RoomType: room.RoomType, Rent: money(room.Rent)})
	}
	return out
}
