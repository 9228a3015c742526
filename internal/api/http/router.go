package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"propertyhub-backend/internal/config"
	"propertyhub-backend/internal/metrics"
	"propertyhub-backend/internal/security"
	"propertyhub-backend/internal/service"
)

type RouterDeps struct {
	AuthService     service.AuthService
	TenantService   service.TenantService
	LandlordService service.LandlordService
	PaymentService  service.PaymentService
	TokenManager    security.TokenManager
	Metrics         *metrics.Metrics
	DB              Pinger
	CORS            config.CORSConfig
	MetricsPath     string
}

// NewRouter registers every route by name; the name selects the security
// level applied by the auth middleware.
func NewRouter(deps RouterDeps) *mux.Router {
	auth := NewAuthHandler(deps.AuthService)
	tenants := NewTenantHandler(deps.TenantService)
	landlords := NewLandlordHandler(deps.LandlordService)
	payments := NewPaymentHandler(deps.PaymentService)

	r := mux.NewRouter()
	handle := func(path string, h http.HandlerFunc, method, name string) {
		r.HandleFunc(path, h).Methods(method, http.MethodOptions).Name(name)
	}

	handle("/auth/signup", auth.Signup, http.MethodPost, config.RouteSignup)
	handle("/auth/login", auth.Login, http.MethodPost, config.RouteLogin)

	handle("/api/tenants", tenants.ListTenants, http.MethodGet, config.RouteListTenants)
	handle("/api/tenants/me", tenants.Me, http.MethodGet, config.RouteTenantMe)
	handle("/api/tenants/select-room", tenants.SelectRoom, http.MethodPost, config.RouteSelectRoom)
	handle("/api/tenants/pay/{id:[0-9]+}", tenants.PayBill, http.MethodPut, config.RoutePayBill)
	handle("/api/tenants/{id:[0-9]+}", tenants.RemoveTenant, http.MethodDelete, config.RouteDeleteTenant)

	handle("/api/landlords/tenants", tenants.ListTenants, http.MethodGet, config.RouteLandlordTenants)
	handle("/api/landlords/tenants/{id:[0-9]+}", tenants.RemoveTenant, http.MethodDelete, config.RouteLandlordDelete)
	handle("/api/landlords/dashboard", landlords.Dashboard, http.MethodGet, config.RouteLandlordDashboard)
	handle("/api/landlords/payments", payments.ListPayments, http.MethodGet, config.RouteLandlordPayments)
	handle("/api/landlords/me", landlords.Me, http.MethodGet, config.RouteLandlordMe)

	handle("/api/payments", payments.ListPayments, http.MethodGet, config.RouteListPayments)
	handle("/api/payments/tenant/{id:[0-9]+}", payments.ListTenantPayments, http.MethodGet, config.RouteListTenantPayments)

	handle("/api/rooms", tenants.ListRooms, http.MethodGet, config.RouteListRooms)
	handle("/healthz", healthHandler(deps.DB), http.MethodGet, config.RouteHealth)
	if deps.MetricsPath != "" {
		r.Handle(deps.MetricsPath, deps.Metrics.Handler()).Methods(http.MethodGet).Name(config.RouteMetrics)
	}

	r.Use(
		requestLogger(deps.Metrics),
		mux.CORSMethodMiddleware(r),
		corsMiddleware(deps.CORS),
		NewAuthMiddleware(deps.TokenManager).Middleware,
	)
	return r
}
