// config/security_config.go
package config

type SecurityLevel int

const (
	SecurityPublic        SecurityLevel = iota // No authentication
	SecurityAuthenticated                      // Any valid access token
	SecurityTenant                             // Access token with tenant role
	SecurityLandlord                           // Access token with landlord role
)

// Route names registered on the HTTP router
const (
	RouteSignup             = "auth.signup"
	RouteLogin              = "auth.login"
	RouteListRooms          = "rooms.list"
	RouteHealth             = "health"
	RouteMetrics            = "metrics"
	RouteListTenants        = "tenants.list"
	RouteTenantMe           = "tenants.me"
	RouteSelectRoom         = "tenants.select_room"
	RoutePayBill            = "tenants.pay"
	RouteDeleteTenant       = "tenants.delete"
	RouteLandlordTenants    = "landlords.tenants"
	RouteLandlordDelete     = "landlords.tenants.delete"
	RouteLandlordDashboard  = "landlords.dashboard"
	RouteLandlordPayments   = "landlords.payments"
	RouteLandlordMe         = "landlords.me"
	RouteListPayments       = "payments.list"
	RouteListTenantPayments = "payments.tenant"
)

// EndpointSecurityConfig maps route names to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Public
	RouteSignup:    SecurityPublic,
	RouteLogin:     SecurityPublic,
	RouteListRooms: SecurityPublic,
	RouteHealth:    SecurityPublic,
	RouteMetrics:   SecurityPublic,

	// Tenant
	RouteTenantMe:   SecurityTenant,
	RouteSelectRoom: SecurityTenant,

	// Authenticated, ownership checked by the handler
	RoutePayBill:            SecurityAuthenticated,
	RouteListTenantPayments: SecurityAuthenticated,

	// Landlord
	RouteListTenants:       SecurityLandlord,
	RouteDeleteTenant:      SecurityLandlord,
	RouteLandlordTenants:   SecurityLandlord,
	RouteLandlordDelete:    SecurityLandlord,
	RouteLandlordDashboard: SecurityLandlord,
	RouteLandlordPayments:  SecurityLandlord,
	RouteLandlordMe:        SecurityLandlord,
	RouteListPayments:      SecurityLandlord,
}

// GetSecurityLevel returns the security level for a route.
// Unknown routes default to the strictest level.
func GetSecurityLevel(route string) SecurityLevel {
	if level, ok := EndpointSecurityConfig[route]; ok {
		return level
	}
	return SecurityLandlord
}
