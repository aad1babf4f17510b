// Package rolemap normalizes raw server-side role names into a closed set of
// permission roles and decides route access from them. Everything here is
// pure: no storage, no HTTP, no side effects.
package rolemap

import (
	"strings"

	"github.com/ndtrung/warehouse-backoffice/pkg/vntext"
)

// PermissionRole is the normalized role tag used for route gating. It is
// deliberately distinct from the raw role name stored with the user.
type PermissionRole string

const (
	RoleAdmin           PermissionRole = "ADMIN"
	RoleDirector        PermissionRole = "DIRECTOR"
	RoleWarehouseKeeper PermissionRole = "WAREHOUSE_KEEPER"
	RoleSaleSupport     PermissionRole = "SALE_SUPPORT"
	RoleSaleEngineer    PermissionRole = "SALE_ENGINEER"
	RoleAccountants     PermissionRole = "ACCOUNTANTS"
)

// markers are matched as substrings against the folded raw role name. The
// most specific entries come first: "sale engineer" must win before a bare
// "sale" could misroute, and there is intentionally no fallback role.
var markers = []struct {
	role     PermissionRole
	patterns []string
}{
	{RoleWarehouseKeeper, []string{"warehouse keeper", "warehouse", "thu kho"}},
	{RoleSaleEngineer, []string{"sale engineer", "sales engineer", "ky su kinh doanh", "ky su ban hang"}},
	{RoleSaleSupport, []string{"sale support", "sales support", "ho tro kinh doanh", "ho tro ban hang"}},
	{RoleAccountants, []string{"accountant", "ke toan"}},
	{RoleDirector, []string{"director", "giam doc"}},
	{RoleAdmin, []string{"admin", "administrator", "quan tri"}},
}

// Map resolves a raw role name to its permission role. Matching is
// case-insensitive, diacritic-insensitive and substring-based. Unrecognized
// input yields ("", false): unmapped roles must not silently gain access.
func Map(raw string) (PermissionRole, bool) {
	folded := strings.TrimSpace(vntext.Fold(raw))
	if folded == "" {
		return "", false
	}
	for _, m := range markers {
		for _, p := range m.patterns {
			if strings.Contains(folded, p) {
				return m.role, true
			}
		}
	}
	return "", false
}

// homeRoutes maps each permission role to its default landing page.
var homeRoutes = map[PermissionRole]string{
	RoleAdmin:           "/admin/users",
	RoleDirector:        "/dashboard",
	RoleWarehouseKeeper: "/warehouse",
	RoleSaleSupport:     "/purchase-orders",
	RoleSaleEngineer:    "/purchase-orders",
}

// FallbackHomeRoute is used for any valid role without an explicit mapping.
const FallbackHomeRoute = "/home"

// HomeRoute returns the landing page for a permission role.
func HomeRoute(role PermissionRole) string {
	if r, ok := homeRoutes[role]; ok {
		return r
	}
	return FallbackHomeRoute
}

// Decision is the outcome of the route gate.
type Decision int

const (
	// Allow renders the protected content.
	Allow Decision = iota
	// RedirectLogin sends an unauthenticated visitor to the login page.
	RedirectLogin
	// LogoutRoleError forces a logout: the session carries a role no
	// permission role maps to, so the session cannot be trusted.
	LogoutRoleError
	// RedirectHome sends an authenticated user with a valid but
	// insufficient role to that role's landing page.
	RedirectHome
)

// GateResult is a decision plus the target route for the redirect decisions.
type GateResult struct {
	Decision Decision
	Redirect string
}

// LoginRoute where unauthenticated or untrusted sessions are sent.
const LoginRoute = "/login"

// Decide applies the route gate for a route restricted to allowed roles.
// An empty allowed set means any valid permission role may pass.
func Decide(authenticated bool, rawRole string, allowed ...PermissionRole) GateResult {
	if !authenticated {
		return GateResult{Decision: RedirectLogin, Redirect: LoginRoute}
	}
	role, ok := Map(rawRole)
	if !ok {
		return GateResult{Decision: LogoutRoleError, Redirect: LoginRoute}
	}
	if len(allowed) == 0 {
		return GateResult{Decision: Allow}
	}
	for _, a := range allowed {
		if role == a {
			return GateResult{Decision: Allow}
		}
	}
	return GateResult{Decision: RedirectHome, Redirect: HomeRoute(role)}
}
