package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/vehicle-registry/internal/domain"
	apperrors "github.com/spec-kit/vehicle-registry/pkg/util"
)

// Policy is the set of roles authorized for a route. Policies are
// fixed at route registration and never mutated afterwards, so they
// are safe to share across concurrent requests.
type Policy map[domain.Role]struct{}

// NewPolicy builds a policy from the allowed roles.
func NewPolicy(roles ...domain.Role) Policy {
	p := make(Policy, len(roles))
	for _, role := range roles {
		p[role] = struct{}{}
	}
	return p
}

// Allows reports role membership. Matching is exact and case
// sensitive; an unknown role never passes.
func (p Policy) Allows(role domain.Role) bool {
	_, ok := p[role]
	return ok
}

// Roles returns the member roles, for introspection and tests.
func (p Policy) Roles() []domain.Role {
	roles := make([]domain.Role, 0, len(p))
	for role := range p {
		roles = append(roles, role)
	}
	return roles
}

// RoutePolicies is the static route-to-policy registry. The router
// attaches these same values at registration time; the table exists so
// the authorization matrix stays reviewable and testable in one place.
var RoutePolicies = map[string]Policy{
	"GET /admins":          NewPolicy(domain.RoleAdmin),
	"GET /admins/:id":      NewPolicy(domain.RoleAdmin),
	"POST /admins":         NewPolicy(domain.RoleAdmin),
	"POST /vehicles":       NewPolicy(domain.RoleAdmin, domain.RoleEditor),
	"GET /vehicles":        NewPolicy(domain.RoleAdmin, domain.RoleEditor),
	"GET /vehicles/:id":    NewPolicy(domain.RoleAdmin, domain.RoleEditor),
	"PUT /vehicles/:id":    NewPolicy(domain.RoleAdmin),
	"DELETE /vehicles/:id": NewPolicy(domain.RoleAdmin, domain.RoleEditor),
	"GET /audit":           NewPolicy(domain.RoleAdmin),
}

// RequireRole guards a route with the given policy. It must run after
// AuthMiddleware.Handle; a request without an identity is rejected as
// unauthenticated, a known identity outside the policy as forbidden.
func RequireRole(policy Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !policy.Allows(identity.Role) {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
