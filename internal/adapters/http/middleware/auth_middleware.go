package middleware

import (
	"log"
	"strings"

	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/models"
	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/repositories"
	"github.com/yuneshbyte01/placement-system/internal/config"
	"github.com/yuneshbyte01/placement-system/internal/pkg/jwt"
	"github.com/yuneshbyte01/placement-system/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const (
	bearerPrefix = "Bearer "
	principalKey = "principal"

	msgDeactivated  = "Your account is deactivated"
	msgLoginNeeded  = "Authentication required"
	msgRoleMismatch = "You don't have permission to access this resource"
)

// Principal is the verified identity attached to a request
type Principal struct {
	ID    uint
	Name  string
	Email string
	Role  string
}

// GetPrincipal returns the principal attached to the request, if any
func GetPrincipal(c *fiber.Ctx) (*Principal, bool) {
	principal, ok := c.Locals(principalKey).(*Principal)
	return principal, ok
}

// SetPrincipal attaches a principal to the request (exported for tests)
func SetPrincipal(c *fiber.Ctx, principal *Principal) {
	c.Locals(principalKey, principal)
}

// Authenticate builds the per-request authentication gate.
//
// A missing or unverifiable token lets the request continue anonymous;
// Authorize then rejects it with the right status if the endpoint needs a
// principal. A token naming a missing or deactivated account short-circuits
// the request immediately. Role and liveness always come from the store,
// never from the token claims.
func Authenticate(cfg *config.Config, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Public endpoints skip the gate entirely
		if _, public := RequiredRole(c.Path()); public {
			return c.Next()
		}

		// 2. Idempotent when the chain runs more than once
		if _, ok := GetPrincipal(c); ok {
			return c.Next()
		}

		// 3. Extract bearer token; absence is not an error
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return c.Next()
		}

		// 4. Verification failures degrade to anonymous
		claims, err := jwt.ValidateToken(token, cfg.JWT.Secret)
		if err != nil {
			log.Printf("⚠️ Invalid access token: %v", err)
			return c.Next()
		}

		// 5. Liveness re-check: a valid token for a deactivated account
		// stops working immediately
		user, err := userRepo.GetByID(c.Context(), claims.UserID)
		if err != nil || !user.IsActive {
			return response.Forbidden(c, msgDeactivated)
		}

		// 6. Attach the principal with the stored role
		SetPrincipal(c, &Principal{
			ID:    user.ID,
			Name:  user.Username,
			Email: user.Email,
			Role:  user.Role,
		})

		return c.Next()
	}
}

// policyRule maps a path prefix to the role it requires
type policyRule struct {
	prefix string
	role   string // empty means public
}

// Ordered rule table; first match wins. Anything not matched requires an
// authenticated principal of any role.
var policyRules = []policyRule{
	{prefix: "/api/auth/", role: ""},
	{prefix: "/api/student/", role: models.RoleStudent},
	{prefix: "/api/organization/", role: models.RoleOrganization},
	{prefix: "/api/admin/", role: models.RoleAdmin},
}

// RequiredRole resolves the policy table for a path. It returns the required
// role (empty when any authenticated principal will do) and whether the path
// is public.
func RequiredRole(path string) (role string, public bool) {
	for _, rule := range policyRules {
		if strings.HasPrefix(path, rule.prefix) {
			return rule.role, rule.role == ""
		}
	}
	return "", false
}

// Authorize enforces the path-prefix policy table against the principal
// produced by Authenticate. It is method-agnostic.
func Authorize() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, public := RequiredRole(c.Path())
		if public {
			return c.Next()
		}

		principal, ok := GetPrincipal(c)
		if !ok {
			return response.Unauthorized(c, msgLoginNeeded)
		}

		if role != "" && principal.Role != role {
			return response.Forbidden(c, msgRoleMismatch)
		}

		return c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value
func bearerToken(authHeader string) string {
	if authHeader != "" && strings.HasPrefix(authHeader, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	}
	return ""
}
