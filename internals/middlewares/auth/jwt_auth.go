// file: internals/middlewares/auth/jwt_auth.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "kariahku_backend/internals/helpers"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

// AuthJWT memverifikasi access token lalu hydrate locals
// (user_id, user_email, user_role, is_master).
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak sah atau tamat tempoh")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak sah atau tamat tempoh")
		}
		if typ, _ := claims["typ"].(string); typ != "access" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak sah atau tamat tempoh")
		}

		c.Locals("jwt_claims", claims)
		if s := strClaim(claims, "sub"); s != "" {
			c.Locals(helper.LocUserID, s)
		}
		if s := strClaim(claims, "email"); s != "" {
			c.Locals(helper.LocUserEmail, s)
		}
		if s := strClaim(claims, "role"); s != "" {
			c.Locals(helper.LocUserRole, s)
		}
		if b, ok := claims["is_master"].(bool); ok && b {
			c.Locals(helper.LocIsMaster, true)
		}

		return c.Next()
	}
}

// RequireRoles: guard berasaskan role claim; senarai role dibenarkan
// dideklarasi eksplisit per route (bukan anotasi framework).
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToUpper(strings.TrimSpace(r))] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := strings.ToUpper(strings.TrimSpace(helper.GetUserRole(c)))
		if role == "" {
			return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
		}
		if _, ok := allowed[role]; !ok {
			return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
		}
		return c.Next()
	}
}

// RequireMaster: hanya token master admin (claim is_master).
func RequireMaster() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !helper.IsMaster(c) {
			return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak")
		}
		return c.Next()
	}
}

func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
