package middleware

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"club-portal/constants"
	"club-portal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is what the external identity provider signs into the
// session token. The portal trusts these claims after signature checks and
// does not maintain sessions of its own.
type SessionClaims struct {
	UserID    uint   `json:"user_id"`
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// VerifyToken validates an HS256 session token against JWT_SECRET.
func VerifyToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}
	if !constants.IsValidRole(claims.Role) {
		return nil, fmt.Errorf("unknown role %q in session token", claims.Role)
	}
	return claims, nil
}

// RequireAuthentication resolves the caller from the Authorization header
// and stores it in c.Locals("caller").
func RequireAuthentication() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return unauthorized(c, "Missing session token")
		}
		claims, err := VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return unauthorized(c, "Invalid or expired session token")
		}
		c.Locals("caller", types.Caller{
			UserID:    claims.UserID,
			StudentID: claims.StudentID,
			Name:      claims.Name,
			Role:      claims.Role,
		})
		return c.Next()
	}
}

// RequireRoles gates a route to the given portal roles. Must run after
// RequireAuthentication.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller, ok := CallerFromCtx(c)
		if !ok {
			return unauthorized(c, "Missing session token")
		}
		for _, role := range roles {
			if caller.Role == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Message: "Insufficient role for this action",
			Status:  fiber.StatusForbidden,
		})
	}
}

// CallerFromCtx returns the authenticated caller stored by
// RequireAuthentication.
func CallerFromCtx(c *fiber.Ctx) (types.Caller, bool) {
	caller, ok := c.Locals("caller").(types.Caller)
	return caller, ok
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Message: message,
		Status:  fiber.StatusUnauthorized,
	})
}
