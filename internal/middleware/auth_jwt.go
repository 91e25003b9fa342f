package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type authClaims struct {
	UID string `json:"uid,omitempty"`
	jwt.RegisteredClaims
}

// RequireAuth rejects requests without a bearer credential with a fixed
// 401, rejects bad credentials with a distinct 401, and otherwise stores
// the caller's user id in Locals and passes through.
func RequireAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Unauthorized"})
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims authClaims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, fmt.Errorf("unsupported alg %s", t.Method.Alg())
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		uid := claims.UID
		if uid == "" {
			uid = claims.Subject
		}
		if uid == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		c.Locals("user_id", uid)
		return c.Next()
	}
}

// UserID reads the authenticated caller's id set by RequireAuth.
func UserID(c *fiber.Ctx) (bson.ObjectID, error) {
	v := c.Locals("user_id")
	s, ok := v.(string)
	if !ok || s == "" {
		return bson.NilObjectID, fmt.Errorf("no user in context")
	}
	oid, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("invalid user id in context")
	}
	return oid, nil
}
