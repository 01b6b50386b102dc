package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	ctx.Locals("user_id", claims["user_id"])
	ctx.Locals("email", claims["email"])
	ctx.Locals("role", claims["role"])
	return ctx.Next()
}

// RequireAdmin must run after JwtMiddleware.
func RequireAdmin(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)
	if role != "admin" {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Admin access required"})
	}
	return ctx.Next()
}

// UserIDFromCtx reads the authenticated user id set by JwtMiddleware.
func UserIDFromCtx(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := ctx.Locals("user_id").(string)
	return uuid.Parse(raw)
}

// EmailFromCtx reads the authenticated email set by JwtMiddleware.
func EmailFromCtx(ctx *fiber.Ctx) string {
	email, _ := ctx.Locals("email").(string)
	return email
}
