package utils

import (
	"errors"
	"strings"
	"time"

	"coursetracker/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Claims is the identity carried by a session token.
type Claims struct {
	UserID string
	Role   string
}

func GenerateJWTToken(claims Claims, cfg *config.Config) (string, error) {
	mapClaims := jwt.MapClaims{
		"sub":  claims.UserID,
		"role": claims.Role,
		"exp":  time.Now().Add(cfg.JWTTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseJWTToken validates tokenString and returns its claims. A leading
// "Bearer " is accepted.
func ParseJWTToken(tokenString string, cfg *config.Config) (Claims, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return Claims{}, fiber.NewError(fiber.StatusUnauthorized, "Missing authorization token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil {
		return Claims{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}

	userID, ok := mapClaims["sub"].(string)
	if !ok || userID == "" {
		return Claims{}, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}
	role, _ := mapClaims["role"].(string)

	return Claims{UserID: userID, Role: role}, nil
}

func ExtractClaimsFromToken(c *fiber.Ctx, cfg *config.Config) (Claims, error) {
	return ParseJWTToken(c.Get(fiber.HeaderAuthorization), cfg)
}
