package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"laraigo_backend/internals/configs"
	"laraigo_backend/internals/features/users/auth/dto"
	helper "laraigo_backend/internals/helpers"
)

var validateLogin = validator.New()

// AuthController checks the single configured portal credential and issues a
// bearer JWT. There is no users table: one credential, binary valid/invalid.
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// =============================
// 🔑 Login
// =============================
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLogin.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if !credentialMatches(body.Email, body.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := issueToken(body.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return c.JSON(dto.LoginResponse{Token: token})
}

func credentialMatches(email, password string) bool {
	if configs.AdminEmail == "" || configs.AdminPasswordHash == "" {
		return false
	}
	if !strings.EqualFold(email, configs.AdminEmail) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(configs.AdminPasswordHash), []byte(password)) == nil
}

func issueToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
