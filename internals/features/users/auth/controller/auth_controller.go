// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"admissionku_backend/internals/configs"
	model "admissionku_backend/internals/features/users/auth/model"
	helper "admissionku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

type LoginDTO struct {
	Identifier string `json:"identifier"` // user name or email
	Password   string `json:"password"`
}

// POST /auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var in LoginDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	in.Identifier = strings.TrimSpace(in.Identifier)
	if in.Identifier == "" || in.Password == "" {
		return helper.JsonError(c, http.StatusBadRequest, "identifier and password are required")
	}

	var user model.User
	err := h.DB.WithContext(c.UserContext()).
		Where("user_name = ? OR user_email = ?", in.Identifier, in.Identifier).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "could not look up the user")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, http.StatusForbidden, "account is deactivated")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(in.Password)) != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "invalid credentials")
	}

	claims := jwt.MapClaims{
		"user_id":   user.UserID.String(),
		"user_name": user.UserName,
		"role":      user.UserRole,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "could not issue a token")
	}

	return helper.JsonOK(c, "login ok", fiber.Map{
		"token":     token,
		"user_id":   user.UserID,
		"user_name": user.UserName,
		"role":      user.UserRole,
	})
}
