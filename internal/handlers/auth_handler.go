package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-queue/internal/config"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Login string `json:"login" binding:"required"`
	Senha string `json:"senha" binding:"required"`
	Tipo  string `json:"tipo" binding:"required,oneof=admin barbeiro"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	login := strings.ToLower(strings.TrimSpace(req.Login))

	switch req.Tipo {
	case middleware.RoleAdmin:
		h.loginAdmin(c, login, req.Senha)
	case middleware.RoleBarbeiro:
		h.loginBarber(c, login, req.Senha)
	}
}

func (h *AuthHandler) loginAdmin(c *gin.Context, login, senha string) {
	var admin models.Admin
	if err := h.db.Where("login = ?", login).First(&admin).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.SenhaHash), []byte(senha)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	token, err := h.generateToken(admin.ID, middleware.RoleAdmin)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"usuario": gin.H{
			"id":       admin.ID,
			"nome":     admin.Nome,
			"login":    admin.Login,
			"foto_url": admin.FotoURL,
			"tipo":     middleware.RoleAdmin,
		},
		"token": token,
	})
}

func (h *AuthHandler) loginBarber(c *gin.Context, login, senha string) {
	// Barbeiro desativado (soft delete) não autentica.
	var barber models.Barber
	if err := h.db.Where("login = ? AND ativo = ?", login, true).First(&barber).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(barber.SenhaHash), []byte(senha)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return
	}

	token, err := h.generateToken(barber.ID, middleware.RoleBarbeiro)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"usuario": gin.H{
			"id":         barber.ID,
			"nome":       barber.Nome,
			"login":      barber.Login,
			"foto_url":   barber.FotoURL,
			"disponivel": barber.Disponivel,
			"tipo":       middleware.RoleBarbeiro,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(userID uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
