package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

type CreateAdminRequest struct {
	Nome    string  `json:"nome" binding:"required"`
	Login   string  `json:"login" binding:"required"`
	Senha   string  `json:"senha" binding:"required,min=6"`
	FotoURL *string `json:"foto_url"`
}

func (h *AdminHandler) Create(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	login := strings.ToLower(strings.TrimSpace(req.Login))

	var count int64
	h.db.Model(&models.Admin{}).Where("login = ?", login).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "login_already_exists", "Login já cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return
	}

	admin := models.Admin{
		Nome:      req.Nome,
		Login:     login,
		SenhaHash: string(hashed),
		FotoURL:   req.FotoURL,
	}

	if err := h.db.Create(&admin).Error; err != nil {
		httperr.Internal(c, "failed_to_create_admin", "Erro ao criar administrador.")
		return
	}

	c.JSON(http.StatusCreated, admin)
}
