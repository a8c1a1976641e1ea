package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Nome    string  `json:"nome" binding:"required"`
	Login   string  `json:"login" binding:"required"`
	Senha   string  `json:"senha" binding:"required,min=6"`
	FotoURL *string `json:"foto_url"`
	AdminID *uint   `json:"admin_id"`
}

type UpdateBarberRequest struct {
	Nome       *string `json:"nome,omitempty"`
	FotoURL    *string `json:"foto_url,omitempty"`
	Disponivel *bool   `json:"disponivel,omitempty"`
	Ativo      *bool   `json:"ativo,omitempty"`
}

type UpdateAvailabilityRequest struct {
	Disponivel *bool `json:"disponivel" binding:"required"`
}

// ======================================================
// LIST (público — clientes escolhem o barbeiro aqui)
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	q := h.db.Where("ativo = ?", true)

	if c.Query("disponivel") == "true" {
		q = q.Where("disponivel = ?", true)
	}

	var barbers []models.Barber
	if err := q.Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

// ======================================================
// CREATE (admin)
// ======================================================

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	login := strings.ToLower(strings.TrimSpace(req.Login))

	var count int64
	h.db.Model(&models.Barber{}).Where("login = ?", login).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "login_already_exists", "Login já cadastrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar senha.")
		return
	}

	barber := models.Barber{
		Nome:       req.Nome,
		Login:      login,
		SenhaHash:  string(hashed),
		FotoURL:    req.FotoURL,
		Ativo:      true,
		Disponivel: true,
		AdminID:    req.AdminID,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_create_barber", "Erro ao criar barbeiro.")
		return
	}

	c.JSON(http.StatusCreated, barber)
}

// ======================================================
// UPDATE (admin)
// ======================================================

func (h *BarberHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Erro ao buscar barbeiro.")
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Nome != nil {
		barber.Nome = *req.Nome
	}
	if req.FotoURL != nil {
		barber.FotoURL = req.FotoURL
	}
	if req.Disponivel != nil {
		barber.Disponivel = *req.Disponivel
	}
	if req.Ativo != nil {
		barber.Ativo = *req.Ativo
	}

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar barbeiro.")
		return
	}

	httpresp.OK(c, barber)
}

// ======================================================
// DELETE (admin) — sempre soft: Ativo=false preserva o
// histórico da fila que aponta para o barbeiro
// ======================================================

func (h *BarberHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var barber models.Barber
	if err := h.db.First(&barber, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_barber", "Erro ao buscar barbeiro.")
		return
	}

	barber.Ativo = false
	barber.Disponivel = false

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_barber", "Erro ao desativar barbeiro.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// AVAILABILITY (o próprio barbeiro)
// ======================================================

func (h *BarberHandler) UpdateOwnAvailability(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	if role != middleware.RoleBarbeiro {
		c.JSON(http.StatusForbidden, gin.H{"error": "barber_only"})
		return
	}

	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var barber models.Barber
	if err := h.db.First(&barber, userID).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	barber.Disponivel = *req.Disponivel

	if err := h.db.Save(&barber).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao atualizar disponibilidade.")
		return
	}

	httpresp.OK(c, barber)
}
