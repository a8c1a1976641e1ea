package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Nome          string   `json:"nome" binding:"required"`
	Descricao     string   `json:"descricao"`
	Preco         *float64 `json:"preco"`
	TempoEstimado *int     `json:"tempo_estimado"`
}

type UpdateServiceRequest struct {
	Nome          *string  `json:"nome,omitempty"`
	Descricao     *string  `json:"descricao,omitempty"`
	Preco         *float64 `json:"preco,omitempty"`
	TempoEstimado *int     `json:"tempo_estimado,omitempty"`
	Ativo         *bool    `json:"ativo,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	q := h.db.Order("id ASC")

	switch c.Query("ativo") {
	case "true":
		q = q.Where("ativo = ?", true)
	case "false":
		q = q.Where("ativo = ?", false)
	}

	var services []models.Service
	if err := q.Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	service := models.Service{
		Nome:          req.Nome,
		Descricao:     req.Descricao,
		Preco:         req.Preco,
		TempoEstimado: req.TempoEstimado,
		Ativo:         true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	c.JSON(http.StatusCreated, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Nome != nil {
		service.Nome = *req.Nome
	}
	if req.Descricao != nil {
		service.Descricao = *req.Descricao
	}
	if req.Preco != nil {
		service.Preco = req.Preco
	}
	if req.TempoEstimado != nil {
		service.TempoEstimado = req.TempoEstimado
	}
	if req.Ativo != nil {
		service.Ativo = *req.Ativo
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao atualizar serviço.")
		return
	}

	httpresp.OK(c, service)
}

// Delete remove o serviço do catálogo de verdade; os snapshots em
// queue_services preservam preço e duração dos atendimentos antigos.
func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	var service models.Service
	if err := h.db.First(&service, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_service", "Erro ao buscar serviço.")
		return
	}

	if err := h.db.Delete(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}

	c.Status(http.StatusNoContent)
}
