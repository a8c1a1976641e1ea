package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-queue/internal/cache"
	"github.com/BruksfildServices01/barber-queue/internal/dto"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/httpresp"
	"github.com/BruksfildServices01/barber-queue/internal/middleware"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
	ucqueue "github.com/BruksfildServices01/barber-queue/internal/usecase/queue"
	"github.com/BruksfildServices01/barber-queue/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type QueueHandler struct {
	enterUC        *ucqueue.EnterQueue
	getQueueUC     *ucqueue.GetQueue
	updateStatusUC *ucqueue.UpdateStatus
	positionUC     *ucqueue.GetPosition
	byPhoneUC      *ucqueue.GetActiveByPhone

	snapshots *cache.Snapshots
}

func NewQueueHandler(
	enterUC *ucqueue.EnterQueue,
	getQueueUC *ucqueue.GetQueue,
	updateStatusUC *ucqueue.UpdateStatus,
	positionUC *ucqueue.GetPosition,
	byPhoneUC *ucqueue.GetActiveByPhone,
	snapshots *cache.Snapshots,
) *QueueHandler {
	return &QueueHandler{
		enterUC:        enterUC,
		getQueueUC:     getQueueUC,
		updateStatusUC: updateStatusUC,
		positionUC:     positionUC,
		byPhoneUC:      byPhoneUC,
		snapshots:      snapshots,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type EnterQueueRequest struct {
	Nome       string `json:"nome" binding:"required"`
	Telefone   string `json:"telefone" binding:"required"`
	BarbeiroID uint   `json:"barbeiro_id" binding:"required"`
	ServiceIDs []uint `json:"serviceIds"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// ENTER
// ======================================================

func (h *QueueHandler) Enter(c *gin.Context) {
	var req EnterQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsValidPhone(req.Telefone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	entry, err := h.enterUC.Execute(c.Request.Context(), ucqueue.EnterQueueInput{
		Nome:       req.Nome,
		Telefone:   req.Telefone,
		BarbeiroID: req.BarbeiroID,
		ServiceIDs: req.ServiceIDs,
		RequestID:  middleware.RequestID(c),
	})
	if err != nil {
		if httperr.IsBusiness(err, "barber_not_found") {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_enter_queue", "Erro ao entrar na fila.")
		return
	}

	h.snapshots.Invalidate(c.Request.Context(), updatesKey(entry.BarbeiroID))

	httpresp.Created(c, dto.FromQueueEntry(entry))
}

// ======================================================
// LIST (fila ativa do barbeiro)
// ======================================================

func (h *QueueHandler) GetQueue(c *gin.Context) {
	barberID, err := parseIDParam(c, "barberId")
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Identificador de barbeiro inválido.")
		return
	}

	entries, err := h.getQueueUC.Execute(c.Request.Context(), barberID)
	if err != nil {
		if httperr.IsBusiness(err, "barber_not_found") {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_list_queue", "Erro ao listar a fila.")
		return
	}

	httpresp.OK(c, dto.FromQueueEntries(entries))
}

// ======================================================
// UPDATES (polling)
// ======================================================

func (h *QueueHandler) Updates(c *gin.Context) {
	barberID, err := parseIDParam(c, "barberId")
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Identificador de barbeiro inválido.")
		return
	}

	ctx := c.Request.Context()
	key := updatesKey(barberID)

	if cached, ok := h.snapshots.Get(ctx, key); ok {
		c.Data(200, "application/json; charset=utf-8", cached)
		return
	}

	entries, err := h.getQueueUC.Execute(ctx, barberID)
	if err != nil {
		if httperr.IsBusiness(err, "barber_not_found") {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_list_queue", "Erro ao listar a fila.")
		return
	}

	queue := dto.FromQueueEntries(entries)
	payload := dto.QueueUpdatesDTO{
		Timestamp:   timezone.Now(),
		QueueLength: len(queue),
		Queue:       queue,
	}

	if body, err := json.Marshal(payload); err == nil {
		h.snapshots.Set(ctx, key, body)
	}

	httpresp.OK(c, payload)
}

// ======================================================
// POSITION
// ======================================================

func (h *QueueHandler) GetPosition(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_queue_id", "Identificador de fila inválido.")
		return
	}

	result, err := h.positionUC.Execute(c.Request.Context(), id)
	if err != nil {
		if httperr.IsBusiness(err, "entry_not_found") {
			httperr.NotFound(c, "entry_not_found", "Entrada de fila não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_position", "Erro ao consultar posição.")
		return
	}

	httpresp.OK(c, dto.QueuePositionDTO{
		QueueEntryDTO:   dto.FromQueueEntry(result.Entry),
		PessoasNaFrente: result.PessoasNaFrente,
	})
}

// ======================================================
// BY PHONE
// ======================================================

func (h *QueueHandler) GetByPhone(c *gin.Context) {
	telefone := c.Param("telefone")

	result, err := h.byPhoneUC.Execute(c.Request.Context(), telefone)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "client_not_found"):
			httperr.NotFound(c, "client_not_found", "Cliente não encontrado.")
		case httperr.IsBusiness(err, "no_active_entry"):
			httperr.NotFound(c, "no_active_entry", "Nenhuma entrada ativa para este telefone.")
		default:
			httperr.Internal(c, "failed_to_get_entry", "Erro ao consultar entrada.")
		}
		return
	}

	httpresp.OK(c, dto.QueuePositionDTO{
		QueueEntryDTO:   dto.FromQueueEntry(result.Entry),
		PessoasNaFrente: result.PessoasNaFrente,
	})
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *QueueHandler) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		httperr.BadRequest(c, "invalid_queue_id", "Identificador de fila inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.MustGet(middleware.ContextUserRole).(string)

	entry, err := h.updateStatusUC.Execute(c.Request.Context(), ucqueue.UpdateStatusInput{
		QueueID:     id,
		Status:      req.Status,
		UsuarioID:   &userID,
		UsuarioTipo: role,
		RequestID:   middleware.RequestID(c),
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
		case httperr.IsBusiness(err, "entry_not_found"):
			httperr.NotFound(c, "entry_not_found", "Entrada de fila não encontrada.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Erro ao atualizar status.")
		}
		return
	}

	h.snapshots.Invalidate(c.Request.Context(), updatesKey(entry.BarbeiroID))

	httpresp.OK(c, dto.FromQueueEntry(entry))
}

// ======================================================
// HELPERS
// ======================================================

func updatesKey(barberID uint) string {
	return fmt.Sprintf("queue:updates:%d", barberID)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}
