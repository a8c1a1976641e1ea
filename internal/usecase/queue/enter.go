package queue

import (
	"context"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/queue"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
	"github.com/BruksfildServices01/barber-queue/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type EnterQueueInput struct {
	Nome       string
	Telefone   string
	BarbeiroID uint
	ServiceIDs []uint

	RequestID string
}

// ======================================================
// USE CASE
// ======================================================

type EnterQueue struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewEnterQueue(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *EnterQueue {
	return &EnterQueue{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *EnterQueue) Execute(
	ctx context.Context,
	in EnterQueueInput,
) (*models.QueueEntry, error) {

	// --------------------------------------------------
	// 1️⃣ Barbeiro precisa existir (apenas existir)
	// --------------------------------------------------
	if _, err := uc.repo.GetBarber(ctx, in.BarbeiroID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Serviços: ids inexistentes são ignorados
	// --------------------------------------------------
	var servicos []models.Service
	if len(in.ServiceIDs) > 0 {
		found, err := uc.repo.ListServicesByIDs(ctx, in.ServiceIDs)
		if err != nil {
			return nil, err
		}
		servicos = found
	}

	// --------------------------------------------------
	// 3️⃣ Admissão transacional: cliente (get or create),
	//    posição, entrada e snapshots em um só commit
	// --------------------------------------------------
	entry, err := uc.repo.Admit(ctx, domain.AdmitData{
		Nome:        in.Nome,
		Telefone:    validators.NormalizePhone(in.Telefone),
		BarbeiroID:  in.BarbeiroID,
		Servicos:    servicos,
		HoraEntrada: timezone.Now(),
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Acao:        "queue_enter",
		UsuarioID:   &entry.ClienteID,
		UsuarioTipo: "cliente",
		RequestID:   in.RequestID,
		Detalhes: map[string]any{
			"barbeiro_id": entry.BarbeiroID,
			"posicao":     entry.Posicao,
			"servicos":    len(entry.Servicos),
		},
	})

	return entry, nil
}
