package queue

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barber-queue/internal/audit"
	domain "github.com/BruksfildServices01/barber-queue/internal/domain/queue"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type UpdateStatusInput struct {
	QueueID uint
	Status  string

	UsuarioID   *uint
	UsuarioTipo string
	RequestID   string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute aplica o novo status sem validar legalidade da transição
// (qualquer status pode ir para qualquer outro); transições fora do
// fluxo pretendido só ganham uma marca na auditoria.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.QueueEntry, error) {

	status := domain.Status(strings.ToUpper(strings.TrimSpace(in.Status)))
	if !domain.IsValid(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	entry, err := uc.repo.GetEntry(ctx, in.QueueID)
	if err != nil {
		return nil, httperr.ErrBusiness("entry_not_found")
	}

	previous := domain.Status(entry.Status)

	domain.Apply(entry, status, timezone.Now())

	if err := uc.repo.UpdateEntry(ctx, entry); err != nil {
		return nil, err
	}

	detalhes := map[string]any{
		"de":   string(previous),
		"para": string(status),
	}
	if !domain.IsIntended(previous, status) {
		detalhes["transicao_incomum"] = true
	}

	uc.audit.Dispatch(audit.Event{
		Acao:        "queue_status_" + strings.ToLower(string(status)),
		UsuarioID:   in.UsuarioID,
		UsuarioTipo: in.UsuarioTipo,
		RequestID:   in.RequestID,
		Detalhes:    detalhes,
	})

	return entry, nil
}
