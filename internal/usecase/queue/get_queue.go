package queue

import (
	"context"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/queue"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type GetQueue struct {
	repo domain.Repository
}

func NewGetQueue(repo domain.Repository) *GetQueue {
	return &GetQueue{repo: repo}
}

// Execute devolve as entradas ativas do barbeiro em ordem de posição.
func (uc *GetQueue) Execute(
	ctx context.Context,
	barberID uint,
) ([]models.QueueEntry, error) {

	if _, err := uc.repo.GetBarber(ctx, barberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	return uc.repo.ListActive(ctx, barberID)
}
