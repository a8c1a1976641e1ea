package queue

import (
	"context"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/queue"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// PositionResult carrega a entrada e a contagem viva de pessoas à
// frente, sempre recomputada do conjunto ativo atual.
type PositionResult struct {
	Entry           *models.QueueEntry
	PessoasNaFrente int64
}

type GetPosition struct {
	repo domain.Repository
}

func NewGetPosition(repo domain.Repository) *GetPosition {
	return &GetPosition{repo: repo}
}

func (uc *GetPosition) Execute(
	ctx context.Context,
	queueID uint,
) (*PositionResult, error) {

	entry, err := uc.repo.GetEntry(ctx, queueID)
	if err != nil {
		return nil, httperr.ErrBusiness("entry_not_found")
	}

	ahead, err := uc.repo.CountActiveAhead(ctx, entry.BarbeiroID, entry.Posicao)
	if err != nil {
		return nil, err
	}

	return &PositionResult{
		Entry:           entry,
		PessoasNaFrente: ahead,
	}, nil
}
