package queue

import (
	"context"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/queue"
	"github.com/BruksfildServices01/barber-queue/internal/httperr"
	"github.com/BruksfildServices01/barber-queue/internal/validators"
)

type GetActiveByPhone struct {
	repo domain.Repository
}

func NewGetActiveByPhone(repo domain.Repository) *GetActiveByPhone {
	return &GetActiveByPhone{repo: repo}
}

// Execute recupera a entrada ativa mais recente do cliente pelo
// telefone, no mesmo formato da consulta de posição.
func (uc *GetActiveByPhone) Execute(
	ctx context.Context,
	telefone string,
) (*PositionResult, error) {

	client, err := uc.repo.GetClientByPhone(ctx, validators.NormalizePhone(telefone))
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	entry, err := uc.repo.LatestActiveByClient(ctx, client.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("no_active_entry")
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
