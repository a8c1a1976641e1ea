package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

func TestFromQueueEntryUsesAppliedPrice(t *testing.T) {
	catalogo := 60.0
	aplicado := 40.0
	entrada := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)

	e := &models.QueueEntry{
		ID:          5,
		Posicao:     2,
		Status:      "AGUARDANDO",
		HoraEntrada: entrada,
		Cliente:     models.Client{ID: 1, Nome: "Ana", Telefone: "11987654321"},
		Barbeiro:    models.Barber{ID: 3, Nome: "Carlos"},
		Servicos: []models.QueueService{
			{
				ServiceID:     7,
				Service:       models.Service{ID: 7, Nome: "Corte", Preco: &catalogo},
				PrecoAplicado: &aplicado,
			},
		},
	}

	out := FromQueueEntry(e)

	assert.Equal(t, uint(5), out.ID)
	assert.Equal(t, 2, out.Posicao)
	assert.Nil(t, out.HoraSaida)
	assert.Equal(t, "Ana", out.Cliente.Nome)
	require.NotNil(t, out.Barbeiro)
	assert.Equal(t, "Carlos", out.Barbeiro.Nome)

	require.Len(t, out.Servicos, 1)
	assert.Equal(t, uint(7), out.Servicos[0].ID)
	require.NotNil(t, out.Servicos[0].Preco)
	assert.Equal(t, 40.0, *out.Servicos[0].Preco)
}

func TestFromQueueEntryWithoutRelations(t *testing.T) {
	e := &models.QueueEntry{ID: 1, Posicao: 1, Status: "AGUARDANDO"}

	out := FromQueueEntry(e)

	assert.Nil(t, out.Barbeiro)
	assert.NotNil(t, out.Servicos)
	assert.Empty(t, out.Servicos)
}
