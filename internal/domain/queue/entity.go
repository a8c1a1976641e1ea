package queue

import (
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Apply muda o status de uma entrada. Status fora do atendimento carimba
// HoraSaida; voltar para ATENDENDO limpa qualquer carimbo anterior.
func Apply(e *models.QueueEntry, to Status, now time.Time) {
	e.Status = string(to)

	if to == StatusAtendendo {
		e.HoraSaida = nil
		return
	}

	saida := now
	e.HoraSaida = &saida
}

// NextPosition calcula a posição da próxima admissão a partir da última
// entrada ativa do barbeiro (1 quando a fila está vazia).
func NextPosition(lastActive *models.QueueEntry) int {
	if lastActive == nil {
		return 1
	}
	return lastActive.Posicao + 1
}
