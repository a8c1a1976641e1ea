package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type QueueServiceDTO struct {
	ID    uint     `json:"id"`
	Nome  string   `json:"nome"`
	Preco *float64 `json:"preco"`
}

type QueueClientDTO struct {
	ID       uint   `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
}

type QueueBarberDTO struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`
}

type QueueEntryDTO struct {
	ID          uint              `json:"id"`
	Posicao     int               `json:"posicao"`
	Status      string            `json:"status"`
	HoraEntrada time.Time         `json:"hora_entrada"`
	HoraSaida   *time.Time        `json:"hora_saida"`
	Cliente     QueueClientDTO    `json:"cliente"`
	Barbeiro    *QueueBarberDTO   `json:"barbeiro,omitempty"`
	Servicos    []QueueServiceDTO `json:"servicos"`
}

type QueuePositionDTO struct {
	QueueEntryDTO
	PessoasNaFrente int64 `json:"pessoas_na_frente"`
}

type QueueUpdatesDTO struct {
	Timestamp   time.Time       `json:"timestamp"`
	QueueLength int             `json:"queue_length"`
	Queue       []QueueEntryDTO `json:"queue"`
}

// FromQueueEntry projeta a entrada para o contrato público. Os serviços
// saem com os valores congelados na admissão, nunca com o catálogo vivo.
func FromQueueEntry(e *models.QueueEntry) QueueEntryDTO {
	out := QueueEntryDTO{
		ID:          e.ID,
		Posicao:     e.Posicao,
		Status:      e.Status,
		HoraEntrada: e.HoraEntrada,
		HoraSaida:   e.HoraSaida,
		Cliente: QueueClientDTO{
			ID:       e.Cliente.ID,
			Nome:     e.Cliente.Nome,
			Telefone: e.Cliente.Telefone,
		},
		Servicos: make([]QueueServiceDTO, 0, len(e.Servicos)),
	}

	if e.Barbeiro.ID != 0 {
		out.Barbeiro = &QueueBarberDTO{
			ID:   e.Barbeiro.ID,
			Nome: e.Barbeiro.Nome,
		}
	}

	for _, qs := range e.Servicos {
		out.Servicos = append(out.Servicos, QueueServiceDTO{
			ID:    qs.ServiceID,
			Nome:  qs.Service.Nome,
			Preco: qs.PrecoAplicado,
		})
	}

	return out
}

func FromQueueEntries(entries []models.QueueEntry) []QueueEntryDTO {
	out := make([]QueueEntryDTO, 0, len(entries))
	for i := range entries {
		out = append(out, FromQueueEntry(&entries[i]))
	}
	return out
}
