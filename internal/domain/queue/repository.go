package queue

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-queue/internal/models"
)

// AdmitData é o que o repositório precisa para criar uma admissão
// completa (cliente resolvido por telefone, entrada e snapshots) em uma
// única transação.
type AdmitData struct {
	Nome       string
	Telefone   string
	BarbeiroID uint

	// Servicos já resolvidos no catálogo; preço/duração são congelados
	// a partir deles no momento do insert.
	Servicos []models.Service

	HoraEntrada time.Time
}

type Repository interface {
	// -------- Barber --------
	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	ListActiveBarbers(
		ctx context.Context,
	) ([]models.Barber, error)

	// -------- Client --------
	GetClientByPhone(
		ctx context.Context,
		telefone string,
	) (*models.Client, error)

	// -------- Catalog --------
	ListServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Queue (admission) --------
	Admit(
		ctx context.Context,
		data AdmitData,
	) (*models.QueueEntry, error)

	// -------- Queue (reads) --------
	GetEntry(
		ctx context.Context,
		id uint,
	) (*models.QueueEntry, error)

	ListActive(
		ctx context.Context,
		barberID uint,
	) ([]models.QueueEntry, error)

	CountActiveAhead(
		ctx context.Context,
		barberID uint,
		posicao int,
	) (int64, error)

	LatestActiveByClient(
		ctx context.Context,
		clientID uint,
	) (*models.QueueEntry, error)

	// -------- Queue (state change) --------
	UpdateEntry(
		ctx context.Context,
		entry *models.QueueEntry,
	) error

	// -------- Metrics --------
	ListCompleted(
		ctx context.Context,
		start time.Time,
		end time.Time,
		barberID *uint,
	) ([]models.QueueEntry, error)
}
