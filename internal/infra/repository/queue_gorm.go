package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/queue"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

type QueueGormRepository struct {
	db *gorm.DB
}

func NewQueueGormRepository(db *gorm.DB) *QueueGormRepository {
	return &QueueGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *QueueGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

func (r *QueueGormRepository) ListActiveBarbers(
	ctx context.Context,
) ([]models.Barber, error) {

	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Where("ativo = ?", true).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *QueueGormRepository) GetClientByPhone(
	ctx context.Context,
	telefone string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("telefone = ?", telefone).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *QueueGormRepository) ListServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Admission
// --------------------------------------------------

// Admit roda a admissão inteira em uma transação. O registro do
// barbeiro é trancado com FOR UPDATE, então admissões concorrentes para
// o mesmo barbeiro serializam na leitura de posição e saem com posições
// únicas e consecutivas; falha em qualquer insert desfaz tudo.
func (r *QueueGormRepository) Admit(
	ctx context.Context,
	data domain.AdmitData,
) (*models.QueueEntry, error) {

	var created models.QueueEntry

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var barber models.Barber
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&barber, data.BarbeiroID).Error; err != nil {
			return err
		}

		// Cliente: telefone manda; nome já cadastrado não é sobrescrito.
		var client models.Client
		err := tx.Where("telefone = ?", data.Telefone).First(&client).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			client = models.Client{
				Nome:     data.Nome,
				Telefone: data.Telefone,
			}
			if err := tx.Create(&client).Error; err != nil {
				return err
			}
		}

		var lastActive *models.QueueEntry
		var last models.QueueEntry
		err = tx.
			Where("barbeiro_id = ? AND status IN ?", data.BarbeiroID, domain.ActiveStatuses).
			Order("posicao DESC").
			First(&last).Error
		switch {
		case err == nil:
			lastActive = &last
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		entry := models.QueueEntry{
			ClienteID:   client.ID,
			BarbeiroID:  data.BarbeiroID,
			Posicao:     domain.NextPosition(lastActive),
			Status:      string(domain.InitialStatus()),
			HoraEntrada: data.HoraEntrada,
		}

		if err := tx.Create(&entry).Error; err != nil {
			return err
		}

		for _, s := range data.Servicos {
			qs := models.QueueService{
				QueueID:               entry.ID,
				ServiceID:             s.ID,
				PrecoAplicado:         s.Preco,
				TempoEstimadoAplicado: s.TempoEstimado,
			}
			if err := tx.Create(&qs).Error; err != nil {
				return err
			}
		}

		created = entry
		return nil
	})

	if err != nil {
		return nil, err
	}

	return r.GetEntry(ctx, created.ID)
}

// --------------------------------------------------
// Queue (reads)
// --------------------------------------------------

func (r *QueueGormRepository) GetEntry(
	ctx context.Context,
	id uint,
) (*models.QueueEntry, error) {

	var entry models.QueueEntry
	if err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Barbeiro").
		Preload("Servicos.Service").
		First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *QueueGormRepository) ListActive(
	ctx context.Context,
	barberID uint,
) ([]models.QueueEntry, error) {

	var entries []models.QueueEntry
	if err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Servicos.Service").
		Where("barbeiro_id = ? AND status IN ?", barberID, domain.ActiveStatuses).
		Order("posicao ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *QueueGormRepository) CountActiveAhead(
	ctx context.Context,
	barberID uint,
	posicao int,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.QueueEntry{}).
		Where(
			"barbeiro_id = ? AND posicao < ? AND status IN ?",
			barberID, posicao, domain.ActiveStatuses,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *QueueGormRepository) LatestActiveByClient(
	ctx context.Context,
	clientID uint,
) (*models.QueueEntry, error) {

	var entry models.QueueEntry
	if err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Barbeiro").
		Preload("Servicos.Service").
		Where("cliente_id = ? AND status IN ?", clientID, domain.ActiveStatuses).
		Order("hora_entrada DESC").
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// --------------------------------------------------
// Queue (state change)
// --------------------------------------------------

func (r *QueueGormRepository) UpdateEntry(
	ctx context.Context,
	entry *models.QueueEntry,
) error {
	// Omit evita reescrever cliente/serviços pré-carregados.
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(entry).Error
}

// --------------------------------------------------
// Metrics
// --------------------------------------------------

func (r *QueueGormRepository) ListCompleted(
	ctx context.Context,
	start time.Time,
	end time.Time,
	barberID *uint,
) ([]models.QueueEntry, error) {

	q := r.db.WithContext(ctx).
		Preload("Barbeiro").
		Preload("Servicos.Service").
		Where(
			"status = ? AND hora_saida >= ? AND hora_saida <= ?",
			string(domain.StatusAtendido), start, end,
		)

	if barberID != nil {
		q = q.Where("barbeiro_id = ?", *barberID)
	}

	var entries []models.QueueEntry
	if err := q.Order("hora_saida ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Compile-time check
var _ domain.Repository = (*QueueGormRepository)(nil)
