// Package testutil fornece uma implementação em memória do repositório
// de fila para testes de use case, sem banco de dados.
package testutil

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/queue"
	"github.com/BruksfildServices01/barber-queue/internal/models"
)

var ErrNotFound = errors.New("record not found")

type FakeRepository struct {
	mu sync.Mutex

	barbers  map[uint]*models.Barber
	clients  map[uint]*models.Client
	services map[uint]*models.Service
	entries  map[uint]*models.QueueEntry

	nextClientID       uint
	nextEntryID        uint
	nextQueueServiceID uint
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		barbers:  map[uint]*models.Barber{},
		clients:  map[uint]*models.Client{},
		services: map[uint]*models.Service{},
		entries:  map[uint]*models.QueueEntry{},
	}
}

// --------------------------------------------------
// Seeds
// --------------------------------------------------

func (f *FakeRepository) AddBarber(b models.Barber) *models.Barber {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.barbers[b.ID] = &b
	return &b
}

func (f *FakeRepository) AddService(s models.Service) *models.Service {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.services[s.ID] = &s
	return &s
}

func (f *FakeRepository) AddClient(c models.Client) *models.Client {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.ID == 0 {
		f.nextClientID++
		c.ID = f.nextClientID
	} else if c.ID > f.nextClientID {
		f.nextClientID = c.ID
	}
	f.clients[c.ID] = &c
	return &c
}

func (f *FakeRepository) SeedEntry(e models.QueueEntry) *models.QueueEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e.ID == 0 {
		f.nextEntryID++
		e.ID = f.nextEntryID
	} else if e.ID > f.nextEntryID {
		f.nextEntryID = e.ID
	}
	f.entries[e.ID] = &e
	return &e
}

// MutateServicePrice simula uma mudança posterior no catálogo.
func (f *FakeRepository) MutateServicePrice(id uint, preco float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.services[id]; ok {
		s.Preco = &preco
	}
}

// --------------------------------------------------
// domain.Repository
// --------------------------------------------------

func (f *FakeRepository) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.barbers[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *b
	return &out, nil
}

func (f *FakeRepository) ListActiveBarbers(_ context.Context) ([]models.Barber, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Barber
	for _, b := range f.barbers {
		if b.Ativo {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *FakeRepository) GetClientByPhone(_ context.Context, telefone string) (*models.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.clients {
		if c.Telefone == telefone {
			out := *c
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (f *FakeRepository) ListServicesByIDs(_ context.Context, ids []uint) ([]models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Service, 0, len(ids))
	for _, id := range ids {
		if s, ok := f.services[id]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *FakeRepository) Admit(_ context.Context, data domain.AdmitData) (*models.QueueEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	barber, ok := f.barbers[data.BarbeiroID]
	if !ok {
		return nil, ErrNotFound
	}

	// Cliente: telefone manda; nome existente não é sobrescrito.
	var client *models.Client
	for _, c := range f.clients {
		if c.Telefone == data.Telefone {
			client = c
			break
		}
	}
	if client == nil {
		f.nextClientID++
		client = &models.Client{
			ID:       f.nextClientID,
			Nome:     data.Nome,
			Telefone: data.Telefone,
		}
		f.clients[client.ID] = client
	}

	posicao := 1
	for _, e := range f.entries {
		if e.BarbeiroID == data.BarbeiroID && domain.IsActive(domain.Status(e.Status)) && e.Posicao >= posicao {
			posicao = e.Posicao + 1
		}
	}

	f.nextEntryID++
	entry := &models.QueueEntry{
		ID:          f.nextEntryID,
		ClienteID:   client.ID,
		Cliente:     *client,
		BarbeiroID:  barber.ID,
		Barbeiro:    *barber,
		Posicao:     posicao,
		Status:      string(domain.InitialStatus()),
		HoraEntrada: data.HoraEntrada,
	}

	for _, s := range data.Servicos {
		f.nextQueueServiceID++
		qs := models.QueueService{
			ID:        f.nextQueueServiceID,
			QueueID:   entry.ID,
			ServiceID: s.ID,
			Service:   s,
		}
		// Snapshot por valor: mudanças futuras no catálogo não vazam.
		if s.Preco != nil {
			v := *s.Preco
			qs.PrecoAplicado = &v
		}
		if s.TempoEstimado != nil {
			v := *s.TempoEstimado
			qs.TempoEstimadoAplicado = &v
		}
		entry.Servicos = append(entry.Servicos, qs)
	}

	f.entries[entry.ID] = entry

	out := copyEntry(entry)
	return out, nil
}

func (f *FakeRepository) GetEntry(_ context.Context, id uint) (*models.QueueEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyEntry(e), nil
}

func (f *FakeRepository) ListActive(_ context.Context, barberID uint) ([]models.QueueEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.QueueEntry
	for _, e := range f.entries {
		if e.BarbeiroID == barberID && domain.IsActive(domain.Status(e.Status)) {
			out = append(out, *copyEntry(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Posicao < out[j].Posicao })
	return out, nil
}

func (f *FakeRepository) CountActiveAhead(_ context.Context, barberID uint, posicao int) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var count int64
	for _, e := range f.entries {
		if e.BarbeiroID == barberID && e.Posicao < posicao && domain.IsActive(domain.Status(e.Status)) {
			count++
		}
	}
	return count, nil
}

func (f *FakeRepository) LatestActiveByClient(_ context.Context, clientID uint) (*models.QueueEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var latest *models.QueueEntry
	for _, e := range f.entries {
		if e.ClienteID != clientID || !domain.IsActive(domain.Status(e.Status)) {
			continue
		}
		if latest == nil || e.HoraEntrada.After(latest.HoraEntrada) {
			latest = e
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	return copyEntry(latest), nil
}

func (f *FakeRepository) UpdateEntry(_ context.Context, entry *models.QueueEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.entries[entry.ID]; !ok {
		return ErrNotFound
	}
	f.entries[entry.ID] = copyEntry(entry)
	return nil
}

func (f *FakeRepository) ListCompleted(
	_ context.Context,
	start time.Time,
	end time.Time,
	barberID *uint,
) ([]models.QueueEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.QueueEntry
	for _, e := range f.entries {
		if e.Status != string(domain.StatusAtendido) || e.HoraSaida == nil {
			continue
		}
		if e.HoraSaida.Before(start) || e.HoraSaida.After(end) {
			continue
		}
		if barberID != nil && e.BarbeiroID != *barberID {
			continue
		}
		out = append(out, *copyEntry(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HoraSaida.Before(*out[j].HoraSaida) })
	return out, nil
}

func copyEntry(e *models.QueueEntry) *models.QueueEntry {
	out := *e
	if e.HoraSaida != nil {
		v := *e.HoraSaida
		out.HoraSaida = &v
	}
	out.Servicos = append([]models.QueueService(nil), e.Servicos...)
	return &out
}

// Compile-time check
var _ domain.Repository = (*FakeRepository)(nil)
