package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/queue"
	"github.com/BruksfildServices01/barber-queue/internal/models"
	"github.com/BruksfildServices01/barber-queue/internal/testutil"
	ucmetrics "github.com/BruksfildServices01/barber-queue/internal/usecase/metrics"
)

func floatPtr(v float64) *float64 { return &v }
func timePtr(v time.Time) *time.Time { return &v }

func seedCompleted(
	repo *testutil.FakeRepository,
	clientID uint,
	barberID uint,
	entrada time.Time,
	saida time.Time,
	servicos ...models.QueueService,
) *models.QueueEntry {
	return repo.SeedEntry(models.QueueEntry{
		ClienteID:   clientID,
		BarbeiroID:  barberID,
		Posicao:     1,
		Status:      string(domain.StatusAtendido),
		HoraEntrada: entrada,
		HoraSaida:   timePtr(saida),
		Servicos:    servicos,
	})
}

func TestSummaryRevenueAndRangeFilter(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddBarber(models.Barber{ID: 1, Nome: "Carlos", Ativo: true})

	base := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)

	seedCompleted(repo, 1, 1, base, base.Add(30*time.Minute),
		models.QueueService{ServiceID: 1, Service: models.Service{ID: 1, Nome: "Corte"}, PrecoAplicado: floatPtr(30)},
	)
	seedCompleted(repo, 2, 1, base.Add(time.Hour), base.Add(90*time.Minute),
		models.QueueService{ServiceID: 2, Service: models.Service{ID: 2, Nome: "Barba"}, PrecoAplicado: floatPtr(50)},
	)
	// Fora da janela: não conta.
	seedCompleted(repo, 3, 1, base.AddDate(0, 0, 10), base.AddDate(0, 0, 10).Add(20*time.Minute),
		models.QueueService{ServiceID: 1, Service: models.Service{ID: 1, Nome: "Corte"}, PrecoAplicado: floatPtr(100)},
	)

	uc := ucmetrics.NewSummary(repo)
	out, err := uc.Execute(context.Background(), ucmetrics.SummaryInput{
		Start: base.Add(-time.Hour),
		End:   base.Add(3 * time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalClients)
	assert.Equal(t, 2, out.TotalServices)
	assert.Equal(t, 80.0, out.TotalRevenue)
}

func TestSummaryAverageWaitSkipsOutliers(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddBarber(models.Barber{ID: 1, Nome: "Carlos", Ativo: true})

	base := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)

	// 45 minutos: entra na média.
	seedCompleted(repo, 1, 1, base, base.Add(45*time.Minute))
	// 700 minutos: outlier, descartado.
	seedCompleted(repo, 2, 1, base, base.Add(700*time.Minute))
	// Duração zero: descartada.
	seedCompleted(repo, 3, 1, base, base)

	uc := ucmetrics.NewSummary(repo)
	out, err := uc.Execute(context.Background(), ucmetrics.SummaryInput{
		Start: base.Add(-time.Hour),
		End:   base.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, 45, out.AverageWaitTime)
}

func TestSummaryAverageWaitZeroWhenEmpty(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddBarber(models.Barber{ID: 1, Nome: "Carlos", Ativo: true})

	uc := ucmetrics.NewSummary(repo)
	out, err := uc.Execute(context.Background(), ucmetrics.SummaryInput{
		Start: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.AverageWaitTime)
	assert.Equal(t, 0.0, out.TotalRevenue)
}

func TestSummaryServicesByBarber(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddBarber(models.Barber{ID: 1, Nome: "Carlos", Ativo: true})
	repo.AddBarber(models.Barber{ID: 2, Nome: "Diego", Ativo: true})
	// Barbeiro desativado com histórico na janela.
	repo.AddBarber(models.Barber{ID: 3, Nome: "Edu", Ativo: false})

	base := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)

	seedCompleted(repo, 1, 1, base, base.Add(30*time.Minute),
		models.QueueService{ServiceID: 1, Service: models.Service{ID: 1, Nome: "Corte"}, PrecoAplicado: floatPtr(40)},
	)
	seedCompleted(repo, 2, 3, base, base.Add(30*time.Minute),
		models.QueueService{ServiceID: 1, Service: models.Service{ID: 1, Nome: "Corte"}, PrecoAplicado: floatPtr(60)},
	)

	uc := ucmetrics.NewSummary(repo)
	out, err := uc.Execute(context.Background(), ucmetrics.SummaryInput{
		Start: base.Add(-time.Hour),
		End:   base.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	// Três linhas: dois ativos pré-semeados + o desativado com histórico.
	require.Len(t, out.ServicesByBarber, 3)

	// Ordenação por receita decrescente.
	assert.Equal(t, uint(3), out.ServicesByBarber[0].BarbeiroID)
	assert.Equal(t, 60.0, out.ServicesByBarber[0].Revenue)
	assert.Equal(t, uint(1), out.ServicesByBarber[1].BarbeiroID)
	assert.Equal(t, 40.0, out.ServicesByBarber[1].Revenue)

	// Barbeiro ativo sem movimento aparece zerado.
	assert.Equal(t, uint(2), out.ServicesByBarber[2].BarbeiroID)
	assert.Equal(t, 0, out.ServicesByBarber[2].Count)
	assert.Equal(t, 0.0, out.ServicesByBarber[2].Revenue)
}

func TestSummaryPopularServices(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddBarber(models.Barber{ID: 1, Nome: "Carlos", Ativo: true})

	base := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)

	corte := models.QueueService{ServiceID: 1, Service: models.Service{ID: 1, Nome: "Corte"}, PrecoAplicado: floatPtr(40)}
	barba := models.QueueService{ServiceID: 2, Service: models.Service{ID: 2, Nome: "Barba"}, PrecoAplicado: floatPtr(30)}

	seedCompleted(repo, 1, 1, base, base.Add(30*time.Minute), corte, barba)
	seedCompleted(repo, 2, 1, base, base.Add(30*time.Minute), barba)

	uc := ucmetrics.NewSummary(repo)
	out, err := uc.Execute(context.Background(), ucmetrics.SummaryInput{
		Start: base.Add(-time.Hour),
		End:   base.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	require.Len(t, out.PopularServices, 2)
	assert.Equal(t, uint(2), out.PopularServices[0].ServiceID)
	assert.Equal(t, 2, out.PopularServices[0].Count)
	assert.Equal(t, 60.0, out.PopularServices[0].Revenue)
	assert.Equal(t, uint(1), out.PopularServices[1].ServiceID)
	assert.Equal(t, 1, out.PopularServices[1].Count)
}

func TestSummaryBarberFilter(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddBarber(models.Barber{ID: 1, Nome: "Carlos", Ativo: true})
	repo.AddBarber(models.Barber{ID: 2, Nome: "Diego", Ativo: true})

	base := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)

	seedCompleted(repo, 1, 1, base, base.Add(30*time.Minute),
		models.QueueService{ServiceID: 1, Service: models.Service{ID: 1, Nome: "Corte"}, PrecoAplicado: floatPtr(40)},
	)
	seedCompleted(repo, 2, 2, base, base.Add(30*time.Minute),
		models.QueueService{ServiceID: 1, Service: models.Service{ID: 1, Nome: "Corte"}, PrecoAplicado: floatPtr(70)},
	)

	barberID := uint(2)
	uc := ucmetrics.NewSummary(repo)
	out, err := uc.Execute(context.Background(), ucmetrics.SummaryInput{
		Start:      base.Add(-time.Hour),
		End:        base.AddDate(0, 0, 1),
		BarbeiroID: &barberID,
	})
	require.NoError(t, err)

	assert.Equal(t, 70.0, out.TotalRevenue)
	require.Len(t, out.ServicesByBarber, 1)
	assert.Equal(t, uint(2), out.ServicesByBarber[0].BarbeiroID)
}

func TestSummaryNullPriceCountsAsZero(t *testing.T) {
	repo := testutil.NewFakeRepository()
	repo.AddBarber(models.Barber{ID: 1, Nome: "Carlos", Ativo: true})

	base := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)

	seedCompleted(repo, 1, 1, base, base.Add(30*time.Minute),
		models.QueueService{ServiceID: 1, Service: models.Service{ID: 1, Nome: "Corte"}},
		models.QueueService{ServiceID: 2, Service: models.Service{ID: 2, Nome: "Barba"}, PrecoAplicado: floatPtr(30)},
	)

	uc := ucmetrics.NewSummary(repo)
	out, err := uc.Execute(context.Background(), ucmetrics.SummaryInput{
		Start: base.Add(-time.Hour),
		End:   base.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalServices)
	assert.Equal(t, 30.0, out.TotalRevenue)
}
