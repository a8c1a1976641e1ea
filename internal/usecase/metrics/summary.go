package metrics

import (
	"context"
	"math"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/barber-queue/internal/domain/queue"
	"github.com/BruksfildServices01/barber-queue/internal/dto"
	"github.com/BruksfildServices01/barber-queue/internal/timezone"
)

// Esperas acima deste teto (ou não positivas) são descartadas da média:
// entradas fechadas dias depois distorceriam o resultado.
const maxWaitMinutes = 600

const defaultRangeDays = 30

// ======================================================
// INPUT
// ======================================================

type SummaryInput struct {
	Start      time.Time
	End        time.Time
	BarbeiroID *uint
}

// ======================================================
// USE CASE
// ======================================================

type Summary struct {
	repo domain.Repository
}

func NewSummary(repo domain.Repository) *Summary {
	return &Summary{repo: repo}
}

func (uc *Summary) Execute(
	ctx context.Context,
	in SummaryInput,
) (*dto.MetricsSummaryDTO, error) {

	// --------------------------------------------------
	// Janela padrão: últimos 30 dias
	// --------------------------------------------------
	end := in.End
	if end.IsZero() {
		end = timezone.Now()
	}
	start := in.Start
	if start.IsZero() {
		start = end.AddDate(0, 0, -defaultRangeDays)
	}

	entries, err := uc.repo.ListCompleted(ctx, start, end, in.BarbeiroID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Base de barbeiros pré-semeada em zero
	// --------------------------------------------------
	byBarber := map[uint]*dto.BarberMetricsDTO{}

	if in.BarbeiroID != nil {
		if barber, err := uc.repo.GetBarber(ctx, *in.BarbeiroID); err == nil {
			byBarber[barber.ID] = &dto.BarberMetricsDTO{BarbeiroID: barber.ID, Nome: barber.Nome}
		}
	} else {
		barbers, err := uc.repo.ListActiveBarbers(ctx)
		if err != nil {
			return nil, err
		}
		for _, b := range barbers {
			byBarber[b.ID] = &dto.BarberMetricsDTO{BarbeiroID: b.ID, Nome: b.Nome}
		}
	}

	// --------------------------------------------------
	// Redução
	// --------------------------------------------------
	out := &dto.MetricsSummaryDTO{
		StartDate: start,
		EndDate:   end,
	}

	clients := map[uint]struct{}{}
	byService := map[uint]*dto.ServiceMetricsDTO{}

	var waitSum float64
	var waitCount int

	for i := range entries {
		e := &entries[i]

		clients[e.ClienteID] = struct{}{}
		out.TotalServices += len(e.Servicos)

		// Barbeiro desativado com histórico entra como linha extra.
		row, ok := byBarber[e.BarbeiroID]
		if !ok {
			row = &dto.BarberMetricsDTO{BarbeiroID: e.BarbeiroID, Nome: e.Barbeiro.Nome}
			byBarber[e.BarbeiroID] = row
		}
		row.Count++

		for _, qs := range e.Servicos {
			preco := precoOuZero(qs.PrecoAplicado)
			out.TotalRevenue += preco
			row.Revenue += preco

			srow, ok := byService[qs.ServiceID]
			if !ok {
				srow = &dto.ServiceMetricsDTO{ServiceID: qs.ServiceID, Nome: qs.Service.Nome}
				byService[qs.ServiceID] = srow
			}
			srow.Count++
			srow.Revenue += preco
		}

		if e.HoraSaida != nil {
			minutes := e.HoraSaida.Sub(e.HoraEntrada).Minutes()
			if minutes > 0 && minutes <= maxWaitMinutes {
				waitSum += minutes
				waitCount++
			}
		}
	}

	out.TotalClients = len(clients)
	if waitCount > 0 {
		out.AverageWaitTime = int(math.Round(waitSum / float64(waitCount)))
	}

	// --------------------------------------------------
	// Ordenação
	// --------------------------------------------------
	out.ServicesByBarber = make([]dto.BarberMetricsDTO, 0, len(byBarber))
	for _, row := range byBarber {
		out.ServicesByBarber = append(out.ServicesByBarber, *row)
	}
	sort.Slice(out.ServicesByBarber, func(i, j int) bool {
		a, b := out.ServicesByBarber[i], out.ServicesByBarber[j]
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		return a.BarbeiroID < b.BarbeiroID
	})

	out.PopularServices = make([]dto.ServiceMetricsDTO, 0, len(byService))
	for _, row := range byService {
		out.PopularServices = append(out.PopularServices, *row)
	}
	sort.Slice(out.PopularServices, func(i, j int) bool {
		a, b := out.PopularServices[i], out.PopularServices[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.ServiceID < b.ServiceID
	})

	return out, nil
}

func precoOuZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
